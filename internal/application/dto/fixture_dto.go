package dto

import "time"

// CreateFixtureRequest body para POST /api/fixtures.
type CreateFixtureRequest struct {
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	Size         string `json:"size"`
	InitialStock int    `json:"initial_stock"`
}

// UpdateFixtureRequest body para PUT /api/fixtures/:id. Solo identidad y
// línea base: los campos calculados son del motor y no se aceptan por HTTP.
type UpdateFixtureRequest struct {
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	Size         string `json:"size"`
	InitialStock int    `json:"initial_stock"`
}

// FixtureResponse representación HTTP de un fixture con sus campos calculados.
type FixtureResponse struct {
	ID           string `json:"id"`
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	Size         string `json:"size"`
	InitialStock int    `json:"initial_stock"`

	UsageCount       int     `json:"usage_count"`
	CurrentStock     int     `json:"current_stock"`
	RecommendedStock int     `json:"recommended_stock"`
	MonthlyAvgUsage  float64 `json:"monthly_avg_usage"`
	DailyMaxUsage    int     `json:"daily_max_usage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImportFixturesRequest body para POST /api/fixtures/import: filas limpias
// (etiqueta de columna → valor) de un export de inventario.
type ImportFixturesRequest struct {
	Rows []map[string]string `json:"rows"`
}

// ImportFixturesResponse resumen del import.
type ImportFixturesResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // filas de subtotal o sin fabricante
}
