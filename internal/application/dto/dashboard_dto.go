package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: estado del
// inventario de la clínica para el widget principal.
type DashboardSummaryDTO struct {
	TotalFixtures     int `json:"total_fixtures"`
	TotalCurrentStock int `json:"total_current_stock"`

	// Fixtures con stock actual por debajo del recomendado, ordenados por
	// déficit descendente (los más urgentes primero).
	BelowRecommended []ReorderSuggestionDTO `json:"below_recommended"`

	// Top fixtures por uso acumulado.
	TopUsed []TopFixtureDTO `json:"top_used"`
}

// ReorderSuggestionDTO un fixture bajo el stock recomendado.
type ReorderSuggestionDTO struct {
	FixtureID        string `json:"fixture_id"`
	Manufacturer     string `json:"manufacturer"`
	Brand            string `json:"brand"`
	Size             string `json:"size"`
	CurrentStock     int    `json:"current_stock"`
	RecommendedStock int    `json:"recommended_stock"`
	SuggestedOrder   int    `json:"suggested_order_qty"` // recomendado − actual
	Priority         int    `json:"priority"`            // 1 = más urgente
}

// TopFixtureDTO resumen de un fixture para el widget de uso.
type TopFixtureDTO struct {
	FixtureID       string  `json:"fixture_id"`
	Manufacturer    string  `json:"manufacturer"`
	Brand           string  `json:"brand"`
	Size            string  `json:"size"`
	UsageCount      int     `json:"usage_count"`
	MonthlyAvgUsage float64 `json:"monthly_avg_usage"`
}
