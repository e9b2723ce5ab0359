package entity

import "time"

// Fixture representa una referencia de implante en el inventario de una clínica,
// identificada por fabricante + marca + medida (las tres en forma de display,
// tal como vienen del archivo exportado o del alta manual).
//
// InitialStock es la línea base editable por el usuario. Los cinco campos
// "calculados" son propiedad del motor de conciliación: se recalculan completos
// (nunca parche incremental) cada vez que cambia el log de cirugías, la lista
// de pedidos o el propio inventario.
type Fixture struct {
	ID           string
	ClinicID     string
	Manufacturer string // 제조사, texto libre del export
	Brand        string // 브랜드
	Size         string // 규격(SIZE), forma de display
	InitialStock int

	// Calculados por el motor (internal/domain/reconcile).
	UsageCount       int
	CurrentStock     int
	RecommendedStock int
	MonthlyAvgUsage  float64 // redondeado a 1 decimal
	DailyMaxUsage    int

	CreatedAt time.Time
	UpdatedAt time.Time
}
