package dto

// SurgeryRecordResponse una fila clasificada del log de cirugías.
type SurgeryRecordResponse struct {
	ID             string `json:"id"`
	Classification string `json:"classification"`
	Manufacturer   string `json:"manufacturer"`
	Brand          string `json:"brand"`
	Size           string `json:"size"`
	Quantity       int    `json:"quantity"`
	Date           string `json:"date"`
	ToothNumbers   string `json:"tooth_numbers"`
}

// IngestSummaryDTO resumen de una ingesta de archivo de cirugías.
type IngestSummaryDTO struct {
	RowsRead       int            `json:"rows_read"`
	RowsIngested   int            `json:"rows_ingested"`
	SubtotalRows   int            `json:"subtotal_rows"` // detectadas; se persisten pero no agregan
	ByClass        map[string]int `json:"by_classification"`
	FixturesScoped int            `json:"fixtures_recomputed"`
}
