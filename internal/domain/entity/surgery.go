package entity

import "time"

// RawRow es una fila cruda del export de cirugías: etiqueta de columna → valor
// en texto. No hay esquema fijo; las columnas varían entre archivos y los
// nombres vienen en coreano (ver internal/domain/reconcile, constantes Col*).
// Vive solo durante la ingesta; se conserva como payload en SurgeryRecord para
// poder re-evaluar filas de subtotal y auditoría.
type RawRow map[string]string

// Clasificaciones de una fila del log de cirugías.
const (
	ClassificationPlacement     = "placement"       // colocación normal de implante
	ClassificationBoneGraftOnly = "bone_graft_only" // solo injerto óseo (GBR), sin fixture
	ClassificationIntraopFail   = "intraop_fail"    // fixture fallado durante la cirugía
	ClassificationInsurance     = "insurance_claim" // implante por seguro
	ClassificationFailExchanged = "fail_exchanged"  // fail ya cubierto por un pedido de cambio
)

// SurgeryRecord es una fila del log de cirugías ya clasificada: la fila cruda
// más los cuatro campos derivados por el clasificador. Inmutable tras la
// ingesta, con una excepción: Classification muta a fail_exchanged cuando un
// pedido de cambio por fallo la resuelve.
type SurgeryRecord struct {
	ID       string
	ClinicID string

	Classification string // ver constantes Classification*
	Manufacturer   string
	Brand          string
	Size           string // texto libre en esta etapa; se canoniza al conciliar
	Quantity       int    // derivada del campo de números de diente

	Date         string // texto crudo de la columna 날짜; se parsea bajo demanda
	ToothNumbers string // texto crudo de la columna 치아번호

	Raw RawRow // fila original completa

	CreatedAt time.Time
}
