package repository

import (
	"context"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// SurgeryRepository define el puerto de persistencia para el log de cirugías.
type SurgeryRepository interface {
	// BulkInsert persiste un lote de registros recién clasificados (una
	// ingesta de archivo completa).
	BulkInsert(ctx context.Context, records []entity.SurgeryRecord) error
	// ListByClinic devuelve el log completo de la clínica en orden de
	// inserción; el motor necesita todas las filas para el rango de fechas.
	ListByClinic(ctx context.Context, clinicID string) ([]entity.SurgeryRecord, error)
	ListPage(ctx context.Context, clinicID string, limit, offset int) ([]entity.SurgeryRecord, error)
	// UpdateClassification muta la clasificación de un registro (resolución
	// de cambio por fallo, única mutación permitida tras la ingesta).
	UpdateClassification(ctx context.Context, id, classification string) error
}
