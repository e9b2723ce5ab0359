package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

var _ repository.SurgeryRepository = (*SurgeryRepo)(nil)

const surgeryColumns = `id, clinic_id, classification, manufacturer, brand, size,
	quantity, date, tooth_numbers, raw, created_at`

// SurgeryRepo implementación del puerto SurgeryRepository sobre PostgreSQL.
// La fila cruda del export se guarda como jsonb (raw) para auditoría.
type SurgeryRepo struct {
	q Querier
}

// NewSurgeryRepository construye el adaptador de persistencia para el log de cirugías.
func NewSurgeryRepository(q Querier) *SurgeryRepo {
	return &SurgeryRepo{q: q}
}

// BulkInsert persiste un lote de registros en un solo batch (una ingesta completa).
func (r *SurgeryRepo) BulkInsert(ctx context.Context, records []entity.SurgeryRecord) error {
	if len(records) == 0 {
		return nil
	}
	query := `
		INSERT INTO surgery_records (id, clinic_id, classification, manufacturer, brand, size,
			quantity, date, tooth_numbers, raw, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query,
			rec.ID, rec.ClinicID, rec.Classification, rec.Manufacturer, rec.Brand, rec.Size,
			rec.Quantity, rec.Date, rec.ToothNumbers, rec.Raw, rec.CreatedAt,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range records {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert surgery record: %w", err)
		}
	}
	return nil
}

// ListByClinic devuelve el log completo de la clínica en orden de inserción.
func (r *SurgeryRepo) ListByClinic(ctx context.Context, clinicID string) ([]entity.SurgeryRecord, error) {
	query := `SELECT ` + surgeryColumns + ` FROM surgery_records WHERE clinic_id = $1 ORDER BY created_at, id`
	return r.queryRecords(ctx, query, clinicID)
}

// ListPage devuelve una página del log para la UI.
func (r *SurgeryRepo) ListPage(ctx context.Context, clinicID string, limit, offset int) ([]entity.SurgeryRecord, error) {
	query := `SELECT ` + surgeryColumns + ` FROM surgery_records WHERE clinic_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	return r.queryRecords(ctx, query, clinicID, limit, offset)
}

// UpdateClassification muta la clasificación de un registro (resolución de cambio por fallo).
func (r *SurgeryRepo) UpdateClassification(ctx context.Context, id, classification string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE surgery_records SET classification = $2 WHERE id = $1`,
		id, classification,
	)
	if err != nil {
		return fmt.Errorf("update surgery classification: %w", err)
	}
	return nil
}

func (r *SurgeryRepo) queryRecords(ctx context.Context, query string, args ...any) ([]entity.SurgeryRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list surgery records: %w", err)
	}
	defer rows.Close()
	var list []entity.SurgeryRecord
	for rows.Next() {
		var rec entity.SurgeryRecord
		if err := rows.Scan(
			&rec.ID, &rec.ClinicID, &rec.Classification, &rec.Manufacturer, &rec.Brand, &rec.Size,
			&rec.Quantity, &rec.Date, &rec.ToothNumbers, &rec.Raw, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan surgery record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
