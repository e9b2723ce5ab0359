package inventory

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/reconcile"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// IngestUseCase ingesta de un export de cirugías: lee la hoja, clasifica cada
// fila con el motor, persiste el lote y dispara el recálculo del inventario.
type IngestUseCase struct {
	reader      SheetReader
	surgeryRepo repository.SurgeryRepository
	recompute   *RecomputeUseCase
}

// NewIngestUseCase construye el caso de uso de ingesta.
func NewIngestUseCase(reader SheetReader, surgeryRepo repository.SurgeryRepository, recompute *RecomputeUseCase) *IngestUseCase {
	return &IngestUseCase{reader: reader, surgeryRepo: surgeryRepo, recompute: recompute}
}

// IngestFile procesa el archivo subido para una clínica. Las filas de
// subtotal se clasifican y persisten igual que el resto (conservan el payload
// crudo para auditoría) pero el motor las excluye de todos los agregados.
// Devuelve ErrEmptySheet si la hoja no trae filas de datos.
func (uc *IngestUseCase) IngestFile(ctx context.Context, clinicID string, file io.Reader) (*dto.IngestSummaryDTO, error) {
	rows, err := uc.reader.ReadRows(file)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptySheet
	}

	now := time.Now()
	summary := &dto.IngestSummaryDTO{
		RowsRead: len(rows),
		ByClass:  map[string]int{},
	}

	records := make([]entity.SurgeryRecord, 0, len(rows))
	for _, row := range rows {
		rec := reconcile.Classify(row)
		rec.ID = uuid.New().String()
		rec.ClinicID = clinicID
		rec.CreatedAt = now
		records = append(records, rec)

		if reconcile.IsSubtotalRecord(rec) {
			summary.SubtotalRows++
			continue
		}
		summary.ByClass[rec.Classification]++
	}
	summary.RowsIngested = len(records)

	if err := uc.surgeryRepo.BulkInsert(ctx, records); err != nil {
		return nil, err
	}

	recomputed, err := uc.recompute.Recompute(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	summary.FixturesScoped = recomputed

	log.Info().
		Str("clinic_id", clinicID).
		Int("rows", summary.RowsRead).
		Int("subtotals", summary.SubtotalRows).
		Int("fixtures", recomputed).
		Msg("export de cirugías ingerido")
	return summary, nil
}
