package usecase

import (
	"context"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// SurgeryUseCase consulta del log de cirugías ya ingerido.
type SurgeryUseCase struct {
	repo repository.SurgeryRepository
}

// NewSurgeryUseCase construye el caso de uso.
func NewSurgeryUseCase(repo repository.SurgeryRepository) *SurgeryUseCase {
	return &SurgeryUseCase{repo: repo}
}

// List devuelve una página del log de la clínica.
func (uc *SurgeryUseCase) List(ctx context.Context, clinicID string, page dto.PageRequest) ([]dto.SurgeryRecordResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListPage(ctx, clinicID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SurgeryRecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, toSurgeryResponse(rec))
	}
	return items, nil
}

func toSurgeryResponse(rec entity.SurgeryRecord) dto.SurgeryRecordResponse {
	return dto.SurgeryRecordResponse{
		ID:             rec.ID,
		Classification: rec.Classification,
		Manufacturer:   rec.Manufacturer,
		Brand:          rec.Brand,
		Size:           rec.Size,
		Quantity:       rec.Quantity,
		Date:           rec.Date,
		ToothNumbers:   rec.ToothNumbers,
	}
}
