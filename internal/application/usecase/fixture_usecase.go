package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/reconcile"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// FixtureUseCase CRUD del inventario de fixtures más el import masivo desde un
// export. Cualquier mutación del inventario dispara el recálculo completo.
type FixtureUseCase struct {
	repo      repository.FixtureRepository
	recompute *inventory.RecomputeUseCase
}

// NewFixtureUseCase construye el caso de uso.
func NewFixtureUseCase(repo repository.FixtureRepository, recompute *inventory.RecomputeUseCase) *FixtureUseCase {
	return &FixtureUseCase{repo: repo, recompute: recompute}
}

// Create da de alta una referencia del inventario. La unicidad
// fabricante+marca+medida por clínica la garantiza la base (ErrDuplicate).
func (uc *FixtureUseCase) Create(ctx context.Context, clinicID string, in dto.CreateFixtureRequest) (*dto.FixtureResponse, error) {
	if strings.TrimSpace(in.Manufacturer) == "" || strings.TrimSpace(in.Brand) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	f := &entity.Fixture{
		ID:           uuid.New().String(),
		ClinicID:     clinicID,
		Manufacturer: in.Manufacturer,
		Brand:        in.Brand,
		Size:         in.Size,
		InitialStock: in.InitialStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	if _, err := uc.recompute.Recompute(ctx, clinicID); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	return toFixtureResponse(created), nil
}

// GetByID obtiene un fixture de la clínica.
func (uc *FixtureUseCase) GetByID(ctx context.Context, clinicID, id string) (*dto.FixtureResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || f.ClinicID != clinicID {
		return nil, nil
	}
	return toFixtureResponse(f), nil
}

// List devuelve el inventario completo de la clínica.
func (uc *FixtureUseCase) List(ctx context.Context, clinicID string) ([]dto.FixtureResponse, error) {
	list, err := uc.repo.ListByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FixtureResponse, 0, len(list))
	for i := range list {
		items = append(items, *toFixtureResponse(&list[i]))
	}
	return items, nil
}

// Update modifica identidad y línea base del fixture. Los campos calculados
// no se aceptan: los reescribe el recálculo que se dispara aquí mismo.
func (uc *FixtureUseCase) Update(ctx context.Context, clinicID, id string, in dto.UpdateFixtureRequest) (*dto.FixtureResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || f.ClinicID != clinicID {
		return nil, nil
	}
	if in.Manufacturer != "" {
		f.Manufacturer = in.Manufacturer
	}
	if in.Brand != "" {
		f.Brand = in.Brand
	}
	if in.Size != "" {
		f.Size = in.Size
	}
	f.InitialStock = in.InitialStock
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	if _, err := uc.recompute.Recompute(ctx, f.ClinicID); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFixtureResponse(updated), nil
}

// Delete elimina un fixture de la clínica y recalcula el resto del inventario.
func (uc *FixtureUseCase) Delete(ctx context.Context, clinicID, id string) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil || f.ClinicID != clinicID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	_, err = uc.recompute.Recompute(ctx, clinicID)
	return err
}

// Import carga filas de un export de inventario (columnas 제조사, 브랜드,
// 규격(SIZE), 갯수). Se saltan filas de subtotal y filas sin fabricante;
// cantidades no numéricas cuentan como 0. Un solo recálculo al final.
func (uc *FixtureUseCase) Import(ctx context.Context, clinicID string, in dto.ImportFixturesRequest) (*dto.ImportFixturesResponse, error) {
	if len(in.Rows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	out := &dto.ImportFixturesResponse{}
	for _, row := range in.Rows {
		if reconcile.IsSubtotalRow(row) {
			out.Skipped++
			continue
		}
		manufacturer := strings.TrimSpace(row[reconcile.ColManufacturer])
		if manufacturer == "" {
			out.Skipped++
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row[reconcile.ColQuantity]))
		if err != nil {
			qty = 0
		}
		f := &entity.Fixture{
			ID:           uuid.New().String(),
			ClinicID:     clinicID,
			Manufacturer: manufacturer,
			Brand:        strings.TrimSpace(row[reconcile.ColBrand]),
			Size:         strings.TrimSpace(row[reconcile.ColSize]),
			InitialStock: qty,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.repo.Create(ctx, f); err != nil {
			return nil, err
		}
		out.Imported++
	}
	if _, err := uc.recompute.Recompute(ctx, clinicID); err != nil {
		return nil, err
	}
	return out, nil
}

func toFixtureResponse(f *entity.Fixture) *dto.FixtureResponse {
	if f == nil {
		return nil
	}
	return &dto.FixtureResponse{
		ID:               f.ID,
		Manufacturer:     f.Manufacturer,
		Brand:            f.Brand,
		Size:             f.Size,
		InitialStock:     f.InitialStock,
		UsageCount:       f.UsageCount,
		CurrentStock:     f.CurrentStock,
		RecommendedStock: f.RecommendedStock,
		MonthlyAvgUsage:  f.MonthlyAvgUsage,
		DailyMaxUsage:    f.DailyMaxUsage,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
