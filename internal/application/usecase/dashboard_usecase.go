package usecase

import (
	"context"
	"sort"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// topUsedLimit tamaño del widget de fixtures más usados.
const topUsedLimit = 5

// DashboardUseCase arma el resumen del inventario para el dashboard de la
// clínica a partir de los campos ya calculados por el motor.
type DashboardUseCase struct {
	fixtureRepo repository.FixtureRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(fixtureRepo repository.FixtureRepository) *DashboardUseCase {
	return &DashboardUseCase{fixtureRepo: fixtureRepo}
}

// Summary devuelve totales, fixtures bajo el stock recomendado (por déficit
// descendente) y el top de uso acumulado.
func (uc *DashboardUseCase) Summary(ctx context.Context, clinicID string) (*dto.DashboardSummaryDTO, error) {
	fixtures, err := uc.fixtureRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		TotalFixtures:    len(fixtures),
		BelowRecommended: []dto.ReorderSuggestionDTO{},
		TopUsed:          []dto.TopFixtureDTO{},
	}

	for _, f := range fixtures {
		out.TotalCurrentStock += f.CurrentStock
		if f.CurrentStock < f.RecommendedStock {
			out.BelowRecommended = append(out.BelowRecommended, dto.ReorderSuggestionDTO{
				FixtureID:        f.ID,
				Manufacturer:     f.Manufacturer,
				Brand:            f.Brand,
				Size:             f.Size,
				CurrentStock:     f.CurrentStock,
				RecommendedStock: f.RecommendedStock,
				SuggestedOrder:   f.RecommendedStock - f.CurrentStock,
			})
		}
	}

	sort.SliceStable(out.BelowRecommended, func(a, b int) bool {
		return out.BelowRecommended[a].SuggestedOrder > out.BelowRecommended[b].SuggestedOrder
	})
	for i := range out.BelowRecommended {
		out.BelowRecommended[i].Priority = i + 1
	}

	sort.SliceStable(fixtures, func(a, b int) bool {
		return fixtures[a].UsageCount > fixtures[b].UsageCount
	})
	for _, f := range fixtures {
		if len(out.TopUsed) == topUsedLimit || f.UsageCount == 0 {
			break
		}
		out.TopUsed = append(out.TopUsed, dto.TopFixtureDTO{
			FixtureID:       f.ID,
			Manufacturer:    f.Manufacturer,
			Brand:           f.Brand,
			Size:            f.Size,
			UsageCount:      f.UsageCount,
			MonthlyAvgUsage: f.MonthlyAvgUsage,
		})
	}
	return out, nil
}
