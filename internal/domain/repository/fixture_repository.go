package repository

import (
	"context"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// FixtureRepository define el puerto de persistencia para Fixture (DIP).
// La implementación vive en infrastructure.
type FixtureRepository interface {
	Create(ctx context.Context, f *entity.Fixture) error
	GetByID(ctx context.Context, id string) (*entity.Fixture, error)
	// ListByClinic devuelve el inventario completo de la clínica. El motor de
	// conciliación siempre trabaja con la lista completa, nunca paginada.
	ListByClinic(ctx context.Context, clinicID string) ([]entity.Fixture, error)
	// Update solo persiste campos de identidad + InitialStock; los campos
	// calculados se escriben en bloque con UpdateComputed.
	Update(ctx context.Context, f *entity.Fixture) error
	// UpdateComputed reescribe los cinco campos calculados de cada fixture
	// tras un recálculo completo del motor.
	UpdateComputed(ctx context.Context, fixtures []entity.Fixture) error
	Delete(ctx context.Context, id string) error
}
