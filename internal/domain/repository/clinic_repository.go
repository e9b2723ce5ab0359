package repository

import (
	"context"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// ClinicRepository define el puerto de persistencia para Clinic (DIP).
type ClinicRepository interface {
	Create(ctx context.Context, c *entity.Clinic) error
	GetByID(ctx context.Context, id string) (*entity.Clinic, error)
	List(ctx context.Context, limit, offset int) ([]entity.Clinic, error)
}
