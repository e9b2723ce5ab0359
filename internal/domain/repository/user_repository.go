package repository

import (
	"context"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndClinic(ctx context.Context, email, clinicID string) (*entity.User, error)
}
