package repository

import (
	"context"
	"time"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByClinic(ctx context.Context, clinicID string) ([]entity.Order, error)
	// MarkReceived marca el pedido como recibido con la fecha dada.
	MarkReceived(ctx context.Context, id string, receivedDate time.Time) error
}
