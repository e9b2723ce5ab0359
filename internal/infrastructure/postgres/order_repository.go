package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Pedido y líneas viven en dos tablas; las escrituras van juntas en batch.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido y sus líneas.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO orders (id, clinic_id, type, manufacturer, status, received_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.ClinicID, o.Type, o.Manufacturer, o.Status, o.ReceivedDate, o.CreatedAt, o.UpdatedAt,
	)
	for _, it := range o.Items {
		batch.Queue(`
			INSERT INTO order_items (id, order_id, brand, size, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, it.OrderID, it.Brand, it.Size, it.Quantity, it.UnitPrice,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < len(o.Items)+1; i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, clinic_id, type, manufacturer, status, received_date, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ClinicID, &o.Type, &o.Manufacturer, &o.Status, &o.ReceivedDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// ListByClinic lista los pedidos de la clínica con sus líneas, más recientes primero.
func (r *OrderRepo) ListByClinic(ctx context.Context, clinicID string) ([]entity.Order, error) {
	query := `
		SELECT id, clinic_id, type, manufacturer, status, received_date, created_at, updated_at
		FROM orders WHERE clinic_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ClinicID, &o.Type, &o.Manufacturer, &o.Status, &o.ReceivedDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		items, err := r.itemsFor(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Items = items
	}
	return list, nil
}

// MarkReceived marca el pedido como recibido con la fecha dada.
func (r *OrderRepo) MarkReceived(ctx context.Context, id string, receivedDate time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, received_date = $3, updated_at = now() WHERE id = $1`,
		id, entity.OrderStatusReceived, receivedDate,
	)
	if err != nil {
		return fmt.Errorf("mark order received: %w", err)
	}
	return nil
}

func (r *OrderRepo) itemsFor(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, brand, size, quantity, unit_price FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Brand, &it.Size, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
