package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea de pedido.
type OrderItemRequest struct {
	Brand     string          `json:"brand"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Type         string             `json:"type"` // replenishment | fail_exchange
	Manufacturer string             `json:"manufacturer"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemResponse una línea de pedido en respuestas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse representación HTTP de un pedido.
type OrderResponse struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	Manufacturer string              `json:"manufacturer"`
	Status       string              `json:"status"`
	ReceivedDate *time.Time          `json:"received_date,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	CreatedAt    time.Time           `json:"created_at"`
}

// CreateOrderResponse respuesta de creación; para pedidos de cambio por
// fallo incluye cuántas filas del log quedaron resueltas.
type CreateOrderResponse struct {
	Order         OrderResponse `json:"order"`
	FailsResolved int           `json:"fails_resolved,omitempty"`
}
