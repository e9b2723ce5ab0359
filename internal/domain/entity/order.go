package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	OrderTypeReplenishment = "replenishment" // reposición normal de stock
	OrderTypeFailExchange  = "fail_exchange" // reposición por fixture fallado en cirugía
)

// Estados de pedido. Solo los pedidos de reposición en estado received
// aportan unidades al stock actual.
const (
	OrderStatusOrdered  = "ordered"
	OrderStatusReceived = "received"
)

// Order representa un pedido a un fabricante. Un pedido pertenece a un solo
// fabricante; las líneas distinguen marca/medida.
type Order struct {
	ID           string
	ClinicID     string
	Type         string // replenishment | fail_exchange
	Manufacturer string
	Status       string     // ordered | received
	ReceivedDate *time.Time // nil mientras no se reciba
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem una línea del pedido.
type OrderItem struct {
	ID        string
	OrderID   string
	Brand     string
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// TotalQuantity suma las cantidades de todas las líneas.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

// TotalAmount suma cantidad × precio unitario de todas las líneas.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// IsReceivedReplenishment indica si el pedido aporta stock (ver constantes de estado).
func (o *Order) IsReceivedReplenishment() bool {
	return o.Type == OrderTypeReplenishment && o.Status == OrderStatusReceived
}
