package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/reconcile"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// OrderUseCase pedidos a fabricante: creación (con resolución de cambios por
// fallo), recepción, consulta y hoja de pedido en PDF.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	surgeryRepo repository.SurgeryRepository
	clinicRepo  repository.ClinicRepository
	recompute   *inventory.RecomputeUseCase
	pdf         OrderPDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	surgeryRepo repository.SurgeryRepository,
	clinicRepo repository.ClinicRepository,
	recompute *inventory.RecomputeUseCase,
	pdf OrderPDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		surgeryRepo: surgeryRepo,
		clinicRepo:  clinicRepo,
		recompute:   recompute,
		pdf:         pdf,
	}
}

// Create registra un pedido en estado ordered. Si es de cambio por fallo,
// resuelve en el mismo acto las filas de fallo más antiguas del fabricante
// (FIFO) hasta cubrir la cantidad total del pedido.
func (uc *OrderUseCase) Create(ctx context.Context, clinicID string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.Type != entity.OrderTypeReplenishment && in.Type != entity.OrderTypeFailExchange {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Manufacturer) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		ClinicID:     clinicID,
		Type:         in.Type,
		Manufacturer: in.Manufacturer,
		Status:       entity.OrderStatusOrdered,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Brand:     it.Brand,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	resolved := 0
	if order.Type == entity.OrderTypeFailExchange {
		var err error
		resolved, err = uc.resolveFails(ctx, clinicID, order)
		if err != nil {
			return nil, err
		}
	}

	// Un pedido recién creado no aporta stock, pero las filas resueltas sí
	// cambian la clasificación; recálculo igual para mantener la disciplina.
	if _, err := uc.recompute.Recompute(ctx, clinicID); err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		Order:         *toOrderResponse(order),
		FailsResolved: resolved,
	}, nil
}

// resolveFails marca como fail_exchanged las filas de fallo cubiertas por el
// pedido y persiste cada cambio de clasificación.
func (uc *OrderUseCase) resolveFails(ctx context.Context, clinicID string, order *entity.Order) (int, error) {
	records, err := uc.surgeryRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		return 0, err
	}
	updated := reconcile.ResolveFailExchange(records, *order)

	resolved := 0
	for i := range updated {
		if updated[i].Classification == records[i].Classification {
			continue
		}
		if err := uc.surgeryRepo.UpdateClassification(ctx, updated[i].ID, updated[i].Classification); err != nil {
			return resolved, err
		}
		resolved++
	}
	log.Info().
		Str("clinic_id", clinicID).
		Str("order_id", order.ID).
		Int("resolved", resolved).
		Msg("fallos resueltos por pedido de cambio")
	return resolved, nil
}

// Receive marca el pedido como recibido; a partir de ahí sus líneas aportan
// stock (solo reposición) y el recálculo lo refleja.
func (uc *OrderUseCase) Receive(ctx context.Context, clinicID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.ClinicID != clinicID {
		return nil, domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusReceived {
		return nil, domain.ErrAlreadyReceived
	}
	now := time.Now()
	if err := uc.orderRepo.MarkReceived(ctx, id, now); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusReceived
	order.ReceivedDate = &now
	order.UpdatedAt = now

	if _, err := uc.recompute.Recompute(ctx, clinicID); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido de la clínica.
func (uc *OrderUseCase) GetByID(ctx context.Context, clinicID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.ClinicID != clinicID {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista los pedidos de la clínica.
func (uc *OrderUseCase) List(ctx context.Context, clinicID string) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for i := range list {
		items = append(items, *toOrderResponse(&list[i]))
	}
	return items, nil
}

// GeneratePDF genera la hoja de pedido lista para enviar al fabricante.
func (uc *OrderUseCase) GeneratePDF(ctx context.Context, clinicID, id string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.ClinicID != clinicID {
		return nil, domain.ErrNotFound
	}
	clinic, err := uc.clinicRepo.GetByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(clinic, order)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			Brand:     it.Brand,
			Size:      it.Size,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		Type:         o.Type,
		Manufacturer: o.Manufacturer,
		Status:       o.Status,
		ReceivedDate: o.ReceivedDate,
		Items:        items,
		TotalAmount:  o.TotalAmount(),
		CreatedAt:    o.CreatedAt,
	}
}
