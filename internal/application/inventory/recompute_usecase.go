package inventory

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/fixtura/fixtura-api/internal/domain/reconcile"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// RecomputeUseCase recalcula los campos derivados de todo el inventario de una
// clínica. Siempre recálculo completo: el divisor del promedio mensual depende
// del rango de fechas de TODO el log, así que un parche incremental no existe.
type RecomputeUseCase struct {
	tx TxRunner
}

// NewRecomputeUseCase construye el caso de uso de recálculo.
func NewRecomputeUseCase(tx TxRunner) *RecomputeUseCase {
	return &RecomputeUseCase{tx: tx}
}

// Recompute carga inventario, log de cirugías y pedidos de la clínica dentro
// de una transacción, corre el motor de conciliación y persiste los campos
// calculados sobre la misma foto. Devuelve cuántos fixtures quedaron
// actualizados.
func (uc *RecomputeUseCase) Recompute(ctx context.Context, clinicID string) (int, error) {
	updated := 0
	err := uc.tx.Run(ctx, func(
		fixtureRepo repository.FixtureRepository,
		surgeryRepo repository.SurgeryRepository,
		orderRepo repository.OrderRepository,
	) error {
		fixtures, err := fixtureRepo.ListByClinic(ctx, clinicID)
		if err != nil {
			return err
		}
		if len(fixtures) == 0 {
			return nil
		}
		records, err := surgeryRepo.ListByClinic(ctx, clinicID)
		if err != nil {
			return err
		}
		orders, err := orderRepo.ListByClinic(ctx, clinicID)
		if err != nil {
			return err
		}

		out := reconcile.Reconcile(fixtures, records, orders)
		if err := fixtureRepo.UpdateComputed(ctx, out); err != nil {
			return err
		}
		updated = len(out)
		log.Debug().
			Str("clinic_id", clinicID).
			Int("fixtures", updated).
			Int("records", len(records)).
			Int("orders", len(orders)).
			Msg("inventario recalculado")
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
