package reconcile

import (
	"sort"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// ResolveFailExchange marca como resueltas las filas de fallo intraoperatorio
// cubiertas por un pedido de cambio por fallo. Los cambios consumen primero
// los fallos pendientes más antiguos (FIFO), que es lo que espera una
// auditoría clínica.
//
// Para un pedido del fabricante M con cantidad total Q (suma de sus líneas):
// toma las filas con classification=intraop_fail cuyo fabricante normalizado
// es igual a Normalize(M), ordenadas por fecha ascendente (fechas ausentes o
// no parseables ordenan como cadena vacía, es decir, primero), y muta la
// clasificación de las primeras Q a fail_exchanged. Si hay menos de Q filas
// candidatas se resuelven las que haya; quedarse corto no es un error.
//
// Devuelve una copia actualizada del slice; no muta la entrada.
func ResolveFailExchange(records []entity.SurgeryRecord, order entity.Order) []entity.SurgeryRecord {
	out := make([]entity.SurgeryRecord, len(records))
	copy(out, records)

	quota := order.TotalQuantity()
	if quota <= 0 {
		return out
	}
	manu := Normalize(order.Manufacturer)

	candidates := make([]int, 0, len(out))
	for i, rec := range out {
		if rec.Classification == entity.ClassificationIntraopFail && Normalize(rec.Manufacturer) == manu {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return sortableDate(out[candidates[a]].Date) < sortableDate(out[candidates[b]].Date)
	})

	for _, idx := range candidates {
		if quota == 0 {
			break
		}
		out[idx].Classification = entity.ClassificationFailExchanged
		quota--
	}
	return out
}

// sortableDate clave de orden cronológico: fecha canónica o "" (primero)
// cuando falta o no parsea.
func sortableDate(raw string) string {
	if t, ok := ParseDate(raw); ok {
		return t.Format("2006-01-02")
	}
	return ""
}
