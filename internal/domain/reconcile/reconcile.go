package reconcile

import (
	"math"
	"strings"
	"time"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// daysPerMonth divisor del promedio mensual (mes gregoriano medio).
const daysPerMonth = 30.44

// matchKey es la tupla normalizada que une uso quirúrgico, inventario y
// líneas de pedido. Tipo valor puro: se recalcula bajo demanda, nunca se
// persiste.
type matchKey struct {
	manufacturer string
	brand        string
	size         string
}

func keyFor(manufacturer, brand, size string) matchKey {
	return matchKey{
		manufacturer: Normalize(manufacturer),
		brand:        Normalize(brand),
		// la gramática de medida depende del fabricante del propio lado
		size: SizeMatchKey(size, manufacturer),
	}
}

// matches decide si una fila de cirugía corresponde a un fixture del
// inventario. El fabricante tolera subcadena en cualquiera de las dos
// direcciones (los campos de texto libre a veces vienen abreviados en un solo
// lado); marca y medida exigen igualdad exacta porque son de cardinalidad
// baja y un desajuste ahí suele ser una diferencia real, no ruido de formato.
//
// Limitación conocida: si el nombre normalizado de un fabricante es
// subcadena del de otro no relacionado, la regla produce falsos positivos.
// El comportamiento se conserva tal cual porque los datos ya conciliados
// dependen de él; ver el test que lo documenta.
func (k matchKey) matches(row matchKey) bool {
	if k.brand != row.brand || k.size != row.size {
		return false
	}
	return k.manufacturer == row.manufacturer ||
		strings.Contains(row.manufacturer, k.manufacturer) ||
		strings.Contains(k.manufacturer, row.manufacturer)
}

// IsSubtotalRow indica si una fila cruda es una fila de total/subtotal del
// export: cualquier celda que contenga el marcador literal la excluye.
func IsSubtotalRow(row entity.RawRow) bool {
	for _, v := range row {
		if strings.Contains(v, TokenSubtotal) {
			return true
		}
	}
	return false
}

// IsSubtotalRecord indica si el registro es una fila de total/subtotal del
// export: cualquier campo (crudo o clasificado) que contenga el marcador
// literal la excluye de todos los agregados, aunque traiga cantidad.
func IsSubtotalRecord(rec entity.SurgeryRecord) bool {
	if IsSubtotalRow(rec.Raw) {
		return true
	}
	return strings.Contains(rec.Manufacturer, TokenSubtotal) ||
		strings.Contains(rec.Brand, TokenSubtotal) ||
		strings.Contains(rec.Date, TokenSubtotal)
}

// Reconcile recalcula los campos computados de cada fixture a partir del log
// de cirugías y los pedidos. Función pura de sus tres entradas: sin estado
// oculto, segura de re-ejecutar completa en cada cambio. No existe variante
// incremental a propósito: el divisor del promedio mensual depende del rango
// global de fechas de TODO el log, no de una ventana por fixture, y una
// actualización parcial divergiría en silencio del recálculo completo.
//
// Devuelve copias actualizadas; no muta las entradas.
func Reconcile(fixtures []entity.Fixture, records []entity.SurgeryRecord, orders []entity.Order) []entity.Fixture {
	// 1. Fuera filas de subtotal.
	usable := make([]entity.SurgeryRecord, 0, len(records))
	for _, rec := range records {
		if !IsSubtotalRecord(rec) {
			usable = append(usable, rec)
		}
	}

	// 2. Rango global de fechas → divisor en meses (mínimo 1).
	periodMonths := observedPeriodMonths(usable)

	// 3-9. Por fixture: uso, histograma diario, recibidos, stocks.
	rowKeys := make([]matchKey, len(usable))
	for i, rec := range usable {
		rowKeys[i] = keyFor(rec.Manufacturer, rec.Brand, rec.Size)
	}

	out := make([]entity.Fixture, len(fixtures))
	for i, f := range fixtures {
		fk := keyFor(f.Manufacturer, f.Brand, f.Size)

		usage := 0
		daily := map[string]int{}
		for j, rec := range usable {
			if !fk.matches(rowKeys[j]) {
				continue
			}
			usage += rec.Quantity
			daily[DateKey(rec.Date)] += rec.Quantity
		}

		dailyMax := 0
		for _, n := range daily {
			if n > dailyMax {
				dailyMax = n
			}
		}

		monthlyAvg := math.Round(float64(usage)/periodMonths*10) / 10
		received := totalReceived(f, orders)

		f.UsageCount = usage
		f.DailyMaxUsage = dailyMax
		f.MonthlyAvgUsage = monthlyAvg
		f.CurrentStock = f.InitialStock + received - usage
		f.RecommendedStock = recommendedStock(dailyMax, monthlyAvg)
		out[i] = f
	}
	return out
}

// observedPeriodMonths calcula el rango min–max de fechas parseables de todo
// el log y lo convierte a meses, con mínimo 1 mes. Sin fechas válidas el
// divisor es 1: todo el uso observado cuenta como un solo mes.
func observedPeriodMonths(records []entity.SurgeryRecord) float64 {
	var minDate, maxDate time.Time
	seen := false
	for _, rec := range records {
		t, ok := ParseDate(rec.Date)
		if !ok {
			continue
		}
		if !seen {
			minDate, maxDate = t, t
			seen = true
			continue
		}
		if t.Before(minDate) {
			minDate = t
		}
		if t.After(maxDate) {
			maxDate = t
		}
	}
	if !seen {
		return 1
	}
	months := maxDate.Sub(minDate).Hours() / 24 / daysPerMonth
	if months < 1 {
		return 1
	}
	return months
}

// totalReceived suma las líneas de pedidos de reposición ya recibidos que
// corresponden al fixture. Aquí el fabricante exige igualdad normalizada (no
// subcadena): un pedido se digita contra el fabricante del catálogo, no
// contra texto libre de un export.
func totalReceived(f entity.Fixture, orders []entity.Order) int {
	manu := Normalize(f.Manufacturer)
	brand := Normalize(f.Brand)
	sizeKey := SizeMatchKey(f.Size, f.Manufacturer)

	total := 0
	for _, o := range orders {
		if !o.IsReceivedReplenishment() || Normalize(o.Manufacturer) != manu {
			continue
		}
		for _, it := range o.Items {
			if Normalize(it.Brand) == brand && SizeMatchKey(it.Size, o.Manufacturer) == sizeKey {
				total += it.Quantity
			}
		}
	}
	return total
}

// recommendedStock = max(pico diario × 2, ceil(promedio mensual)).
// El pico diario doblado cubre un día de cirugías excepcional seguido de otro
// igual antes de poder reponer; el promedio mensual techado cubre el consumo
// sostenido.
func recommendedStock(dailyMax int, monthlyAvg float64) int {
	byPeak := dailyMax * 2
	byAvg := int(math.Ceil(monthlyAvg))
	if byPeak > byAvg {
		return byPeak
	}
	return byAvg
}
