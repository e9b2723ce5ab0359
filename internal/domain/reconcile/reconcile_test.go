package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/reconcile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile es el "canario en la mina" del motor: las semánticas numéricas
// (redondeos, techo, divisor global) son contrato de salida y los tests de
// regresión de los consumidores dependen de que coincidan exactamente.
// ──────────────────────────────────────────────────────────────────────────────

func fixture(manufacturer, brand, size string, initial int) entity.Fixture {
	return entity.Fixture{
		ID:           "fx-1",
		Manufacturer: manufacturer,
		Brand:        brand,
		Size:         size,
		InitialStock: initial,
	}
}

func usageRecord(manufacturer, brand, size, date string, qty int) entity.SurgeryRecord {
	return entity.SurgeryRecord{
		Classification: entity.ClassificationPlacement,
		Manufacturer:   manufacturer,
		Brand:          brand,
		Size:           size,
		Date:           date,
		Quantity:       qty,
	}
}

func TestReconcile_UsoYStockActual(t *testing.T) {
	fixtures := []entity.Fixture{fixture("오스템", "TS III", "D4.0 L:8", 10)}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS III", "D:4.0 L:8", "2024-01-10", 3),
		usageRecord("오스템", "TS III", "342508", "2024-01-11", 5),
	}

	out := reconcile.Reconcile(fixtures, records, nil)
	require.Len(t, out, 1)

	assert.Equal(t, 8, out[0].UsageCount, "el uso es la suma de cantidades de las filas que casan")
	assert.Equal(t, 2, out[0].CurrentStock, "currentStock = inicial + recibido − uso = 10 + 0 − 8")
}

func TestReconcile_StockRecomendado(t *testing.T) {
	// Pico diario dominante: 3 fixtures el mismo día, rango de un solo día →
	// divisor mínimo de 1 mes → promedio 3.0. max(3×2, ceil(3.0)) = 6.
	fixtures := []entity.Fixture{fixture("오스템", "TS", "D4 L10", 0)}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS", "D4 L10", "2024-02-01", 3),
	}
	out := reconcile.Reconcile(fixtures, records, nil)
	assert.Equal(t, 3, out[0].DailyMaxUsage)
	assert.InDelta(t, 3.0, out[0].MonthlyAvgUsage, 0.001)
	assert.Equal(t, 6, out[0].RecommendedStock, "max(picoDiario×2, ceil(promedioMensual))")

	// Promedio dominante: cinco días con 1 unidad → pico 1, promedio 5.0.
	// max(1×2, ceil(5.0)) = 5.
	records = []entity.SurgeryRecord{
		usageRecord("오스템", "TS", "D4 L10", "2024-02-01", 1),
		usageRecord("오스템", "TS", "D4 L10", "2024-02-02", 1),
		usageRecord("오스템", "TS", "D4 L10", "2024-02-03", 1),
		usageRecord("오스템", "TS", "D4 L10", "2024-02-04", 1),
		usageRecord("오스템", "TS", "D4 L10", "2024-02-05", 1),
	}
	out = reconcile.Reconcile(fixtures, records, nil)
	assert.Equal(t, 1, out[0].DailyMaxUsage)
	assert.Equal(t, 5, out[0].RecommendedStock)
}

func TestReconcile_DivisorGlobalCompartido(t *testing.T) {
	// El rango de fechas es del log COMPLETO: las filas de otro fixture
	// estiran el divisor de este. 2024-01-01 → 2024-07-01 son 182 días ≈ 5.98
	// meses; 6 usos → 6/5.98 ≈ 1.0, no 6.0.
	fixtures := []entity.Fixture{fixture("오스템", "TS", "D4 L10", 0)}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS", "D4 L10", "2024-03-01", 6),
		// otro fabricante, solo aporta al rango global de fechas
		usageRecord("덴티움", "SuperLine", "D4.5 L10", "2024-01-01", 1),
		usageRecord("덴티움", "SuperLine", "D4.5 L10", "2024-07-01", 1),
	}

	out := reconcile.Reconcile(fixtures, records, nil)
	assert.Equal(t, 6, out[0].UsageCount)
	assert.InDelta(t, 1.0, out[0].MonthlyAvgUsage, 0.001,
		"el divisor en meses es compartido por todos los fixtures")
}

func TestReconcile_FilasDeSubtotalExcluidas(t *testing.T) {
	fixtures := []entity.Fixture{fixture("오스템", "TS", "D4 L10", 10)}
	subtotal := usageRecord("오스템", "TS", "D4 L10", "2020-01-01", 99)
	subtotal.Raw = entity.RawRow{"구분": "총계"}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS", "D4 L10", "2024-02-01", 2),
		subtotal,
	}

	out := reconcile.Reconcile(fixtures, records, nil)
	assert.Equal(t, 2, out[0].UsageCount, "la fila de subtotal no aporta uso aunque traiga cantidad")
	assert.Equal(t, 2, out[0].DailyMaxUsage)
	// La fecha 2020 de la fila de subtotal tampoco estira el rango: con un
	// solo día real el divisor es el mínimo de 1 mes.
	assert.InDelta(t, 2.0, out[0].MonthlyAvgUsage, 0.001,
		"la fila de subtotal no participa del cálculo del rango de fechas")
}

func TestReconcile_FabricanteTolerantePorSubcadena(t *testing.T) {
	records := []entity.SurgeryRecord{
		usageRecord("OSSTEM-TS", "TS III", "D4 L10", "2024-02-01", 1),
	}

	// item abreviado ↔ fila completa
	out := reconcile.Reconcile([]entity.Fixture{fixture("OSSTEM", "TS III", "D4 L10", 5)}, records, nil)
	assert.Equal(t, 1, out[0].UsageCount, "el fabricante del item puede ser subcadena del de la fila")

	// fila abreviada ↔ item completo
	records[0].Manufacturer = "OSSTEM"
	out = reconcile.Reconcile([]entity.Fixture{fixture("OSSTEM KOREA", "TS III", "D4 L10", 5)}, records, nil)
	assert.Equal(t, 1, out[0].UsageCount, "la subcadena tolera las dos direcciones")
}

func TestReconcile_MarcaYMedidaExigenIgualdadExacta(t *testing.T) {
	fixtures := []entity.Fixture{fixture("오스템", "TS III", "D4 L10", 5)}

	// Marca a un carácter de distancia: NO debe casar.
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS IV", "D4 L10", "2024-02-01", 1),
	}
	out := reconcile.Reconcile(fixtures, records, nil)
	assert.Zero(t, out[0].UsageCount, "una marca casi igual es un desajuste real, no ruido de formato")

	// Medida distinta: tampoco.
	records[0].Brand = "TS III"
	records[0].Size = "D4 L11.5"
	out = reconcile.Reconcile(fixtures, records, nil)
	assert.Zero(t, out[0].UsageCount)
}

// Limitación conocida y deliberada: la tolerancia por subcadena produce
// falsos positivos cuando el nombre normalizado de un fabricante es
// subcadena del de otro no relacionado. Los datos ya conciliados dependen de
// este comportamiento; el test lo fija para que nadie lo "arregle" en
// silencio con otra semántica de match.
func TestReconcile_LimitacionSubcadenaFalsoPositivo(t *testing.T) {
	fixtures := []entity.Fixture{fixture("MEGA", "TS", "D4 L10", 0)}
	records := []entity.SurgeryRecord{
		usageRecord("MEGAGEN", "TS", "D4 L10", "2024-02-01", 1),
	}
	out := reconcile.Reconcile(fixtures, records, nil)
	assert.Equal(t, 1, out[0].UsageCount,
		"el falso positivo por subcadena es comportamiento vigente, no un bug a corregir")
}

func TestReconcile_FechaDesconocidaSigueContando(t *testing.T) {
	fixtures := []entity.Fixture{fixture("오스템", "TS", "D4 L10", 10)}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS", "D4 L10", "fecha ilegible", 2),
		usageRecord("오스템", "TS", "D4 L10", "", 1),
	}

	out := reconcile.Reconcile(fixtures, records, nil)
	assert.Equal(t, 3, out[0].UsageCount, "las fechas no parseables degradan, no anulan la fila")
	assert.Equal(t, 3, out[0].DailyMaxUsage, "ambas filas caen al bucket \"unknown\"")
	assert.InDelta(t, 3.0, out[0].MonthlyAvgUsage, 0.001, "sin fechas válidas el divisor es 1 mes")
}

func TestReconcile_PedidosRecibidosSumanStock(t *testing.T) {
	fixtures := []entity.Fixture{fixture("오스템", "TS III", "D4 L10", 10)}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS III", "D4 L10", "2024-02-01", 4),
	}
	orders := []entity.Order{
		{
			Type: entity.OrderTypeReplenishment, Status: entity.OrderStatusReceived,
			Manufacturer: "오스템",
			Items:        []entity.OrderItem{{Brand: "TS III", Size: "D4.0x10", Quantity: 5}},
		},
		{ // todavía no recibido: no aporta
			Type: entity.OrderTypeReplenishment, Status: entity.OrderStatusOrdered,
			Manufacturer: "오스템",
			Items:        []entity.OrderItem{{Brand: "TS III", Size: "D4.0x10", Quantity: 7}},
		},
		{ // cambio por fallo: nunca aporta a stock
			Type: entity.OrderTypeFailExchange, Status: entity.OrderStatusReceived,
			Manufacturer: "오스템",
			Items:        []entity.OrderItem{{Brand: "TS III", Size: "D4.0x10", Quantity: 9}},
		},
	}

	out := reconcile.Reconcile(fixtures, records, orders)
	assert.Equal(t, 11, out[0].CurrentStock, "currentStock = 10 + 5 − 4")
}

func TestReconcile_FabricanteDePedidoExigeIgualdad(t *testing.T) {
	// Para pedidos el fabricante NO tolera subcadena: se digita contra el
	// catálogo, no contra texto libre.
	fixtures := []entity.Fixture{fixture("OSSTEM", "TS III", "D4 L10", 10)}
	orders := []entity.Order{{
		Type: entity.OrderTypeReplenishment, Status: entity.OrderStatusReceived,
		Manufacturer: "OSSTEM-TS",
		Items:        []entity.OrderItem{{Brand: "TS III", Size: "D4 L10", Quantity: 5}},
	}}

	out := reconcile.Reconcile(fixtures, nil, orders)
	assert.Equal(t, 10, out[0].CurrentStock, "un fabricante de pedido solo-subcadena no debe casar")
}

func TestReconcile_EsPuroYNoMutaEntradas(t *testing.T) {
	fixtures := []entity.Fixture{fixture("오스템", "TS", "D4 L10", 10)}
	records := []entity.SurgeryRecord{
		usageRecord("오스템", "TS", "D4 L10", "2024-02-01", 4),
	}

	first := reconcile.Reconcile(fixtures, records, nil)
	second := reconcile.Reconcile(fixtures, records, nil)

	assert.Equal(t, first, second, "mismo input, mismo output: seguro de re-ejecutar")
	assert.Zero(t, fixtures[0].UsageCount, "las entradas no se mutan")
	assert.Zero(t, fixtures[0].CurrentStock, "los campos calculados de la entrada quedan intactos")
}
