package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/reconcile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Classify: cadena ordenada de heurísticas sobre la descripción de cirugía.
// Los casos cubren las formas reales del export: "fabricante-marca medida",
// marcadores de GBR/fallo/seguro, y los fallbacks.
// ──────────────────────────────────────────────────────────────────────────────

func row(desc string) entity.RawRow {
	return entity.RawRow{"수술기록": desc}
}

func TestClassify_FormaConGuion(t *testing.T) {
	rec := reconcile.Classify(row("오스템-TS III D:4.0 L:10"))

	assert.Equal(t, entity.ClassificationPlacement, rec.Classification)
	assert.Equal(t, "오스템", rec.Manufacturer)
	assert.Equal(t, "TS III", rec.Brand, "la marca termina donde empieza el primer indicador de medida")
	assert.Equal(t, "D:4.0 L:10", rec.Size)
	assert.Equal(t, 1, rec.Quantity, "sin números de diente pero con descripción, la cantidad es 1")
}

func TestClassify_IndicadorDeMedidaMasTemprano(t *testing.T) {
	cases := []struct {
		name      string
		desc      string
		wantBrand string
		wantSize  string
	}{
		{"prefijo D:", "덴티움-SuperLine D:4.5 L:10", "SuperLine", "D:4.5 L:10"},
		{"símbolo de diámetro", "오스템-TS Φ4.0x10", "TS", "Φ4.0x10"},
		{"letra suelta", "오스템-TS III D4 L10", "TS III", "D4 L10"},
		{"dígito suelto", "메가젠-AnyRidge 4.0x10", "AnyRidge", "4.0x10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := reconcile.Classify(row(tc.desc))
			assert.Equal(t, tc.wantBrand, rec.Brand)
			assert.Equal(t, tc.wantSize, rec.Size)
		})
	}
}

func TestClassify_SoloPrimerSegmentoBarra(t *testing.T) {
	// Lo que sigue a "/" es material auxiliar y no forma parte de marca/medida.
	rec := reconcile.Classify(row("오스템-TS III D:4.0 L:10 / Bio-Oss 0.5g"))
	assert.Equal(t, "오스템", rec.Manufacturer)
	assert.Equal(t, "TS III", rec.Brand)
	assert.Equal(t, "D:4.0 L:10", rec.Size)
}

func TestClassify_GBROnly(t *testing.T) {
	rec := reconcile.Classify(row("[GBR Only] (GEM21)"))

	assert.Equal(t, entity.ClassificationBoneGraftOnly, rec.Classification)
	assert.Equal(t, "GBR Only", rec.Manufacturer, "el fabricante es el texto dentro del primer corchete")
	assert.Equal(t, "GEM21", rec.Brand)
	assert.Empty(t, rec.Size)
}

func TestClassify_GBRDominaSobreOtrosMarcadores(t *testing.T) {
	// "[GBR Only]" gana aunque la descripción traiga otros marcadores.
	rec := reconcile.Classify(row("[GBR Only] 식립실패"))
	assert.Equal(t, entity.ClassificationBoneGraftOnly, rec.Classification)

	rec = reconcile.Classify(row("[GBR Only] 보험임플란트"))
	assert.Equal(t, entity.ClassificationBoneGraftOnly, rec.Classification)
}

func TestClassify_GBRSinCorchetes(t *testing.T) {
	// El marcador garantiza corchetes, pero el fallback existe por si el
	// export viniera recortado: literal "GBR Only" y marca vacía.
	rec := reconcile.Classify(entity.RawRow{"수술기록": "[GBR Only"})
	assert.Equal(t, entity.ClassificationPlacement, rec.Classification,
		"sin corchete de cierre no hay marcador completo")
}

func TestClassify_FalloIntraoperatorio(t *testing.T) {
	rec := reconcile.Classify(row("식립실패-오스템-TS III D:4.0 L:10"))

	assert.Equal(t, entity.ClassificationIntraopFail, rec.Classification)
	assert.Equal(t, "오스템", rec.Manufacturer,
		"si el primer segmento queda vacío al quitar el marcador, el segundo es el fabricante")
	assert.Equal(t, "TS III", rec.Brand)
	assert.Equal(t, "D:4.0 L:10", rec.Size)
}

func TestClassify_ImplantePorSeguro(t *testing.T) {
	rec := reconcile.Classify(row("보험임플란트 오스템-TS III D:4.0 L:10"))

	assert.Equal(t, entity.ClassificationInsurance, rec.Classification)
	assert.Equal(t, "오스템", rec.Manufacturer, "el marcador se elimina del fabricante")
	assert.Equal(t, "TS III", rec.Brand)
}

func TestClassify_FabricanteVacioTomaLaMarca(t *testing.T) {
	// Los dos primeros segmentos son marcadores: el fabricante queda vacío y
	// hereda la marca.
	rec := reconcile.Classify(row("식립실패-식립실패-TS III D:4.0"))
	assert.Equal(t, "TS III", rec.Brand)
	assert.Equal(t, rec.Brand, rec.Manufacturer)
}

func TestClassify_SinGuion(t *testing.T) {
	rec := reconcile.Classify(row("오스템 임플란트"))

	assert.Equal(t, entity.ClassificationPlacement, rec.Classification)
	assert.Equal(t, "오스템 임플란트", rec.Manufacturer,
		"sin guion el texto completo es el fabricante")
	assert.Empty(t, rec.Brand)
	assert.Empty(t, rec.Size)
}

func TestClassify_CantidadPorNumerosDeDiente(t *testing.T) {
	r := row("오스템-TS III D:4.0 L:10")
	r["치아번호"] = "11,21,31"
	rec := reconcile.Classify(r)
	assert.Equal(t, 3, rec.Quantity, "cada coma separa una posición de diente distinta")

	r["치아번호"] = "46"
	assert.Equal(t, 1, reconcile.Classify(r).Quantity)
}

func TestClassify_FilaVacia(t *testing.T) {
	rec := reconcile.Classify(entity.RawRow{})

	assert.Equal(t, entity.ClassificationPlacement, rec.Classification)
	assert.Equal(t, 0, rec.Quantity, "sin diente y sin descripción la cantidad es 0")
	assert.Empty(t, rec.Manufacturer)
	assert.Empty(t, rec.Brand)
	assert.Empty(t, rec.Size)
}

func TestClassify_PrioridadDeAliasDeDescripcion(t *testing.T) {
	rec := reconcile.Classify(entity.RawRow{
		"품명":   "메가젠-AnyRidge 4.0x10",
		"수술내용": "오스템-TS III D:4.0 L:10",
	})
	assert.Equal(t, "오스템", rec.Manufacturer,
		"수술내용 tiene prioridad sobre 품명 como columna de descripción")
}

func TestClassify_ConservaFilaCrudaYFecha(t *testing.T) {
	r := row("오스템-TS III D:4.0 L:10")
	r["날짜"] = "2024-03-15"
	rec := reconcile.Classify(r)
	assert.Equal(t, "2024-03-15", rec.Date)
	assert.Equal(t, r, rec.Raw, "la fila original viaja completa en el registro")
}
