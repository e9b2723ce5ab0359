// Package reconcile implementa el motor de ingesta y conciliación de
// inventario de implantes: normalización de texto, extracción de medidas,
// clasificación de filas del log de cirugías, conciliación de uso contra
// inventario y pedidos, y resolución FIFO de cambios por fallo.
//
// Todo el paquete es puro: sin I/O, sin estado oculto, sin goroutines. Las
// operaciones reciben las colecciones completas como parámetros y devuelven
// resultados nuevos; el llamador decide cuándo recalcular (siempre recálculo
// completo, ver Reconcile).
package reconcile

// Literales del formato de exportación del software de gestión clínica
// (coreano). Deben permanecer byte a byte idénticos: los archivos reales ya
// exportados dependen de estas cadenas exactas.
const (
	// TokenSubtotal marca filas de total/subtotal. Una fila que contenga este
	// literal en cualquier campo queda fuera de todos los agregados.
	TokenSubtotal = "총계"

	// TokenInsurance marca implantes facturados por el seguro.
	TokenInsurance = "보험임플란트"

	// TokenIntraopFail marca un fixture fallado durante la cirugía.
	TokenIntraopFail = "식립실패"

	// TokenGBROnly marca cirugías de solo injerto óseo, sin fixture.
	TokenGBROnly = "[GBR Only]"
)

// Etiquetas de columna del export. Texto libre y dependiente de locale: no
// hay esquema fijo entre archivos, por eso RawRow es un mapa y no un struct.
const (
	ColManufacturer = "제조사"     // fabricante
	ColBrand        = "브랜드"     // marca
	ColSize         = "규격(SIZE)" // medida (forma display)
	ColQuantity     = "갯수"       // cantidad
	ColDate         = "날짜"       // fecha
	ColTooth        = "치아번호"     // números de diente
	ColCategory     = "구분"       // clasificación manual del export
)

// descriptionColumns son los alias de la columna de descripción de cirugía,
// en orden de prioridad: se usa el primero no vacío.
var descriptionColumns = []string{"수술기록", "수술내용", "픽스쳐", "규격", "품명"}
