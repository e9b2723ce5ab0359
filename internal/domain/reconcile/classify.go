package reconcile

import (
	"regexp"
	"strings"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

// El clasificador es una cadena ordenada de heurísticas de texto atada al
// formato de un único producto upstream. Las cadenas reales mezclan
// delimitadores de forma inconsistente; el orden de las reglas codifica qué
// interpretación es más probable cuando una cadena es ambigua. Cambiar el
// orden cambia el resultado sobre datos reales.
var (
	// primer segmento entre corchetes: "[GBR Only]" → "GBR Only"
	reBracketed = regexp.MustCompile(`\[([^\]]*)\]`)

	// segmento con forma "G…)" inmediatamente después del corchete de cierre
	reGBRBrand = regexp.MustCompile(`G[^)]*\)`)

	// indicadores de medida dentro del texto marca+medida
	reSizePrefix     = regexp.MustCompile(`(?i)[dlm]:`)
	reDiameterSymbol = regexp.MustCompile(`[φΦøØ]`)
	reBareSizeLetter = regexp.MustCompile(`(?i)(?:^|\s)[dlm]`)
	reBareDigit      = regexp.MustCompile(`(?:^|\s)[0-9]`)

	// fallback de marca: corrida inicial de letras/dígitos/espacios/guiones,
	// opcionalmente seguida de un numeral romano ("TS III")
	reFallbackBrand = regexp.MustCompile(`^[0-9A-Za-z가-힣][0-9A-Za-z가-힣 \-]*(?:\s+[IVX]+)?`)
)

// Classify convierte una fila cruda en un registro de cirugía clasificado.
// Nunca falla: una descripción no parseable cae al branch de fallback
// (classification=placement, manufacturer=texto crudo, brand y size vacíos).
// ID y ClinicID los asigna el llamador.
func Classify(row entity.RawRow) entity.SurgeryRecord {
	desc := descriptionOf(row)
	tooth := strings.TrimSpace(row[ColTooth])

	rec := entity.SurgeryRecord{
		Classification: classificationOf(desc),
		Quantity:       quantityOf(tooth, desc),
		Date:           strings.TrimSpace(row[ColDate]),
		ToothNumbers:   tooth,
		Raw:            row,
	}
	rec.Manufacturer, rec.Brand, rec.Size = extractFields(desc, rec.Classification)
	return rec
}

// descriptionOf devuelve el primer alias de descripción no vacío, en el
// orden de prioridad de descriptionColumns.
func descriptionOf(row entity.RawRow) string {
	for _, col := range descriptionColumns {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v
		}
	}
	return ""
}

// quantityOf deriva la cantidad de fixtures de la fila: cada coma en el campo
// de números de diente separa una posición distinta.
func quantityOf(tooth, desc string) int {
	if tooth != "" {
		return 1 + strings.Count(tooth, ",")
	}
	if desc != "" {
		return 1
	}
	return 0
}

// classificationOf aplica las reglas de clasificación en orden de prioridad;
// la primera que casa gana. "[GBR Only]" domina sobre cualquier otro marcador
// presente en la misma descripción.
func classificationOf(desc string) string {
	switch {
	case strings.Contains(desc, TokenGBROnly):
		return entity.ClassificationBoneGraftOnly
	case strings.Contains(desc, TokenIntraopFail):
		return entity.ClassificationIntraopFail
	case strings.Contains(desc, TokenInsurance):
		return entity.ClassificationInsurance
	default:
		return entity.ClassificationPlacement
	}
}

// extractFields deriva fabricante/marca/medida de la descripción según la
// clasificación ya decidida.
func extractFields(desc, classification string) (manufacturer, brand, size string) {
	if classification == entity.ClassificationBoneGraftOnly {
		manufacturer, brand = extractGBRFields(desc)
		return manufacturer, brand, ""
	}
	if strings.Contains(desc, "-") {
		return extractHyphenated(desc)
	}
	// Sin guion: todo el texto (menos marcadores) es el fabricante.
	return stripMarkers(desc), "", ""
}

// extractGBRFields: fabricante = texto dentro del primer segmento entre
// corchetes (normalmente el propio marcador); marca = segmento "G…)" justo
// después del corchete de cierre, si existe.
func extractGBRFields(desc string) (manufacturer, brand string) {
	manufacturer = "GBR Only"
	loc := reBracketed.FindStringSubmatchIndex(desc)
	if loc == nil {
		return manufacturer, ""
	}
	manufacturer = desc[loc[2]:loc[3]]
	after := desc[loc[1]:]
	if m := reGBRBrand.FindString(after); m != "" {
		brand = strings.TrimSuffix(m, ")")
	}
	return manufacturer, brand
}

// extractHyphenated parte la descripción en el primer guion:
// "fabricante-resto". Si el fabricante queda vacío tras quitar marcadores
// (la descripción empezaba por un marcador, ej. "식립실패-오스템-…"), el
// siguiente segmento delimitado por guion pasa a ser el fabricante.
func extractHyphenated(desc string) (manufacturer, brand, size string) {
	first, rest, _ := strings.Cut(desc, "-")
	manufacturer = stripMarkers(first)
	if manufacturer == "" && rest != "" {
		second, remainder, _ := strings.Cut(rest, "-")
		manufacturer = stripMarkers(second)
		rest = remainder
	}

	// Del resto interesa solo el primer segmento separado por "/": lo que
	// sigue suele ser material auxiliar (membranas, injertos).
	brandSizeText, _, _ := strings.Cut(rest, "/")
	brand, size = splitBrandSize(strings.TrimSpace(brandSizeText))

	if manufacturer == "" || manufacturer == TokenInsurance {
		manufacturer = brand
	}
	return manufacturer, brand, size
}

// splitBrandSize localiza la primera aparición de un indicador de medida y
// parte ahí: todo lo anterior es la marca, desde el indicador es la medida.
// Sin indicador, cae al fallback de corrida inicial de marca.
func splitBrandSize(text string) (brand, size string) {
	if text == "" {
		return "", ""
	}
	if idx, ok := sizeIndicatorIndex(text); ok {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx:])
	}
	if m := reFallbackBrand.FindString(text); m != "" {
		return strings.TrimSpace(m), strings.TrimSpace(text[len(m):])
	}
	return "", strings.TrimSpace(text)
}

// sizeIndicatorIndex devuelve el índice (en bytes) de la primera aparición de
// cualquier indicador de medida: prefijo "D:"/"L:"/"M:" en cualquier caja, el
// símbolo de diámetro, una D/L/M suelta precedida de espacio o inicio de
// cadena, o un dígito precedido de espacio o inicio de cadena.
func sizeIndicatorIndex(text string) (int, bool) {
	best := -1
	consider := func(idx int) {
		if idx >= 0 && (best == -1 || idx < best) {
			best = idx
		}
	}
	if loc := reSizePrefix.FindStringIndex(text); loc != nil {
		consider(loc[0])
	}
	if loc := reDiameterSymbol.FindStringIndex(text); loc != nil {
		consider(loc[0])
	}
	if loc := reBareSizeLetter.FindStringIndex(text); loc != nil {
		consider(skipLeadingSpace(text, loc[0]))
	}
	if loc := reBareDigit.FindStringIndex(text); loc != nil {
		consider(skipLeadingSpace(text, loc[0]))
	}
	return best, best >= 0
}

// skipLeadingSpace ajusta el índice de un match "(^|\s)X" al carácter X.
func skipLeadingSpace(text string, idx int) int {
	if idx < len(text) && (text[idx] == ' ' || text[idx] == '\t') {
		return idx + 1
	}
	return idx
}

// stripMarkers quita los marcadores de fallo intraoperatorio y de implante
// por seguro de un fragmento de fabricante.
func stripMarkers(s string) string {
	s = strings.ReplaceAll(s, TokenIntraopFail, "")
	s = strings.ReplaceAll(s, TokenInsurance, "")
	return strings.TrimSpace(s)
}
