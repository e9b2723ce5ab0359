package reconcile

import (
	"regexp"
	"strings"
)

// Los exports codifican la medida de un fixture en varias convenciones que
// compiten entre sí: "diámetro×longitud" ("4.0x10"), longitud con prefijo L
// ("L11.5") o un código numérico empaquetado cuyos dos últimos dígitos son la
// longitud en décimas de milímetro ("342508" → 08 → 8mm). El orden de los
// patrones refleja cuál convención es menos ambigua cuando varias podrían
// casar con la misma cadena; reordenarlos cambia el resultado sobre datos
// reales.
var (
	// (1) dos segmentos numéricos separados por x/×/*: diámetro×longitud.
	reDiaByLen = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?\s*[x×*]\s*([0-9]+(?:\.[0-9]+)?)`)

	// (2) un único segmento numérico pegado al separador ("x10", "10x").
	reLenAfterSep  = regexp.MustCompile(`[x×*]\s*([0-9]+(?:\.[0-9]+)?)`)
	reLenBeforeSep = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*[x×*]`)

	// (3) longitud con prefijo L ("L11.5", "l:10").
	reLenPrefixed = regexp.MustCompile(`(?i)l\s*:?\s*([0-9]+(?:\.[0-9]+)?)`)

	// (4) corrida de 4 o 6 dígitos seguida inmediatamente de letras.
	rePackedThenLetters = regexp.MustCompile(`(?:^|[^0-9])([0-9]{4}|[0-9]{6})[a-zA-Z가-힣]`)

	// (5) corrida de 4 o 6 dígitos a secas.
	rePackedBare = regexp.MustCompile(`(?:^|[^0-9])([0-9]{4}|[0-9]{6})(?:[^0-9]|$)`)
)

// ExtractLength extrae la longitud de un campo de medida en texto libre.
// Devuelve cadena vacía si ningún patrón casa. El primer patrón que casa gana.
func ExtractLength(sizeText string) string {
	s := strings.TrimSpace(sizeText)
	if s == "" {
		return ""
	}
	if m := reDiaByLen.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := reLenAfterSep.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := reLenBeforeSep.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := reLenPrefixed.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := rePackedThenLetters.FindStringSubmatch(s); m != nil {
		return m[1][len(m[1])-2:] // últimos dos dígitos: longitud en décimas
	}
	if m := rePackedBare.FindStringSubmatch(s); m != nil {
		return m[1][len(m[1])-2:]
	}
	return ""
}

// NormalizeLength canoniza una longitud extraída: quita un cero inicial y un
// ".0" final, de modo que "08.0" y "8" coincidan.
func NormalizeLength(rawLength string) string {
	s := strings.TrimSpace(rawLength)
	s = strings.TrimSuffix(s, ".0")
	for strings.HasPrefix(s, "0") && len(s) > 1 && s[1] != '.' {
		s = s[1:]
	}
	return s
}

// LengthGrammar extrae la longitud de un texto de medida según la gramática
// propia de un fabricante.
type LengthGrammar func(sizeText string) string

// sizeGrammars registra gramáticas de medida por fabricante (clave: nombre
// normalizado). El registro arranca vacío: ningún fabricante del corpus de
// exports conocido necesita todavía una regla propia, pero el punto de
// extensión es explícito para que una regla nueva no termine como un branch
// escondido dentro del extractor. Registrar en init(), antes de conciliar.
var sizeGrammars = map[string]LengthGrammar{}

// RegisterSizeGrammar asocia una gramática de longitud a un fabricante.
// No es seguro para uso concurrente con SizeMatchKey; pensado para init().
func RegisterSizeGrammar(manufacturer string, g LengthGrammar) {
	sizeGrammars[Normalize(manufacturer)] = g
}

// UnregisterSizeGrammar elimina la gramática de un fabricante (tests).
func UnregisterSizeGrammar(manufacturer string) {
	delete(sizeGrammars, Normalize(manufacturer))
}

// SizeMatchKey compone extracción + normalización en el token canónico de
// medida usado dentro de la clave de match. El fabricante decide la gramática
// de extracción; con registro vacío todos usan la gramática por defecto.
func SizeMatchKey(size, manufacturer string) string {
	if g, ok := sizeGrammars[Normalize(manufacturer)]; ok {
		return NormalizeLength(g(size))
	}
	return NormalizeLength(ExtractLength(size))
}
