package reconcile

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// noiseTokens son marcadores que aparecen como prefijo o infijo dentro de
// nombres de fabricante y no aportan poder discriminante para el matching.
// Se eliminan después de quitar separadores, de modo que "보험 임플란트" (con
// espacio) también cae y Normalize queda idempotente.
var noiseTokens = []string{TokenInsurance, TokenIntraopFail}

// Normalize canoniza texto libre de fabricante/marca para comparación.
// Determinista, total y pura: acepta cualquier string (el llamador trata
// nil/ausente como cadena vacía).
//
// Pasos, en orden:
//  1. plegado de ancho (los exports mezclan dígitos y letras full-width)
//  2. trim + minúsculas
//  3. eliminación total de espacios, guiones, guiones bajos, puntos y paréntesis
//  4. símbolo de diámetro (phi griega, mayúscula o minúscula, y ø) → "d":
//     ambos lados usan "d" para denotar diámetro, la equivalencia es
//     obligatoria para que el match funcione
//  5. eliminación de los marcadores de ruido del dominio
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(width.Fold.String(text)))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case r == '-' || r == '_' || r == '.' || r == '(' || r == ')':
		case r == 'φ' || r == 'ø': // Φ y Ø ya pasaron por ToLower
			b.WriteRune('d')
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	for _, tok := range noiseTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	return s
}
