package reconcile

import (
	"strings"
	"time"
)

// Formatos de fecha observados en los exports. El software upstream no fija
// uno solo; depende de la configuración regional del equipo que exporta.
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006.01.02.",
}

// ParseDate intenta parsear el texto crudo de la columna de fecha. Una fecha
// no parseable no es un error: la fila queda fuera del cálculo del rango de
// fechas pero sigue contando para el uso (bucket "unknown").
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateKey devuelve la clave canónica de bucket diario para una fila:
// "YYYY-MM-DD" si la fecha parsea, "unknown" si falta o no parsea.
func DateKey(raw string) string {
	if t, ok := ParseDate(raw); ok {
		return t.Format("2006-01-02")
	}
	return "unknown"
}
