package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Los exports reales mezclan separadores según la configuración regional del
// equipo; todos deben canonizar al mismo bucket diario.
func TestDateKey_FormatosDelExport(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"2024.03.01", "2024-03-01"},
		{"2024/03/01", "2024-03-01"},
		{"2024-03-01 14:30:00", "2024-03-01"},
		{"2024.03.01.", "2024-03-01"}, // forma display coreana con punto final
		{"  2024-03-01  ", "2024-03-01"},
		{"", "unknown"},
		{"fecha ilegible", "unknown"},
		{"01-03-2024", "unknown"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DateKey(tc.raw), "raw=%q", tc.raw)
	}
}

func TestParseDate_NoParseableNoEsError(t *testing.T) {
	_, ok := ParseDate("총계")
	assert.False(t, ok, "texto no fecha debe devolver ok=false sin panic")
}
