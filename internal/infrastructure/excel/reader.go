// Package excel adapta archivos XLSX al formato de filas crudas que consume
// la ingesta. Solo lectura de la primera hoja; el export clínico siempre trae
// una sola.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/domain"
	"github.com/fixtura/fixtura-api/internal/domain/entity"
)

var _ inventory.SheetReader = (*SheetReader)(nil)

// SheetReader lee la primera hoja de un XLSX y devuelve sus filas de datos
// como RawRow, usando la fila de cabecera como etiquetas de columna.
type SheetReader struct {
	maxRows int
}

// NewSheetReader construye el lector. maxRows limita las filas de datos por
// archivo (0 = sin límite).
func NewSheetReader(maxRows int) *SheetReader {
	return &SheetReader{maxRows: maxRows}
}

// ReadRows implementa inventory.SheetReader. La primera fila no vacía es la
// cabecera; celdas de cabecera vacías se ignoran (columnas sin etiqueta no
// pueden mapearse). Filas completamente vacías se saltan.
func (s *SheetReader) ReadRows(r io.Reader) ([]entity.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}

	headerIdx := -1
	var header []string
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			header = row
			break
		}
	}
	if headerIdx < 0 {
		return nil, domain.ErrEmptySheet
	}

	var out []entity.RawRow
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		if s.maxRows > 0 && len(out) == s.maxRows {
			return nil, fmt.Errorf("el archivo supera el límite de %d filas", s.maxRows)
		}
		raw := entity.RawRow{}
		for j, label := range header {
			label = strings.TrimSpace(label)
			if label == "" || j >= len(row) {
				continue
			}
			raw[label] = row[j]
		}
		out = append(out, raw)
	}
	return out, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
