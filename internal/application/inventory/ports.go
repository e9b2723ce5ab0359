package inventory

import (
	"context"
	"io"

	"github.com/fixtura/fixtura-api/internal/domain/entity"
	"github.com/fixtura/fixtura-api/internal/domain/repository"
)

// SheetReader lee la primera hoja de un archivo tabular (XLSX) y devuelve sus
// filas de datos como RawRow, usando la fila de cabecera como etiquetas de
// columna. La implementación vive en infrastructure/excel.
type SheetReader interface {
	ReadRows(r io.Reader) ([]entity.RawRow, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El recálculo lee las tres colecciones y
// escribe los campos calculados sobre la misma foto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		fixtureRepo repository.FixtureRepository,
		surgeryRepo repository.SurgeryRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
