package usecase

import "github.com/fixtura/fixtura-api/internal/domain/entity"

// OrderPDFGenerator genera la hoja de pedido en PDF para enviar al fabricante.
// La implementación vive en infrastructure/pdf.
type OrderPDFGenerator interface {
	Generate(clinic *entity.Clinic, order *entity.Order) ([]byte, error)
}
