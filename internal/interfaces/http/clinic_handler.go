package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/application/usecase"
	"github.com/fixtura/fixtura-api/internal/domain"
)

// ClinicHandler maneja las peticiones HTTP para Clinic.
type ClinicHandler struct {
	uc *usecase.ClinicUseCase
}

// NewClinicHandler construye el handler.
func NewClinicHandler(uc *usecase.ClinicUseCase) *ClinicHandler {
	return &ClinicHandler{uc: uc}
}

// Create godoc
// @Summary      Crear clínica
// @Tags         clinics
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClinicRequest  true  "Datos de la clínica"
// @Success      201   {object}  dto.ClinicResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clinics [post]
func (h *ClinicHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClinicRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener clínica por ID
// @Tags         clinics
// @Produce      json
// @Param        id   path  string  true  "ID de la clínica"
// @Success      200  {object}  dto.ClinicResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clinics/{id} [get]
func (h *ClinicHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "clínica no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clínicas
// @Tags         clinics
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ClinicResponse
// @Router       /api/clinics [get]
func (h *ClinicHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
