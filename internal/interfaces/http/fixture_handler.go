package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/application/usecase"
	"github.com/fixtura/fixtura-api/internal/domain"
)

// FixtureHandler maneja las peticiones HTTP para el inventario de fixtures (protegido).
type FixtureHandler struct {
	uc *usecase.FixtureUseCase
}

// NewFixtureHandler construye el handler.
func NewFixtureHandler(uc *usecase.FixtureUseCase) *FixtureHandler {
	return &FixtureHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fixture
// @Tags         fixtures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFixtureRequest  true  "Datos del fixture"
// @Success      201   {object}  dto.FixtureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fixtures [post]
func (h *FixtureHandler) Create(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	if clinicID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clinic_id requerido"})
	}
	var in dto.CreateFixtureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), clinicID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "manufacturer y brand son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la referencia ya existe en esta clínica"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inventario
// @Tags         fixtures
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FixtureResponse
// @Router       /api/fixtures [get]
func (h *FixtureHandler) List(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	if clinicID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clinic_id requerido"})
	}
	out, err := h.uc.List(c.Context(), clinicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener fixture por ID
// @Tags         fixtures
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del fixture"
// @Success      200  {object}  dto.FixtureResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fixtures/{id} [get]
func (h *FixtureHandler) GetByID(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), clinicID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fixture no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar fixture
// @Tags         fixtures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del fixture"
// @Param        body  body  dto.UpdateFixtureRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FixtureResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fixtures/{id} [put]
func (h *FixtureHandler) Update(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateFixtureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), clinicID, id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fixture no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fixture
// @Tags         fixtures
// @Security     Bearer
// @Param        id   path  string  true  "ID del fixture"
// @Success      204
// @Router       /api/fixtures/{id} [delete]
func (h *FixtureHandler) Delete(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), clinicID, id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fixture no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar inventario desde un export
// @Tags         fixtures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportFixturesRequest  true  "Filas del export de inventario"
// @Success      201   {object}  dto.ImportFixturesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fixtures/import [post]
func (h *FixtureHandler) Import(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	if clinicID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clinic_id requerido"})
	}
	var in dto.ImportFixturesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Import(c.Context(), clinicID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rows no puede estar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
