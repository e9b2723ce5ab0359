package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixtura/fixtura-api/internal/application/dto"
	"github.com/fixtura/fixtura-api/internal/application/inventory"
	"github.com/fixtura/fixtura-api/internal/application/usecase"
	"github.com/fixtura/fixtura-api/internal/domain"
)

// SurgeryHandler ingesta y consulta del log de cirugías (protegido).
type SurgeryHandler struct {
	ingestUC     *inventory.IngestUseCase
	surgeryUC    *usecase.SurgeryUseCase
	maxFileBytes int64
}

// NewSurgeryHandler construye el handler.
func NewSurgeryHandler(ingestUC *inventory.IngestUseCase, surgeryUC *usecase.SurgeryUseCase, maxFileBytes int64) *SurgeryHandler {
	return &SurgeryHandler{ingestUC: ingestUC, surgeryUC: surgeryUC, maxFileBytes: maxFileBytes}
}

// Upload godoc
// @Summary      Subir export de cirugías (XLSX)
// @Tags         surgeries
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo XLSX exportado del software clínico"
// @Success      201   {object}  dto.IngestSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/surgeries/upload [post]
func (h *SurgeryHandler) Upload(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	if clinicID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clinic_id requerido"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo permitido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	out, err := h.ingestUC.IngestFile(c.Context(), clinicID, f)
	if err != nil {
		if err == domain.ErrEmptySheet {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SHEET", Message: "la hoja no contiene filas de datos"})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INGEST_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar log de cirugías
// @Tags         surgeries
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.SurgeryRecordResponse
// @Router       /api/surgeries [get]
func (h *SurgeryHandler) List(c *fiber.Ctx) error {
	clinicID := GetClinicID(c)
	if clinicID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clinic_id requerido"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.surgeryUC.List(c.Context(), clinicID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
