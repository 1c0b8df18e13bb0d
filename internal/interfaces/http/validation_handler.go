package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain"
)

// ValidationHandler reportes consultivos: validación de plazos (persistida o
// en vivo) y duración agregada del proceso.
type ValidationHandler struct {
	uc *usecase.ValidationUseCase
}

// NewValidationHandler construye el handler de validación.
func NewValidationHandler(uc *usecase.ValidationUseCase) *ValidationHandler {
	return &ValidationHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de validación del estado persistido
// @Tags         validation
// @Produce      json
// @Param        id  path  string  true  "ID del proceso"
// @Success      200  {object}  dto.ValidationReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/validation [get]
func (h *ValidationHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proceso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ValidateLive godoc
// @Summary      Validar ediciones sin guardar
// @Description  El cliente envía los campos tal como están en pantalla; la validación refleja esas ediciones.
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del proceso"
// @Param        body  body  dto.ValidateFormRequest  true  "campos por etapa"
// @Success      200   {object}  dto.ValidationReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/validation [post]
func (h *ValidationHandler) ValidateLive(c *fiber.Ctx) error {
	var in dto.ValidateFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ValidateLive(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proceso no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "etapa desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Duration godoc
// @Summary      Duración agregada del proceso
// @Tags         validation
// @Produce      json
// @Param        id  path  string  true  "ID del proceso"
// @Success      200  {object}  dto.DurationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/duration [get]
func (h *ValidationHandler) Duration(c *fiber.Ctx) error {
	out, err := h.uc.Duration(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proceso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
