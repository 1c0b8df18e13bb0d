package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/pkg/logger"
)

// RequirementHandler consulta de requerimientos al servicio externo SEACE.
// Un fallo del servicio externo es no fatal: se registra y se responde 502
// para que el cliente siga el registro manual.
type RequirementHandler struct {
	uc  *usecase.RequirementUseCase
	log *logger.Logger
}

// NewRequirementHandler construye el handler de requerimientos.
func NewRequirementHandler(uc *usecase.RequirementUseCase, log *logger.Logger) *RequirementHandler {
	return &RequirementHandler{uc: uc, log: log}
}

// Lookup godoc
// @Summary      Consultar requerimiento SEACE
// @Tags         requirements
// @Produce      json
// @Param        year    path  int     true  "año del requerimiento"
// @Param        number  path  string  true  "número del requerimiento"
// @Success      200  {object}  dto.RequirementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/seace/requirements/{year}/{number} [get]
func (h *RequirementHandler) Lookup(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	number := c.Params("number")
	if err != nil || number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year y number son requeridos"})
	}
	out, err := h.uc.Lookup(c.UserContext(), year, number)
	if err != nil {
		h.log.Warn().Err(err).Int("year", year).Str("number", number).
			Msg("consulta SEACE falló; continuar con registro manual")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "el servicio SEACE no respondió"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "requerimiento no encontrado"})
	}
	return c.JSON(out)
}
