package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// StageHandler instancias de etapa: creación con candado de progresión,
// guardado de campos y consulta con validaciones.
type StageHandler struct {
	uc *usecase.StageUseCase
}

// NewStageHandler construye el handler de etapas.
func NewStageHandler(uc *usecase.StageUseCase) *StageHandler {
	return &StageHandler{uc: uc}
}

// Create godoc
// @Summary      Crear instancia de etapa
// @Description  La etapa anterior debe existir y estar completa; si no, 409 con los campos faltantes.
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del proceso"
// @Param        body  body  dto.CreateStageRequest  true  "etapa (S1..S4) y campos iniciales"
// @Success      201   {object}  dto.StageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/stages [post]
func (h *StageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateStage(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		var gateErr *usecase.GateError
		if errors.As(err, &gateErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "STAGE_GATE",
				Message: gateErr.Error(),
				Details: gateErr.Missing,
			})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la etapa ya fue creada para este proceso"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proceso no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar etapas del proceso
// @Tags         stages
// @Produce      json
// @Param        id  path  string  true  "ID del proceso"
// @Success      200  {array}  dto.StageResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/stages [get]
func (h *StageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListStages(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener etapa con validaciones
// @Tags         stages
// @Produce      json
// @Param        id     path  string  true  "ID del proceso"
// @Param        stage  path  string  true  "etapa (S1..S4)"
// @Success      200  {object}  dto.StageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/stages/{stage} [get]
func (h *StageHandler) Get(c *fiber.Ctx) error {
	stage := seace.Stage(c.Params("stage"))
	if !seace.IsValidStage(stage) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "etapa desconocida"})
	}
	out, err := h.uc.GetStage(c.Params("id"), stage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etapa no creada"})
	}
	return c.JSON(out)
}

// UpdateFields godoc
// @Summary      Guardar campos de una etapa
// @Description  Un plazo excedido nunca impide guardar: la respuesta anota el estado de cada campo.
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        id     path  string                        true  "ID del proceso"
// @Param        stage  path  string                        true  "etapa (S1..S4)"
// @Param        body   body  dto.UpdateStageFieldsRequest  true  "campos y estado opcional"
// @Success      200   {object}  dto.StageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/stages/{stage} [put]
func (h *StageHandler) UpdateFields(c *fiber.Ctx) error {
	stage := seace.Stage(c.Params("stage"))
	if !seace.IsValidStage(stage) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "etapa desconocida"})
	}
	var in dto.UpdateStageFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateFields(c.Params("id"), stage, in)
	if err != nil {
		if errors.Is(err, domain.ErrStageNotCreated) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STAGE_NOT_CREATED", Message: "la etapa no fue creada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
