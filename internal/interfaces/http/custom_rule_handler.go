package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain"
)

// CustomRuleHandler reglas de excepción por proceso. El alta llega como
// multipart/form-data: los campos del formulario más la imagen de evidencia
// (obligatoria) y el sustento PDF (opcional).
type CustomRuleHandler struct {
	uc *usecase.CustomRuleUseCase
}

// NewCustomRuleHandler construye el handler de excepciones.
func NewCustomRuleHandler(uc *usecase.CustomRuleUseCase) *CustomRuleHandler {
	return &CustomRuleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar regla de excepción con evidencia
// @Tags         custom-rules
// @Accept       multipart/form-data
// @Produce      json
// @Param        id              path      string  true   "ID del proceso"
// @Param        stage           formData  string  true   "etapa del campo (S1..S4)"
// @Param        field_name      formData  string  true   "campo de fecha destino"
// @Param        from_stage      formData  string  true   "etapa del hito origen"
// @Param        from_field      formData  string  true   "campo de fecha origen"
// @Param        custom_date     formData  string  true   "fecha acreditada (2006-01-02)"
// @Param        description     formData  string  false  "motivo de la excepción"
// @Param        evidence_image  formData  file    true   "imagen de evidencia"
// @Param        evidence_pdf    formData  file    false  "sustento PDF"
// @Success      201  {object}  dto.CustomRuleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/custom-rules [post]
func (h *CustomRuleHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateCustomRuleRequest{
		Stage:       c.FormValue("stage"),
		FieldName:   c.FormValue("field_name"),
		FromStage:   c.FormValue("from_stage"),
		FromField:   c.FormValue("from_field"),
		CustomDate:  c.FormValue("custom_date"),
		Description: c.FormValue("description"),
	}

	image, err := openUpload(c, "evidence_image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la imagen de evidencia es obligatoria"})
	}
	defer image.close()

	pdf, err := openUpload(c, "evidence_pdf")
	if err == nil {
		defer pdf.close()
	}

	out, err := h.uc.Create(c.UserContext(), c.Params("id"), GetUserID(c), in, image.upload, uploadOrNil(pdf))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una excepción para ese campo"})
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
// @Summary      Listar excepciones del proceso
// @Tags         custom-rules
// @Produce      json
// @Param        id  path  string  true  "ID del proceso"
// @Success      200  {array}  dto.CustomRuleResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/custom-rules [get]
func (h *CustomRuleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByTender(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar excepción y su evidencia
// @Tags         custom-rules
// @Produce      json
// @Param        id       path  string  true  "ID del proceso"
// @Param        rule_id  path  string  true  "ID de la excepción"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/tenders/{id}/custom-rules/{rule_id} [delete]
func (h *CustomRuleHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), c.Params("id"), c.Params("rule_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "excepción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Helpers multipart ─────────────────────────────────────────────────────────

type openedUpload struct {
	upload *usecase.EvidenceUpload
	file   multipart.File
}

func (o *openedUpload) close() {
	if o != nil && o.file != nil {
		_ = o.file.Close()
	}
}

func uploadOrNil(o *openedUpload) *usecase.EvidenceUpload {
	if o == nil {
		return nil
	}
	return o.upload
}

// openUpload abre un archivo del formulario multipart como EvidenceUpload.
func openUpload(c *fiber.Ctx, field string) (*openedUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &openedUpload{
		upload: &usecase.EvidenceUpload{
			Reader:      file,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Filename:    header.Filename,
		},
		file: file,
	}, nil
}
