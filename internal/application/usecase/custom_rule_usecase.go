package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// EvidenceUpload archivo de evidencia recibido por multipart.
type EvidenceUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// CustomRuleUseCase reglas de excepción por proceso: alta con evidencia
// obligatoria en el almacén de objetos, listado con URLs prefirmadas y baja
// con limpieza de los artefactos.
type CustomRuleUseCase struct {
	repo       repository.CustomDeadlineRuleRepository
	tenderRepo repository.TenderRepository
	store      EvidenceStore
}

// NewCustomRuleUseCase construye el caso de uso.
func NewCustomRuleUseCase(
	repo repository.CustomDeadlineRuleRepository,
	tenderRepo repository.TenderRepository,
	store EvidenceStore,
) *CustomRuleUseCase {
	return &CustomRuleUseCase{repo: repo, tenderRepo: tenderRepo, store: store}
}

// Create registra una regla de excepción. Única por (tender, etapa, campo):
// si ya existe una para ese campo se rechaza con ErrDuplicate. La imagen de
// evidencia es obligatoria; el PDF es opcional.
func (uc *CustomRuleUseCase) Create(
	ctx context.Context,
	tenderID, createdBy string,
	in dto.CreateCustomRuleRequest,
	image *EvidenceUpload,
	pdf *EvidenceUpload,
) (*dto.CustomRuleResponse, error) {
	tender, err := uc.tenderRepo.GetByID(tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, domain.ErrNotFound
	}
	stage := seace.Stage(in.Stage)
	if !seace.IsValidStage(stage) || !seace.IsDateField(stage, in.FieldName) {
		return nil, fmt.Errorf("%w: campo destino inválido", domain.ErrInvalidInput)
	}
	if !seace.IsValidStage(seace.Stage(in.FromStage)) || !seace.IsDateField(seace.Stage(in.FromStage), in.FromField) {
		return nil, fmt.Errorf("%w: campo origen inválido", domain.ErrInvalidInput)
	}
	if image == nil {
		return nil, fmt.Errorf("%w: la imagen de evidencia es obligatoria", domain.ErrInvalidInput)
	}
	customDate, err := domseace.ParseDate(in.CustomDate)
	if err != nil || customDate == nil {
		return nil, fmt.Errorf("%w: custom_date inválida", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByTenderAndField(tenderID, stage, in.FieldName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	id := uuid.New().String()
	imageKey := fmt.Sprintf("%s/%s/%s/imagen-%s", tenderID, stage, in.FieldName, image.Filename)
	if err := uc.store.Put(ctx, imageKey, image.Reader, image.Size, image.ContentType); err != nil {
		return nil, fmt.Errorf("guardar evidencia: %w", err)
	}
	var pdfKey string
	if pdf != nil {
		pdfKey = fmt.Sprintf("%s/%s/%s/sustento-%s", tenderID, stage, in.FieldName, pdf.Filename)
		if err := uc.store.Put(ctx, pdfKey, pdf.Reader, pdf.Size, pdf.ContentType); err != nil {
			return nil, fmt.Errorf("guardar sustento PDF: %w", err)
		}
	}

	now := time.Now()
	rule := &entity.CustomDeadlineRule{
		ID:               id,
		TenderID:         tenderID,
		Stage:            stage,
		FieldName:        in.FieldName,
		FromStage:        seace.Stage(in.FromStage),
		FromField:        in.FromField,
		CustomDate:       *customDate,
		EvidenceImageKey: imageKey,
		EvidencePDFKey:   pdfKey,
		Description:      in.Description,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(rule); err != nil {
		// No dejar artefactos huérfanos si el insert falla.
		_ = uc.store.Remove(ctx, imageKey)
		if pdfKey != "" {
			_ = uc.store.Remove(ctx, pdfKey)
		}
		return nil, err
	}
	return uc.toResponse(ctx, rule)
}

// ListByTender lista las excepciones de un proceso con URLs prefirmadas.
func (uc *CustomRuleUseCase) ListByTender(ctx context.Context, tenderID string) ([]dto.CustomRuleResponse, error) {
	rules, err := uc.repo.ListByTender(tenderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomRuleResponse, 0, len(rules))
	for _, r := range rules {
		resp, err := uc.toResponse(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Delete elimina la excepción y sus artefactos de evidencia.
func (uc *CustomRuleUseCase) Delete(ctx context.Context, tenderID, ruleID string) error {
	rule, err := uc.repo.GetByID(ruleID)
	if err != nil {
		return err
	}
	if rule == nil || rule.TenderID != tenderID {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ruleID); err != nil {
		return err
	}
	_ = uc.store.Remove(ctx, rule.EvidenceImageKey)
	if rule.EvidencePDFKey != "" {
		_ = uc.store.Remove(ctx, rule.EvidencePDFKey)
	}
	return nil
}

func (uc *CustomRuleUseCase) toResponse(ctx context.Context, r *entity.CustomDeadlineRule) (*dto.CustomRuleResponse, error) {
	imageURL, err := uc.store.PresignedURL(ctx, r.EvidenceImageKey)
	if err != nil {
		return nil, fmt.Errorf("URL de evidencia: %w", err)
	}
	var pdfURL string
	if r.EvidencePDFKey != "" {
		pdfURL, err = uc.store.PresignedURL(ctx, r.EvidencePDFKey)
		if err != nil {
			return nil, fmt.Errorf("URL de sustento: %w", err)
		}
	}
	return &dto.CustomRuleResponse{
		ID:               r.ID,
		TenderID:         r.TenderID,
		Stage:            string(r.Stage),
		FieldName:        r.FieldName,
		FieldLabel:       seace.Label(r.Stage, r.FieldName),
		FromStage:        string(r.FromStage),
		FromField:        r.FromField,
		FromLabel:        seace.Label(r.FromStage, r.FromField),
		CustomDate:       r.CustomDate.Format(domseace.DateLayout),
		EvidenceImageURL: imageURL,
		EvidencePDFURL:   pdfURL,
		Description:      r.Description,
		CreatedBy:        r.CreatedBy,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}
