package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// DeadlineRuleUseCase administración de reglas globales de plazo. Solo el rol
// admin llega aquí (lo exige el middleware de rutas).
type DeadlineRuleUseCase struct {
	repo repository.DeadlineRuleRepository
}

// NewDeadlineRuleUseCase construye el caso de uso.
func NewDeadlineRuleUseCase(repo repository.DeadlineRuleRepository) *DeadlineRuleUseCase {
	return &DeadlineRuleUseCase{repo: repo}
}

// Create registra una regla global. Los campos desde/hasta deben ser campos
// de fecha del catálogo y el plazo debe ser positivo: una regla que no pasa
// estas comprobaciones jamás sería usable por el validador, así que se
// rechaza en el alta en vez de guardarla muerta.
func (uc *DeadlineRuleUseCase) Create(in dto.CreateDeadlineRuleRequest) (*dto.DeadlineRuleResponse, error) {
	rule := entity.DeadlineRule{
		ID:          uuid.New().String(),
		FromStage:   seace.Stage(in.FromStage),
		FromField:   in.FromField,
		ToStage:     seace.Stage(in.ToStage),
		ToField:     in.ToField,
		LegalDays:   in.LegalDays,
		IsActive:    in.IsActive,
		IsMandatory: in.IsMandatory,
		Description: in.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := validateRuleRefs(rule); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(&rule); err != nil {
		return nil, err
	}
	return toDeadlineRuleResponse(&rule), nil
}

// GetByID obtiene una regla por ID.
func (uc *DeadlineRuleUseCase) GetByID(id string) (*dto.DeadlineRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	return toDeadlineRuleResponse(rule), nil
}

// Update modifica plazo, flags o descripción. Las referencias desde/hasta son
// la identidad de la regla y no se editan: se crea otra regla.
func (uc *DeadlineRuleUseCase) Update(id string, in dto.UpdateDeadlineRuleRequest) (*dto.DeadlineRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	if in.LegalDays != nil {
		if *in.LegalDays <= 0 {
			return nil, fmt.Errorf("%w: legal_days debe ser positivo", domain.ErrInvalidInput)
		}
		rule.LegalDays = *in.LegalDays
	}
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}
	if in.IsMandatory != nil {
		rule.IsMandatory = *in.IsMandatory
	}
	if in.Description != nil {
		rule.Description = *in.Description
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toDeadlineRuleResponse(rule), nil
}

// List lista reglas paginadas.
func (uc *DeadlineRuleUseCase) List(limit, offset int) (*dto.DeadlineRuleListResponse, error) {
	rules, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeadlineRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, *toDeadlineRuleResponse(r))
	}
	return &dto.DeadlineRuleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una regla. El flujo normal es desactivarla (is_active=false);
// la eliminación queda para errores de alta.
func (uc *DeadlineRuleUseCase) Delete(id string) error {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateRuleRefs(rule entity.DeadlineRule) error {
	if rule.LegalDays <= 0 {
		return fmt.Errorf("%w: legal_days debe ser positivo", domain.ErrInvalidInput)
	}
	if !seace.IsValidStage(rule.FromStage) || !seace.IsValidStage(rule.ToStage) {
		return fmt.Errorf("%w: etapa desconocida", domain.ErrInvalidInput)
	}
	if !seace.IsDateField(rule.FromStage, rule.FromField) {
		return fmt.Errorf("%w: %q no es campo de fecha de %s", domain.ErrInvalidInput, rule.FromField, rule.FromStage)
	}
	if !seace.IsDateField(rule.ToStage, rule.ToField) {
		return fmt.Errorf("%w: %q no es campo de fecha de %s", domain.ErrInvalidInput, rule.ToField, rule.ToStage)
	}
	return nil
}

func toDeadlineRuleResponse(r *entity.DeadlineRule) *dto.DeadlineRuleResponse {
	return &dto.DeadlineRuleResponse{
		ID:          r.ID,
		FromStage:   string(r.FromStage),
		FromField:   r.FromField,
		FromLabel:   seace.Label(r.FromStage, r.FromField),
		ToStage:     string(r.ToStage),
		ToField:     r.ToField,
		ToLabel:     seace.Label(r.ToStage, r.ToField),
		LegalDays:   r.LegalDays,
		IsActive:    r.IsActive,
		IsMandatory: r.IsMandatory,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
