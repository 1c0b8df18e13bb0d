package usecase

import (
	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// ValidationUseCase reportes de validación de plazos y duración agregada.
// Todo lo que produce es consultivo: colorea y anota, nunca bloquea.
type ValidationUseCase struct {
	tenderRepo repository.TenderRepository
	stageRepo  repository.StageRepository
	ruleRepo   repository.DeadlineRuleRepository
	customRepo repository.CustomDeadlineRuleRepository
	validator  *domseace.Validator
}

// NewValidationUseCase construye el caso de uso.
func NewValidationUseCase(
	tenderRepo repository.TenderRepository,
	stageRepo repository.StageRepository,
	ruleRepo repository.DeadlineRuleRepository,
	customRepo repository.CustomDeadlineRuleRepository,
	validator *domseace.Validator,
) *ValidationUseCase {
	return &ValidationUseCase{
		tenderRepo: tenderRepo,
		stageRepo:  stageRepo,
		ruleRepo:   ruleRepo,
		customRepo: customRepo,
		validator:  validator,
	}
}

// Report valida el estado persistido de todas las etapas creadas del proceso.
func (uc *ValidationUseCase) Report(tenderID string) (*dto.ValidationReportResponse, error) {
	form, err := uc.persistedForm(tenderID)
	if err != nil {
		return nil, err
	}
	return uc.report(tenderID, form)
}

// ValidateLive valida estado de formulario sin guardar: el cliente envía los
// campos tal como están en pantalla y la validación refleja esas ediciones,
// no lo persistido. Las etapas no incluidas en el request se completan con lo
// persistido para poder resolver reglas que cruzan etapas.
func (uc *ValidationUseCase) ValidateLive(tenderID string, in dto.ValidateFormRequest) (*dto.ValidationReportResponse, error) {
	form, err := uc.persistedForm(tenderID)
	if err != nil {
		return nil, err
	}
	for stageName, fields := range in.Stages {
		stage := seace.Stage(stageName)
		if !seace.IsValidStage(stage) {
			return nil, domain.ErrInvalidInput
		}
		form[stage] = fields
	}
	return uc.report(tenderID, form)
}

// Duration calcula la duración agregada del proceso sobre lo persistido.
func (uc *ValidationUseCase) Duration(tenderID string) (*dto.DurationResponse, error) {
	form, err := uc.persistedForm(tenderID)
	if err != nil {
		return nil, err
	}
	summary := domseace.DurationRollup(form)
	resp := &dto.DurationResponse{
		TenderID:          tenderID,
		TotalCalendarDays: summary.TotalCalendarDays,
		TotalBusinessDays: summary.TotalBusinessDays,
	}
	for _, span := range summary.Stages {
		resp.Stages = append(resp.Stages, dto.StageSpanResponse{
			Stage:        string(span.Stage),
			StageLabel:   span.Stage.Label(),
			FromField:    span.FromField,
			ToField:      span.ToField,
			CalendarDays: span.CalendarDays,
			BusinessDays: span.BusinessDays,
		})
	}
	return resp, nil
}

func (uc *ValidationUseCase) persistedForm(tenderID string) (domseace.TenderForm, error) {
	tender, err := uc.tenderRepo.GetByID(tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, domain.ErrNotFound
	}
	instances, err := uc.stageRepo.ListByTender(tenderID)
	if err != nil {
		return nil, err
	}
	form := domseace.TenderForm{}
	for _, inst := range instances {
		fields := inst.Fields
		if fields == nil {
			fields = map[string]string{}
		}
		form[inst.Stage] = fields
	}
	return form, nil
}

func (uc *ValidationUseCase) report(tenderID string, form domseace.TenderForm) (*dto.ValidationReportResponse, error) {
	active, err := uc.ruleRepo.ListActive()
	if err != nil {
		return nil, err
	}
	ruleValues := derefRules(active)
	customPtrs, err := uc.customRepo.ListByTender(tenderID)
	if err != nil {
		return nil, err
	}
	customs := derefCustoms(customPtrs)

	resp := &dto.ValidationReportResponse{
		TenderID: tenderID,
		Stages:   map[string]map[string]dto.FieldValidationResponse{},
	}
	for _, stage := range seace.AllStages() {
		if !form.StageExists(stage) {
			continue
		}
		validation := uc.validator.ValidateStage(stage, form, ruleValues, customs)
		resp.Stages[string(stage)] = toValidationMap(validation)
	}
	return resp, nil
}

func derefRules(rules []*entity.DeadlineRule) []entity.DeadlineRule {
	out := make([]entity.DeadlineRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, *r)
	}
	return out
}

func derefCustoms(customs []*entity.CustomDeadlineRule) []entity.CustomDeadlineRule {
	out := make([]entity.CustomDeadlineRule, 0, len(customs))
	for _, c := range customs {
		out = append(out, *c)
	}
	return out
}
