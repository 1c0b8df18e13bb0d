package usecase

import (
	"context"

	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// ReportUseCase genera la ficha de seguimiento del proceso en PDF: carátula,
// campos por etapa con su estado de plazo y el resumen de duración.
type ReportUseCase struct {
	tenderRepo repository.TenderRepository
	stageRepo  repository.StageRepository
	ruleRepo   repository.DeadlineRuleRepository
	customRepo repository.CustomDeadlineRuleRepository
	validator  *domseace.Validator
	generator  TrackingSheetGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	tenderRepo repository.TenderRepository,
	stageRepo repository.StageRepository,
	ruleRepo repository.DeadlineRuleRepository,
	customRepo repository.CustomDeadlineRuleRepository,
	validator *domseace.Validator,
	generator TrackingSheetGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		tenderRepo: tenderRepo,
		stageRepo:  stageRepo,
		ruleRepo:   ruleRepo,
		customRepo: customRepo,
		validator:  validator,
		generator:  generator,
	}
}

// TrackingSheet arma los datos y genera el PDF.
func (uc *ReportUseCase) TrackingSheet(ctx context.Context, tenderID string) ([]byte, error) {
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

	active, err := uc.ruleRepo.ListActive()
	if err != nil {
		return nil, err
	}
	customPtrs, err := uc.customRepo.ListByTender(tenderID)
	if err != nil {
		return nil, err
	}
	rules := derefRules(active)
	customs := derefCustoms(customPtrs)

	report := map[string]map[string]string{}
	for _, stage := range seace.AllStages() {
		if !form.StageExists(stage) {
			continue
		}
		statuses := map[string]string{}
		for name, fv := range uc.validator.ValidateStage(stage, form, rules, customs) {
			statuses[name] = string(fv.Status)
		}
		report[string(stage)] = statuses
	}

	summary := domseace.DurationRollup(form)
	perStage := map[string]int{}
	for _, span := range summary.Stages {
		perStage[string(span.Stage)] = span.CalendarDays
	}

	return uc.generator.GenerateTrackingSheet(ctx, TrackingSheetData{
		Tender: tender,
		Stages: instances,
		Report: report,
		Duration: DurationData{
			TotalCalendarDays: summary.TotalCalendarDays,
			TotalBusinessDays: summary.TotalBusinessDays,
			PerStage:          perStage,
		},
	})
}
