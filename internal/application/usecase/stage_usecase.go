package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// GateError bloquea la creación de una etapa: la etapa anterior no existe o
// está incompleta. Lleva las etiquetas de los campos faltantes para el
// mensaje al usuario.
type GateError struct {
	Stage   seace.Stage // etapa anterior que no cumple
	Missing []string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("no se puede crear la etapa: %s pendiente (%s)",
		e.Stage.Label(), strings.Join(e.Missing, ", "))
}

// StageUseCase casos de uso de instancias de etapa: creación con candado de
// progresión, guardado de campos y armado del payload de validación.
type StageUseCase struct {
	txRunner   TxRunner
	tenderRepo repository.TenderRepository
	stageRepo  repository.StageRepository
	ruleRepo   repository.DeadlineRuleRepository
	customRepo repository.CustomDeadlineRuleRepository
	validator  *domseace.Validator
}

// NewStageUseCase construye el caso de uso.
func NewStageUseCase(
	txRunner TxRunner,
	tenderRepo repository.TenderRepository,
	stageRepo repository.StageRepository,
	ruleRepo repository.DeadlineRuleRepository,
	customRepo repository.CustomDeadlineRuleRepository,
	validator *domseace.Validator,
) *StageUseCase {
	return &StageUseCase{
		txRunner:   txRunner,
		tenderRepo: tenderRepo,
		stageRepo:  stageRepo,
		ruleRepo:   ruleRepo,
		customRepo: customRepo,
		validator:  validator,
	}
}

// CreateStage crea la instancia de una etapa para un proceso. Para S2..S4 la
// etapa anterior debe existir y estar completa; el candado se evalúa sobre el
// estado persistido, dentro de la misma transacción que inserta la instancia
// (nunca sobre ediciones sin guardar). Es el único punto del sistema donde
// una validación bloquea una acción.
func (uc *StageUseCase) CreateStage(ctx context.Context, tenderID, createdBy string, in dto.CreateStageRequest) (*dto.StageResponse, error) {
	stage := seace.Stage(in.Stage)
	if !seace.IsValidStage(stage) {
		return nil, domain.ErrInvalidInput
	}
	tender, err := uc.tenderRepo.GetByID(tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, domain.ErrNotFound
	}
	fields, err := sanitizeFields(stage, in.Fields)
	if err != nil {
		return nil, err
	}

	instance := &entity.StageInstance{
		ID:        uuid.New().String(),
		TenderID:  tenderID,
		Stage:     stage,
		Status:    entity.StageStatusInProgress,
		Fields:    fields,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(stageRepo repository.StageRepository) error {
		existing, err := stageRepo.GetByTenderAndStage(tenderID, stage)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if prev, ok := stage.Prev(); ok {
			prevInstance, err := stageRepo.GetByTenderAndStage(tenderID, prev)
			if err != nil {
				return err
			}
			form := domseace.TenderForm{}
			if prevInstance != nil {
				form[prev] = prevInstance.Fields
			}
			if !domseace.CanCreateNextStage(form, prev) {
				return &GateError{Stage: prev, Missing: domseace.MissingFields(form, prev)}
			}
		}
		return stageRepo.Create(instance)
	})
	if err != nil {
		return nil, err
	}
	return uc.stageResponse(instance)
}

// UpdateFields guarda campos de una etapa y devuelve la instancia con su
// validación recalculada. Un plazo excedido nunca impide guardar: solo anota.
func (uc *StageUseCase) UpdateFields(tenderID string, stage seace.Stage, in dto.UpdateStageFieldsRequest) (*dto.StageResponse, error) {
	instance, err := uc.stageRepo.GetByTenderAndStage(tenderID, stage)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, domain.ErrStageNotCreated
	}
	incoming, err := sanitizeFields(stage, in.Fields)
	if err != nil {
		return nil, err
	}
	if instance.Fields == nil {
		instance.Fields = map[string]string{}
	}
	for name, value := range incoming {
		if value == "" {
			delete(instance.Fields, name)
			continue
		}
		instance.Fields[name] = value
	}
	if err := uc.stageRepo.UpdateFields(instance.ID, instance.Fields); err != nil {
		return nil, err
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.StageStatusPending, entity.StageStatusInProgress,
			entity.StageStatusCompleted, entity.StageStatusCancelled:
			if err := uc.stageRepo.UpdateStatus(instance.ID, *in.Status); err != nil {
				return nil, err
			}
			instance.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	instance.UpdatedAt = time.Now()
	return uc.stageResponse(instance)
}

// GetStage devuelve una etapa con avance, completitud y validaciones.
func (uc *StageUseCase) GetStage(tenderID string, stage seace.Stage) (*dto.StageResponse, error) {
	instance, err := uc.stageRepo.GetByTenderAndStage(tenderID, stage)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, nil
	}
	return uc.stageResponse(instance)
}

// ListStages devuelve las etapas creadas del proceso, en orden de etapa.
func (uc *StageUseCase) ListStages(tenderID string) ([]dto.StageResponse, error) {
	instances, err := uc.stageRepo.ListByTender(tenderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StageResponse, 0, len(instances))
	for _, inst := range instances {
		resp, err := uc.stageResponse(inst)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// stageResponse arma el payload de una etapa: el formulario completo del
// proceso (todas las etapas persistidas) alimenta al validador porque las
// reglas pueden cruzar etapas.
func (uc *StageUseCase) stageResponse(instance *entity.StageInstance) (*dto.StageResponse, error) {
	form, err := uc.buildForm(instance.TenderID)
	if err != nil {
		return nil, err
	}
	// La instancia en mano puede traer ediciones más frescas que lo listado.
	form[instance.Stage] = instance.Fields

	rules, customs, err := uc.loadRules(instance.TenderID)
	if err != nil {
		return nil, err
	}
	validation := uc.validator.ValidateStage(instance.Stage, form, rules, customs)

	resp := &dto.StageResponse{
		ID:            instance.ID,
		TenderID:      instance.TenderID,
		Stage:         string(instance.Stage),
		StageLabel:    instance.Stage.Label(),
		Status:        instance.Status,
		Fields:        instance.Fields,
		Progress:      domseace.ProgressPercentage(instance.Stage, instance.Fields),
		Complete:      domseace.IsStageComplete(instance.Stage, instance.Fields),
		MissingFields: domseace.MissingFields(form, instance.Stage),
		Validation:    toValidationMap(validation),
		CreatedBy:     instance.CreatedBy,
		CreatedAt:     instance.CreatedAt,
		UpdatedAt:     instance.UpdatedAt,
	}
	return resp, nil
}

// buildForm reconstruye el TenderForm con el estado persistido de todas las
// etapas creadas del proceso.
func (uc *StageUseCase) buildForm(tenderID string) (domseace.TenderForm, error) {
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

func (uc *StageUseCase) loadRules(tenderID string) ([]entity.DeadlineRule, []entity.CustomDeadlineRule, error) {
	active, err := uc.ruleRepo.ListActive()
	if err != nil {
		return nil, nil, err
	}
	customPtrs, err := uc.customRepo.ListByTender(tenderID)
	if err != nil {
		return nil, nil, err
	}
	return derefRules(active), derefCustoms(customPtrs), nil
}

// sanitizeFields valida los nombres contra el catálogo y normaliza espacios.
// Un nombre desconocido es entrada inválida: el catálogo es la fuente única
// de campos por etapa.
func sanitizeFields(stage seace.Stage, fields map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for name, value := range fields {
		if _, ok := seace.FieldDefByName(stage, name); !ok {
			return nil, fmt.Errorf("%w: campo desconocido %q en %s", domain.ErrInvalidInput, name, stage)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

// toValidationMap convierte el resultado del validador al DTO de presentación.
func toValidationMap(validation map[string]domseace.FieldValidation) map[string]dto.FieldValidationResponse {
	out := make(map[string]dto.FieldValidationResponse, len(validation))
	for name, fv := range validation {
		out[name] = toFieldValidationResponse(fv)
	}
	return out
}

func toFieldValidationResponse(fv domseace.FieldValidation) dto.FieldValidationResponse {
	outcomes := make([]dto.RuleOutcomeResponse, 0, len(fv.Outcomes))
	for _, o := range fv.Outcomes {
		outcomes = append(outcomes, dto.RuleOutcomeResponse{
			RuleID:        o.RuleID,
			FromLabel:     o.FromLabel,
			ToLabel:       o.ToLabel,
			ElapsedDays:   o.ElapsedDays,
			LegalDays:     o.LegalDays,
			Mandatory:     o.Mandatory,
			Passed:        o.Passed,
			ScheduledDate: o.ScheduledDate,
			Message:       o.Message,
		})
	}
	return dto.FieldValidationResponse{
		Status:   string(fv.Status),
		Override: fv.Override,
		Icon:     fv.Icon,
		Color:    fv.Color,
		Tooltip:  fv.TooltipLines(),
		Outcomes: outcomes,
	}
}
