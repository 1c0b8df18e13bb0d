package seace

import (
	"fmt"

	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// ValidationStatus resultado agregado de la validación de un campo.
type ValidationStatus string

const (
	StatusCompliant     ValidationStatus = "compliant"      // todas las reglas resolubles cumplen
	StatusExceeded      ValidationStatus = "exceeded"       // alguna regla resoluble se excedió
	StatusNotApplicable ValidationStatus = "not_applicable" // ninguna regla pudo resolverse aún
)

// ErrDateProcessing mensaje fijo cuando una fecha no puede interpretarse. La
// regla afectada se reporta como incumplida (se falla cerrado), nunca se
// propaga como error.
const ErrDateProcessing = "error al procesar fechas"

// RuleOutcome resultado de evaluar una regla sobre un campo.
type RuleOutcome struct {
	RuleID        string
	FromLabel     string
	ToLabel       string
	ElapsedDays   int
	LegalDays     int // 0 para reglas de excepción (sin comparación numérica)
	Mandatory     bool
	Passed        bool
	ScheduledDate string // fecha programada: desde + plazo legal (solo informativa)
	Message       string // línea de tooltip lista para mostrar
}

// FieldValidation payload de presentación de la validación de un campo:
// estado, icono, color y una línea de tooltip por regla evaluada.
type FieldValidation struct {
	Stage    seace.Stage
	Field    string
	Status   ValidationStatus
	Override bool // resuelto por regla de excepción con evidencia
	Icon     string
	Color    string
	Outcomes []RuleOutcome
}

// TooltipLines mensajes de todas las reglas evaluadas, en orden.
func (fv FieldValidation) TooltipLines() []string {
	lines := make([]string, 0, len(fv.Outcomes))
	for _, o := range fv.Outcomes {
		lines = append(lines, o.Message)
	}
	return lines
}

// Catalog puerto del catálogo de campos que necesita el validador. Se
// construye explícitamente y se pasa al crear el validador; no hay estado
// estático oculto ni memoización global.
type Catalog interface {
	Label(stage seace.Stage, field string) string
	IsDateField(stage seace.Stage, field string) bool
}

type staticCatalog struct{}

func (staticCatalog) Label(s seace.Stage, f string) string    { return seace.Label(s, f) }
func (staticCatalog) IsDateField(s seace.Stage, f string) bool { return seace.IsDateField(s, f) }

// DefaultCatalog catálogo estático del paquete pkg/seace.
func DefaultCatalog() Catalog { return staticCatalog{} }

// Validator evalúa reglas de plazo sobre el estado de formulario en memoria.
// El cumplimiento se mide en días calendario; los mensajes lo dicen igual
// para que etiqueta y aritmética nunca discrepen.
type Validator struct {
	catalog Catalog
}

// NewValidator construye el validador con el catálogo dado.
func NewValidator(catalog Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// ValidateField valida un campo de fecha de una etapa contra sus reglas.
//
// Resolución: si existe regla de excepción para (tender, etapa, campo) esa es
// la única autoridad y no se aplica comparación numérica alguna; si no,
// se evalúan todas las reglas globales activas cuyo destino es el campo,
// omitiendo las que aún no tienen valor "desde" (no resolubles) y las mal
// configuradas. El valor "desde" se lee del estado del formulario (refleja
// ediciones sin guardar), posiblemente de otra etapa.
func (v *Validator) ValidateField(
	stage seace.Stage,
	field string,
	form TenderForm,
	rules []entity.DeadlineRule,
	custom *entity.CustomDeadlineRule,
) FieldValidation {
	fv := FieldValidation{Stage: stage, Field: field}

	toRaw := form.Value(stage, field)

	if custom != nil && custom.Stage == stage && custom.FieldName == field {
		return v.validateWithOverride(fv, toRaw, custom)
	}

	resolved := 0
	failed := false
	for _, rule := range rules {
		if rule.ToStage != stage || rule.ToField != field || !rule.Usable() {
			continue
		}
		fromRaw := form.Value(rule.FromStage, rule.FromField)
		if fromRaw == "" || toRaw == "" {
			// Aún no resoluble: sin valor no hay nada que validar.
			continue
		}
		outcome := v.evaluateRule(rule, fromRaw, toRaw)
		fv.Outcomes = append(fv.Outcomes, outcome)
		resolved++
		if !outcome.Passed {
			failed = true
		}
	}

	switch {
	case resolved == 0:
		fv.Status = StatusNotApplicable
	case failed:
		fv.Status = StatusExceeded
	default:
		fv.Status = StatusCompliant
	}
	fv.Icon, fv.Color = displayFor(fv.Status)
	return fv
}

// validateWithOverride aplica la regla de excepción: el plazo se considera
// acreditado por la evidencia adjunta y solo se informa el intervalo desde la
// fecha de referencia de la excepción hasta el valor del campo.
func (v *Validator) validateWithOverride(fv FieldValidation, toRaw string, custom *entity.CustomDeadlineRule) FieldValidation {
	fv.Override = true
	if toRaw == "" {
		fv.Status = StatusNotApplicable
		fv.Icon, fv.Color = displayFor(fv.Status)
		return fv
	}
	to, err := ParseDate(toRaw)
	if err != nil {
		fv.Status = StatusExceeded
		fv.Outcomes = append(fv.Outcomes, RuleOutcome{
			RuleID:    custom.ID,
			FromLabel: v.catalog.Label(custom.FromStage, custom.FromField),
			ToLabel:   v.catalog.Label(fv.Stage, fv.Field),
			Message:   ErrDateProcessing,
		})
		fv.Icon, fv.Color = displayFor(fv.Status)
		return fv
	}
	ref := custom.CustomDate
	elapsed := CalendarDays(&ref, to)
	fromLabel := v.catalog.Label(custom.FromStage, custom.FromField)
	toLabel := v.catalog.Label(fv.Stage, fv.Field)
	fv.Status = StatusCompliant
	fv.Outcomes = append(fv.Outcomes, RuleOutcome{
		RuleID:      custom.ID,
		FromLabel:   fromLabel,
		ToLabel:     toLabel,
		ElapsedDays: elapsed,
		Passed:      true,
		Message: fmt.Sprintf("%s → %s: %d días calendario (plazo acreditado con sustento: %s)",
			fromLabel, toLabel, elapsed, ref.Format(DateLayout)),
	})
	fv.Icon, fv.Color = displayFor(fv.Status)
	return fv
}

// evaluateRule calcula los días transcurridos y compara contra el plazo legal.
// Cualquier fecha no interpretable reporta la regla como incumplida con el
// diagnóstico fijo.
func (v *Validator) evaluateRule(rule entity.DeadlineRule, fromRaw, toRaw string) RuleOutcome {
	fromLabel := v.catalog.Label(rule.FromStage, rule.FromField)
	toLabel := v.catalog.Label(rule.ToStage, rule.ToField)
	outcome := RuleOutcome{
		RuleID:    rule.ID,
		FromLabel: fromLabel,
		ToLabel:   toLabel,
		LegalDays: rule.LegalDays,
		Mandatory: rule.IsMandatory,
	}

	from, errFrom := ParseDate(fromRaw)
	to, errTo := ParseDate(toRaw)
	if errFrom != nil || errTo != nil || from == nil || to == nil {
		outcome.Passed = false
		outcome.Message = ErrDateProcessing
		return outcome
	}

	outcome.ElapsedDays = CalendarDays(from, to)
	outcome.Passed = outcome.ElapsedDays <= rule.LegalDays
	outcome.ScheduledDate = AddCalendarDays(*from, rule.LegalDays).Format(DateLayout)
	outcome.Message = fmt.Sprintf("%s → %s: %d días calendario (máximo: %d)",
		fromLabel, toLabel, outcome.ElapsedDays, rule.LegalDays)
	return outcome
}

// ValidateStage valida todos los campos de fecha del catálogo de la etapa.
// customs se indexa por nombre de campo; a lo más una excepción por campo
// (garantizado por la clave única en persistencia).
func (v *Validator) ValidateStage(
	stage seace.Stage,
	form TenderForm,
	rules []entity.DeadlineRule,
	customs []entity.CustomDeadlineRule,
) map[string]FieldValidation {
	byField := make(map[string]*entity.CustomDeadlineRule, len(customs))
	for i := range customs {
		c := customs[i]
		if c.Stage == stage {
			byField[c.FieldName] = &c
		}
	}
	out := make(map[string]FieldValidation)
	for _, name := range seace.DateFieldOptions(stage) {
		out[name] = v.ValidateField(stage, name, form, rules, byField[name])
	}
	return out
}

func displayFor(status ValidationStatus) (icon, color string) {
	switch status {
	case StatusCompliant:
		return "check", "success"
	case StatusExceeded:
		return "cross", "danger"
	default:
		return "minus", "gray"
	}
}
