package seace

import "github.com/DevMartinG/selena-api/pkg/seace"

// StageSpan duración de una etapa entre sus hitos de frontera.
type StageSpan struct {
	Stage        seace.Stage
	FromField    string
	ToField      string
	CalendarDays int
	BusinessDays int
}

// DurationSummary duración agregada del proceso: desglose por etapa y totales
// en días calendario y hábiles.
type DurationSummary struct {
	Stages            []StageSpan
	TotalCalendarDays int
	TotalBusinessDays int
}

// stageBoundary hitos de frontera de cada etapa. La etapa S3 arranca en el fin
// de plazo de apelación de S2, no en su propio primer campo.
type stageBoundary struct {
	fromStage seace.Stage
	fromField string
	toStage   seace.Stage
	toField   string
}

var stageBoundaries = map[seace.Stage]stageBoundary{
	seace.StagePreparatory: {seace.StagePreparatory, "request_presentation_date", seace.StagePreparatory, "approval_expedient_format_2"},
	seace.StageSelection:   {seace.StageSelection, "published_at", seace.StageSelection, "appeal_date"},
	seace.StageContract:    {seace.StageSelection, "appeal_date", seace.StageContract, "contract_signing"},
	seace.StageExecution:   {seace.StageExecution, "contract_signing", seace.StageExecution, "contract_vigency_date"},
}

// DurationRollup computa la duración del proceso sobre el estado del
// formulario. Una etapa aporta 0 si le falta un hito de frontera, si la fecha
// final precede a la inicial o si alguna fecha no es interpretable; nunca
// lanza error ni produce valores negativos.
func DurationRollup(form TenderForm) DurationSummary {
	var summary DurationSummary
	for _, stage := range seace.AllStages() {
		b := stageBoundaries[stage]
		span := StageSpan{Stage: stage, FromField: b.fromField, ToField: b.toField}

		from, errFrom := ParseDate(form.Value(b.fromStage, b.fromField))
		to, errTo := ParseDate(form.Value(b.toStage, b.toField))
		if errFrom == nil && errTo == nil {
			span.CalendarDays = CalendarDays(from, to)
			span.BusinessDays = BusinessDays(from, to)
		}

		summary.Stages = append(summary.Stages, span)
		summary.TotalCalendarDays += span.CalendarDays
		summary.TotalBusinessDays += span.BusinessDays
	}
	return summary
}
