package seace

import (
	"math"
	"strings"

	"github.com/DevMartinG/selena-api/pkg/seace"
)

// FieldSet valores de los campos de una etapa indexados por nombre. Las
// fechas viajan como texto en formato DateLayout; un valor vacío equivale a
// campo sin llenar.
type FieldSet = map[string]string

// TenderForm estado en memoria de un proceso: una entrada por etapa creada.
// Una etapa sin entrada no existe todavía (las instancias se crean por acción
// explícita, nunca de forma implícita).
type TenderForm map[seace.Stage]FieldSet

// MissingStageLabel es el único elemento que devuelve MissingFields cuando la
// instancia de etapa no existe.
const MissingStageLabel = "etapa no creada"

// StageExists indica si la etapa fue creada en el formulario.
func (f TenderForm) StageExists(stage seace.Stage) bool {
	_, ok := f[stage]
	return ok
}

// Value devuelve el valor de un campo de una etapa ("" si no existe).
func (f TenderForm) Value(stage seace.Stage, field string) string {
	fields, ok := f[stage]
	if !ok {
		return ""
	}
	return strings.TrimSpace(fields[field])
}

// IsStageComplete indica si todos los campos requeridos de la etapa tienen
// valor no vacío en fields.
func IsStageComplete(stage seace.Stage, fields FieldSet) bool {
	for _, name := range seace.RequiredFields(stage) {
		if strings.TrimSpace(fields[name]) == "" {
			return false
		}
	}
	return true
}

// MissingFields devuelve las etiquetas legibles de los campos requeridos que
// faltan en la etapa. Si la instancia no existe devuelve exactamente
// [MissingStageLabel], nunca una lista vacía.
func MissingFields(form TenderForm, stage seace.Stage) []string {
	fields, ok := form[stage]
	if !ok {
		return []string{MissingStageLabel}
	}
	var missing []string
	for _, name := range seace.RequiredFields(stage) {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, seace.Label(stage, name))
		}
	}
	return missing
}

/// CanCreateNextStage autoriza la creación de la etapa siguiente a current:
// la instancia de current debe existir y estar completa. Es el único candado
// duro del sistema; el resto de validaciones solo anota, nunca bloquea.
func CanCreateNextStage(form TenderForm, current seace.Stage) bool {
	fields, ok := form[current]
	if !ok {
		return false
	}
	return IsStageComplete(current, fields)
}

// ProgressPercentage porcentaje de avance informativo de la etapa: campos con
// valor sobre el total del catálogo (no solo los requeridos), redondeado.
func ProgressPercentage(stage seace.Stage, fields FieldSet) int {
	defs := seace.Fields(stage)
	if len(defs) == 0 {
		return 0
	}
	filled := 0
	for _, d := range defs {
		if strings.TrimSpace(fields[d.Name]) != "" {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(len(defs))))
}
