package entity

import (
	"time"

	"github.com/DevMartinG/selena-api/pkg/seace"
)

// DeadlineRule es una regla global de plazo legal: limita los días calendario
// permitidos entre un hito "desde" y un hito "hasta" (posiblemente en etapas
// distintas). Varias reglas pueden apuntar al mismo campo destino; todas las
// resolubles deben cumplirse.
type DeadlineRule struct {
	ID          string
	FromStage   seace.Stage
	FromField   string
	ToStage     seace.Stage
	ToField     string
	LegalDays   int // máximo permitido; la regla solo es usable si es > 0
	IsActive    bool
	IsMandatory bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Usable indica si la regla puede participar en una validación: activa,
// plazo positivo y campos de fecha presentes en el catálogo. Las reglas mal
// configuradas se omiten en silencio para no romper el formulario.
func (r DeadlineRule) Usable() bool {
	if !r.IsActive || r.LegalDays <= 0 {
		return false
	}
	return seace.IsDateField(r.FromStage, r.FromField) && seace.IsDateField(r.ToStage, r.ToField)
}

// CustomDeadlineRule es la regla de excepción por proceso y campo: sustituye a
// las reglas globales para ese campo exacto, con fecha de referencia propia y
// evidencia adjunta obligatoria. Única por (TenderID, Stage, FieldName).
type CustomDeadlineRule struct {
	ID               string
	TenderID         string
	Stage            seace.Stage
	FieldName        string
	FromStage        seace.Stage
	FromField        string
	CustomDate       time.Time // fecha de referencia acreditada por la evidencia
	EvidenceImageKey string    // objeto en el bucket de evidencias (obligatorio)
	EvidencePDFKey   string    // objeto PDF opcional
	Description      string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
