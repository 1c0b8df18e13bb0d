// Package seace contiene el catálogo estático de etapas y campos del
// seguimiento de procesos de selección (SEACE, Perú) según la Ley de
// Contrataciones del Estado y su Reglamento.
//
// El catálogo es la única fuente de verdad para: opciones "desde/hasta" de
// las reglas de plazo, etiquetas de tooltips y subconjuntos de campos
// obligatorios por etapa. Se mantiene a mano: si cambia el set de campos de
// una etapa hay que actualizar esta tabla.
package seace

// =============================================================================
// Etapas del proceso (orden estricto S1 → S4)
// =============================================================================

// Stage identifica una de las cuatro etapas secuenciales del proceso.
type Stage string

const (
	StagePreparatory Stage = "S1" // Actos preparatorios
	StageSelection   Stage = "S2" // Procedimiento de selección
	StageContract    Stage = "S3" // Suscripción del contrato
	StageExecution   Stage = "S4" // Ejecución contractual
)

// stageOrder define el orden estricto de las etapas.
var stageOrder = []Stage{StagePreparatory, StageSelection, StageContract, StageExecution}

// StageLabels nombre legible de cada etapa.
var StageLabels = map[Stage]string{
	StagePreparatory: "Actos Preparatorios",
	StageSelection:   "Procedimiento de Selección",
	StageContract:    "Suscripción del Contrato",
	StageExecution:   "Ejecución Contractual",
}

// AllStages devuelve las etapas en orden.
func AllStages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// IsValidStage indica si s es una etapa conocida.
func IsValidStage(s Stage) bool {
	_, ok := StageLabels[s]
	return ok
}

// Index posición de la etapa (0..3); -1 si no es válida.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next devuelve la etapa siguiente y false si s es la última o inválida.
func (s Stage) Next() (Stage, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(stageOrder) {
		return "", false
	}
	return stageOrder[i+1], true
}

// Prev devuelve la etapa anterior y false si s es la primera o inválida.
func (s Stage) Prev() (Stage, bool) {
	i := s.Index()
	if i <= 0 {
		return "", false
	}
	return stageOrder[i-1], true
}

// Label nombre legible de la etapa.
func (s Stage) Label() string { return StageLabels[s] }

// =============================================================================
// Catálogo de campos por etapa
// =============================================================================

// FieldKind tipo de dato de un campo de etapa.
type FieldKind int

const (
	KindDate   FieldKind = iota // fecha (formato 2006-01-02)
	KindText                    // texto libre
	KindFlag                    // booleano ("true"/"false")
	KindAmount                  // monto decimal
)

// FieldDef definición de un campo dentro del catálogo de una etapa.
type FieldDef struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool // requerido para la completitud de la etapa
}

// stageFields catálogo completo por etapa. El subconjunto Required define la
// completitud; el resto solo cuenta para el porcentaje de avance.
var stageFields = map[Stage][]FieldDef{
	StagePreparatory: {
		{Name: "request_presentation_date", Label: "Presentación de requerimiento", Kind: KindDate, Required: true},
		{Name: "market_study_start", Label: "Inicio de estudio de mercado", Kind: KindDate},
		{Name: "market_study_end", Label: "Fin de estudio de mercado", Kind: KindDate},
		{Name: "certification_request_date", Label: "Solicitud de certificación presupuestal", Kind: KindDate},
		{Name: "certification_date", Label: "Certificación presupuestal", Kind: KindDate},
		{Name: "summary_opinion", Label: "Resumen ejecutivo / opinión", Kind: KindText},
		{Name: "approval_expedient_date", Label: "Aprobación del expediente", Kind: KindDate},
		{Name: "approval_expedient_format_2", Label: "Aprobación de expediente (Formato 2)", Kind: KindDate, Required: true},
		{Name: "estimated_value", Label: "Valor estimado", Kind: KindAmount},
	},
	StageSelection: {
		{Name: "committee_designation_date", Label: "Designación del comité de selección", Kind: KindDate},
		{Name: "bases_approval_date", Label: "Aprobación de bases", Kind: KindDate},
		{Name: "published_at", Label: "Convocatoria (publicación en SEACE)", Kind: KindDate, Required: true},
		{Name: "consultation_start", Label: "Inicio de consultas y observaciones", Kind: KindDate},
		{Name: "consultation_end", Label: "Fin de consultas y observaciones", Kind: KindDate},
		{Name: "bases_integration_date", Label: "Integración de bases", Kind: KindDate},
		{Name: "offer_presentation_date", Label: "Presentación de ofertas", Kind: KindDate},
		{Name: "award_date", Label: "Otorgamiento de la buena pro", Kind: KindDate},
		{Name: "award_consent_date", Label: "Consentimiento de la buena pro", Kind: KindDate},
		{Name: "appeal_date", Label: "Fin de plazo de apelación", Kind: KindDate, Required: true},
		{Name: "awarded_value", Label: "Valor adjudicado", Kind: KindAmount},
	},
	StageContract: {
		{Name: "documents_presentation_date", Label: "Presentación de documentos para contratar", Kind: KindDate},
		{Name: "contract_signing", Label: "Suscripción del contrato", Kind: KindDate, Required: true},
		{Name: "contract_number", Label: "Número de contrato", Kind: KindText},
		{Name: "guarantee_presented", Label: "Garantía de fiel cumplimiento presentada", Kind: KindFlag},
		{Name: "contract_amount", Label: "Monto del contrato", Kind: KindAmount},
	},
	StageExecution: {
		{Name: "contract_signing", Label: "Suscripción del contrato", Kind: KindDate, Required: true},
		{Name: "advance_payment_date", Label: "Entrega de adelanto", Kind: KindDate},
		{Name: "execution_start", Label: "Inicio de ejecución", Kind: KindDate},
		{Name: "contract_vigency_date", Label: "Fin de vigencia del contrato", Kind: KindDate, Required: true},
		{Name: "final_payment_date", Label: "Pago final", Kind: KindDate},
		{Name: "settlement_date", Label: "Liquidación del contrato", Kind: KindDate},
		{Name: "is_settled", Label: "Contrato liquidado", Kind: KindFlag},
	},
}

// Fields devuelve las definiciones de campo de la etapa, en orden de catálogo.
func Fields(s Stage) []FieldDef {
	defs := stageFields[s]
	out := make([]FieldDef, len(defs))
	copy(out, defs)
	return out
}

// FieldDefByName busca la definición de un campo en una etapa.
func FieldDefByName(s Stage, name string) (FieldDef, bool) {
	for _, d := range stageFields[s] {
		if d.Name == name {
			return d, true
		}
	}
	return FieldDef{}, false
}

// RequiredFields nombres de los campos requeridos para la completitud de la etapa.
func RequiredFields(s Stage) []string {
	var out []string
	for _, d := range stageFields[s] {
		if d.Required {
			out = append(out, d.Name)
		}
	}
	return out
}

// DateFieldOptions nombres de los campos de fecha de la etapa, para poblar las
// opciones "desde"/"hasta" en la configuración de reglas de plazo.
func DateFieldOptions(s Stage) []string {
	var out []string
	for _, d := range stageFields[s] {
		if d.Kind == KindDate {
			out = append(out, d.Name)
		}
	}
	return out
}

// Label etiqueta legible de un campo; si no está en el catálogo devuelve el
// nombre técnico tal cual (tooltip degradado pero nunca vacío).
func Label(s Stage, field string) string {
	if d, ok := FieldDefByName(s, field); ok {
		return d.Label
	}
	return field
}

// IsDateField indica si el campo existe en la etapa y es de tipo fecha.
func IsDateField(s Stage, field string) bool {
	d, ok := FieldDefByName(s, field)
	return ok && d.Kind == KindDate
}
