package seace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/seace"
	catalog "github.com/DevMartinG/selena-api/pkg/seace"
)

func newValidator() *seace.Validator {
	return seace.NewValidator(seace.DefaultCatalog())
}

// ruleS1 regla global: presentación de requerimiento → aprobación del
// expediente, máximo legalDays días calendario.
func ruleS1(legalDays int) entity.DeadlineRule {
	return entity.DeadlineRule{
		ID:          "rule-1",
		FromStage:   catalog.StagePreparatory,
		FromField:   "request_presentation_date",
		ToStage:     catalog.StagePreparatory,
		ToField:     "approval_expedient_date",
		LegalDays:   legalDays,
		IsActive:    true,
		IsMandatory: true,
	}
}

func TestValidateField_CumplePlazo(t *testing.T) {
	v := newValidator()
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-02",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{ruleS1(2)}, nil)

	assert.Equal(t, seace.StatusCompliant, fv.Status, "1 día transcurrido ≤ 2 permitidos")
	assert.Equal(t, "check", fv.Icon)
	assert.Equal(t, "success", fv.Color)
	require.Len(t, fv.Outcomes, 1)
	assert.Equal(t, 1, fv.Outcomes[0].ElapsedDays)
	assert.Equal(t, 2, fv.Outcomes[0].LegalDays)
	assert.True(t, fv.Outcomes[0].Passed)
}

func TestValidateField_ExcedePlazo(t *testing.T) {
	v := newValidator()
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-05",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{ruleS1(2)}, nil)

	assert.Equal(t, seace.StatusExceeded, fv.Status, "4 días transcurridos > 2 permitidos")
	assert.Equal(t, "cross", fv.Icon)
	assert.Equal(t, "danger", fv.Color)
	require.Len(t, fv.Outcomes, 1)
	assert.Equal(t, 4, fv.Outcomes[0].ElapsedDays)
	assert.False(t, fv.Outcomes[0].Passed)
}

func TestValidateField_SinReglas_NoAplica(t *testing.T) {
	v := newValidator()
	form := seace.TenderForm{
		catalog.StagePreparatory: {"approval_expedient_date": "2024-03-02"},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date", form, nil, nil)

	assert.Equal(t, seace.StatusNotApplicable, fv.Status)
	assert.Equal(t, "minus", fv.Icon)
	assert.Equal(t, "gray", fv.Color)
	assert.Empty(t, fv.Outcomes)
}

func TestValidateField_SinValorDesde_NoAplica(t *testing.T) {
	v := newValidator()
	// El campo destino tiene valor pero el "desde" aún no se llenó: la regla
	// no es resoluble todavía y no debe mostrarse estado alguno.
	form := seace.TenderForm{
		catalog.StagePreparatory: {"approval_expedient_date": "2024-03-02"},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{ruleS1(2)}, nil)

	assert.Equal(t, seace.StatusNotApplicable, fv.Status)
}

func TestValidateField_ReglaInactivaSeOmite(t *testing.T) {
	v := newValidator()
	rule := ruleS1(2)
	rule.IsActive = false
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-20",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{rule}, nil)

	assert.Equal(t, seace.StatusNotApplicable, fv.Status, "una regla inactiva no participa")
}

func TestValidateField_PlazoNoPositivoSeOmite(t *testing.T) {
	v := newValidator()
	rule := ruleS1(0)
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-20",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{rule}, nil)

	assert.Equal(t, seace.StatusNotApplicable, fv.Status,
		"legalDays <= 0 es configuración inválida: se omite en silencio")
}

func TestValidateField_CampoFueraDeCatalogoSeOmite(t *testing.T) {
	v := newValidator()
	rule := ruleS1(2)
	rule.FromField = "campo_inexistente"
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"campo_inexistente":       "2024-03-01",
			"approval_expedient_date": "2024-03-20",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{rule}, nil)

	assert.Equal(t, seace.StatusNotApplicable, fv.Status)
}

func TestValidateField_FechaInvalidaFallaCerrado(t *testing.T) {
	v := newValidator()
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "01/03/2024", // formato no soportado
			"approval_expedient_date":   "2024-03-02",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{ruleS1(2)}, nil)

	assert.Equal(t, seace.StatusExceeded, fv.Status, "fecha no interpretable falla cerrado")
	require.Len(t, fv.Outcomes, 1)
	assert.Equal(t, seace.ErrDateProcessing, fv.Outcomes[0].Message)
}

func TestValidateField_VariasReglas_TodasDebenCumplir(t *testing.T) {
	v := newValidator()
	tight := ruleS1(1)
	tight.ID = "rule-tight"
	loose := ruleS1(30)
	loose.ID = "rule-loose"
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-05",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{tight, loose}, nil)

	assert.Equal(t, seace.StatusExceeded, fv.Status,
		"basta una regla resoluble incumplida para marcar el campo")
	require.Len(t, fv.Outcomes, 2)
	assert.Len(t, fv.TooltipLines(), 2)
}

func TestValidateField_ReglaEntreEtapas(t *testing.T) {
	v := newValidator()
	rule := entity.DeadlineRule{
		ID:          "rule-cross",
		FromStage:   catalog.StageSelection,
		FromField:   "appeal_date",
		ToStage:     catalog.StageContract,
		ToField:     "contract_signing",
		LegalDays:   8,
		IsActive:    true,
		IsMandatory: true,
	}
	form := seace.TenderForm{
		catalog.StageSelection: {"appeal_date": "2024-04-01"},
		catalog.StageContract:  {"contract_signing": "2024-04-08"},
	}

	fv := v.ValidateField(catalog.StageContract, "contract_signing",
		form, []entity.DeadlineRule{rule}, nil)

	assert.Equal(t, seace.StatusCompliant, fv.Status,
		"el valor desde se resuelve desde otra etapa del formulario")
	require.Len(t, fv.Outcomes, 1)
	assert.Equal(t, 7, fv.Outcomes[0].ElapsedDays)
	assert.Equal(t, "2024-04-09", fv.Outcomes[0].ScheduledDate,
		"fecha programada = desde + plazo legal")
}

// TestValidateField_ExcepcionTienePrecedencia: con regla global y regla de
// excepción sobre el mismo campo, la excepción es la única autoridad y no se
// aplica la comparación numérica de la regla global.
func TestValidateField_ExcepcionTienePrecedencia(t *testing.T) {
	v := newValidator()
	customDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	custom := &entity.CustomDeadlineRule{
		ID:         "custom-1",
		TenderID:   "tender-1",
		Stage:      catalog.StagePreparatory,
		FieldName:  "approval_expedient_date",
		FromStage:  catalog.StagePreparatory,
		FromField:  "request_presentation_date",
		CustomDate: customDate,
	}
	// Con la regla global (máx. 2) este valor estaría excedido (29 días).
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date": "2024-03-01",
			"approval_expedient_date":   "2024-03-30",
		},
	}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, []entity.DeadlineRule{ruleS1(2)}, custom)

	assert.Equal(t, seace.StatusCompliant, fv.Status,
		"la excepción acredita el plazo; la regla global no se compara")
	assert.True(t, fv.Override)
	require.Len(t, fv.Outcomes, 1)
	assert.Equal(t, "custom-1", fv.Outcomes[0].RuleID)
	assert.Equal(t, 29, fv.Outcomes[0].ElapsedDays, "el intervalo informativo sí se reporta")
	assert.Zero(t, fv.Outcomes[0].LegalDays, "sin comparación numérica")
}

func TestValidateField_ExcepcionSinValorDestino_NoAplica(t *testing.T) {
	v := newValidator()
	custom := &entity.CustomDeadlineRule{
		ID:         "custom-1",
		Stage:      catalog.StagePreparatory,
		FieldName:  "approval_expedient_date",
		FromStage:  catalog.StagePreparatory,
		FromField:  "request_presentation_date",
		CustomDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	form := seace.TenderForm{catalog.StagePreparatory: {}}

	fv := v.ValidateField(catalog.StagePreparatory, "approval_expedient_date",
		form, nil, custom)

	assert.Equal(t, seace.StatusNotApplicable, fv.Status)
	assert.True(t, fv.Override)
}

func TestValidateStage_CubreTodosLosCamposDeFecha(t *testing.T) {
	v := newValidator()
	form := seace.TenderForm{catalog.StageContract: {}}

	got := v.ValidateStage(catalog.StageContract, form, nil, nil)

	expected := catalog.DateFieldOptions(catalog.StageContract)
	assert.Len(t, got, len(expected))
	for _, name := range expected {
		fv, ok := got[name]
		require.True(t, ok, "debe validar el campo %s", name)
		assert.Equal(t, seace.StatusNotApplicable, fv.Status)
	}
}
