package seace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevMartinG/selena-api/internal/domain/seace"
	catalog "github.com/DevMartinG/selena-api/pkg/seace"
)

func TestIsStageComplete_S1(t *testing.T) {
	fields := seace.FieldSet{
		"request_presentation_date":   "2024-01-10",
		"approval_expedient_format_2": "2024-01-20",
	}
	assert.True(t, seace.IsStageComplete(catalog.StagePreparatory, fields),
		"S1 completa con sus dos campos requeridos")

	delete(fields, "approval_expedient_format_2")
	assert.False(t, seace.IsStageComplete(catalog.StagePreparatory, fields))
}

func TestIsStageComplete_EspaciosNoCuentan(t *testing.T) {
	fields := seace.FieldSet{
		"request_presentation_date":   "2024-01-10",
		"approval_expedient_format_2": "   ",
	}
	assert.False(t, seace.IsStageComplete(catalog.StagePreparatory, fields),
		"un valor solo de espacios es un campo vacío")
}

// TestIsStageComplete_Monotonia: agregar un campo requerido que faltaba nunca
// vuelve incompleta una etapa completa, y solo la vuelve completa si era el
// último requerido que faltaba.
func TestIsStageComplete_Monotonia(t *testing.T) {
	stage := catalog.StageSelection
	required := catalog.RequiredFields(stage)
	require.Equal(t, []string{"published_at", "appeal_date"}, required)

	fields := seace.FieldSet{}
	assert.False(t, seace.IsStageComplete(stage, fields))

	fields["published_at"] = "2024-02-01"
	assert.False(t, seace.IsStageComplete(stage, fields),
		"falta un requerido, sigue incompleta")

	fields["appeal_date"] = "2024-02-20"
	assert.True(t, seace.IsStageComplete(stage, fields),
		"era el último requerido que faltaba")

	// Agregar un campo opcional no altera la completitud.
	fields["award_date"] = "2024-02-15"
	assert.True(t, seace.IsStageComplete(stage, fields))
}

func TestMissingFields_EtapaNoCreada(t *testing.T) {
	form := seace.TenderForm{}
	got := seace.MissingFields(form, catalog.StageContract)
	assert.Equal(t, []string{seace.MissingStageLabel}, got,
		"sin instancia debe devolver exactamente [etapa no creada], nunca lista vacía")
}

func TestMissingFields_DevuelveEtiquetasLegibles(t *testing.T) {
	form := seace.TenderForm{
		catalog.StageSelection: {"published_at": "2024-02-01"},
	}
	got := seace.MissingFields(form, catalog.StageSelection)
	assert.Equal(t, []string{"Fin de plazo de apelación"}, got)
}

func TestMissingFields_EtapaCompleta(t *testing.T) {
	form := seace.TenderForm{
		catalog.StageContract: {"contract_signing": "2024-05-02"},
	}
	assert.Empty(t, seace.MissingFields(form, catalog.StageContract))
}

func TestCanCreateNextStage_FalsoSinInstancia(t *testing.T) {
	form := seace.TenderForm{}
	assert.False(t, seace.CanCreateNextStage(form, catalog.StagePreparatory),
		"sin instancia de la etapa actual no se autoriza la siguiente, sin importar los campos")
}

func TestCanCreateNextStage_FalsoSiIncompleta(t *testing.T) {
	form := seace.TenderForm{
		catalog.StagePreparatory: {"request_presentation_date": "2024-01-10"},
	}
	assert.False(t, seace.CanCreateNextStage(form, catalog.StagePreparatory))
}

func TestCanCreateNextStage_VerdaderoSiCompleta(t *testing.T) {
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date":   "2024-01-10",
			"approval_expedient_format_2": "2024-01-20",
		},
	}
	assert.True(t, seace.CanCreateNextStage(form, catalog.StagePreparatory))
}

func TestProgressPercentage_SobreCatalogoCompleto(t *testing.T) {
	// S3 tiene 5 campos en catálogo; 2 llenos = 40%.
	fields := seace.FieldSet{
		"contract_signing": "2024-05-02",
		"contract_number":  "CONTRATO-015-2024",
	}
	assert.Equal(t, 40, seace.ProgressPercentage(catalog.StageContract, fields))
}

func TestProgressPercentage_Extremos(t *testing.T) {
	assert.Equal(t, 0, seace.ProgressPercentage(catalog.StageContract, seace.FieldSet{}))

	full := seace.FieldSet{}
	for _, d := range catalog.Fields(catalog.StageContract) {
		full[d.Name] = "x"
	}
	assert.Equal(t, 100, seace.ProgressPercentage(catalog.StageContract, full))
}

func TestStageOrder_Navegacion(t *testing.T) {
	next, ok := catalog.StagePreparatory.Next()
	require.True(t, ok)
	assert.Equal(t, catalog.StageSelection, next)

	_, ok = catalog.StageExecution.Next()
	assert.False(t, ok, "S4 es la última etapa")

	prev, ok := catalog.StageContract.Prev()
	require.True(t, ok)
	assert.Equal(t, catalog.StageSelection, prev)

	_, ok = catalog.StagePreparatory.Prev()
	assert.False(t, ok, "S1 es la primera etapa")
}

func TestRequiredFields_SubconjuntosExactos(t *testing.T) {
	assert.Equal(t, []string{"request_presentation_date", "approval_expedient_format_2"},
		catalog.RequiredFields(catalog.StagePreparatory))
	assert.Equal(t, []string{"published_at", "appeal_date"},
		catalog.RequiredFields(catalog.StageSelection))
	assert.Equal(t, []string{"contract_signing"},
		catalog.RequiredFields(catalog.StageContract))
	assert.Equal(t, []string{"contract_signing", "contract_vigency_date"},
		catalog.RequiredFields(catalog.StageExecution))
}
