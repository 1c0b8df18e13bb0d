package seace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevMartinG/selena-api/internal/domain/seace"
	catalog "github.com/DevMartinG/selena-api/pkg/seace"
)

func TestDurationRollup_ProcesoCompleto(t *testing.T) {
	form := seace.TenderForm{
		catalog.StagePreparatory: {
			"request_presentation_date":   "2024-01-01",
			"approval_expedient_format_2": "2024-01-11", // 10 días calendario
		},
		catalog.StageSelection: {
			"published_at": "2024-02-01",
			"appeal_date":  "2024-02-21", // 20 días calendario
		},
		catalog.StageContract: {
			"contract_signing": "2024-03-01", // S3 arranca en appeal_date de S2: 9 días
		},
		catalog.StageExecution: {
			"contract_signing":      "2024-03-01",
			"contract_vigency_date": "2024-03-31", // 30 días calendario
		},
	}

	got := seace.DurationRollup(form)

	require.Len(t, got.Stages, 4)
	assert.Equal(t, 10, got.Stages[0].CalendarDays)
	assert.Equal(t, 20, got.Stages[1].CalendarDays)
	assert.Equal(t, 9, got.Stages[2].CalendarDays, "S3 se mide desde appeal_date de S2")
	assert.Equal(t, 30, got.Stages[3].CalendarDays)
	assert.Equal(t, 69, got.TotalCalendarDays)

	// Cada tramo aporta también su conteo en días hábiles (lunes a viernes,
	// ambos extremos inclusive).
	assert.Equal(t, 9, got.Stages[0].BusinessDays)
	assert.Equal(t, 15, got.Stages[1].BusinessDays)
	assert.Equal(t, 8, got.Stages[2].BusinessDays)
	assert.Equal(t, 21, got.Stages[3].BusinessDays)
	assert.Equal(t, 53, got.TotalBusinessDays)
}

func TestDurationRollup_FronteraDeS3(t *testing.T) {
	got := seace.DurationRollup(seace.TenderForm{})
	s3 := got.Stages[2]
	assert.Equal(t, catalog.StageContract, s3.Stage)
	assert.Equal(t, "appeal_date", s3.FromField)
	assert.Equal(t, "contract_signing", s3.ToField)
}

func TestDurationRollup_EtapaSinHitosAportaCero(t *testing.T) {
	form := seace.TenderForm{
		catalog.StageSelection: {
			"published_at": "2024-02-01",
			"appeal_date":  "2024-02-21",
		},
	}

	got := seace.DurationRollup(form)

	assert.Equal(t, 0, got.Stages[0].CalendarDays, "S1 sin hitos aporta 0")
	assert.Equal(t, 20, got.Stages[1].CalendarDays)
	assert.Equal(t, 0, got.Stages[2].CalendarDays, "S3 sin contract_signing aporta 0")
	assert.Equal(t, 0, got.Stages[3].CalendarDays)
	assert.Equal(t, 20, got.TotalCalendarDays)
}

func TestDurationRollup_FinAnteriorAlInicioAportaCero(t *testing.T) {
	form := seace.TenderForm{
		catalog.StageSelection: {
			"published_at": "2024-02-21",
			"appeal_date":  "2024-02-01",
		},
	}

	got := seace.DurationRollup(form)
	assert.Equal(t, 0, got.TotalCalendarDays, "nunca valores negativos, siempre guardado")
}

func TestDurationRollup_FechaInvalidaAportaCero(t *testing.T) {
	form := seace.TenderForm{
		catalog.StageSelection: {
			"published_at": "01-02-2024",
			"appeal_date":  "2024-02-21",
		},
	}

	got := seace.DurationRollup(form)
	assert.Equal(t, 0, got.Stages[1].CalendarDays)
}
