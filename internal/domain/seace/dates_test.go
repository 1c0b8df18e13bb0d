package seace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevMartinG/selena-api/internal/domain/seace"
)

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse(seace.DateLayout, value)
	require.NoError(t, err)
	return &d
}

func TestCalendarDays_DiferenciaSimple(t *testing.T) {
	got := seace.CalendarDays(date(t, "2024-01-01"), date(t, "2024-01-10"))
	assert.Equal(t, 9, got, "del 1 al 10 de enero hay 9 días calendario")
}

func TestCalendarDays_MismoDia(t *testing.T) {
	got := seace.CalendarDays(date(t, "2024-03-15"), date(t, "2024-03-15"))
	assert.Equal(t, 0, got)
}

func TestCalendarDays_GuardasDevuelvenCero(t *testing.T) {
	d := date(t, "2024-01-10")
	assert.Equal(t, 0, seace.CalendarDays(nil, d), "inicio ausente debe dar 0")
	assert.Equal(t, 0, seace.CalendarDays(d, nil), "fin ausente debe dar 0")
	assert.Equal(t, 0, seace.CalendarDays(d, date(t, "2024-01-01")), "fin anterior al inicio debe dar 0")
}

func TestCalendarDays_CruceDeMes(t *testing.T) {
	got := seace.CalendarDays(date(t, "2024-02-28"), date(t, "2024-03-01"))
	assert.Equal(t, 2, got, "2024 es bisiesto: 28-feb → 1-mar son 2 días")
}

func TestBusinessDays_SemanaCompleta(t *testing.T) {
	// Lunes 2024-01-01 a domingo 2024-01-07: excluye sábado y domingo.
	got := seace.BusinessDays(date(t, "2024-01-01"), date(t, "2024-01-07"))
	assert.Equal(t, 5, got)
}

func TestBusinessDays_SoloFinDeSemana(t *testing.T) {
	// Sábado 2024-01-06 a domingo 2024-01-07.
	got := seace.BusinessDays(date(t, "2024-01-06"), date(t, "2024-01-07"))
	assert.Equal(t, 0, got)
}

func TestBusinessDays_GuardasDevuelvenCero(t *testing.T) {
	d := date(t, "2024-01-10")
	assert.Equal(t, 0, seace.BusinessDays(nil, d))
	assert.Equal(t, 0, seace.BusinessDays(d, nil))
	assert.Equal(t, 0, seace.BusinessDays(d, date(t, "2024-01-01")))
}

func TestBusinessDays_InclusivoEnAmbosExtremos(t *testing.T) {
	// Lunes a viernes de la misma semana: 5 días hábiles, ambos inclusive.
	got := seace.BusinessDays(date(t, "2024-01-08"), date(t, "2024-01-12"))
	assert.Equal(t, 5, got)
}

func TestAddCalendarDays_Proyeccion(t *testing.T) {
	got := seace.AddCalendarDays(*date(t, "2024-01-01"), 10)
	assert.Equal(t, "2024-01-11", got.Format(seace.DateLayout))
}

func TestAddCalendarDays_CruzaMes(t *testing.T) {
	got := seace.AddCalendarDays(*date(t, "2024-01-25"), 10)
	assert.Equal(t, "2024-02-04", got.Format(seace.DateLayout))
}

func TestParseDate_VacioNoEsError(t *testing.T) {
	d, err := seace.ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d, "valor vacío significa campo sin llenar, no error")
}

func TestParseDate_FormatoInvalido(t *testing.T) {
	_, err := seace.ParseDate("15/03/2024")
	assert.Error(t, err, "solo se acepta el formato 2006-01-02")
}
