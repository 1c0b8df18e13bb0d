package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

type fakeDashboardRepo struct {
	counts *repository.DashboardCounts
	forms  map[string]map[seace.Stage]map[string]string
}

func (f *fakeDashboardRepo) Counts() (*repository.DashboardCounts, error) {
	return f.counts, nil
}

func (f *fakeDashboardRepo) StageForms() (map[string]map[seace.Stage]map[string]string, error) {
	return f.forms, nil
}

func TestDashboard_ConteosYPromedios(t *testing.T) {
	repo := &fakeDashboardRepo{
		counts: &repository.DashboardCounts{
			TendersByStatus: map[string]int{"active": 2, "finished": 1},
			StagesByType:    map[seace.Stage]int{seace.StagePreparatory: 3, seace.StageSelection: 1},
			StagesByStatus:  map[string]int{"complete": 2, "in_progress": 2},
			ActiveTenders:   2,
			TotalTenders:    3,
		},
		forms: map[string]map[seace.Stage]map[string]string{
			// S1 del 01 al 11 de enero: 10 días calendario.
			"t1": {seace.StagePreparatory: {
				"request_presentation_date": "2024-01-01",
				"approval_expedient_format_2": "2024-01-11",
			}},
			// S1 del 01 al 21 de enero: 20 días calendario.
			"t2": {seace.StagePreparatory: {
				"request_presentation_date": "2024-01-01",
				"approval_expedient_format_2": "2024-01-21",
			}},
		},
	}

	uc := usecase.NewDashboardUseCase(repo)
	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalTenders)
	assert.Equal(t, 2, out.ActiveTenders)
	assert.Equal(t, map[string]int{"S1": 3, "S2": 1}, out.StagesByType)
	assert.InDelta(t, 15.0, out.AvgStageDays["S1"], 0.001, "promedio de (10+20)/2 procesos")
	assert.InDelta(t, 15.0, out.AvgTotalDays, 0.001)
}

func TestDashboard_SinEtapasPromediaCero(t *testing.T) {
	repo := &fakeDashboardRepo{
		counts: &repository.DashboardCounts{
			TendersByStatus: map[string]int{},
			StagesByType:    map[seace.Stage]int{},
			StagesByStatus:  map[string]int{},
		},
		forms: map[string]map[seace.Stage]map[string]string{},
	}

	uc := usecase.NewDashboardUseCase(repo)
	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Empty(t, out.AvgStageDays)
	assert.Zero(t, out.AvgTotalDays)
}
