package usecase

import (
	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// DashboardUseCase agregados del panel de seguimiento.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve los conteos del panel.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	counts, err := uc.repo.Counts()
	if err != nil {
		return nil, err
	}
	stagesByType := make(map[string]int, len(counts.StagesByType))
	for stage, n := range counts.StagesByType {
		stagesByType[string(stage)] = n
	}

	forms, err := uc.repo.StageForms()
	if err != nil {
		return nil, err
	}
	avgStage, avgTotal := averageDurations(forms)

	return &dto.DashboardResponse{
		TotalTenders:    counts.TotalTenders,
		ActiveTenders:   counts.ActiveTenders,
		TendersByStatus: counts.TendersByStatus,
		StagesByType:    stagesByType,
		StagesByStatus:  counts.StagesByStatus,
		AvgStageDays:    avgStage,
		AvgTotalDays:    avgTotal,
	}, nil
}

// averageDurations promedia, sobre los procesos con etapas creadas, los días
// calendario por etapa y el total. Las etapas sin hitos aportan 0, igual que
// en el detalle por proceso.
func averageDurations(forms map[string]map[seace.Stage]map[string]string) (map[string]float64, float64) {
	if len(forms) == 0 {
		return map[string]float64{}, 0
	}
	stageSums := map[string]int{}
	totalSum := 0
	for _, stages := range forms {
		form := domseace.TenderForm{}
		for stage, fields := range stages {
			form[stage] = fields
		}
		summary := domseace.DurationRollup(form)
		for _, span := range summary.Stages {
			stageSums[string(span.Stage)] += span.CalendarDays
		}
		totalSum += summary.TotalCalendarDays
	}
	n := float64(len(forms))
	avgStage := make(map[string]float64, len(stageSums))
	for stage, sum := range stageSums {
		avgStage[stage] = float64(sum) / n
	}
	return avgStage, float64(totalSum) / n
}
