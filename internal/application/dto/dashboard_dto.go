package dto

// DashboardResponse agregados del panel de seguimiento.
type DashboardResponse struct {
	TotalTenders    int            `json:"total_tenders"`
	ActiveTenders   int            `json:"active_tenders"`
	TendersByStatus map[string]int `json:"tenders_by_status"`
	StagesByType    map[string]int `json:"stages_by_type"`
	StagesByStatus  map[string]int `json:"stages_by_status"`
	// Promedios en días calendario sobre los procesos con etapas creadas.
	AvgStageDays map[string]float64 `json:"avg_stage_days"`
	AvgTotalDays float64            `json:"avg_total_days"`
}
