package repository

import "github.com/DevMartinG/selena-api/pkg/seace"

// DashboardCounts agregados para el panel de seguimiento.
type DashboardCounts struct {
	TendersByStatus map[string]int
	StagesByType    map[seace.Stage]int
	StagesByStatus  map[string]int
	ActiveTenders   int
	TotalTenders    int
}

// DashboardRepository define el puerto de consultas agregadas para el panel.
type DashboardRepository interface {
	Counts() (*DashboardCounts, error)
	// StageForms devuelve los campos persistidos de cada etapa, agrupados por
	// proceso. Alimenta el promedio de duraciones del panel.
	StageForms() (map[string]map[seace.Stage]map[string]string, error)
}
