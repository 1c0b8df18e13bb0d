package postgres

import (
	"context"
	"fmt"

	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para el panel de seguimiento.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de agregados del panel.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counts calcula los conteos del panel en tres consultas de agregación.
func (r *DashboardRepo) Counts() (*repository.DashboardCounts, error) {
	counts := &repository.DashboardCounts{
		TendersByStatus: map[string]int{},
		StagesByType:    map[seace.Stage]int{},
		StagesByStatus:  map[string]int{},
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT status, count(*) FROM tenders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count tenders by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan tender count: %w", err)
		}
		counts.TendersByStatus[status] = n
		counts.TotalTenders += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	counts.ActiveTenders = counts.TendersByStatus[entity.TenderStatusActive]

	stageRows, err := r.q.Query(context.Background(),
		`SELECT stage, count(*) FROM stage_instances GROUP BY stage`)
	if err != nil {
		return nil, fmt.Errorf("count stages by type: %w", err)
	}
	defer stageRows.Close()
	for stageRows.Next() {
		var stage string
		var n int
		if err := stageRows.Scan(&stage, &n); err != nil {
			return nil, fmt.Errorf("scan stage count: %w", err)
		}
		counts.StagesByType[seace.Stage(stage)] = n
	}
	if err := stageRows.Err(); err != nil {
		return nil, err
	}

	statusRows, err := r.q.Query(context.Background(),
		`SELECT status, count(*) FROM stage_instances GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count stages by status: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var status string
		var n int
		if err := statusRows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan stage status count: %w", err)
		}
		counts.StagesByStatus[status] = n
	}
	return counts, statusRows.Err()
}

// StageForms carga los campos de todas las etapas agrupados por proceso.
func (r *DashboardRepo) StageForms() (map[string]map[seace.Stage]map[string]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT tender_id, stage, fields FROM stage_instances`)
	if err != nil {
		return nil, fmt.Errorf("load stage forms: %w", err)
	}
	defer rows.Close()

	forms := map[string]map[seace.Stage]map[string]string{}
	for rows.Next() {
		var tenderID, stage string
		var fields map[string]string
		if err := rows.Scan(&tenderID, &stage, &fields); err != nil {
			return nil, fmt.Errorf("scan stage form: %w", err)
		}
		if fields == nil {
			fields = map[string]string{}
		}
		if forms[tenderID] == nil {
			forms[tenderID] = map[seace.Stage]map[string]string{}
		}
		forms[tenderID][seace.Stage(stage)] = fields
	}
	return forms, rows.Err()
}
