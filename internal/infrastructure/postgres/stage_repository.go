package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

var _ repository.StageRepository = (*StageRepo)(nil)

// StageRepo implementación del puerto StageRepository sobre PostgreSQL.
// Los campos de la etapa viven en una columna JSONB: el catálogo en pkg/seace
// define los nombres válidos y el esquema no necesita migrar por campo nuevo.
type StageRepo struct {
	q Querier
}

// NewStageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStageRepository(q Querier) *StageRepo {
	return &StageRepo{q: q}
}

const stageColumns = `id, tender_id, stage, status, fields, created_by, created_at, updated_at`

// Create persiste una nueva instancia de etapa. La clave única
// (tender_id, stage) garantiza a lo más una instancia por etapa.
func (r *StageRepo) Create(instance *entity.StageInstance) error {
	query := `
		INSERT INTO stage_instances (` + stageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	fields := instance.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	_, err := r.q.Exec(context.Background(), query,
		instance.ID, instance.TenderID, string(instance.Stage), instance.Status,
		fields, instance.CreatedBy, instance.CreatedAt, instance.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stage instance: %w", err)
	}
	return nil
}

// GetByTenderAndStage obtiene la instancia de una etapa (nil si no fue creada).
func (r *StageRepo) GetByTenderAndStage(tenderID string, stage seace.Stage) (*entity.StageInstance, error) {
	query := `SELECT ` + stageColumns + ` FROM stage_instances WHERE tender_id = $1 AND stage = $2`
	var inst entity.StageInstance
	var stageCode string
	err := r.q.QueryRow(context.Background(), query, tenderID, string(stage)).Scan(
		&inst.ID, &inst.TenderID, &stageCode, &inst.Status, &inst.Fields,
		&inst.CreatedBy, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stage instance: %w", err)
	}
	inst.Stage = seace.Stage(stageCode)
	return &inst, nil
}

// ListByTender lista las instancias creadas de un proceso en orden de etapa.
func (r *StageRepo) ListByTender(tenderID string) ([]*entity.StageInstance, error) {
	query := `SELECT ` + stageColumns + ` FROM stage_instances WHERE tender_id = $1 ORDER BY stage ASC`
	rows, err := r.q.Query(context.Background(), query, tenderID)
	if err != nil {
		return nil, fmt.Errorf("list stage instances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StageInstance
	for rows.Next() {
		var inst entity.StageInstance
		var stageCode string
		if err := rows.Scan(
			&inst.ID, &inst.TenderID, &stageCode, &inst.Status, &inst.Fields,
			&inst.CreatedBy, &inst.CreatedAt, &inst.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stage instance: %w", err)
		}
		inst.Stage = seace.Stage(stageCode)
		list = append(list, &inst)
	}
	return list, rows.Err()
}

// UpdateFields reemplaza el registro de campos completo de la instancia.
func (r *StageRepo) UpdateFields(id string, fields map[string]string) error {
	if fields == nil {
		fields = map[string]string{}
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stage_instances SET fields = $2, updated_at = now() WHERE id = $1`, id, fields)
	if err != nil {
		return fmt.Errorf("update stage fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado de la instancia.
func (r *StageRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stage_instances SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update stage status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
