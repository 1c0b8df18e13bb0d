package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
)

var _ repository.DeadlineRuleRepository = (*DeadlineRuleRepo)(nil)

// DeadlineRuleRepo implementación del puerto DeadlineRuleRepository sobre PostgreSQL.
type DeadlineRuleRepo struct {
	q Querier
}

// NewDeadlineRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeadlineRuleRepository(q Querier) *DeadlineRuleRepo {
	return &DeadlineRuleRepo{q: q}
}

const ruleColumns = `id, from_stage, from_field, to_stage, to_field, legal_days, is_active, is_mandatory, description, created_at, updated_at`

// Create persiste una nueva regla global de plazo.
func (r *DeadlineRuleRepo) Create(rule *entity.DeadlineRule) error {
	query := `
		INSERT INTO deadline_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, string(rule.FromStage), rule.FromField, string(rule.ToStage), rule.ToField,
		rule.LegalDays, rule.IsActive, rule.IsMandatory, rule.Description,
		rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deadline rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID (nil si no existe).
func (r *DeadlineRuleRepo) GetByID(id string) (*entity.DeadlineRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM deadline_rules WHERE id = $1`
	var rule entity.DeadlineRule
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rule.ID, &rule.FromStage, &rule.FromField, &rule.ToStage, &rule.ToField,
		&rule.LegalDays, &rule.IsActive, &rule.IsMandatory, &rule.Description,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deadline rule: %w", err)
	}
	return &rule, nil
}

// Update actualiza una regla existente.
func (r *DeadlineRuleRepo) Update(rule *entity.DeadlineRule) error {
	query := `
		UPDATE deadline_rules
		SET legal_days = $2, is_active = $3, is_mandatory = $4, description = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.LegalDays, rule.IsActive, rule.IsMandatory, rule.Description, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update deadline rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista reglas con paginación, activas primero.
func (r *DeadlineRuleRepo) List(limit, offset int) ([]*entity.DeadlineRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM deadline_rules
		ORDER BY is_active DESC, to_stage ASC, to_field ASC
		LIMIT $1 OFFSET $2`
	return r.queryRules(query, limit, offset)
}

// ListActive devuelve todas las reglas activas.
func (r *DeadlineRuleRepo) ListActive() ([]*entity.DeadlineRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM deadline_rules
		WHERE is_active = true
		ORDER BY to_stage ASC, to_field ASC`
	return r.queryRules(query)
}

func (r *DeadlineRuleRepo) queryRules(query string, args ...any) ([]*entity.DeadlineRule, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deadline rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeadlineRule
	for rows.Next() {
		var rule entity.DeadlineRule
		if err := rows.Scan(
			&rule.ID, &rule.FromStage, &rule.FromField, &rule.ToStage, &rule.ToField,
			&rule.LegalDays, &rule.IsActive, &rule.IsMandatory, &rule.Description,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deadline rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Delete elimina una regla por ID.
func (r *DeadlineRuleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM deadline_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deadline rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
