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

var _ repository.CustomDeadlineRuleRepository = (*CustomDeadlineRuleRepo)(nil)

// CustomDeadlineRuleRepo implementación del puerto CustomDeadlineRuleRepository
// sobre PostgreSQL. La clave única (tender_id, stage, field_name) garantiza a
// lo más una excepción por campo de un proceso.
type CustomDeadlineRuleRepo struct {
	q Querier
}

// NewCustomDeadlineRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomDeadlineRuleRepository(q Querier) *CustomDeadlineRuleRepo {
	return &CustomDeadlineRuleRepo{q: q}
}

const customRuleColumns = `id, tender_id, stage, field_name, from_stage, from_field, custom_date, evidence_image_key, evidence_pdf_key, description, created_by, created_at, updated_at`

// Create persiste una nueva regla de excepción.
func (r *CustomDeadlineRuleRepo) Create(rule *entity.CustomDeadlineRule) error {
	query := `
		INSERT INTO custom_deadline_rules (` + customRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.TenderID, string(rule.Stage), rule.FieldName,
		string(rule.FromStage), rule.FromField, rule.CustomDate,
		rule.EvidenceImageKey, rule.EvidencePDFKey, rule.Description,
		rule.CreatedBy, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert custom rule: %w", err)
	}
	return nil
}

// GetByID obtiene una excepción por ID (nil si no existe).
func (r *CustomDeadlineRuleRepo) GetByID(id string) (*entity.CustomDeadlineRule, error) {
	query := `SELECT ` + customRuleColumns + ` FROM custom_deadline_rules WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get custom rule")
}

// GetByTenderAndField obtiene la excepción de un campo concreto (nil si no hay).
func (r *CustomDeadlineRuleRepo) GetByTenderAndField(tenderID string, stage seace.Stage, fieldName string) (*entity.CustomDeadlineRule, error) {
	query := `
		SELECT ` + customRuleColumns + `
		FROM custom_deadline_rules
		WHERE tender_id = $1 AND stage = $2 AND field_name = $3`
	return r.scanOne(r.q.QueryRow(context.Background(), query, tenderID, string(stage), fieldName), "get custom rule by field")
}

func (r *CustomDeadlineRuleRepo) scanOne(row pgx.Row, op string) (*entity.CustomDeadlineRule, error) {
	var rule entity.CustomDeadlineRule
	err := row.Scan(
		&rule.ID, &rule.TenderID, &rule.Stage, &rule.FieldName,
		&rule.FromStage, &rule.FromField, &rule.CustomDate,
		&rule.EvidenceImageKey, &rule.EvidencePDFKey, &rule.Description,
		&rule.CreatedBy, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rule, nil
}

// ListByTender lista las excepciones de un proceso.
func (r *CustomDeadlineRuleRepo) ListByTender(tenderID string) ([]*entity.CustomDeadlineRule, error) {
	query := `
		SELECT ` + customRuleColumns + `
		FROM custom_deadline_rules
		WHERE tender_id = $1
		ORDER BY stage ASC, field_name ASC`
	rows, err := r.q.Query(context.Background(), query, tenderID)
	if err != nil {
		return nil, fmt.Errorf("list custom rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomDeadlineRule
	for rows.Next() {
		var rule entity.CustomDeadlineRule
		if err := rows.Scan(
			&rule.ID, &rule.TenderID, &rule.Stage, &rule.FieldName,
			&rule.FromStage, &rule.FromField, &rule.CustomDate,
			&rule.EvidenceImageKey, &rule.EvidencePDFKey, &rule.Description,
			&rule.CreatedBy, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan custom rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update actualiza una excepción existente.
func (r *CustomDeadlineRuleRepo) Update(rule *entity.CustomDeadlineRule) error {
	query := `
		UPDATE custom_deadline_rules
		SET custom_date = $2, evidence_image_key = $3, evidence_pdf_key = $4,
		    description = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.CustomDate, rule.EvidenceImageKey, rule.EvidencePDFKey,
		rule.Description, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update custom rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una excepción por ID.
func (r *CustomDeadlineRuleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM custom_deadline_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete custom rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
