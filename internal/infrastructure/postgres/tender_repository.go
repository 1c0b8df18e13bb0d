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

var _ repository.TenderRepository = (*TenderRepo)(nil)

// TenderRepo implementación del puerto TenderRepository sobre PostgreSQL.
type TenderRepo struct {
	q Querier
}

// NewTenderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTenderRepository(q Querier) *TenderRepo {
	return &TenderRepo{q: q}
}

const tenderColumns = `id, nomenclature, entity_name, description, currency, estimated_value, status, document_ref, created_by, created_at, updated_at`

// Create persiste un nuevo proceso de selección.
func (r *TenderRepo) Create(t *entity.Tender) error {
	query := `
		INSERT INTO tenders (` + tenderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Nomenclature, t.EntityName, t.Description, t.Currency, t.EstimatedValue,
		t.Status, t.DocumentRef, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tender: %w", err)
	}
	return nil
}

// GetByID obtiene un proceso por ID (nil si no existe).
func (r *TenderRepo) GetByID(id string) (*entity.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get tender by id")
}

// GetByNomenclature obtiene un proceso por su nomenclatura exacta.
func (r *TenderRepo) GetByNomenclature(nomenclature string) (*entity.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders WHERE nomenclature = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nomenclature), "get tender by nomenclature")
}

func (r *TenderRepo) scanOne(row pgx.Row, op string) (*entity.Tender, error) {
	var t entity.Tender
	err := row.Scan(
		&t.ID, &t.Nomenclature, &t.EntityName, &t.Description, &t.Currency, &t.EstimatedValue,
		&t.Status, &t.DocumentRef, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

// Update actualiza un proceso existente.
func (r *TenderRepo) Update(t *entity.Tender) error {
	query := `
		UPDATE tenders
		SET nomenclature = $2, entity_name = $3, description = $4, currency = $5,
		    estimated_value = $6, status = $7, document_ref = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		t.ID, t.Nomenclature, t.EntityName, t.Description, t.Currency,
		t.EstimatedValue, t.Status, t.DocumentRef, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista procesos con paginación, los más recientes primero.
func (r *TenderRepo) List(limit, offset int) ([]*entity.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tender
	for rows.Next() {
		var t entity.Tender
		if err := rows.Scan(
			&t.ID, &t.Nomenclature, &t.EntityName, &t.Description, &t.Currency, &t.EstimatedValue,
			&t.Status, &t.DocumentRef, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tender: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un proceso; las etapas y reglas de excepción caen por cascada.
func (r *TenderRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM tenders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tender: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
