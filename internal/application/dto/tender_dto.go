package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTenderRequest alta de un proceso de selección.
type CreateTenderRequest struct {
	Nomenclature   string          `json:"nomenclature"`
	EntityName     string          `json:"entity_name"`
	Description    string          `json:"description"`
	Currency       string          `json:"currency"` // PEN | USD
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	DocumentRef    string          `json:"document_ref"`
}

// UpdateTenderRequest actualización parcial de un proceso.
type UpdateTenderRequest struct {
	EntityName     *string          `json:"entity_name"`
	Description    *string          `json:"description"`
	Currency       *string          `json:"currency"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	Status         *string          `json:"status"`
	DocumentRef    *string          `json:"document_ref"`
}

// TenderResponse representación de un proceso de selección.
type TenderResponse struct {
	ID             string          `json:"id"`
	Nomenclature   string          `json:"nomenclature"`
	EntityName     string          `json:"entity_name"`
	Description    string          `json:"description"`
	Currency       string          `json:"currency"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Status         string          `json:"status"`
	DocumentRef    string          `json:"document_ref"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TenderListResponse listado paginado de procesos.
type TenderListResponse struct {
	Items []TenderResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// RequirementResponse resultado de la consulta externa de requerimiento SEACE.
type RequirementResponse struct {
	Number      string `json:"number"`
	Year        int    `json:"year"`
	EntityName  string `json:"entity_name"`
	Description string `json:"description"`
	DocumentRef string `json:"document_ref"`
}
