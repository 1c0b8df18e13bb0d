package dto

import "time"

// CreateDeadlineRuleRequest alta de regla global de plazo.
type CreateDeadlineRuleRequest struct {
	FromStage   string `json:"from_stage"`
	FromField   string `json:"from_field"`
	ToStage     string `json:"to_stage"`
	ToField     string `json:"to_field"`
	LegalDays   int    `json:"legal_days"`
	IsActive    bool   `json:"is_active"`
	IsMandatory bool   `json:"is_mandatory"`
	Description string `json:"description"`
}

// UpdateDeadlineRuleRequest actualización parcial de regla global.
type UpdateDeadlineRuleRequest struct {
	LegalDays   *int    `json:"legal_days"`
	IsActive    *bool   `json:"is_active"`
	IsMandatory *bool   `json:"is_mandatory"`
	Description *string `json:"description"`
}

// DeadlineRuleResponse regla global con etiquetas legibles.
type DeadlineRuleResponse struct {
	ID          string    `json:"id"`
	FromStage   string    `json:"from_stage"`
	FromField   string    `json:"from_field"`
	FromLabel   string    `json:"from_label"`
	ToStage     string    `json:"to_stage"`
	ToField     string    `json:"to_field"`
	ToLabel     string    `json:"to_label"`
	LegalDays   int       `json:"legal_days"`
	IsActive    bool      `json:"is_active"`
	IsMandatory bool      `json:"is_mandatory"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeadlineRuleListResponse listado paginado de reglas globales.
type DeadlineRuleListResponse struct {
	Items []DeadlineRuleResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreateCustomRuleRequest alta de regla de excepción por proceso. La evidencia
// (imagen obligatoria, PDF opcional) llega como multipart y se pasa aparte.
type CreateCustomRuleRequest struct {
	Stage       string `json:"stage"`
	FieldName   string `json:"field_name"`
	FromStage   string `json:"from_stage"`
	FromField   string `json:"from_field"`
	CustomDate  string `json:"custom_date"` // 2006-01-02
	Description string `json:"description"`
}

// CustomRuleResponse regla de excepción con URLs prefirmadas de evidencia.
type CustomRuleResponse struct {
	ID               string    `json:"id"`
	TenderID         string    `json:"tender_id"`
	Stage            string    `json:"stage"`
	FieldName        string    `json:"field_name"`
	FieldLabel       string    `json:"field_label"`
	FromStage        string    `json:"from_stage"`
	FromField        string    `json:"from_field"`
	FromLabel        string    `json:"from_label"`
	CustomDate       string    `json:"custom_date"`
	EvidenceImageURL string    `json:"evidence_image_url"`
	EvidencePDFURL   string    `json:"evidence_pdf_url,omitempty"`
	Description      string    `json:"description"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
