package dto

import "time"

// CreateStageRequest creación explícita de una instancia de etapa. La etapa
// anterior debe existir y estar completa (candado de progresión).
type CreateStageRequest struct {
	Stage  string            `json:"stage"` // S1..S4
	Fields map[string]string `json:"fields"`
}

// UpdateStageFieldsRequest guardado de campos de una etapa.
type UpdateStageFieldsRequest struct {
	Fields map[string]string `json:"fields"`
	Status *string           `json:"status"`
}

// RuleOutcomeResponse resultado de una regla evaluada sobre un campo.
type RuleOutcomeResponse struct {
	RuleID        string `json:"rule_id"`
	FromLabel     string `json:"from_label"`
	ToLabel       string `json:"to_label"`
	ElapsedDays   int    `json:"elapsed_days"`
	LegalDays     int    `json:"legal_days,omitempty"`
	Mandatory     bool   `json:"mandatory"`
	Passed        bool   `json:"passed"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	Message       string `json:"message"`
}

// FieldValidationResponse payload de presentación para un campo: estado,
// icono/color y una línea de tooltip por regla.
type FieldValidationResponse struct {
	Status   string                `json:"status"` // compliant | exceeded | not_applicable
	Override bool                  `json:"override"`
	Icon     string                `json:"icon"`
	Color    string                `json:"color"`
	Tooltip  []string              `json:"tooltip"`
	Outcomes []RuleOutcomeResponse `json:"outcomes"`
}

// StageResponse instancia de etapa con su avance, completitud y validaciones.
type StageResponse struct {
	ID            string                             `json:"id"`
	TenderID      string                             `json:"tender_id"`
	Stage         string                             `json:"stage"`
	StageLabel    string                             `json:"stage_label"`
	Status        string                             `json:"status"`
	Fields        map[string]string                  `json:"fields"`
	Progress      int                                `json:"progress"`
	Complete      bool                               `json:"complete"`
	MissingFields []string                           `json:"missing_fields,omitempty"`
	Validation    map[string]FieldValidationResponse `json:"validation"`
	CreatedBy     string                             `json:"created_by"`
	CreatedAt     time.Time                          `json:"created_at"`
	UpdatedAt     time.Time                          `json:"updated_at"`
}

// ValidateFormRequest valida estado de formulario sin guardar (ediciones en
// vivo): campos por etapa tal como están en pantalla.
type ValidateFormRequest struct {
	Stages map[string]map[string]string `json:"stages"` // etapa -> campo -> valor
}

// ValidationReportResponse reporte de validación por etapa y campo.
type ValidationReportResponse struct {
	TenderID string                                        `json:"tender_id"`
	Stages   map[string]map[string]FieldValidationResponse `json:"stages"`
}

// StageSpanResponse duración de una etapa entre sus hitos de frontera.
type StageSpanResponse struct {
	Stage        string `json:"stage"`
	StageLabel   string `json:"stage_label"`
	FromField    string `json:"from_field"`
	ToField      string `json:"to_field"`
	CalendarDays int    `json:"calendar_days"`
	BusinessDays int    `json:"business_days"`
}

// DurationResponse duración agregada del proceso.
type DurationResponse struct {
	TenderID          string              `json:"tender_id"`
	Stages            []StageSpanResponse `json:"stages"`
	TotalCalendarDays int                 `json:"total_calendar_days"`
	TotalBusinessDays int                 `json:"total_business_days"`
}
