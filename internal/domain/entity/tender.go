package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de seguimiento de un proceso de selección.
const (
	TenderStatusActive    = "en_seguimiento" // Proceso en curso
	TenderStatusFinished  = "concluido"      // Todas las etapas cerradas
	TenderStatusCancelled = "cancelado"      // Proceso cancelado o declarado desierto
)

// Tender representa un proceso de selección (SEACE) bajo seguimiento.
// Es el agregado raíz: posee cero o más StageInstance, a lo más una por etapa.
type Tender struct {
	ID             string
	Nomenclature   string // Nomenclatura del proceso, ej. "LP-SM-5-2024-GRSM/CS-1"
	EntityName     string // Entidad convocante
	Description    string // Objeto de la contratación
	Currency       string // "PEN" | "USD"
	EstimatedValue decimal.Decimal
	Status         string
	DocumentRef    string // Referencia del requerimiento (prellenado vía consulta SEACE)
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
