package entity

import (
	"time"

	"github.com/DevMartinG/selena-api/pkg/seace"
)

// Estados de una instancia de etapa.
const (
	StageStatusPending    = "pending"
	StageStatusInProgress = "in_progress"
	StageStatusCompleted  = "completed"
	StageStatusCancelled  = "cancelled"
)

// StageInstance es la materialización de una etapa para un proceso concreto.
// Se crea solo por acción explícita del usuario (nunca implícitamente al crear
// el tender) y posee exactamente un registro de campos de su tipo de etapa.
type StageInstance struct {
	ID        string
	TenderID  string
	Stage     seace.Stage
	Status    string
	Fields    map[string]string // valores por nombre de campo; fechas en 2006-01-02
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldValue devuelve el valor de un campo ("" si la instancia es nil o el
// campo no está registrado).
func (s *StageInstance) FieldValue(name string) string {
	if s == nil || s.Fields == nil {
		return ""
	}
	return s.Fields[name]
}
