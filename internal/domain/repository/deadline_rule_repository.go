package repository

import (
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// DeadlineRuleRepository define el puerto de persistencia para las reglas
// globales de plazo (DIP). Las reglas nunca se eliminan automáticamente; el
// administrador las desactiva.
type DeadlineRuleRepository interface {
	Create(rule *entity.DeadlineRule) error
	GetByID(id string) (*entity.DeadlineRule, error)
	Update(rule *entity.DeadlineRule) error
	List(limit, offset int) ([]*entity.DeadlineRule, error)
	// ListActive devuelve todas las reglas activas; el validador filtra por
	// destino en memoria (los conjuntos son de un solo dígito).
	ListActive() ([]*entity.DeadlineRule, error)
	Delete(id string) error
}

// CustomDeadlineRuleRepository define el puerto para las reglas de excepción
// por proceso (DIP). Única por (tender, etapa, campo).
type CustomDeadlineRuleRepository interface {
	Create(rule *entity.CustomDeadlineRule) error
	GetByID(id string) (*entity.CustomDeadlineRule, error)
	GetByTenderAndField(tenderID string, stage seace.Stage, fieldName string) (*entity.CustomDeadlineRule, error)
	ListByTender(tenderID string) ([]*entity.CustomDeadlineRule, error)
	Update(rule *entity.CustomDeadlineRule) error
	Delete(id string) error
}
