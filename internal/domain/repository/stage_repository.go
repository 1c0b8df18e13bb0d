package repository

import (
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/pkg/seace"
)

// StageRepository define el puerto de persistencia para StageInstance (DIP).
// Una instancia por (tender, etapa); la clave única la garantiza el esquema.
type StageRepository interface {
	Create(instance *entity.StageInstance) error
	GetByTenderAndStage(tenderID string, stage seace.Stage) (*entity.StageInstance, error)
	ListByTender(tenderID string) ([]*entity.StageInstance, error)
	UpdateFields(id string, fields map[string]string) error
	UpdateStatus(id string, status string) error
}
