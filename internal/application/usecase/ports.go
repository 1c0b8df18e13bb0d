package usecase

import (
	"context"
	"io"

	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El candado de progresión de etapas lee el
// estado persistido y crea la instancia dentro de la misma transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(stageRepo repository.StageRepository) error) error
}

// EvidenceStore puerto de almacenamiento de objetos para la evidencia de las
// reglas de excepción (imagen obligatoria, PDF opcional).
type EvidenceStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}

// RequirementLookup puerto de consulta al servicio externo de requerimientos
// (SEACE/OSCE). Los fallos son no fatales: se registran y se notifican.
type RequirementLookup interface {
	Lookup(ctx context.Context, year int, number string) (*entity.Requirement, error)
}

// TrackingSheetData datos para la ficha de seguimiento en PDF.
type TrackingSheetData struct {
	Tender   *entity.Tender
	Stages   []*entity.StageInstance
	Report   map[string]map[string]string // etapa -> campo -> estado de validación
	Duration DurationData
}

// DurationData duración agregada para la ficha.
type DurationData struct {
	TotalCalendarDays int
	TotalBusinessDays int
	PerStage          map[string]int // etapa -> días calendario
}

// TrackingSheetGenerator puerto de generación del PDF de la ficha de
// seguimiento de un proceso.
type TrackingSheetGenerator interface {
	GenerateTrackingSheet(ctx context.Context, data TrackingSheetData) ([]byte, error)
}
