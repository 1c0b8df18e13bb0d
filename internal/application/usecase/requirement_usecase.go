package usecase

import (
	"context"

	"github.com/DevMartinG/selena-api/internal/application/dto"
)

// RequirementUseCase consulta de requerimientos al servicio externo SEACE.
// Solo prellenado de la referencia documental; un fallo del servicio externo
// nunca rompe el seguimiento (el llamador lo registra y notifica).
type RequirementUseCase struct {
	lookup RequirementLookup
}

// NewRequirementUseCase construye el caso de uso.
func NewRequirementUseCase(lookup RequirementLookup) *RequirementUseCase {
	return &RequirementUseCase{lookup: lookup}
}

// Lookup busca el requerimiento por año y número.
func (uc *RequirementUseCase) Lookup(ctx context.Context, year int, number string) (*dto.RequirementResponse, error) {
	req, err := uc.lookup.Lookup(ctx, year, number)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	return &dto.RequirementResponse{
		Number:      req.Number,
		Year:        req.Year,
		EntityName:  req.EntityName,
		Description: req.Description,
		DocumentRef: req.DocumentRef,
	}, nil
}
