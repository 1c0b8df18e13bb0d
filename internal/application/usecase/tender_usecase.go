package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/DevMartinG/selena-api/internal/application/dto"
	"github.com/DevMartinG/selena-api/internal/domain"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/internal/domain/repository"
)

// TenderUseCase casos de uso CRUD para procesos de selección.
type TenderUseCase struct {
	repo repository.TenderRepository
}

// NewTenderUseCase construye el caso de uso.
func NewTenderUseCase(repo repository.TenderRepository) *TenderUseCase {
	return &TenderUseCase{repo: repo}
}

// Create registra un proceso nuevo. La nomenclatura es única; ninguna etapa
// se crea implícitamente aquí.
func (uc *TenderUseCase) Create(createdBy string, in dto.CreateTenderRequest) (*dto.TenderResponse, error) {
	if in.Nomenclature == "" || in.EntityName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByNomenclature(in.Nomenclature)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	currency := in.Currency
	if currency == "" {
		currency = "PEN"
	}
	now := time.Now()
	tender := &entity.Tender{
		ID:             uuid.New().String(),
		Nomenclature:   in.Nomenclature,
		EntityName:     in.EntityName,
		Description:    in.Description,
		Currency:       currency,
		EstimatedValue: in.EstimatedValue,
		Status:         entity.TenderStatusActive,
		DocumentRef:    in.DocumentRef,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(tender); err != nil {
		return nil, err
	}
	return toTenderResponse(tender), nil
}

// GetByID obtiene un proceso por ID.
func (uc *TenderUseCase) GetByID(id string) (*dto.TenderResponse, error) {
	tender, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, nil
	}
	return toTenderResponse(tender), nil
}

// Update actualiza los campos descriptivos de un proceso.
func (uc *TenderUseCase) Update(id string, in dto.UpdateTenderRequest) (*dto.TenderResponse, error) {
	tender, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, nil
	}
	if in.EntityName != nil {
		tender.EntityName = *in.EntityName
	}
	if in.Description != nil {
		tender.Description = *in.Description
	}
	if in.Currency != nil {
		tender.Currency = *in.Currency
	}
	if in.EstimatedValue != nil {
		tender.EstimatedValue = *in.EstimatedValue
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.TenderStatusActive, entity.TenderStatusFinished, entity.TenderStatusCancelled:
			tender.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DocumentRef != nil {
		tender.DocumentRef = *in.DocumentRef
	}
	tender.UpdatedAt = time.Now()
	if err := uc.repo.Update(tender); err != nil {
		return nil, err
	}
	return toTenderResponse(tender), nil
}

// List lista procesos paginados.
func (uc *TenderUseCase) List(limit, offset int) (*dto.TenderListResponse, error) {
	tenders, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenderResponse, 0, len(tenders))
	for _, t := range tenders {
		items = append(items, *toTenderResponse(t))
	}
	return &dto.TenderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proceso y, por cascada del esquema, sus etapas y reglas
// de excepción.
func (uc *TenderUseCase) Delete(id string) error {
	tender, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tender == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toTenderResponse(t *entity.Tender) *dto.TenderResponse {
	return &dto.TenderResponse{
		ID:             t.ID,
		Nomenclature:   t.Nomenclature,
		EntityName:     t.EntityName,
		Description:    t.Description,
		Currency:       t.Currency,
		EstimatedValue: t.EstimatedValue,
		Status:         t.Status,
		DocumentRef:    t.DocumentRef,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
