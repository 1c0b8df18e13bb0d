package repository

import "github.com/DevMartinG/selena-api/internal/domain/entity"

// TenderRepository define el puerto de persistencia para Tender (DIP).
type TenderRepository interface {
	Create(tender *entity.Tender) error
	GetByID(id string) (*entity.Tender, error)
	GetByNomenclature(nomenclature string) (*entity.Tender, error)
	Update(tender *entity.Tender) error
	List(limit, offset int) ([]*entity.Tender, error)
	Delete(id string) error
}
