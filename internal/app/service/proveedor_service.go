package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

var ErrProveedorNotFound = errors.New("proveedor not found")

// ProveedorUpdateInput carries a partial update. Nil fields keep their
// stored value.
type ProveedorUpdateInput struct {
	NombreEmpresa *string
	Telefono      *string
	RazonSocial   *string
	Direccion     *string
}

type ProveedorService interface {
	Create(proveedor *model.Proveedor) error
	GetAll() ([]model.Proveedor, error)
	GetByID(id uint) (*model.Proveedor, error)
	Update(id uint, input ProveedorUpdateInput) (*model.Proveedor, error)
	Delete(id uint) error
}

type proveedorService struct {
	proveedorRepo repository.ProveedorRepository
}

func NewProveedorService(proveedorRepo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{proveedorRepo: proveedorRepo}
}

func (s *proveedorService) Create(proveedor *model.Proveedor) error {
	return s.proveedorRepo.Create(proveedor)
}

func (s *proveedorService) GetAll() ([]model.Proveedor, error) {
	return s.proveedorRepo.FindAll()
}

func (s *proveedorService) GetByID(id uint) (*model.Proveedor, error) {
	proveedor, err := s.proveedorRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNotFound
		}
		return nil, err
	}
	return proveedor, nil
}

func (s *proveedorService) Update(id uint, input ProveedorUpdateInput) (*model.Proveedor, error) {
	proveedor, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.NombreEmpresa != nil {
		proveedor.NombreEmpresa = *input.NombreEmpresa
	}
	if input.Telefono != nil {
		proveedor.Telefono = *input.Telefono
	}
	if input.RazonSocial != nil {
		proveedor.RazonSocial = *input.RazonSocial
	}
	if input.Direccion != nil {
		proveedor.Direccion = *input.Direccion
	}

	if err := s.proveedorRepo.Update(proveedor); err != nil {
		return nil, err
	}
	return proveedor, nil
}

func (s *proveedorService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.proveedorRepo.Delete(id)
}
