package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

var ErrClienteNotFound = errors.New("cliente not found")

// ClienteUpdateInput carries a partial update. Nil fields keep their
// stored value.
type ClienteUpdateInput struct {
	IDComuna    *uint
	Direccion   *string
	NombreLocal *string
	RazonSocial *string
	Giro        *string
	Mora        *bool
}

type ClienteService interface {
	Create(cliente *model.Cliente) error
	GetAll(filter repository.ClienteFilter) ([]model.Cliente, error)
	GetByID(id uint) (*model.Cliente, error)
	Update(id uint, input ClienteUpdateInput) (*model.Cliente, error)
	Delete(id uint) error
}

type clienteService struct {
	clienteRepo repository.ClienteRepository
	personaRepo repository.PersonaRepository
	geoRepo     repository.GeoRepository
}

func NewClienteService(
	clienteRepo repository.ClienteRepository,
	personaRepo repository.PersonaRepository,
	geoRepo repository.GeoRepository,
) ClienteService {
	return &clienteService{
		clienteRepo: clienteRepo,
		personaRepo: personaRepo,
		geoRepo:     geoRepo,
	}
}

func (s *clienteService) Create(cliente *model.Cliente) error {
	if _, err := s.personaRepo.FindByID(cliente.IDPersona); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPersonaNotFound
		}
		return err
	}
	if _, err := s.geoRepo.FindComunaByID(cliente.IDComuna); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComunaNotFound
		}
		return err
	}

	if err := s.clienteRepo.Create(cliente); err != nil {
		return err
	}

	logger.Info("Cliente created", map[string]interface{}{
		"id_cliente": cliente.ID,
		"id_persona": cliente.IDPersona,
	})
	return nil
}

func (s *clienteService) GetAll(filter repository.ClienteFilter) ([]model.Cliente, error) {
	return s.clienteRepo.FindAll(filter)
}

func (s *clienteService) GetByID(id uint) (*model.Cliente, error) {
	cliente, err := s.clienteRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) Update(id uint, input ClienteUpdateInput) (*model.Cliente, error) {
	cliente, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.IDComuna != nil {
		if _, err := s.geoRepo.FindComunaByID(*input.IDComuna); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrComunaNotFound
			}
			return nil, err
		}
		cliente.IDComuna = *input.IDComuna
	}
	if input.Direccion != nil {
		cliente.Direccion = *input.Direccion
	}
	if input.NombreLocal != nil {
		cliente.NombreLocal = *input.NombreLocal
	}
	if input.RazonSocial != nil {
		cliente.RazonSocial = *input.RazonSocial
	}
	if input.Giro != nil {
		cliente.Giro = *input.Giro
	}
	if input.Mora != nil {
		cliente.Mora = *input.Mora
	}

	if err := s.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *clienteService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.clienteRepo.Delete(id)
}
