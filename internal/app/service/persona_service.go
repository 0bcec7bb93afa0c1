package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
	"github.com/somap/somap-backend/pkg/util"
)

var (
	ErrPersonaNotFound = errors.New("persona not found")
	ErrRutDuplicado    = errors.New("rut ya está registrado")
	ErrEmailDuplicado  = errors.New("email ya está registrado")
	ErrRutInvalido     = errors.New("rut inválido")
)

// PersonaUpdateInput carries a partial update. Nil fields keep their
// stored value.
type PersonaUpdateInput struct {
	Nombre          *string
	PrimerApellido  *string
	SegundoApellido *string
	Email           *string
	Telefono        *string
}

type PersonaService interface {
	Create(persona *model.Persona) error
	GetAll() ([]model.Persona, error)
	GetByID(id uint) (*model.Persona, error)
	GetByRut(rut string) (*model.Persona, error)
	Search(filter repository.PersonaSearchFilter) ([]model.Persona, error)
	Count() (int64, error)
	Update(id uint, input PersonaUpdateInput) (*model.Persona, error)
	Delete(id uint) error
}

type personaService struct {
	personaRepo repository.PersonaRepository
}

func NewPersonaService(personaRepo repository.PersonaRepository) PersonaService {
	return &personaService{personaRepo: personaRepo}
}

func (s *personaService) Create(persona *model.Persona) error {
	persona.Rut = util.NormalizeRut(persona.Rut)
	if !util.ValidateRut(persona.Rut) {
		return ErrRutInvalido
	}
	persona.Email = strings.ToLower(strings.TrimSpace(persona.Email))

	if _, err := s.personaRepo.FindByRut(persona.Rut); err == nil {
		return ErrRutDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if persona.Email != "" {
		if _, err := s.personaRepo.FindByEmail(persona.Email); err == nil {
			return ErrEmailDuplicado
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if err := s.personaRepo.Create(persona); err != nil {
		return err
	}

	logger.Info("Persona created", map[string]interface{}{
		"id_persona": persona.ID,
		"rut":        persona.Rut,
	})
	return nil
}

func (s *personaService) GetAll() ([]model.Persona, error) {
	return s.personaRepo.FindAll()
}

func (s *personaService) GetByID(id uint) (*model.Persona, error) {
	persona, err := s.personaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}
	return persona, nil
}

func (s *personaService) GetByRut(rut string) (*model.Persona, error) {
	persona, err := s.personaRepo.FindByRut(util.NormalizeRut(rut))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}
	return persona, nil
}

func (s *personaService) Search(filter repository.PersonaSearchFilter) ([]model.Persona, error) {
	return s.personaRepo.Search(filter)
}

func (s *personaService) Count() (int64, error) {
	return s.personaRepo.Count()
}

func (s *personaService) Update(id uint, input PersonaUpdateInput) (*model.Persona, error) {
	persona, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Nombre != nil {
		persona.Nombre = *input.Nombre
	}
	if input.PrimerApellido != nil {
		persona.PrimerApellido = *input.PrimerApellido
	}
	if input.SegundoApellido != nil {
		persona.SegundoApellido = *input.SegundoApellido
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != persona.Email && email != "" {
			if existing, err := s.personaRepo.FindByEmail(email); err == nil && existing.ID != id {
				return nil, ErrEmailDuplicado
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		persona.Email = email
	}
	if input.Telefono != nil {
		persona.Telefono = *input.Telefono
	}

	if err := s.personaRepo.Update(persona); err != nil {
		return nil, err
	}
	return persona, nil
}

func (s *personaService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.personaRepo.Delete(id)
}
