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
	ErrUsuarioNotFound    = errors.New("usuario not found")
	ErrRolNotFound        = errors.New("rol not found")
	ErrRolDuplicado       = errors.New("rol ya existe")
	ErrRolYaAsignado      = errors.New("rol ya asignado al usuario")
	ErrAsignacionNotFound = errors.New("asignación de rol not found")
)

type UsuarioService interface {
	Create(idPersona uint, contrasenia string) (*model.Usuario, error)
	GetAll() ([]model.Usuario, error)
	GetByID(id uint) (*model.Usuario, error)
	ChangePassword(id uint, contrasenia string) error
	Delete(id uint) error

	CreateRol(nombre string) (*model.Rol, error)
	GetAllRoles() ([]model.Rol, error)
	GetRolByID(id uint) (*model.Rol, error)
	UpdateRol(id uint, nombre string) (*model.Rol, error)
	DeleteRol(id uint) error

	AssignRol(idUsuario, idRol uint) (*model.RolUsuario, error)
	RemoveRol(idUsuario, idRol uint) error
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	personaRepo repository.PersonaRepository
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository, personaRepo repository.PersonaRepository) UsuarioService {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		personaRepo: personaRepo,
	}
}

func (s *usuarioService) Create(idPersona uint, contrasenia string) (*model.Usuario, error) {
	if _, err := s.personaRepo.FindByID(idPersona); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonaNotFound
		}
		return nil, err
	}

	hash, err := util.HashPassword(contrasenia)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return nil, err
	}

	usuario := &model.Usuario{
		IDPersona:   idPersona,
		Contrasenia: hash,
	}
	if err := s.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}

	logger.Info("Usuario created", map[string]interface{}{
		"id_usuario": usuario.ID,
		"id_persona": idPersona,
	})
	return s.GetByID(usuario.ID)
}

func (s *usuarioService) GetAll() ([]model.Usuario, error) {
	return s.usuarioRepo.FindAll()
}

func (s *usuarioService) GetByID(id uint) (*model.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return usuario, nil
}

func (s *usuarioService) ChangePassword(id uint, contrasenia string) error {
	usuario, err := s.GetByID(id)
	if err != nil {
		return err
	}

	hash, err := util.HashPassword(contrasenia)
	if err != nil {
		return err
	}
	usuario.Contrasenia = hash
	return s.usuarioRepo.Update(usuario)
}

func (s *usuarioService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.usuarioRepo.Delete(id)
}

func (s *usuarioService) CreateRol(nombre string) (*model.Rol, error) {
	nombre = strings.ToLower(strings.TrimSpace(nombre))

	if _, err := s.usuarioRepo.FindRolByNombre(nombre); err == nil {
		return nil, ErrRolDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rol := &model.Rol{Rol: nombre}
	if err := s.usuarioRepo.CreateRol(rol); err != nil {
		return nil, err
	}
	return rol, nil
}

func (s *usuarioService) GetAllRoles() ([]model.Rol, error) {
	return s.usuarioRepo.FindAllRoles()
}

func (s *usuarioService) GetRolByID(id uint) (*model.Rol, error) {
	rol, err := s.usuarioRepo.FindRolByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRolNotFound
		}
		return nil, err
	}
	return rol, nil
}

func (s *usuarioService) UpdateRol(id uint, nombre string) (*model.Rol, error) {
	rol, err := s.GetRolByID(id)
	if err != nil {
		return nil, err
	}
	nombre = strings.ToLower(strings.TrimSpace(nombre))

	if existente, err := s.usuarioRepo.FindRolByNombre(nombre); err == nil {
		if existente.ID != id {
			return nil, ErrRolDuplicado
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rol.Rol = nombre
	if err := s.usuarioRepo.UpdateRol(rol); err != nil {
		return nil, err
	}
	return rol, nil
}

func (s *usuarioService) DeleteRol(id uint) error {
	if _, err := s.GetRolByID(id); err != nil {
		return err
	}
	return s.usuarioRepo.DeleteRol(id)
}

func (s *usuarioService) AssignRol(idUsuario, idRol uint) (*model.RolUsuario, error) {
	if _, err := s.GetByID(idUsuario); err != nil {
		return nil, err
	}
	if _, err := s.GetRolByID(idRol); err != nil {
		return nil, err
	}

	if _, err := s.usuarioRepo.FindAsignacion(idUsuario, idRol); err == nil {
		return nil, ErrRolYaAsignado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	asignacion := &model.RolUsuario{IDUsuario: idUsuario, IDRol: idRol}
	if err := s.usuarioRepo.AssignRol(asignacion); err != nil {
		return nil, err
	}

	logger.Info("Rol assigned to usuario", map[string]interface{}{
		"id_usuario": idUsuario,
		"id_rol":     idRol,
	})
	return asignacion, nil
}

func (s *usuarioService) RemoveRol(idUsuario, idRol uint) error {
	asignacion, err := s.usuarioRepo.FindAsignacion(idUsuario, idRol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAsignacionNotFound
		}
		return err
	}
	return s.usuarioRepo.RemoveAsignacion(asignacion.ID)
}
