package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

type UsuarioRepository interface {
	Create(usuario *model.Usuario) error
	FindAll() ([]model.Usuario, error)
	FindByID(id uint) (*model.Usuario, error)
	FindByPersonaRut(rut string) (*model.Usuario, error)
	Update(usuario *model.Usuario) error
	Delete(id uint) error

	CreateRol(rol *model.Rol) error
	FindAllRoles() ([]model.Rol, error)
	FindRolByID(id uint) (*model.Rol, error)
	FindRolByNombre(nombre string) (*model.Rol, error)
	UpdateRol(rol *model.Rol) error
	DeleteRol(id uint) error

	AssignRol(asignacion *model.RolUsuario) error
	FindAsignacion(idUsuario, idRol uint) (*model.RolUsuario, error)
	FindAsignacionesByUsuario(idUsuario uint) ([]model.RolUsuario, error)
	RemoveAsignacion(id uint) error
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(usuario *model.Usuario) error {
	if err := r.db.Create(usuario).Error; err != nil {
		logger.Error("Failed to create usuario in database", err, map[string]interface{}{
			"id_persona": usuario.IDPersona,
		})
		return err
	}
	return nil
}

func (r *usuarioRepository) FindAll() ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.Preload("Persona").Preload("Roles.Rol").Find(&usuarios).Error
	if err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) FindByID(id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.Preload("Persona").Preload("Roles.Rol").First(&usuario, id).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// FindByPersonaRut resolves the login account through the personas
// table, eager-loading the role assignments the token needs.
func (r *usuarioRepository) FindByPersonaRut(rut string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.
		Joins("JOIN personas ON personas.id_persona = usuarios.id_persona").
		Where("personas.rut_persona = ?", rut).
		Preload("Persona").
		Preload("Roles.Rol").
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Update(usuario *model.Usuario) error {
	return r.db.Save(usuario).Error
}

func (r *usuarioRepository) Delete(id uint) error {
	return r.db.Delete(&model.Usuario{}, id).Error
}

func (r *usuarioRepository) CreateRol(rol *model.Rol) error {
	if err := r.db.Create(rol).Error; err != nil {
		logger.Error("Failed to create rol in database", err, map[string]interface{}{
			"rol": rol.Rol,
		})
		return err
	}
	return nil
}

func (r *usuarioRepository) FindAllRoles() ([]model.Rol, error) {
	var roles []model.Rol
	if err := r.db.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *usuarioRepository) FindRolByID(id uint) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.First(&rol, id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *usuarioRepository) FindRolByNombre(nombre string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.Where("rol = ?", nombre).First(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *usuarioRepository) UpdateRol(rol *model.Rol) error {
	return r.db.Save(rol).Error
}

func (r *usuarioRepository) DeleteRol(id uint) error {
	return r.db.Delete(&model.Rol{}, id).Error
}

func (r *usuarioRepository) AssignRol(asignacion *model.RolUsuario) error {
	return r.db.Create(asignacion).Error
}

func (r *usuarioRepository) FindAsignacion(idUsuario, idRol uint) (*model.RolUsuario, error) {
	var asignacion model.RolUsuario
	err := r.db.Where("id_usuario = ? AND id_rol = ?", idUsuario, idRol).First(&asignacion).Error
	if err != nil {
		return nil, err
	}
	return &asignacion, nil
}

func (r *usuarioRepository) FindAsignacionesByUsuario(idUsuario uint) ([]model.RolUsuario, error) {
	var asignaciones []model.RolUsuario
	err := r.db.Where("id_usuario = ?", idUsuario).Preload("Rol").Find(&asignaciones).Error
	if err != nil {
		return nil, err
	}
	return asignaciones, nil
}

func (r *usuarioRepository) RemoveAsignacion(id uint) error {
	return r.db.Delete(&model.RolUsuario{}, id).Error
}
