package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/pkg/validation"
)

type UsuarioController struct {
	usuarioService service.UsuarioService
}

func NewUsuarioController(usuarioService service.UsuarioService) *UsuarioController {
	return &UsuarioController{usuarioService: usuarioService}
}

type CreateUsuarioRequest struct {
	IDPersona   uint   `json:"id_persona" binding:"required"`
	Contrasenia string `json:"contrasenia" binding:"required,min=8"`
}

type ChangePasswordRequest struct {
	Contrasenia string `json:"contrasenia" binding:"required,min=8"`
}

type RolRequest struct {
	Rol string `json:"rol" binding:"required,min=3,max=50"`
}

type AsignarRolRequest struct {
	IDUsuario uint `json:"id_usuario" binding:"required"`
	IDRol     uint `json:"id_rol" binding:"required"`
}

// CreateUsuario opens an account for an existing persona.
// POST /api/usuarios
func (ctrl *UsuarioController) CreateUsuario(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	usuario, err := ctrl.usuarioService.Create(req.IDPersona, req.Contrasenia)
	if err != nil {
		if errors.Is(err, service.ErrPersonaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Persona no encontrada")
			return
		}
		log.Error("Failed to create usuario", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"usuario": usuario})
}

// GetAllUsuarios lists accounts with persona and roles.
// GET /api/usuarios
func (ctrl *UsuarioController) GetAllUsuarios(c *gin.Context) {
	usuarios, err := ctrl.usuarioService.GetAll()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"usuarios": usuarios,
		"count":    len(usuarios),
	})
}

// GetUsuarioByID returns one account.
// GET /api/usuarios/:id
func (ctrl *UsuarioController) GetUsuarioByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	usuario, err := ctrl.usuarioService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Usuario no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": usuario})
}

// ChangePassword replaces the account password.
// PUT /api/usuarios/:id/contrasenia
func (ctrl *UsuarioController) ChangePassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	if err := ctrl.usuarioService.ChangePassword(id, req.Contrasenia); err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Usuario no encontrado")
			return
		}
		log.Error("Failed to change password", err, map[string]interface{}{"id_usuario": id})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}

// DeleteUsuario removes an account.
// DELETE /api/usuarios/:id
func (ctrl *UsuarioController) DeleteUsuario(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.usuarioService.Delete(id); err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Usuario no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}

// CreateRol adds a new role.
// POST /api/roles
func (ctrl *UsuarioController) CreateRol(c *gin.Context) {
	var req RolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	rol, err := ctrl.usuarioService.CreateRol(req.Rol)
	if err != nil {
		if errors.Is(err, service.ErrRolDuplicado) {
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "El rol ya existe")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rol": rol})
}

// GetAllRoles lists roles.
// GET /api/roles
func (ctrl *UsuarioController) GetAllRoles(c *gin.Context) {
	roles, err := ctrl.usuarioService.GetAllRoles()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// UpdateRol renames a role.
// PUT /api/roles/:id
func (ctrl *UsuarioController) UpdateRol(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	rol, err := ctrl.usuarioService.UpdateRol(id, req.Rol)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRolNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Rol no encontrado")
		case errors.Is(err, service.ErrRolDuplicado):
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "El rol ya existe")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"rol": rol})
}

// DeleteRol removes a role.
// DELETE /api/roles/:id
func (ctrl *UsuarioController) DeleteRol(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.usuarioService.DeleteRol(id); err != nil {
		if errors.Is(err, service.ErrRolNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Rol no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol eliminado"})
}

// AsignarRol links a role to an account.
// POST /api/roles/asignar
func (ctrl *UsuarioController) AsignarRol(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AsignarRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	asignacion, err := ctrl.usuarioService.AssignRol(req.IDUsuario, req.IDRol)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Usuario no encontrado")
		case errors.Is(err, service.ErrRolNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Rol no encontrado")
		case errors.Is(err, service.ErrRolYaAsignado):
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "El rol ya está asignado al usuario")
		default:
			log.Error("Failed to assign rol", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asignacion": asignacion})
}

// QuitarRol unlinks a role from an account.
// DELETE /api/roles/asignar
func (ctrl *UsuarioController) QuitarRol(c *gin.Context) {
	var req AsignarRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	if err := ctrl.usuarioService.RemoveRol(req.IDUsuario, req.IDRol); err != nil {
		if errors.Is(err, service.ErrAsignacionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Asignación no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol quitado del usuario"})
}
