package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/pkg/validation"
)

type PersonaController struct {
	personaService service.PersonaService
}

func NewPersonaController(personaService service.PersonaService) *PersonaController {
	return &PersonaController{personaService: personaService}
}

type CreatePersonaRequest struct {
	Rut             string `json:"rut_persona" binding:"required,rut"`
	Nombre          string `json:"nombre" binding:"required,nombre_es"`
	PrimerApellido  string `json:"primer_apellido" binding:"required,nombre_es"`
	SegundoApellido string `json:"segundo_apellido" binding:"omitempty,nombre_es"`
	Email           string `json:"email" binding:"omitempty,email"`
	Telefono        string `json:"telefono" binding:"omitempty,min=8,max=15"`
}

type UpdatePersonaRequest struct {
	Nombre          *string `json:"nombre" binding:"omitempty,nombre_es"`
	PrimerApellido  *string `json:"primer_apellido" binding:"omitempty,nombre_es"`
	SegundoApellido *string `json:"segundo_apellido" binding:"omitempty,nombre_es"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Telefono        *string `json:"telefono" binding:"omitempty,min=8,max=15"`
}

// CreatePersona registers a new persona.
// POST /api/personas
func (ctrl *PersonaController) CreatePersona(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	persona := &model.Persona{
		Rut:             req.Rut,
		Nombre:          validation.CleanText(req.Nombre),
		PrimerApellido:  validation.CleanText(req.PrimerApellido),
		SegundoApellido: validation.CleanText(req.SegundoApellido),
		Email:           req.Email,
		Telefono:        validation.CleanText(req.Telefono),
	}

	if err := ctrl.personaService.Create(persona); err != nil {
		switch {
		case errors.Is(err, service.ErrRutInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Rut inválido")
		case errors.Is(err, service.ErrRutDuplicado):
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "El rut ya está registrado")
		case errors.Is(err, service.ErrEmailDuplicado):
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "El email ya está registrado")
		default:
			log.Error("Failed to create persona", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"persona": persona})
}

// GetAllPersonas lists personas, optionally filtered by nombre,
// apellido or email.
// GET /api/personas
func (ctrl *PersonaController) GetAllPersonas(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.PersonaSearchFilter{
		Nombre:   c.Query("nombre"),
		Apellido: c.Query("apellido"),
		Email:    c.Query("email"),
	}

	var (
		personas []model.Persona
		err      error
	)
	if filter.Nombre != "" || filter.Apellido != "" || filter.Email != "" {
		personas, err = ctrl.personaService.Search(filter)
	} else {
		personas, err = ctrl.personaService.GetAll()
	}
	if err != nil {
		log.Error("Failed to fetch personas", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"personas": personas,
		"count":    len(personas),
	})
}

// CountPersonas returns the total number of personas.
// GET /api/personas/count
func (ctrl *PersonaController) CountPersonas(c *gin.Context) {
	total, err := ctrl.personaService.Count()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// GetPersonaByID returns one persona.
// GET /api/personas/:id
func (ctrl *PersonaController) GetPersonaByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	persona, err := ctrl.personaService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrPersonaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Persona no encontrada")
			return
		}
		log.Error("Failed to fetch persona", err, map[string]interface{}{"id_persona": id})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

// UpdatePersona applies a partial update.
// PUT /api/personas/:id
func (ctrl *PersonaController) UpdatePersona(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.PersonaUpdateInput{
		Nombre:          req.Nombre,
		PrimerApellido:  req.PrimerApellido,
		SegundoApellido: req.SegundoApellido,
		Email:           req.Email,
		Telefono:        req.Telefono,
	}

	persona, err := ctrl.personaService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPersonaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Persona no encontrada")
		case errors.Is(err, service.ErrEmailDuplicado):
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "El email ya está registrado")
		default:
			log.Error("Failed to update persona", err, map[string]interface{}{"id_persona": id})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

// DeletePersona removes a persona.
// DELETE /api/personas/:id
func (ctrl *PersonaController) DeletePersona(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.personaService.Delete(id); err != nil {
		if errors.Is(err, service.ErrPersonaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Persona no encontrada")
			return
		}
		log.Error("Failed to delete persona", err, map[string]interface{}{"id_persona": id})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Persona eliminada"})
}
