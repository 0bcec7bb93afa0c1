package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/pkg/validation"
)

type ClienteController struct {
	clienteService service.ClienteService
}

func NewClienteController(clienteService service.ClienteService) *ClienteController {
	return &ClienteController{clienteService: clienteService}
}

type CreateClienteRequest struct {
	IDPersona   uint   `json:"id_persona" binding:"required"`
	IDComuna    uint   `json:"id_comuna" binding:"required"`
	Direccion   string `json:"direccion" binding:"required,max=255"`
	NombreLocal string `json:"nombre_local" binding:"required,max=100"`
	RazonSocial string `json:"razon_social" binding:"required,max=100"`
	Giro        string `json:"giro" binding:"required,max=50"`
}

type UpdateClienteRequest struct {
	IDComuna    *uint   `json:"id_comuna"`
	Direccion   *string `json:"direccion" binding:"omitempty,max=255"`
	NombreLocal *string `json:"nombre_local" binding:"omitempty,max=100"`
	RazonSocial *string `json:"razon_social" binding:"omitempty,max=100"`
	Giro        *string `json:"giro" binding:"omitempty,max=50"`
	Mora        *bool   `json:"mora"`
}

// CreateCliente registers a business customer for an existing persona.
// POST /api/clientes
func (ctrl *ClienteController) CreateCliente(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	cliente := &model.Cliente{
		IDPersona:   req.IDPersona,
		IDComuna:    req.IDComuna,
		Direccion:   validation.CleanText(req.Direccion),
		NombreLocal: validation.CleanText(req.NombreLocal),
		RazonSocial: validation.CleanText(req.RazonSocial),
		Giro:        validation.CleanText(req.Giro),
	}

	if err := ctrl.clienteService.Create(cliente); err != nil {
		switch {
		case errors.Is(err, service.ErrPersonaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Persona no encontrada")
		case errors.Is(err, service.ErrComunaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Comuna no encontrada")
		default:
			log.Error("Failed to create cliente", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cliente": cliente})
}

// GetAllClientes lists customers, optionally filtered by comuna, mora
// or giro.
// GET /api/clientes
func (ctrl *ClienteController) GetAllClientes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idComuna, ok := parseOptionalUintQuery(c, "id_comuna")
	if !ok {
		return
	}

	filter := repository.ClienteFilter{
		IDComuna: idComuna,
		Giro:     c.Query("giro"),
	}
	if raw := c.Query("mora"); raw != "" {
		mora, err := strconv.ParseBool(raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Parámetro mora inválido")
			return
		}
		filter.Mora = &mora
	}

	clientes, err := ctrl.clienteService.GetAll(filter)
	if err != nil {
		log.Error("Failed to fetch clientes", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientes": clientes,
		"count":    len(clientes),
	})
}

// GetClienteByID returns one customer.
// GET /api/clientes/:id
func (ctrl *ClienteController) GetClienteByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cliente, err := ctrl.clienteService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Cliente no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cliente": cliente})
}

// UpdateCliente applies a partial update.
// PUT /api/clientes/:id
func (ctrl *ClienteController) UpdateCliente(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.ClienteUpdateInput{
		IDComuna:    req.IDComuna,
		Direccion:   req.Direccion,
		NombreLocal: req.NombreLocal,
		RazonSocial: req.RazonSocial,
		Giro:        req.Giro,
		Mora:        req.Mora,
	}

	cliente, err := ctrl.clienteService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClienteNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Cliente no encontrado")
		case errors.Is(err, service.ErrComunaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Comuna no encontrada")
		default:
			log.Error("Failed to update cliente", err, map[string]interface{}{"id_cliente": id})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"cliente": cliente})
}

// DeleteCliente removes a customer.
// DELETE /api/clientes/:id
func (ctrl *ClienteController) DeleteCliente(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.clienteService.Delete(id); err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Cliente no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado"})
}
