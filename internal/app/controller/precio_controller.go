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

type PrecioController struct {
	precioService service.PrecioService
}

func NewPrecioController(precioService service.PrecioService) *PrecioController {
	return &PrecioController{precioService: precioService}
}

type CreateDescuentoRequest struct {
	IDProducto  uint    `json:"id_producto" binding:"required"`
	IDCliente   *uint   `json:"id_cliente"`
	Porcentaje  float64 `json:"porcentaje_descuento" binding:"gte=0,lte=100"`
	FechaInicio string  `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	FechaFin    string  `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateDescuentoRequest struct {
	Porcentaje *float64 `json:"porcentaje_descuento" binding:"omitempty,gte=0,lte=100"`
	FechaFin   *string  `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
}

// GetHistorialPrecios returns the price history for a product.
// GET /api/productos/:id/precios
func (ctrl *PrecioController) GetHistorialPrecios(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	registros, err := ctrl.precioService.GetHistorialByProducto(id)
	if err != nil {
		if errors.Is(err, service.ErrProductoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"registros": registros})
}

// CreateDescuento registers a discount for a product, optionally
// scoped to one cliente.
// POST /api/descuentos
func (ctrl *PrecioController) CreateDescuento(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateDescuentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.DescuentoInput{
		IDProducto: req.IDProducto,
		IDCliente:  req.IDCliente,
		Porcentaje: req.Porcentaje,
	}
	if req.FechaInicio != "" {
		fecha, err := validation.ParseFechaISO(req.FechaInicio)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_inicio debe tener formato yyyy-mm-dd")
			return
		}
		input.FechaInicio = fecha
	}
	if req.FechaFin != "" {
		fecha, err := validation.ParseFechaISO(req.FechaFin)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_fin debe tener formato yyyy-mm-dd")
			return
		}
		input.FechaFin = &fecha
	}

	descuento, err := ctrl.precioService.CreateDescuento(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPorcentajeInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El porcentaje debe estar entre 0 y 100")
		case errors.Is(err, service.ErrVigenciaInvalida):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_fin debe ser posterior a fecha_inicio")
		case errors.Is(err, service.ErrProductoNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
		case errors.Is(err, service.ErrClienteNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Cliente no encontrado")
		default:
			log.Error("Failed to create descuento", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"descuento": descuento})
}

// GET /api/descuentos supports ?id_cliente= to narrow by cliente.
func (ctrl *PrecioController) GetAllDescuentos(c *gin.Context) {
	idCliente, ok := parseOptionalUintQuery(c, "id_cliente")
	if !ok {
		return
	}

	var (
		descuentos interface{}
		err        error
	)
	if idCliente != nil {
		descuentos, err = ctrl.precioService.GetDescuentosByCliente(*idCliente)
	} else {
		descuentos, err = ctrl.precioService.GetAllDescuentos()
	}
	if err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Cliente no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"descuentos": descuentos})
}

// GET /api/descuentos/:id
func (ctrl *PrecioController) GetDescuentoByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	descuento, err := ctrl.precioService.GetDescuentoByID(id)
	if err != nil {
		if errors.Is(err, service.ErrDescuentoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Descuento no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"descuento": descuento})
}

// PUT /api/descuentos/:id
func (ctrl *PrecioController) UpdateDescuento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDescuentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.DescuentoUpdateInput{Porcentaje: req.Porcentaje}
	if req.FechaFin != nil {
		fecha, err := validation.ParseFechaISO(*req.FechaFin)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_fin debe tener formato yyyy-mm-dd")
			return
		}
		input.FechaFin = &fecha
	}

	descuento, err := ctrl.precioService.UpdateDescuento(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDescuentoNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Descuento no encontrado")
		case errors.Is(err, service.ErrPorcentajeInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El porcentaje debe estar entre 0 y 100")
		case errors.Is(err, service.ErrVigenciaInvalida):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_fin debe ser posterior a fecha_inicio")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"descuento": descuento})
}

// DELETE /api/descuentos/:id
func (ctrl *PrecioController) DeleteDescuento(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.precioService.DeleteDescuento(id); err != nil {
		if errors.Is(err, service.ErrDescuentoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Descuento no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Descuento eliminado"})
}
