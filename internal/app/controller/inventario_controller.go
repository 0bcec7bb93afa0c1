package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/pkg/validation"
)

type InventarioController struct {
	inventarioService service.InventarioService
}

func NewInventarioController(inventarioService service.InventarioService) *InventarioController {
	return &InventarioController{inventarioService: inventarioService}
}

type CreateMovimientoRequest struct {
	IDProducto     uint   `json:"id_producto" binding:"required"`
	Cantidad       int    `json:"cantidad" binding:"required,gt=0"`
	TipoMovimiento string `json:"tipo_movimiento" binding:"required,oneof=INGRESO EGRESO"`
	Descripcion    string `json:"descripcion" binding:"omitempty,max=255"`
	Fecha          string `json:"fecha_movimiento" binding:"omitempty,datetime=2006-01-02"`
}

type CreateDevolucionRequest struct {
	IDProducto       uint   `json:"id_producto" binding:"required"`
	CantidadUnidades int    `json:"cantidad_unidades" binding:"gte=0"`
	CantidadCajas    int    `json:"cantidad_cajas" binding:"gte=0"`
	FechaDevolucion  string `json:"fecha_devolucion" binding:"omitempty,datetime=2006-01-02"`
	Razon            string `json:"razon" binding:"required,max=255"`
}

// CreateMovimiento appends an INGRESO or EGRESO entry to the stock
// ledger.
// POST /api/movimientos-stock
func (ctrl *InventarioController) CreateMovimiento(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateMovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.MovimientoInput{
		IDProducto:         req.IDProducto,
		Cantidad:           req.Cantidad,
		TipoMovimiento:     model.TipoMovimiento(req.TipoMovimiento),
		Descripcion:        validation.CleanText(req.Descripcion),
		UsuarioResponsable: middleware.GetUsuarioRut(c),
	}
	if req.Fecha != "" {
		fecha, err := validation.ParseFechaISO(req.Fecha)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_movimiento debe tener formato yyyy-mm-dd")
			return
		}
		input.Fecha = fecha
	}

	movimiento, err := ctrl.inventarioService.RegistrarMovimiento(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductoNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
		case errors.Is(err, service.ErrCantidadInvalida):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "La cantidad debe ser mayor que cero")
		case errors.Is(err, service.ErrTipoMovimientoInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Tipo de movimiento inválido")
		case errors.Is(err, service.ErrStockInsuficiente):
			apperrors.Conflict(c, apperrors.ResourceConflict, "Stock insuficiente para el egreso")
		default:
			log.Error("Failed to register movimiento", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"movimiento": movimiento})
}

// GetAllMovimientos lists the full ledger, newest first.
// GET /api/movimientos-stock
func (ctrl *InventarioController) GetAllMovimientos(c *gin.Context) {
	movimientos, err := ctrl.inventarioService.GetAllMovimientos()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"movimientos": movimientos,
		"count":       len(movimientos),
	})
}

// GetMovimientosByProducto lists one product's ledger entries.
// GET /api/productos/:id/movimientos
func (ctrl *InventarioController) GetMovimientosByProducto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movimientos, err := ctrl.inventarioService.GetMovimientosByProducto(id)
	if err != nil {
		if errors.Is(err, service.ErrProductoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"movimientos": movimientos})
}

// GetStockActual returns the ledger-derived stock for a product.
// GET /api/productos/:id/stock
func (ctrl *InventarioController) GetStockActual(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stock, err := ctrl.inventarioService.StockActual(id)
	if err != nil {
		if errors.Is(err, service.ErrProductoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id_producto": id,
		"stock":       stock,
	})
}

// CreateDevolucion records a product return.
// POST /api/devoluciones
func (ctrl *InventarioController) CreateDevolucion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateDevolucionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	devolucion := &model.Devolucion{
		IDProducto:       req.IDProducto,
		CantidadUnidades: req.CantidadUnidades,
		CantidadCajas:    req.CantidadCajas,
		Razon:            validation.CleanText(req.Razon),
	}
	if req.FechaDevolucion != "" {
		fecha, err := validation.ParseFechaISO(req.FechaDevolucion)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_devolucion debe tener formato yyyy-mm-dd")
			return
		}
		devolucion.FechaDevolucion = fecha
	}

	if err := ctrl.inventarioService.CreateDevolucion(devolucion); err != nil {
		switch {
		case errors.Is(err, service.ErrProductoNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
		case errors.Is(err, service.ErrCantidadInvalida):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Las cantidades no pueden ser negativas")
		default:
			log.Error("Failed to create devolución", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"devolucion": devolucion})
}

// GET /api/devoluciones
func (ctrl *InventarioController) GetAllDevoluciones(c *gin.Context) {
	devoluciones, err := ctrl.inventarioService.GetAllDevoluciones()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"devoluciones": devoluciones})
}

// GET /api/devoluciones/:id
func (ctrl *InventarioController) GetDevolucionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	devolucion, err := ctrl.inventarioService.GetDevolucionByID(id)
	if err != nil {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Devolución no encontrada")
		return
	}
	c.JSON(http.StatusOK, gin.H{"devolucion": devolucion})
}

// DELETE /api/devoluciones/:id
func (ctrl *InventarioController) DeleteDevolucion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.inventarioService.DeleteDevolucion(id); err != nil {
		if errors.Is(err, service.ErrDevolucionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Devolución no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Devolución eliminada"})
}
