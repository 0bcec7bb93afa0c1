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

type PedidoController struct {
	pedidoService service.PedidoService
}

func NewPedidoController(pedidoService service.PedidoService) *PedidoController {
	return &PedidoController{pedidoService: pedidoService}
}

type DetallePedidoRequest struct {
	IDProducto uint    `json:"id_producto" binding:"required"`
	Cantidad   int     `json:"cantidad" binding:"required,gt=0"`
	Descuento  float64 `json:"descuento" binding:"gte=0,lte=100"`
}

type CreatePedidoRequest struct {
	IDCliente    uint                   `json:"id_cliente" binding:"required"`
	IDProveedor  uint                   `json:"id_proveedor" binding:"required"`
	TipoPedido   string                 `json:"tipo_pedido" binding:"required,max=50"`
	FechaPedido  string                 `json:"fecha_pedido" binding:"omitempty,datetime=2006-01-02"`
	FechaEntrega string                 `json:"fecha_entrega" binding:"required,datetime=2006-01-02"`
	Comentarios  string                 `json:"comentarios" binding:"omitempty,max=255"`
	Estado       string                 `json:"estado" binding:"required,oneof=entregado 'sin entregar' pendiente"`
	Detalles     []DetallePedidoRequest `json:"detalles" binding:"required,min=1,dive"`
}

type UpdatePedidoRequest struct {
	TipoPedido   *string `json:"tipo_pedido" binding:"omitempty,max=50"`
	FechaEntrega *string `json:"fecha_entrega" binding:"omitempty,datetime=2006-01-02"`
	Comentarios  *string `json:"comentarios" binding:"omitempty,max=255"`
	Estado       *string `json:"estado" binding:"omitempty,oneof=entregado 'sin entregar' pendiente"`
}

func respondPedidoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPedidoNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Pedido no encontrado")
	case errors.Is(err, service.ErrClienteNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Cliente no encontrado")
	case errors.Is(err, service.ErrProveedorNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Proveedor no encontrado")
	case errors.Is(err, service.ErrProductoNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
	case errors.Is(err, service.ErrEstadoInvalido):
		apperrors.BadRequest(c, apperrors.BusinessInvalidEstado, "Estado de pedido inválido")
	case errors.Is(err, service.ErrCantidadInvalida):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "La cantidad debe ser mayor que cero")
	case errors.Is(err, service.ErrPorcentajeInvalido):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El descuento debe estar entre 0 y 100")
	case errors.Is(err, service.ErrPedidoSinDetalles):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El pedido requiere al menos un detalle")
	default:
		apperrors.InternalError(c, "")
	}
}

// CreatePedido registers an order with its line items.
// POST /api/pedidos
func (ctrl *PedidoController) CreatePedido(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	fechaEntrega, err := validation.ParseFechaISO(req.FechaEntrega)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_entrega debe tener formato yyyy-mm-dd")
		return
	}

	input := service.PedidoInput{
		IDCliente:    req.IDCliente,
		IDProveedor:  req.IDProveedor,
		TipoPedido:   validation.CleanText(req.TipoPedido),
		FechaEntrega: fechaEntrega,
		Comentarios:  validation.CleanText(req.Comentarios),
		Estado:       model.EstadoPedido(req.Estado),
	}
	if req.FechaPedido != "" {
		fecha, err := validation.ParseFechaISO(req.FechaPedido)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_pedido debe tener formato yyyy-mm-dd")
			return
		}
		input.FechaPedido = fecha
	}
	for _, d := range req.Detalles {
		input.Detalles = append(input.Detalles, service.DetalleInput{
			IDProducto: d.IDProducto,
			Cantidad:   d.Cantidad,
			Descuento:  d.Descuento,
		})
	}

	pedido, err := ctrl.pedidoService.Create(input)
	if err != nil {
		log.Warn("Pedido creation rejected", map[string]interface{}{"error": err.Error()})
		respondPedidoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pedido": pedido})
}

// GetAllPedidos lists orders with optional filters.
// GET /api/pedidos
func (ctrl *PedidoController) GetAllPedidos(c *gin.Context) {
	idCliente, ok := parseOptionalUintQuery(c, "id_cliente")
	if !ok {
		return
	}
	idProveedor, ok := parseOptionalUintQuery(c, "id_proveedor")
	if !ok {
		return
	}

	filter := repository.PedidoFilter{
		IDCliente:   idCliente,
		IDProveedor: idProveedor,
		Estado:      c.Query("estado"),
		TipoPedido:  c.Query("tipo_pedido"),
	}

	pedidos, err := ctrl.pedidoService.GetAll(filter)
	if err != nil {
		if errors.Is(err, service.ErrEstadoInvalido) {
			apperrors.BadRequest(c, apperrors.BusinessInvalidEstado, "Estado de pedido inválido")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pedidos": pedidos,
		"count":   len(pedidos),
	})
}

// GET /api/pedidos/:id
func (ctrl *PedidoController) GetPedidoByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pedido, err := ctrl.pedidoService.GetByID(id)
	if err != nil {
		respondPedidoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pedido": pedido})
}

// UpdatePedido applies a partial update, typically the estado
// transition.
// PUT /api/pedidos/:id
func (ctrl *PedidoController) UpdatePedido(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.PedidoUpdateInput{
		TipoPedido:  req.TipoPedido,
		Comentarios: req.Comentarios,
	}
	if req.Estado != nil {
		estado := model.EstadoPedido(*req.Estado)
		input.Estado = &estado
	}
	if req.FechaEntrega != nil {
		fecha, err := validation.ParseFechaISO(*req.FechaEntrega)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha_entrega debe tener formato yyyy-mm-dd")
			return
		}
		input.FechaEntrega = &fecha
	}

	pedido, err := ctrl.pedidoService.Update(id, input)
	if err != nil {
		log.Warn("Pedido update rejected", map[string]interface{}{
			"id_pedido": id,
			"error":     err.Error(),
		})
		respondPedidoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pedido": pedido})
}

// DELETE /api/pedidos/:id
func (ctrl *PedidoController) DeletePedido(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.pedidoService.Delete(id); err != nil {
		respondPedidoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pedido eliminado"})
}

// AddDetalle appends a line item to an existing order.
// POST /api/pedidos/:id/detalles
func (ctrl *PedidoController) AddDetalle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req DetallePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	detalle, err := ctrl.pedidoService.AddDetalle(id, service.DetalleInput{
		IDProducto: req.IDProducto,
		Cantidad:   req.Cantidad,
		Descuento:  req.Descuento,
	})
	if err != nil {
		respondPedidoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detalle": detalle})
}

// DELETE /api/detalles/:id
func (ctrl *PedidoController) DeleteDetalle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.pedidoService.DeleteDetalle(id); err != nil {
		if errors.Is(err, service.ErrDetalleNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Detalle no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Detalle eliminado"})
}
