package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/internal/storage"
	"github.com/somap/somap-backend/pkg/validation"
)

type ProductoController struct {
	productoService service.ProductoService
	store           *storage.LocalStorage
}

func NewProductoController(productoService service.ProductoService, store *storage.LocalStorage) *ProductoController {
	return &ProductoController{
		productoService: productoService,
		store:           store,
	}
}

type CreateProductoRequest struct {
	IDProveedor     uint            `json:"id_proveedor" binding:"required"`
	IDCategoria     uint            `json:"id_categoria" binding:"required"`
	IDBodega        uint            `json:"id_bodega" binding:"required"`
	IDUnidadMedida  uint            `json:"id_unidad_medida" binding:"required"`
	Nombre          string          `json:"nombre" binding:"required,max=100"`
	Descripcion     string          `json:"descripcion" binding:"required,max=500"`
	PrecioNeto      decimal.Decimal `json:"precio_neto" binding:"required"`
	PrecioVenta     decimal.Decimal `json:"precio_venta" binding:"required"`
	UnidadesPorCaja int             `json:"unidades_por_caja" binding:"required,gt=0"`
	SKU             string          `json:"sku" binding:"required,max=50"`
}

type UpdateProductoRequest struct {
	IDProveedor     *uint            `json:"id_proveedor"`
	IDCategoria     *uint            `json:"id_categoria"`
	IDBodega        *uint            `json:"id_bodega"`
	IDUnidadMedida  *uint            `json:"id_unidad_medida"`
	Nombre          *string          `json:"nombre" binding:"omitempty,max=100"`
	Descripcion     *string          `json:"descripcion" binding:"omitempty,max=500"`
	PrecioNeto      *decimal.Decimal `json:"precio_neto"`
	PrecioVenta     *decimal.Decimal `json:"precio_venta"`
	UnidadesPorCaja *int             `json:"unidades_por_caja" binding:"omitempty,gt=0"`
	SKU             *string          `json:"sku" binding:"omitempty,max=50"`
}

func respondProductoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductoNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Producto no encontrado")
	case errors.Is(err, service.ErrProveedorNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Proveedor no encontrado")
	case errors.Is(err, service.ErrCategoriaNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría no encontrada")
	case errors.Is(err, service.ErrBodegaNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Bodega no encontrada")
	case errors.Is(err, service.ErrUnidadMedidaNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Unidad de medida no encontrada")
	default:
		apperrors.InternalError(c, "")
	}
}

// CreateProducto registers a product and opens its price history.
// POST /api/productos
func (ctrl *ProductoController) CreateProducto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}
	if req.PrecioNeto.IsNegative() || req.PrecioVenta.IsNegative() {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Los precios no pueden ser negativos")
		return
	}

	producto := &model.Producto{
		IDProveedor:     req.IDProveedor,
		IDCategoria:     req.IDCategoria,
		IDBodega:        req.IDBodega,
		IDUnidadMedida:  req.IDUnidadMedida,
		Nombre:          validation.CleanText(req.Nombre),
		Descripcion:     validation.CleanText(req.Descripcion),
		PrecioNeto:      req.PrecioNeto,
		PrecioVenta:     req.PrecioVenta,
		UnidadesPorCaja: req.UnidadesPorCaja,
		SKU:             validation.CleanText(req.SKU),
	}

	if err := ctrl.productoService.Create(producto); err != nil {
		log.Warn("Producto creation rejected", map[string]interface{}{"error": err.Error()})
		respondProductoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"producto": producto})
}

// GetAllProductos lists products; public endpoint used by the
// storefront as well.
// GET /api/productos
func (ctrl *ProductoController) GetAllProductos(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idCategoria, ok := parseOptionalUintQuery(c, "id_categoria")
	if !ok {
		return
	}
	idProveedor, ok := parseOptionalUintQuery(c, "id_proveedor")
	if !ok {
		return
	}
	idBodega, ok := parseOptionalUintQuery(c, "id_bodega")
	if !ok {
		return
	}

	filter := repository.ProductoFilter{
		IDCategoria: idCategoria,
		IDProveedor: idProveedor,
		IDBodega:    idBodega,
		Nombre:      c.Query("nombre"),
	}

	productos, err := ctrl.productoService.GetAll(filter)
	if err != nil {
		log.Error("Failed to fetch productos", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"productos": productos,
		"count":     len(productos),
	})
}

// GetProductoByID returns one product with its images.
// GET /api/productos/:id
func (ctrl *ProductoController) GetProductoByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	producto, err := ctrl.productoService.GetByID(id)
	if err != nil {
		respondProductoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"producto": producto})
}

// UpdateProducto applies a partial update; price changes roll the
// price history.
// PUT /api/productos/:id
func (ctrl *ProductoController) UpdateProducto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}
	if (req.PrecioNeto != nil && req.PrecioNeto.IsNegative()) ||
		(req.PrecioVenta != nil && req.PrecioVenta.IsNegative()) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Los precios no pueden ser negativos")
		return
	}

	input := service.ProductoUpdateInput{
		IDProveedor:     req.IDProveedor,
		IDCategoria:     req.IDCategoria,
		IDBodega:        req.IDBodega,
		IDUnidadMedida:  req.IDUnidadMedida,
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		PrecioNeto:      req.PrecioNeto,
		PrecioVenta:     req.PrecioVenta,
		UnidadesPorCaja: req.UnidadesPorCaja,
		SKU:             req.SKU,
	}

	producto, err := ctrl.productoService.Update(id, input)
	if err != nil {
		log.Warn("Producto update rejected", map[string]interface{}{
			"id_producto": id,
			"error":       err.Error(),
		})
		respondProductoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"producto": producto})
}

// DeleteProducto removes a product.
// DELETE /api/productos/:id
func (ctrl *ProductoController) DeleteProducto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productoService.Delete(id); err != nil {
		respondProductoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
}

// UploadImagen stores an image on disk and links it to the product.
// POST /api/producto/:id/imagenes
func (ctrl *ProductoController) UploadImagen(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Se requiere el archivo imagen")
		return
	}

	url, err := ctrl.store.Save(fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidFileType):
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Solo se permiten imágenes jpeg, jpg o png")
		case errors.Is(err, storage.ErrFileTooLarge):
			apperrors.RespondWithError(c, http.StatusRequestEntityTooLarge,
				apperrors.UploadFileTooLarge, "El archivo excede los 5 MB permitidos")
		default:
			log.Error("Failed to store image", err, nil)
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "No se pudo guardar la imagen")
		}
		return
	}

	imagen, err := ctrl.productoService.AddImagen(id, url)
	if err != nil {
		ctrl.store.Delete(url)
		respondProductoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imagen": imagen})
}

// GetImagenes lists a product's images; public for the storefront.
// GET /api/producto/:id/imagenes
func (ctrl *ProductoController) GetImagenes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	imagenes, err := ctrl.productoService.GetImagenes(id)
	if err != nil {
		respondProductoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imagenes": imagenes})
}

// DeleteImagen removes the row and the file on disk.
// DELETE /api/imagenes/:id
func (ctrl *ProductoController) DeleteImagen(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	imagen, err := ctrl.productoService.DeleteImagen(id)
	if err != nil {
		if errors.Is(err, service.ErrImagenNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Imagen no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	if err := ctrl.store.Delete(imagen.URL); err != nil {
		log.Warn("Image row deleted but file removal failed", map[string]interface{}{
			"id_imagen": id,
			"url":       imagen.URL,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Imagen eliminada"})
}
