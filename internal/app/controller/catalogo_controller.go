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

type CatalogoController struct {
	catalogoService service.CatalogoService
}

func NewCatalogoController(catalogoService service.CatalogoService) *CatalogoController {
	return &CatalogoController{catalogoService: catalogoService}
}

type CategoriaRequest struct {
	Tipo string `json:"tipo" binding:"required,max=100"`
}

type CreateBodegaRequest struct {
	Nombre    string `json:"nombre" binding:"required,max=100"`
	Direccion string `json:"direccion" binding:"omitempty,max=255"`
}

type UpdateBodegaRequest struct {
	Nombre    *string `json:"nombre" binding:"omitempty,max=100"`
	Direccion *string `json:"direccion" binding:"omitempty,max=255"`
}

type UnidadMedidaRequest struct {
	Nombre string `json:"nombre" binding:"required,max=50"`
}

// POST /api/categorias
func (ctrl *CatalogoController) CreateCategoria(c *gin.Context) {
	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	categoria, err := ctrl.catalogoService.CreateCategoria(validation.CleanText(req.Tipo))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categoria": categoria})
}

// GET /api/categorias
func (ctrl *CatalogoController) GetAllCategorias(c *gin.Context) {
	categorias, err := ctrl.catalogoService.GetAllCategorias()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categorias": categorias})
}

// GET /api/categorias/:id
func (ctrl *CatalogoController) GetCategoriaByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	categoria, err := ctrl.catalogoService.GetCategoriaByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoriaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoria": categoria})
}

// PUT /api/categorias/:id
func (ctrl *CatalogoController) UpdateCategoria(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	categoria, err := ctrl.catalogoService.UpdateCategoria(id, validation.CleanText(req.Tipo))
	if err != nil {
		if errors.Is(err, service.ErrCategoriaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoria": categoria})
}

// DeleteCategoria refuses while productos still reference the
// categoría.
// DELETE /api/categorias/:id
func (ctrl *CatalogoController) DeleteCategoria(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogoService.DeleteCategoria(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoriaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría no encontrada")
		case errors.Is(err, service.ErrCategoriaEnUso):
			apperrors.Conflict(c, apperrors.BusinessCategoryInUse, "La categoría tiene productos asociados")
		default:
			log.Error("Failed to delete categoría", err, map[string]interface{}{"id_categoria": id})
			apperrors.InternalError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada"})
}

// POST /api/bodegas
func (ctrl *CatalogoController) CreateBodega(c *gin.Context) {
	var req CreateBodegaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	bodega, err := ctrl.catalogoService.CreateBodega(
		validation.CleanText(req.Nombre), validation.CleanText(req.Direccion))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bodega": bodega})
}

// GET /api/bodegas
func (ctrl *CatalogoController) GetAllBodegas(c *gin.Context) {
	bodegas, err := ctrl.catalogoService.GetAllBodegas()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodegas": bodegas})
}

// GET /api/bodegas/:id
func (ctrl *CatalogoController) GetBodegaByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bodega, err := ctrl.catalogoService.GetBodegaByID(id)
	if err != nil {
		if errors.Is(err, service.ErrBodegaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Bodega no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodega": bodega})
}

// PUT /api/bodegas/:id
func (ctrl *CatalogoController) UpdateBodega(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBodegaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	bodega, err := ctrl.catalogoService.UpdateBodega(id, req.Nombre, req.Direccion)
	if err != nil {
		if errors.Is(err, service.ErrBodegaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Bodega no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bodega": bodega})
}

// DELETE /api/bodegas/:id
func (ctrl *CatalogoController) DeleteBodega(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogoService.DeleteBodega(id); err != nil {
		if errors.Is(err, service.ErrBodegaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Bodega no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bodega eliminada"})
}

// POST /api/unidades-medida
func (ctrl *CatalogoController) CreateUnidadMedida(c *gin.Context) {
	var req UnidadMedidaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	unidad, err := ctrl.catalogoService.CreateUnidadMedida(validation.CleanText(req.Nombre))
	if err != nil {
		if errors.Is(err, service.ErrUnidadMedidaDuplicada) {
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "La unidad de medida ya existe")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"unidad_medida": unidad})
}

// GET /api/unidades-medida
func (ctrl *CatalogoController) GetAllUnidadesMedida(c *gin.Context) {
	unidades, err := ctrl.catalogoService.GetAllUnidadesMedida()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unidades_medida": unidades})
}

// GET /api/unidades-medida/:id
func (ctrl *CatalogoController) GetUnidadMedidaByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	unidad, err := ctrl.catalogoService.GetUnidadMedidaByID(id)
	if err != nil {
		if errors.Is(err, service.ErrUnidadMedidaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Unidad de medida no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unidad_medida": unidad})
}

// PUT /api/unidades-medida/:id
func (ctrl *CatalogoController) UpdateUnidadMedida(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UnidadMedidaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	unidad, err := ctrl.catalogoService.UpdateUnidadMedida(id, validation.CleanText(req.Nombre))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnidadMedidaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Unidad de medida no encontrada")
		case errors.Is(err, service.ErrUnidadMedidaDuplicada):
			apperrors.Conflict(c, apperrors.ResourceAlreadyExists, "La unidad de medida ya existe")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"unidad_medida": unidad})
}

// DELETE /api/unidades-medida/:id
func (ctrl *CatalogoController) DeleteUnidadMedida(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogoService.DeleteUnidadMedida(id); err != nil {
		if errors.Is(err, service.ErrUnidadMedidaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Unidad de medida no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unidad de medida eliminada"})
}
