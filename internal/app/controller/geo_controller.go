package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/pkg/validation"
)

type GeoController struct {
	geoService service.GeoService
}

func NewGeoController(geoService service.GeoService) *GeoController {
	return &GeoController{geoService: geoService}
}

type RegionRequest struct {
	Nombre string `json:"nombre" binding:"required,max=100"`
}

type CreateComunaRequest struct {
	Nombre   string `json:"nombre" binding:"required,max=100"`
	IDRegion uint   `json:"id_region" binding:"required"`
}

type UpdateComunaRequest struct {
	Nombre   *string `json:"nombre" binding:"omitempty,max=100"`
	IDRegion *uint   `json:"id_region"`
}

// POST /api/regiones
func (ctrl *GeoController) CreateRegion(c *gin.Context) {
	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	region, err := ctrl.geoService.CreateRegion(validation.CleanText(req.Nombre))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"region": region})
}

// GET /api/regiones
func (ctrl *GeoController) GetAllRegiones(c *gin.Context) {
	regiones, err := ctrl.geoService.GetAllRegiones()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"regiones": regiones})
}

// GET /api/regiones/:id
func (ctrl *GeoController) GetRegionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	region, err := ctrl.geoService.GetRegionByID(id)
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Región no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region})
}

// PUT /api/regiones/:id
func (ctrl *GeoController) UpdateRegion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	region, err := ctrl.geoService.UpdateRegion(id, validation.CleanText(req.Nombre))
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Región no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region})
}

// DELETE /api/regiones/:id
func (ctrl *GeoController) DeleteRegion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.geoService.DeleteRegion(id); err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Región no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Región eliminada"})
}

// POST /api/comunas
func (ctrl *GeoController) CreateComuna(c *gin.Context) {
	var req CreateComunaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	comuna, err := ctrl.geoService.CreateComuna(validation.CleanText(req.Nombre), req.IDRegion)
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Región no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comuna": comuna})
}

// GET /api/comunas supports ?id_region= to narrow by region.
func (ctrl *GeoController) GetAllComunas(c *gin.Context) {
	idRegion, ok := parseOptionalUintQuery(c, "id_region")
	if !ok {
		return
	}

	var (
		comunas interface{}
		err     error
	)
	if idRegion != nil {
		comunas, err = ctrl.geoService.GetComunasByRegion(*idRegion)
	} else {
		comunas, err = ctrl.geoService.GetAllComunas()
	}
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Región no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comunas": comunas})
}

// GET /api/comunas/:id
func (ctrl *GeoController) GetComunaByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comuna, err := ctrl.geoService.GetComunaByID(id)
	if err != nil {
		if errors.Is(err, service.ErrComunaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Comuna no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comuna": comuna})
}

// PUT /api/comunas/:id
func (ctrl *GeoController) UpdateComuna(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateComunaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	var nombre *string
	if req.Nombre != nil {
		clean := validation.CleanText(*req.Nombre)
		nombre = &clean
	}

	comuna, err := ctrl.geoService.UpdateComuna(id, nombre, req.IDRegion)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComunaNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Comuna no encontrada")
		case errors.Is(err, service.ErrRegionNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Región no encontrada")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"comuna": comuna})
}

// DELETE /api/comunas/:id
func (ctrl *GeoController) DeleteComuna(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.geoService.DeleteComuna(id); err != nil {
		if errors.Is(err, service.ErrComunaNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Comuna no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comuna eliminada"})
}
