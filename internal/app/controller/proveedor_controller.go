package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/pkg/validation"
)

type ProveedorController struct {
	proveedorService service.ProveedorService
}

func NewProveedorController(proveedorService service.ProveedorService) *ProveedorController {
	return &ProveedorController{proveedorService: proveedorService}
}

type CreateProveedorRequest struct {
	NombreEmpresa string `json:"nombre_empresa" binding:"required,max=100"`
	Telefono      string `json:"telefono" binding:"omitempty,min=8,max=15"`
	RazonSocial   string `json:"razon_social" binding:"required,max=100"`
	Direccion     string `json:"direccion" binding:"omitempty,max=255"`
}

type UpdateProveedorRequest struct {
	NombreEmpresa *string `json:"nombre_empresa" binding:"omitempty,max=100"`
	Telefono      *string `json:"telefono" binding:"omitempty,min=8,max=15"`
	RazonSocial   *string `json:"razon_social" binding:"omitempty,max=100"`
	Direccion     *string `json:"direccion" binding:"omitempty,max=255"`
}

// POST /api/proveedores
func (ctrl *ProveedorController) CreateProveedor(c *gin.Context) {
	var req CreateProveedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	proveedor := &model.Proveedor{
		NombreEmpresa: validation.CleanText(req.NombreEmpresa),
		Telefono:      validation.CleanText(req.Telefono),
		RazonSocial:   validation.CleanText(req.RazonSocial),
		Direccion:     validation.CleanText(req.Direccion),
	}
	if err := ctrl.proveedorService.Create(proveedor); err != nil {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"proveedor": proveedor})
}

// GET /api/proveedores
func (ctrl *ProveedorController) GetAllProveedores(c *gin.Context) {
	proveedores, err := ctrl.proveedorService.GetAll()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"proveedores": proveedores,
		"count":       len(proveedores),
	})
}

// GET /api/proveedores/:id
func (ctrl *ProveedorController) GetProveedorByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	proveedor, err := ctrl.proveedorService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProveedorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Proveedor no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"proveedor": proveedor})
}

// PUT /api/proveedores/:id
func (ctrl *ProveedorController) UpdateProveedor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProveedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	input := service.ProveedorUpdateInput{
		NombreEmpresa: req.NombreEmpresa,
		Telefono:      req.Telefono,
		RazonSocial:   req.RazonSocial,
		Direccion:     req.Direccion,
	}
	proveedor, err := ctrl.proveedorService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrProveedorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Proveedor no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"proveedor": proveedor})
}

// DELETE /api/proveedores/:id
func (ctrl *ProveedorController) DeleteProveedor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.proveedorService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProveedorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Proveedor no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proveedor eliminado"})
}
