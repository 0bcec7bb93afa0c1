package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/pkg/validation"
)

type FinanzaController struct {
	finanzaService service.FinanzaService
}

func NewFinanzaController(finanzaService service.FinanzaService) *FinanzaController {
	return &FinanzaController{finanzaService: finanzaService}
}

type CreateGastoRequest struct {
	NombreGasto      string          `json:"nombre_gasto" binding:"required,max=100"`
	IDCategoriaGasto uint            `json:"id_categoria_gasto" binding:"required"`
	Monto            decimal.Decimal `json:"monto" binding:"required"`
	Fecha            string          `json:"fecha" binding:"required,datetime=02-01-2006"`
	Descripcion      string          `json:"descripcion" binding:"omitempty,max=255"`
}

type CreateSueldoRequest struct {
	TipoSueldo  string          `json:"tipo_sueldo" binding:"required,oneof=semanal mensual quincena"`
	Monto       decimal.Decimal `json:"monto" binding:"required"`
	Fecha       string          `json:"fecha" binding:"required,datetime=02-01-2006"`
	Descripcion string          `json:"descripcion" binding:"omitempty,max=255"`
}

type CategoriaGastoRequest struct {
	Nombre string `json:"nombre" binding:"required,max=100"`
}

// GET /api/transacciones
func (ctrl *FinanzaController) GetAllTransacciones(c *gin.Context) {
	transacciones, err := ctrl.finanzaService.GetAllTransacciones()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"transacciones": transacciones,
		"count":         len(transacciones),
	})
}

// GET /api/transacciones/:id
func (ctrl *FinanzaController) GetTransaccionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	transaccion, err := ctrl.finanzaService.GetTransaccionByID(id)
	if err != nil {
		if errors.Is(err, service.ErrTransaccionNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Transacción no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaccion": transaccion})
}

// CreateGasto records an expense together with its backing
// transaction; both land or neither does.
// POST /api/gastos
func (ctrl *FinanzaController) CreateGasto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	fecha, err := validation.ParseFechaChilena(req.Fecha)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha debe tener formato dd-mm-yyyy")
		return
	}

	gasto, err := ctrl.finanzaService.CreateGasto(service.GastoInput{
		NombreGasto:      validation.CleanText(req.NombreGasto),
		IDCategoriaGasto: req.IDCategoriaGasto,
		Monto:            req.Monto,
		Fecha:            fecha,
		Descripcion:      validation.CleanText(req.Descripcion),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMontoInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El monto debe ser mayor que cero")
		case errors.Is(err, service.ErrCategoriaGastoNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría de gasto no encontrada")
		default:
			log.Error("Failed to create gasto", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gasto": gasto})
}

// GET /api/gastos
func (ctrl *FinanzaController) GetAllGastos(c *gin.Context) {
	gastos, err := ctrl.finanzaService.GetAllGastos()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gastos": gastos,
		"count":  len(gastos),
	})
}

// GET /api/gastos/:id
func (ctrl *FinanzaController) GetGastoByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	gasto, err := ctrl.finanzaService.GetGastoByID(id)
	if err != nil {
		if errors.Is(err, service.ErrGastoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Gasto no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gasto": gasto})
}

// DELETE /api/gastos/:id
func (ctrl *FinanzaController) DeleteGasto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.finanzaService.DeleteGasto(id); err != nil {
		if errors.Is(err, service.ErrGastoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Gasto no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gasto eliminado"})
}

// CreateSueldo records a salary payout with its backing transaction.
// POST /api/sueldos
func (ctrl *FinanzaController) CreateSueldo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateSueldoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	fecha, err := validation.ParseFechaChilena(req.Fecha)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "fecha debe tener formato dd-mm-yyyy")
		return
	}

	sueldo, err := ctrl.finanzaService.CreateSueldo(service.SueldoInput{
		TipoSueldo:  model.TipoSueldo(req.TipoSueldo),
		Monto:       req.Monto,
		Fecha:       fecha,
		Descripcion: validation.CleanText(req.Descripcion),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMontoInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "El monto debe ser mayor que cero")
		case errors.Is(err, service.ErrTipoSueldoInvalido):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Tipo de sueldo inválido")
		default:
			log.Error("Failed to create sueldo", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sueldo": sueldo})
}

// GET /api/sueldos
func (ctrl *FinanzaController) GetAllSueldos(c *gin.Context) {
	sueldos, err := ctrl.finanzaService.GetAllSueldos()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sueldos": sueldos,
		"count":   len(sueldos),
	})
}

// GET /api/sueldos/:id
func (ctrl *FinanzaController) GetSueldoByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sueldo, err := ctrl.finanzaService.GetSueldoByID(id)
	if err != nil {
		if errors.Is(err, service.ErrSueldoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Sueldo no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sueldo": sueldo})
}

// DELETE /api/sueldos/:id
func (ctrl *FinanzaController) DeleteSueldo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.finanzaService.DeleteSueldo(id); err != nil {
		if errors.Is(err, service.ErrSueldoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Sueldo no encontrado")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sueldo eliminado"})
}

// POST /api/categorias-gasto
func (ctrl *FinanzaController) CreateCategoriaGasto(c *gin.Context) {
	var req CategoriaGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	categoria, err := ctrl.finanzaService.CreateCategoriaGasto(validation.CleanText(req.Nombre))
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categoria_gasto": categoria})
}

// GET /api/categorias-gasto
func (ctrl *FinanzaController) GetAllCategoriasGasto(c *gin.Context) {
	categorias, err := ctrl.finanzaService.GetAllCategoriasGasto()
	if err != nil {
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categorias_gasto": categorias})
}

// PUT /api/categorias-gasto/:id
func (ctrl *FinanzaController) UpdateCategoriaGasto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CategoriaGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, validation.FieldErrors(err))
		return
	}

	categoria, err := ctrl.finanzaService.UpdateCategoriaGasto(id, validation.CleanText(req.Nombre))
	if err != nil {
		if errors.Is(err, service.ErrCategoriaGastoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría de gasto no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoria_gasto": categoria})
}

// DELETE /api/categorias-gasto/:id
func (ctrl *FinanzaController) DeleteCategoriaGasto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.finanzaService.DeleteCategoriaGasto(id); err != nil {
		if errors.Is(err, service.ErrCategoriaGastoNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Categoría de gasto no encontrada")
			return
		}
		apperrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoría de gasto eliminada"})
}
