package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/internal/app/service"
	apperrors "github.com/somap/somap-backend/internal/errors"
	"github.com/somap/somap-backend/internal/middleware"
)

type ReporteController struct {
	reporteService service.ReporteService
}

func NewReporteController(reporteService service.ReporteService) *ReporteController {
	return &ReporteController{reporteService: reporteService}
}

// InventarioXLSX streams the inventory workbook as a download.
// GET /api/reportes/inventario
func (ctrl *ReporteController) InventarioXLSX(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f, err := ctrl.reporteService.InventarioXLSX()
	if err != nil {
		log.Error("Failed to build inventario report", err, nil)
		apperrors.InternalError(c, "No se pudo generar el reporte")
		return
	}

	filename := fmt.Sprintf("inventario-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Error("Failed to stream inventario report", err, nil)
		return
	}
	c.Status(http.StatusOK)
}
