package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

type ReporteService interface {
	InventarioXLSX() (*excelize.File, error)
}

type reporteService struct {
	productoRepo   repository.ProductoRepository
	inventarioRepo repository.InventarioRepository
}

func NewReporteService(
	productoRepo repository.ProductoRepository,
	inventarioRepo repository.InventarioRepository,
) ReporteService {
	return &reporteService{
		productoRepo:   productoRepo,
		inventarioRepo: inventarioRepo,
	}
}

// InventarioXLSX builds a workbook with one row per producto: catalog
// data plus the ledger-derived stock.
func (s *reporteService) InventarioXLSX() (*excelize.File, error) {
	productos, err := s.productoRepo.FindAll(repository.ProductoFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Inventario"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "SKU", "Nombre", "Categoría", "Bodega", "Proveedor", "Precio Neto", "Precio Venta", "Stock"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, producto := range productos {
		stock, err := s.inventarioRepo.StockActual(producto.ID)
		if err != nil {
			return nil, err
		}

		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), producto.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), producto.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), producto.Nombre)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), producto.Categoria.Tipo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), producto.Bodega.Nombre)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), producto.Proveedor.NombreEmpresa)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), producto.PrecioNeto.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), producto.PrecioVenta.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), stock)
	}

	logger.Info("Inventario report generated", map[string]interface{}{
		"productos": len(productos),
	})
	return f, nil
}
