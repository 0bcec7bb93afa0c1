package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

type InventarioRepository interface {
	CreateMovimiento(movimiento *model.MovimientoStock) error
	FindMovimientosByProducto(idProducto uint) ([]model.MovimientoStock, error)
	FindAllMovimientos() ([]model.MovimientoStock, error)
	StockActual(idProducto uint) (int, error)

	CreateDevolucion(devolucion *model.Devolucion) error
	FindAllDevoluciones() ([]model.Devolucion, error)
	FindDevolucionByID(id uint) (*model.Devolucion, error)
	DeleteDevolucion(id uint) error
}

type inventarioRepository struct {
	db *gorm.DB
}

func NewInventarioRepository(db *gorm.DB) InventarioRepository {
	return &inventarioRepository{db: db}
}

func (r *inventarioRepository) CreateMovimiento(movimiento *model.MovimientoStock) error {
	if err := r.db.Create(movimiento).Error; err != nil {
		logger.Error("Failed to create movimiento de stock in database", err, map[string]interface{}{
			"id_producto":     movimiento.IDProducto,
			"tipo_movimiento": movimiento.TipoMovimiento,
		})
		return err
	}
	return nil
}

func (r *inventarioRepository) FindMovimientosByProducto(idProducto uint) ([]model.MovimientoStock, error) {
	var movimientos []model.MovimientoStock
	err := r.db.
		Where("id_producto = ?", idProducto).
		Order("fecha_movimiento DESC, id_movimiento DESC").
		Find(&movimientos).Error
	if err != nil {
		return nil, err
	}
	return movimientos, nil
}

func (r *inventarioRepository) FindAllMovimientos() ([]model.MovimientoStock, error) {
	var movimientos []model.MovimientoStock
	err := r.db.
		Preload("Producto").
		Order("fecha_movimiento DESC, id_movimiento DESC").
		Find(&movimientos).Error
	if err != nil {
		return nil, err
	}
	return movimientos, nil
}

// StockActual derives the on-hand quantity from the movement ledger.
// INGRESO rows add, EGRESO rows subtract; a product with no movements
// has stock zero.
func (r *inventarioRepository) StockActual(idProducto uint) (int, error) {
	var stock int
	err := r.db.Model(&model.MovimientoStock{}).
		Select("COALESCE(SUM(CASE WHEN tipo_movimiento = ? THEN cantidad ELSE -cantidad END), 0)",
			model.MovimientoIngreso).
		Where("id_producto = ?", idProducto).
		Scan(&stock).Error
	if err != nil {
		logger.Error("Failed to compute stock actual", err, map[string]interface{}{
			"id_producto": idProducto,
		})
		return 0, err
	}
	return stock, nil
}

func (r *inventarioRepository) CreateDevolucion(devolucion *model.Devolucion) error {
	return r.db.Create(devolucion).Error
}

func (r *inventarioRepository) FindAllDevoluciones() ([]model.Devolucion, error) {
	var devoluciones []model.Devolucion
	err := r.db.Preload("Producto").Order("fecha_devolucion DESC").Find(&devoluciones).Error
	return devoluciones, err
}

func (r *inventarioRepository) FindDevolucionByID(id uint) (*model.Devolucion, error) {
	var devolucion model.Devolucion
	if err := r.db.Preload("Producto").First(&devolucion, id).Error; err != nil {
		return nil, err
	}
	return &devolucion, nil
}

func (r *inventarioRepository) DeleteDevolucion(id uint) error {
	return r.db.Delete(&model.Devolucion{}, id).Error
}
