package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

// PedidoFilter narrows the pedido listing. Filters are conjunctive.
type PedidoFilter struct {
	IDCliente   *uint
	IDProveedor *uint
	Estado      string
	TipoPedido  string
}

type PedidoRepository interface {
	Create(pedido *model.Pedido) error
	CreateConDetalles(pedido *model.Pedido, detalles []model.DetallePedido) error
	FindAll(filter PedidoFilter) ([]model.Pedido, error)
	FindByID(id uint) (*model.Pedido, error)
	Update(pedido *model.Pedido) error
	Delete(id uint) error

	CreateDetalle(detalle *model.DetallePedido) error
	FindDetallesByPedido(idPedido uint) ([]model.DetallePedido, error)
	FindDetalleByID(id uint) (*model.DetallePedido, error)
	UpdateDetalle(detalle *model.DetallePedido) error
	DeleteDetalle(id uint) error
}

type pedidoRepository struct {
	db *gorm.DB
}

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

func (r *pedidoRepository) Create(pedido *model.Pedido) error {
	if err := r.db.Create(pedido).Error; err != nil {
		logger.Error("Failed to create pedido in database", err, map[string]interface{}{
			"id_cliente": pedido.IDCliente,
		})
		return err
	}
	return nil
}

// CreateConDetalles inserts the pedido and its line items in one
// transaction so a failed detalle never leaves a headless pedido.
func (r *pedidoRepository) CreateConDetalles(pedido *model.Pedido, detalles []model.DetallePedido) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pedido).Error; err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].IDPedido = pedido.ID
			if err := tx.Create(&detalles[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *pedidoRepository) FindAll(filter PedidoFilter) ([]model.Pedido, error) {
	query := r.db.Model(&model.Pedido{}).
		Preload("Cliente.Persona").
		Preload("Proveedor").
		Preload("Detalles.Producto")

	if filter.IDCliente != nil {
		query = query.Where("id_cliente = ?", *filter.IDCliente)
	}
	if filter.IDProveedor != nil {
		query = query.Where("id_proveedor = ?", *filter.IDProveedor)
	}
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.TipoPedido != "" {
		query = query.Where("tipo_pedido = ?", filter.TipoPedido)
	}

	var pedidos []model.Pedido
	if err := query.Order("fecha_pedido DESC").Find(&pedidos).Error; err != nil {
		logger.Error("Failed to find pedidos in database", err)
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepository) FindByID(id uint) (*model.Pedido, error) {
	var pedido model.Pedido
	err := r.db.
		Preload("Cliente.Persona").
		Preload("Proveedor").
		Preload("Detalles.Producto").
		First(&pedido, id).Error
	if err != nil {
		return nil, err
	}
	return &pedido, nil
}

func (r *pedidoRepository) Update(pedido *model.Pedido) error {
	if err := r.db.Save(pedido).Error; err != nil {
		logger.Error("Failed to update pedido in database", err, map[string]interface{}{
			"id_pedido": pedido.ID,
		})
		return err
	}
	return nil
}

func (r *pedidoRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_pedido = ?", id).Delete(&model.DetallePedido{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pedido{}, id).Error
	})
}

func (r *pedidoRepository) CreateDetalle(detalle *model.DetallePedido) error {
	return r.db.Create(detalle).Error
}

func (r *pedidoRepository) FindDetallesByPedido(idPedido uint) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.Where("id_pedido = ?", idPedido).Preload("Producto").Find(&detalles).Error
	return detalles, err
}

func (r *pedidoRepository) FindDetalleByID(id uint) (*model.DetallePedido, error) {
	var detalle model.DetallePedido
	if err := r.db.Preload("Producto").First(&detalle, id).Error; err != nil {
		return nil, err
	}
	return &detalle, nil
}

func (r *pedidoRepository) UpdateDetalle(detalle *model.DetallePedido) error {
	return r.db.Save(detalle).Error
}

func (r *pedidoRepository) DeleteDetalle(id uint) error {
	return r.db.Delete(&model.DetallePedido{}, id).Error
}
