package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
)

type PrecioRepository interface {
	CreateRegistro(registro *model.RegistroPrecio) error
	FindRegistrosByProducto(idProducto uint) ([]model.RegistroPrecio, error)
	FindRegistroVigente(idProducto uint) (*model.RegistroPrecio, error)
	CerrarRegistroVigente(idProducto uint, fechaFin time.Time) error

	CreateDescuento(descuento *model.Descuento) error
	FindAllDescuentos() ([]model.Descuento, error)
	FindDescuentoByID(id uint) (*model.Descuento, error)
	FindDescuentosByProducto(idProducto uint) ([]model.Descuento, error)
	FindDescuentosByCliente(idCliente uint) ([]model.Descuento, error)
	UpdateDescuento(descuento *model.Descuento) error
	DeleteDescuento(id uint) error
}

type precioRepository struct {
	db *gorm.DB
}

func NewPrecioRepository(db *gorm.DB) PrecioRepository {
	return &precioRepository{db: db}
}

func (r *precioRepository) CreateRegistro(registro *model.RegistroPrecio) error {
	return r.db.Create(registro).Error
}

func (r *precioRepository) FindRegistrosByProducto(idProducto uint) ([]model.RegistroPrecio, error) {
	var registros []model.RegistroPrecio
	err := r.db.
		Where("id_producto = ?", idProducto).
		Order("fecha_creacion DESC").
		Find(&registros).Error
	return registros, err
}

// FindRegistroVigente returns the open price record, the one with no
// fecha_fin yet.
func (r *precioRepository) FindRegistroVigente(idProducto uint) (*model.RegistroPrecio, error) {
	var registro model.RegistroPrecio
	err := r.db.
		Where("id_producto = ? AND fecha_fin IS NULL", idProducto).
		Order("fecha_creacion DESC").
		First(&registro).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}

func (r *precioRepository) CerrarRegistroVigente(idProducto uint, fechaFin time.Time) error {
	return r.db.Model(&model.RegistroPrecio{}).
		Where("id_producto = ? AND fecha_fin IS NULL", idProducto).
		Update("fecha_fin", fechaFin).Error
}

func (r *precioRepository) CreateDescuento(descuento *model.Descuento) error {
	return r.db.Create(descuento).Error
}

func (r *precioRepository) FindAllDescuentos() ([]model.Descuento, error) {
	var descuentos []model.Descuento
	err := r.db.Preload("Producto").Preload("Cliente").Find(&descuentos).Error
	return descuentos, err
}

func (r *precioRepository) FindDescuentoByID(id uint) (*model.Descuento, error) {
	var descuento model.Descuento
	err := r.db.Preload("Producto").Preload("Cliente").First(&descuento, id).Error
	if err != nil {
		return nil, err
	}
	return &descuento, nil
}

func (r *precioRepository) FindDescuentosByProducto(idProducto uint) ([]model.Descuento, error) {
	var descuentos []model.Descuento
	err := r.db.Where("id_producto = ?", idProducto).Find(&descuentos).Error
	return descuentos, err
}

func (r *precioRepository) FindDescuentosByCliente(idCliente uint) ([]model.Descuento, error) {
	var descuentos []model.Descuento
	err := r.db.Where("id_cliente = ?", idCliente).Preload("Producto").Find(&descuentos).Error
	return descuentos, err
}

func (r *precioRepository) UpdateDescuento(descuento *model.Descuento) error {
	return r.db.Save(descuento).Error
}

func (r *precioRepository) DeleteDescuento(id uint) error {
	return r.db.Delete(&model.Descuento{}, id).Error
}
