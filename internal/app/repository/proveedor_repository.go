package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
)

type ProveedorRepository interface {
	Create(proveedor *model.Proveedor) error
	FindAll() ([]model.Proveedor, error)
	FindByID(id uint) (*model.Proveedor, error)
	Update(proveedor *model.Proveedor) error
	Delete(id uint) error
}

type proveedorRepository struct {
	db *gorm.DB
}

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepository{db: db}
}

func (r *proveedorRepository) Create(proveedor *model.Proveedor) error {
	return r.db.Create(proveedor).Error
}

func (r *proveedorRepository) FindAll() ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.Order("nombre_empresa ASC").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepository) FindByID(id uint) (*model.Proveedor, error) {
	var proveedor model.Proveedor
	if err := r.db.First(&proveedor, id).Error; err != nil {
		return nil, err
	}
	return &proveedor, nil
}

func (r *proveedorRepository) Update(proveedor *model.Proveedor) error {
	return r.db.Save(proveedor).Error
}

func (r *proveedorRepository) Delete(id uint) error {
	return r.db.Delete(&model.Proveedor{}, id).Error
}
