package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

// ProductoFilter narrows the producto listing. Filters are conjunctive.
type ProductoFilter struct {
	IDCategoria *uint
	IDProveedor *uint
	IDBodega    *uint
	Nombre      string
}

type ProductoRepository interface {
	CreateConRegistroPrecio(producto *model.Producto, registro *model.RegistroPrecio) error
	FindAll(filter ProductoFilter) ([]model.Producto, error)
	FindByID(id uint) (*model.Producto, error)
	FindBySKU(sku string) (*model.Producto, error)
	Update(producto *model.Producto) error
	Delete(id uint) error

	CreateImagen(imagen *model.ImagenProducto) error
	FindImagenesByProducto(idProducto uint) ([]model.ImagenProducto, error)
	FindImagenByID(id uint) (*model.ImagenProducto, error)
	DeleteImagen(id uint) error
}

type productoRepository struct {
	db *gorm.DB
}

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{db: db}
}

// CreateConRegistroPrecio inserts the producto and its opening price
// record as one unit. Either both rows land or neither does.
func (r *productoRepository) CreateConRegistroPrecio(producto *model.Producto, registro *model.RegistroPrecio) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(producto).Error; err != nil {
			return err
		}
		registro.IDProducto = producto.ID
		return tx.Create(registro).Error
	})
	if err != nil {
		logger.Error("Failed to create producto in database", err, map[string]interface{}{
			"nombre": producto.Nombre,
		})
	}
	return err
}

func (r *productoRepository) FindAll(filter ProductoFilter) ([]model.Producto, error) {
	query := r.db.Model(&model.Producto{}).
		Preload("Categoria").
		Preload("Proveedor").
		Preload("Bodega").
		Preload("UnidadMedida")

	if filter.IDCategoria != nil {
		query = query.Where("id_categoria = ?", *filter.IDCategoria)
	}
	if filter.IDProveedor != nil {
		query = query.Where("id_proveedor = ?", *filter.IDProveedor)
	}
	if filter.IDBodega != nil {
		query = query.Where("id_bodega = ?", *filter.IDBodega)
	}
	if filter.Nombre != "" {
		query = query.Where("lower(nombre) LIKE lower(?)", "%"+filter.Nombre+"%")
	}

	var productos []model.Producto
	if err := query.Order("nombre ASC").Find(&productos).Error; err != nil {
		logger.Error("Failed to find productos in database", err)
		return nil, err
	}
	return productos, nil
}

func (r *productoRepository) FindByID(id uint) (*model.Producto, error) {
	var producto model.Producto
	err := r.db.
		Preload("Categoria").
		Preload("Proveedor").
		Preload("Bodega").
		Preload("UnidadMedida").
		Preload("Imagenes").
		First(&producto, id).Error
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepository) FindBySKU(sku string) (*model.Producto, error) {
	var producto model.Producto
	if err := r.db.Where("sku = ?", sku).First(&producto).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepository) Update(producto *model.Producto) error {
	if err := r.db.Save(producto).Error; err != nil {
		logger.Error("Failed to update producto in database", err, map[string]interface{}{
			"id_producto": producto.ID,
		})
		return err
	}
	return nil
}

func (r *productoRepository) Delete(id uint) error {
	return r.db.Delete(&model.Producto{}, id).Error
}

func (r *productoRepository) CreateImagen(imagen *model.ImagenProducto) error {
	return r.db.Create(imagen).Error
}

func (r *productoRepository) FindImagenesByProducto(idProducto uint) ([]model.ImagenProducto, error) {
	var imagenes []model.ImagenProducto
	err := r.db.Where("id_producto = ?", idProducto).Find(&imagenes).Error
	return imagenes, err
}

func (r *productoRepository) FindImagenByID(id uint) (*model.ImagenProducto, error) {
	var imagen model.ImagenProducto
	if err := r.db.First(&imagen, id).Error; err != nil {
		return nil, err
	}
	return &imagen, nil
}

func (r *productoRepository) DeleteImagen(id uint) error {
	return r.db.Delete(&model.ImagenProducto{}, id).Error
}
