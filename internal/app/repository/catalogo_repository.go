package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
)

type CatalogoRepository interface {
	CreateCategoria(categoria *model.Categoria) error
	FindAllCategorias() ([]model.Categoria, error)
	FindCategoriaByID(id uint) (*model.Categoria, error)
	UpdateCategoria(categoria *model.Categoria) error
	DeleteCategoria(id uint) error
	CountProductosByCategoria(idCategoria uint) (int64, error)

	CreateBodega(bodega *model.Bodega) error
	FindAllBodegas() ([]model.Bodega, error)
	FindBodegaByID(id uint) (*model.Bodega, error)
	UpdateBodega(bodega *model.Bodega) error
	DeleteBodega(id uint) error

	CreateUnidadMedida(unidad *model.UnidadMedida) error
	FindAllUnidadesMedida() ([]model.UnidadMedida, error)
	FindUnidadMedidaByID(id uint) (*model.UnidadMedida, error)
	FindUnidadMedidaByNombre(nombre string) (*model.UnidadMedida, error)
	UpdateUnidadMedida(unidad *model.UnidadMedida) error
	DeleteUnidadMedida(id uint) error
}

type catalogoRepository struct {
	db *gorm.DB
}

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository {
	return &catalogoRepository{db: db}
}

func (r *catalogoRepository) CreateCategoria(categoria *model.Categoria) error {
	return r.db.Create(categoria).Error
}

func (r *catalogoRepository) FindAllCategorias() ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.Order("tipo ASC").Find(&categorias).Error
	return categorias, err
}

func (r *catalogoRepository) FindCategoriaByID(id uint) (*model.Categoria, error) {
	var categoria model.Categoria
	if err := r.db.First(&categoria, id).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *catalogoRepository) UpdateCategoria(categoria *model.Categoria) error {
	return r.db.Save(categoria).Error
}

func (r *catalogoRepository) DeleteCategoria(id uint) error {
	return r.db.Delete(&model.Categoria{}, id).Error
}

// CountProductosByCategoria backs the delete guard: a categoria with
// productos still pointing at it cannot be removed.
func (r *catalogoRepository) CountProductosByCategoria(idCategoria uint) (int64, error) {
	var total int64
	err := r.db.Model(&model.Producto{}).Where("id_categoria = ?", idCategoria).Count(&total).Error
	return total, err
}

func (r *catalogoRepository) CreateBodega(bodega *model.Bodega) error {
	return r.db.Create(bodega).Error
}

func (r *catalogoRepository) FindAllBodegas() ([]model.Bodega, error) {
	var bodegas []model.Bodega
	err := r.db.Find(&bodegas).Error
	return bodegas, err
}

func (r *catalogoRepository) FindBodegaByID(id uint) (*model.Bodega, error) {
	var bodega model.Bodega
	if err := r.db.First(&bodega, id).Error; err != nil {
		return nil, err
	}
	return &bodega, nil
}

func (r *catalogoRepository) UpdateBodega(bodega *model.Bodega) error {
	return r.db.Save(bodega).Error
}

func (r *catalogoRepository) DeleteBodega(id uint) error {
	return r.db.Delete(&model.Bodega{}, id).Error
}

func (r *catalogoRepository) CreateUnidadMedida(unidad *model.UnidadMedida) error {
	return r.db.Create(unidad).Error
}

func (r *catalogoRepository) FindAllUnidadesMedida() ([]model.UnidadMedida, error) {
	var unidades []model.UnidadMedida
	err := r.db.Find(&unidades).Error
	return unidades, err
}

func (r *catalogoRepository) FindUnidadMedidaByID(id uint) (*model.UnidadMedida, error) {
	var unidad model.UnidadMedida
	if err := r.db.First(&unidad, id).Error; err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *catalogoRepository) FindUnidadMedidaByNombre(nombre string) (*model.UnidadMedida, error) {
	var unidad model.UnidadMedida
	if err := r.db.Where("nombre = ?", nombre).First(&unidad).Error; err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *catalogoRepository) UpdateUnidadMedida(unidad *model.UnidadMedida) error {
	return r.db.Save(unidad).Error
}

func (r *catalogoRepository) DeleteUnidadMedida(id uint) error {
	return r.db.Delete(&model.UnidadMedida{}, id).Error
}
