package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
)

type GeoRepository interface {
	CreateRegion(region *model.Region) error
	FindAllRegiones() ([]model.Region, error)
	FindRegionByID(id uint) (*model.Region, error)
	UpdateRegion(region *model.Region) error
	DeleteRegion(id uint) error

	CreateComuna(comuna *model.Comuna) error
	FindAllComunas() ([]model.Comuna, error)
	FindComunaByID(id uint) (*model.Comuna, error)
	FindComunasByRegion(idRegion uint) ([]model.Comuna, error)
	UpdateComuna(comuna *model.Comuna) error
	DeleteComuna(id uint) error
}

type geoRepository struct {
	db *gorm.DB
}

func NewGeoRepository(db *gorm.DB) GeoRepository {
	return &geoRepository{db: db}
}

func (r *geoRepository) CreateRegion(region *model.Region) error {
	return r.db.Create(region).Error
}

func (r *geoRepository) FindAllRegiones() ([]model.Region, error) {
	var regiones []model.Region
	err := r.db.Preload("Comunas").Order("nombre ASC").Find(&regiones).Error
	return regiones, err
}

func (r *geoRepository) FindRegionByID(id uint) (*model.Region, error) {
	var region model.Region
	if err := r.db.Preload("Comunas").First(&region, id).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *geoRepository) UpdateRegion(region *model.Region) error {
	return r.db.Save(region).Error
}

func (r *geoRepository) DeleteRegion(id uint) error {
	return r.db.Delete(&model.Region{}, id).Error
}

func (r *geoRepository) CreateComuna(comuna *model.Comuna) error {
	return r.db.Create(comuna).Error
}

func (r *geoRepository) FindAllComunas() ([]model.Comuna, error) {
	var comunas []model.Comuna
	err := r.db.Preload("Region").Order("nombre ASC").Find(&comunas).Error
	return comunas, err
}

func (r *geoRepository) FindComunaByID(id uint) (*model.Comuna, error) {
	var comuna model.Comuna
	if err := r.db.Preload("Region").First(&comuna, id).Error; err != nil {
		return nil, err
	}
	return &comuna, nil
}

func (r *geoRepository) FindComunasByRegion(idRegion uint) ([]model.Comuna, error) {
	var comunas []model.Comuna
	err := r.db.Where("id_region = ?", idRegion).Order("nombre ASC").Find(&comunas).Error
	return comunas, err
}

func (r *geoRepository) UpdateComuna(comuna *model.Comuna) error {
	return r.db.Save(comuna).Error
}

func (r *geoRepository) DeleteComuna(id uint) error {
	return r.db.Delete(&model.Comuna{}, id).Error
}
