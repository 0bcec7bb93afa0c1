package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

var (
	ErrRegionNotFound = errors.New("región not found")
	ErrComunaNotFound = errors.New("comuna not found")
)

type GeoService interface {
	CreateRegion(nombre string) (*model.Region, error)
	GetAllRegiones() ([]model.Region, error)
	GetRegionByID(id uint) (*model.Region, error)
	UpdateRegion(id uint, nombre string) (*model.Region, error)
	DeleteRegion(id uint) error

	CreateComuna(nombre string, idRegion uint) (*model.Comuna, error)
	GetAllComunas() ([]model.Comuna, error)
	GetComunaByID(id uint) (*model.Comuna, error)
	GetComunasByRegion(idRegion uint) ([]model.Comuna, error)
	UpdateComuna(id uint, nombre *string, idRegion *uint) (*model.Comuna, error)
	DeleteComuna(id uint) error
}

type geoService struct {
	geoRepo repository.GeoRepository
}

func NewGeoService(geoRepo repository.GeoRepository) GeoService {
	return &geoService{geoRepo: geoRepo}
}

func (s *geoService) CreateRegion(nombre string) (*model.Region, error) {
	region := &model.Region{Nombre: nombre}
	if err := s.geoRepo.CreateRegion(region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *geoService) GetAllRegiones() ([]model.Region, error) {
	return s.geoRepo.FindAllRegiones()
}

func (s *geoService) GetRegionByID(id uint) (*model.Region, error) {
	region, err := s.geoRepo.FindRegionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, err
	}
	return region, nil
}

func (s *geoService) UpdateRegion(id uint, nombre string) (*model.Region, error) {
	region, err := s.GetRegionByID(id)
	if err != nil {
		return nil, err
	}
	region.Nombre = nombre
	if err := s.geoRepo.UpdateRegion(region); err != nil {
		return nil, err
	}
	return region, nil
}

func (s *geoService) DeleteRegion(id uint) error {
	if _, err := s.GetRegionByID(id); err != nil {
		return err
	}
	return s.geoRepo.DeleteRegion(id)
}

func (s *geoService) CreateComuna(nombre string, idRegion uint) (*model.Comuna, error) {
	if _, err := s.GetRegionByID(idRegion); err != nil {
		return nil, err
	}

	comuna := &model.Comuna{Nombre: nombre, IDRegion: idRegion}
	if err := s.geoRepo.CreateComuna(comuna); err != nil {
		return nil, err
	}
	return comuna, nil
}

func (s *geoService) GetAllComunas() ([]model.Comuna, error) {
	return s.geoRepo.FindAllComunas()
}

func (s *geoService) GetComunaByID(id uint) (*model.Comuna, error) {
	comuna, err := s.geoRepo.FindComunaByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComunaNotFound
		}
		return nil, err
	}
	return comuna, nil
}

func (s *geoService) GetComunasByRegion(idRegion uint) ([]model.Comuna, error) {
	if _, err := s.GetRegionByID(idRegion); err != nil {
		return nil, err
	}
	return s.geoRepo.FindComunasByRegion(idRegion)
}

func (s *geoService) UpdateComuna(id uint, nombre *string, idRegion *uint) (*model.Comuna, error) {
	comuna, err := s.GetComunaByID(id)
	if err != nil {
		return nil, err
	}

	if nombre != nil {
		comuna.Nombre = *nombre
	}
	if idRegion != nil {
		if _, err := s.GetRegionByID(*idRegion); err != nil {
			return nil, err
		}
		comuna.IDRegion = *idRegion
	}

	if err := s.geoRepo.UpdateComuna(comuna); err != nil {
		return nil, err
	}
	return comuna, nil
}

func (s *geoService) DeleteComuna(id uint) error {
	if _, err := s.GetComunaByID(id); err != nil {
		return err
	}
	return s.geoRepo.DeleteComuna(id)
}
