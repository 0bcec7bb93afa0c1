package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

var (
	ErrCategoriaNotFound     = errors.New("categoría not found")
	ErrCategoriaEnUso        = errors.New("categoría tiene productos asociados")
	ErrBodegaNotFound        = errors.New("bodega not found")
	ErrUnidadMedidaNotFound  = errors.New("unidad de medida not found")
	ErrUnidadMedidaDuplicada = errors.New("unidad de medida ya existe")
)

type CatalogoService interface {
	CreateCategoria(tipo string) (*model.Categoria, error)
	GetAllCategorias() ([]model.Categoria, error)
	GetCategoriaByID(id uint) (*model.Categoria, error)
	UpdateCategoria(id uint, tipo string) (*model.Categoria, error)
	DeleteCategoria(id uint) error

	CreateBodega(nombre, direccion string) (*model.Bodega, error)
	GetAllBodegas() ([]model.Bodega, error)
	GetBodegaByID(id uint) (*model.Bodega, error)
	UpdateBodega(id uint, nombre, direccion *string) (*model.Bodega, error)
	DeleteBodega(id uint) error

	CreateUnidadMedida(nombre string) (*model.UnidadMedida, error)
	GetAllUnidadesMedida() ([]model.UnidadMedida, error)
	GetUnidadMedidaByID(id uint) (*model.UnidadMedida, error)
	UpdateUnidadMedida(id uint, nombre string) (*model.UnidadMedida, error)
	DeleteUnidadMedida(id uint) error
}

type catalogoService struct {
	catalogoRepo repository.CatalogoRepository
}

func NewCatalogoService(catalogoRepo repository.CatalogoRepository) CatalogoService {
	return &catalogoService{catalogoRepo: catalogoRepo}
}

func (s *catalogoService) CreateCategoria(tipo string) (*model.Categoria, error) {
	categoria := &model.Categoria{Tipo: tipo}
	if err := s.catalogoRepo.CreateCategoria(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *catalogoService) GetAllCategorias() ([]model.Categoria, error) {
	return s.catalogoRepo.FindAllCategorias()
}

func (s *catalogoService) GetCategoriaByID(id uint) (*model.Categoria, error) {
	categoria, err := s.catalogoRepo.FindCategoriaByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoriaNotFound
		}
		return nil, err
	}
	return categoria, nil
}

func (s *catalogoService) UpdateCategoria(id uint, tipo string) (*model.Categoria, error) {
	categoria, err := s.GetCategoriaByID(id)
	if err != nil {
		return nil, err
	}
	categoria.Tipo = tipo
	if err := s.catalogoRepo.UpdateCategoria(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// DeleteCategoria refuses to remove a categoría while productos still
// reference it.
func (s *catalogoService) DeleteCategoria(id uint) error {
	if _, err := s.GetCategoriaByID(id); err != nil {
		return err
	}

	total, err := s.catalogoRepo.CountProductosByCategoria(id)
	if err != nil {
		return err
	}
	if total > 0 {
		logger.Warn("Refusing to delete categoría in use", map[string]interface{}{
			"id_categoria": id,
			"productos":    total,
		})
		return ErrCategoriaEnUso
	}

	return s.catalogoRepo.DeleteCategoria(id)
}

func (s *catalogoService) CreateBodega(nombre, direccion string) (*model.Bodega, error) {
	bodega := &model.Bodega{Nombre: nombre, Direccion: direccion}
	if err := s.catalogoRepo.CreateBodega(bodega); err != nil {
		return nil, err
	}
	return bodega, nil
}

func (s *catalogoService) GetAllBodegas() ([]model.Bodega, error) {
	return s.catalogoRepo.FindAllBodegas()
}

func (s *catalogoService) GetBodegaByID(id uint) (*model.Bodega, error) {
	bodega, err := s.catalogoRepo.FindBodegaByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBodegaNotFound
		}
		return nil, err
	}
	return bodega, nil
}

func (s *catalogoService) UpdateBodega(id uint, nombre, direccion *string) (*model.Bodega, error) {
	bodega, err := s.GetBodegaByID(id)
	if err != nil {
		return nil, err
	}
	if nombre != nil {
		bodega.Nombre = *nombre
	}
	if direccion != nil {
		bodega.Direccion = *direccion
	}
	if err := s.catalogoRepo.UpdateBodega(bodega); err != nil {
		return nil, err
	}
	return bodega, nil
}

func (s *catalogoService) DeleteBodega(id uint) error {
	if _, err := s.GetBodegaByID(id); err != nil {
		return err
	}
	return s.catalogoRepo.DeleteBodega(id)
}

func (s *catalogoService) CreateUnidadMedida(nombre string) (*model.UnidadMedida, error) {
	if _, err := s.catalogoRepo.FindUnidadMedidaByNombre(nombre); err == nil {
		return nil, ErrUnidadMedidaDuplicada
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unidad := &model.UnidadMedida{Nombre: nombre}
	if err := s.catalogoRepo.CreateUnidadMedida(unidad); err != nil {
		return nil, err
	}
	return unidad, nil
}

func (s *catalogoService) GetAllUnidadesMedida() ([]model.UnidadMedida, error) {
	return s.catalogoRepo.FindAllUnidadesMedida()
}

func (s *catalogoService) GetUnidadMedidaByID(id uint) (*model.UnidadMedida, error) {
	unidad, err := s.catalogoRepo.FindUnidadMedidaByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnidadMedidaNotFound
		}
		return nil, err
	}
	return unidad, nil
}

func (s *catalogoService) UpdateUnidadMedida(id uint, nombre string) (*model.UnidadMedida, error) {
	unidad, err := s.GetUnidadMedidaByID(id)
	if err != nil {
		return nil, err
	}

	if existente, err := s.catalogoRepo.FindUnidadMedidaByNombre(nombre); err == nil {
		if existente.ID != id {
			return nil, ErrUnidadMedidaDuplicada
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unidad.Nombre = nombre
	if err := s.catalogoRepo.UpdateUnidadMedida(unidad); err != nil {
		return nil, err
	}
	return unidad, nil
}

func (s *catalogoService) DeleteUnidadMedida(id uint) error {
	if _, err := s.GetUnidadMedidaByID(id); err != nil {
		return err
	}
	return s.catalogoRepo.DeleteUnidadMedida(id)
}
