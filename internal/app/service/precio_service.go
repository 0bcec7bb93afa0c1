package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

var (
	ErrDescuentoNotFound  = errors.New("descuento not found")
	ErrPorcentajeInvalido = errors.New("porcentaje debe estar entre 0 y 100")
	ErrVigenciaInvalida   = errors.New("fecha_fin debe ser posterior a fecha_inicio")
)

type DescuentoInput struct {
	IDProducto  uint
	IDCliente   *uint
	Porcentaje  float64
	FechaInicio time.Time
	FechaFin    *time.Time
}

// DescuentoUpdateInput carries a partial update. Nil fields keep their
// stored value.
type DescuentoUpdateInput struct {
	Porcentaje *float64
	FechaFin   *time.Time
}

type PrecioService interface {
	GetHistorialByProducto(idProducto uint) ([]model.RegistroPrecio, error)

	CreateDescuento(input DescuentoInput) (*model.Descuento, error)
	GetAllDescuentos() ([]model.Descuento, error)
	GetDescuentoByID(id uint) (*model.Descuento, error)
	GetDescuentosByCliente(idCliente uint) ([]model.Descuento, error)
	UpdateDescuento(id uint, input DescuentoUpdateInput) (*model.Descuento, error)
	DeleteDescuento(id uint) error
}

type precioService struct {
	precioRepo   repository.PrecioRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

func NewPrecioService(
	precioRepo repository.PrecioRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) PrecioService {
	return &precioService{
		precioRepo:   precioRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
}

func (s *precioService) GetHistorialByProducto(idProducto uint) ([]model.RegistroPrecio, error) {
	if _, err := s.productoRepo.FindByID(idProducto); err != nil {
		return nil, ErrProductoNotFound
	}
	return s.precioRepo.FindRegistrosByProducto(idProducto)
}

func (s *precioService) CreateDescuento(input DescuentoInput) (*model.Descuento, error) {
	if input.Porcentaje < 0 || input.Porcentaje > 100 {
		return nil, ErrPorcentajeInvalido
	}
	if input.FechaFin != nil && !input.FechaFin.After(input.FechaInicio) {
		return nil, ErrVigenciaInvalida
	}

	if _, err := s.productoRepo.FindByID(input.IDProducto); err != nil {
		return nil, ErrProductoNotFound
	}
	if input.IDCliente != nil {
		if _, err := s.clienteRepo.FindByID(*input.IDCliente); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClienteNotFound
			}
			return nil, err
		}
	}

	fechaInicio := input.FechaInicio
	if fechaInicio.IsZero() {
		fechaInicio = time.Now()
	}

	descuento := &model.Descuento{
		IDProducto:  input.IDProducto,
		IDCliente:   input.IDCliente,
		Porcentaje:  input.Porcentaje,
		FechaInicio: fechaInicio,
		FechaFin:    input.FechaFin,
	}
	if err := s.precioRepo.CreateDescuento(descuento); err != nil {
		return nil, err
	}

	logger.Info("Descuento created", map[string]interface{}{
		"id_descuento": descuento.ID,
		"id_producto":  input.IDProducto,
		"porcentaje":   input.Porcentaje,
	})
	return descuento, nil
}

func (s *precioService) GetAllDescuentos() ([]model.Descuento, error) {
	return s.precioRepo.FindAllDescuentos()
}

func (s *precioService) GetDescuentoByID(id uint) (*model.Descuento, error) {
	descuento, err := s.precioRepo.FindDescuentoByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDescuentoNotFound
		}
		return nil, err
	}
	return descuento, nil
}

func (s *precioService) GetDescuentosByCliente(idCliente uint) ([]model.Descuento, error) {
	if _, err := s.clienteRepo.FindByID(idCliente); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}
	return s.precioRepo.FindDescuentosByCliente(idCliente)
}

func (s *precioService) UpdateDescuento(id uint, input DescuentoUpdateInput) (*model.Descuento, error) {
	descuento, err := s.GetDescuentoByID(id)
	if err != nil {
		return nil, err
	}

	if input.Porcentaje != nil {
		if *input.Porcentaje < 0 || *input.Porcentaje > 100 {
			return nil, ErrPorcentajeInvalido
		}
		descuento.Porcentaje = *input.Porcentaje
	}
	if input.FechaFin != nil {
		if !input.FechaFin.After(descuento.FechaInicio) {
			return nil, ErrVigenciaInvalida
		}
		descuento.FechaFin = input.FechaFin
	}

	if err := s.precioRepo.UpdateDescuento(descuento); err != nil {
		return nil, err
	}
	return descuento, nil
}

func (s *precioService) DeleteDescuento(id uint) error {
	if _, err := s.GetDescuentoByID(id); err != nil {
		return err
	}
	return s.precioRepo.DeleteDescuento(id)
}
