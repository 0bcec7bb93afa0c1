package service

import (
	"errors"
	"time"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

var (
	ErrMovimientoNotFound     = errors.New("movimiento de stock not found")
	ErrDevolucionNotFound     = errors.New("devolución not found")
	ErrCantidadInvalida       = errors.New("cantidad debe ser mayor que cero")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento inválido")
	ErrStockInsuficiente      = errors.New("stock insuficiente para el egreso")
)

type MovimientoInput struct {
	IDProducto         uint
	Cantidad           int
	TipoMovimiento     model.TipoMovimiento
	Descripcion        string
	UsuarioResponsable string
	Fecha              time.Time
}

type InventarioService interface {
	RegistrarMovimiento(input MovimientoInput) (*model.MovimientoStock, error)
	GetMovimientosByProducto(idProducto uint) ([]model.MovimientoStock, error)
	GetAllMovimientos() ([]model.MovimientoStock, error)
	StockActual(idProducto uint) (int, error)

	CreateDevolucion(devolucion *model.Devolucion) error
	GetAllDevoluciones() ([]model.Devolucion, error)
	GetDevolucionByID(id uint) (*model.Devolucion, error)
	DeleteDevolucion(id uint) error
}

type inventarioService struct {
	inventarioRepo repository.InventarioRepository
	productoRepo   repository.ProductoRepository
}

func NewInventarioService(
	inventarioRepo repository.InventarioRepository,
	productoRepo repository.ProductoRepository,
) InventarioService {
	return &inventarioService{
		inventarioRepo: inventarioRepo,
		productoRepo:   productoRepo,
	}
}

// RegistrarMovimiento appends an entry to the stock ledger. The
// producto row's stock_unidades counter is refreshed from the ledger
// afterwards; the ledger stays the source of truth.
func (s *inventarioService) RegistrarMovimiento(input MovimientoInput) (*model.MovimientoStock, error) {
	if input.Cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}
	if input.TipoMovimiento != model.MovimientoIngreso && input.TipoMovimiento != model.MovimientoEgreso {
		return nil, ErrTipoMovimientoInvalido
	}

	producto, err := s.productoRepo.FindByID(input.IDProducto)
	if err != nil {
		return nil, ErrProductoNotFound
	}

	if input.TipoMovimiento == model.MovimientoEgreso {
		stock, err := s.inventarioRepo.StockActual(input.IDProducto)
		if err != nil {
			return nil, err
		}
		if input.Cantidad > stock {
			logger.Warn("Egreso rejected for insufficient stock", map[string]interface{}{
				"id_producto": input.IDProducto,
				"stock":       stock,
				"cantidad":    input.Cantidad,
			})
			return nil, ErrStockInsuficiente
		}
	}

	fecha := input.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	movimiento := &model.MovimientoStock{
		IDProducto:         input.IDProducto,
		FechaMovimiento:    fecha,
		Cantidad:           input.Cantidad,
		TipoMovimiento:     input.TipoMovimiento,
		Descripcion:        input.Descripcion,
		UsuarioResponsable: input.UsuarioResponsable,
	}
	if err := s.inventarioRepo.CreateMovimiento(movimiento); err != nil {
		return nil, err
	}

	stock, err := s.inventarioRepo.StockActual(input.IDProducto)
	if err != nil {
		return nil, err
	}
	producto.StockUnidades = stock
	if err := s.productoRepo.Update(producto); err != nil {
		return nil, err
	}

	logger.Info("Movimiento de stock registered", map[string]interface{}{
		"id_movimiento":   movimiento.ID,
		"id_producto":     input.IDProducto,
		"tipo_movimiento": input.TipoMovimiento,
		"cantidad":        input.Cantidad,
		"stock":           stock,
	})
	return movimiento, nil
}

func (s *inventarioService) GetMovimientosByProducto(idProducto uint) ([]model.MovimientoStock, error) {
	if _, err := s.productoRepo.FindByID(idProducto); err != nil {
		return nil, ErrProductoNotFound
	}
	return s.inventarioRepo.FindMovimientosByProducto(idProducto)
}

func (s *inventarioService) GetAllMovimientos() ([]model.MovimientoStock, error) {
	return s.inventarioRepo.FindAllMovimientos()
}

func (s *inventarioService) StockActual(idProducto uint) (int, error) {
	if _, err := s.productoRepo.FindByID(idProducto); err != nil {
		return 0, ErrProductoNotFound
	}
	return s.inventarioRepo.StockActual(idProducto)
}

func (s *inventarioService) CreateDevolucion(devolucion *model.Devolucion) error {
	if _, err := s.productoRepo.FindByID(devolucion.IDProducto); err != nil {
		return ErrProductoNotFound
	}
	if devolucion.CantidadUnidades < 0 || devolucion.CantidadCajas < 0 {
		return ErrCantidadInvalida
	}
	if devolucion.FechaDevolucion.IsZero() {
		devolucion.FechaDevolucion = time.Now()
	}
	return s.inventarioRepo.CreateDevolucion(devolucion)
}

func (s *inventarioService) GetAllDevoluciones() ([]model.Devolucion, error) {
	return s.inventarioRepo.FindAllDevoluciones()
}

func (s *inventarioService) GetDevolucionByID(id uint) (*model.Devolucion, error) {
	devolucion, err := s.inventarioRepo.FindDevolucionByID(id)
	if err != nil {
		return nil, ErrDevolucionNotFound
	}
	return devolucion, nil
}

func (s *inventarioService) DeleteDevolucion(id uint) error {
	if _, err := s.GetDevolucionByID(id); err != nil {
		return err
	}
	return s.inventarioRepo.DeleteDevolucion(id)
}
