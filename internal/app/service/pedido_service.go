package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

var (
	ErrPedidoNotFound    = errors.New("pedido not found")
	ErrDetalleNotFound   = errors.New("detalle de pedido not found")
	ErrEstadoInvalido    = errors.New("estado de pedido inválido")
	ErrPedidoSinDetalles = errors.New("pedido requiere al menos un detalle")
)

type DetalleInput struct {
	IDProducto uint
	Cantidad   int
	Descuento  float64
}

type PedidoInput struct {
	IDCliente    uint
	IDProveedor  uint
	TipoPedido   string
	FechaPedido  time.Time
	FechaEntrega time.Time
	Comentarios  string
	Estado       model.EstadoPedido
	Detalles     []DetalleInput
}

// PedidoUpdateInput carries a partial update. Nil fields keep their
// stored value.
type PedidoUpdateInput struct {
	TipoPedido   *string
	FechaEntrega *time.Time
	Comentarios  *string
	Estado       *model.EstadoPedido
}

type PedidoService interface {
	Create(input PedidoInput) (*model.Pedido, error)
	GetAll(filter repository.PedidoFilter) ([]model.Pedido, error)
	GetByID(id uint) (*model.Pedido, error)
	Update(id uint, input PedidoUpdateInput) (*model.Pedido, error)
	Delete(id uint) error

	AddDetalle(idPedido uint, input DetalleInput) (*model.DetallePedido, error)
	DeleteDetalle(id uint) error
}

type pedidoService struct {
	pedidoRepo    repository.PedidoRepository
	clienteRepo   repository.ClienteRepository
	proveedorRepo repository.ProveedorRepository
	productoRepo  repository.ProductoRepository
}

func NewPedidoService(
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
) PedidoService {
	return &pedidoService{
		pedidoRepo:    pedidoRepo,
		clienteRepo:   clienteRepo,
		proveedorRepo: proveedorRepo,
		productoRepo:  productoRepo,
	}
}

func estadoValido(estado model.EstadoPedido) bool {
	for _, e := range model.EstadosPedido {
		if estado == e {
			return true
		}
	}
	return false
}

// precioDetalle computes cantidad * precio_venta minus the line
// discount, rounded to pesos.
func precioDetalle(producto *model.Producto, cantidad int, descuento float64) decimal.Decimal {
	bruto := producto.PrecioVenta.Mul(decimal.NewFromInt(int64(cantidad)))
	if descuento <= 0 {
		return bruto.Round(2)
	}
	factor := decimal.NewFromFloat(1 - descuento/100)
	return bruto.Mul(factor).Round(2)
}

func (s *pedidoService) Create(input PedidoInput) (*model.Pedido, error) {
	if !estadoValido(input.Estado) {
		return nil, ErrEstadoInvalido
	}
	if len(input.Detalles) == 0 {
		return nil, ErrPedidoSinDetalles
	}

	if _, err := s.clienteRepo.FindByID(input.IDCliente); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}
	if _, err := s.proveedorRepo.FindByID(input.IDProveedor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNotFound
		}
		return nil, err
	}

	detalles := make([]model.DetallePedido, 0, len(input.Detalles))
	for _, d := range input.Detalles {
		if d.Cantidad <= 0 {
			return nil, ErrCantidadInvalida
		}
		if d.Descuento < 0 || d.Descuento > 100 {
			return nil, ErrPorcentajeInvalido
		}
		producto, err := s.productoRepo.FindByID(d.IDProducto)
		if err != nil {
			return nil, ErrProductoNotFound
		}
		detalles = append(detalles, model.DetallePedido{
			IDProducto:  d.IDProducto,
			Cantidad:    d.Cantidad,
			PrecioTotal: precioDetalle(producto, d.Cantidad, d.Descuento),
			Descuento:   d.Descuento,
		})
	}

	fechaPedido := input.FechaPedido
	if fechaPedido.IsZero() {
		fechaPedido = time.Now()
	}

	pedido := &model.Pedido{
		IDCliente:    input.IDCliente,
		IDProveedor:  input.IDProveedor,
		TipoPedido:   input.TipoPedido,
		FechaPedido:  fechaPedido,
		FechaEntrega: input.FechaEntrega,
		Comentarios:  input.Comentarios,
		Estado:       input.Estado,
	}
	if err := s.pedidoRepo.CreateConDetalles(pedido, detalles); err != nil {
		return nil, err
	}

	logger.Info("Pedido created", map[string]interface{}{
		"id_pedido":  pedido.ID,
		"id_cliente": input.IDCliente,
		"detalles":   len(detalles),
	})
	return s.GetByID(pedido.ID)
}

func (s *pedidoService) GetAll(filter repository.PedidoFilter) ([]model.Pedido, error) {
	if filter.Estado != "" && !estadoValido(model.EstadoPedido(filter.Estado)) {
		return nil, ErrEstadoInvalido
	}
	return s.pedidoRepo.FindAll(filter)
}

func (s *pedidoService) GetByID(id uint) (*model.Pedido, error) {
	pedido, err := s.pedidoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNotFound
		}
		return nil, err
	}
	return pedido, nil
}

func (s *pedidoService) Update(id uint, input PedidoUpdateInput) (*model.Pedido, error) {
	pedido, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Estado != nil {
		if !estadoValido(*input.Estado) {
			return nil, ErrEstadoInvalido
		}
		pedido.Estado = *input.Estado
	}
	if input.TipoPedido != nil {
		pedido.TipoPedido = *input.TipoPedido
	}
	if input.FechaEntrega != nil {
		pedido.FechaEntrega = *input.FechaEntrega
	}
	if input.Comentarios != nil {
		pedido.Comentarios = *input.Comentarios
	}

	if err := s.pedidoRepo.Update(pedido); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *pedidoService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.pedidoRepo.Delete(id)
}

func (s *pedidoService) AddDetalle(idPedido uint, input DetalleInput) (*model.DetallePedido, error) {
	if _, err := s.GetByID(idPedido); err != nil {
		return nil, err
	}
	if input.Cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}
	if input.Descuento < 0 || input.Descuento > 100 {
		return nil, ErrPorcentajeInvalido
	}

	producto, err := s.productoRepo.FindByID(input.IDProducto)
	if err != nil {
		return nil, ErrProductoNotFound
	}

	detalle := &model.DetallePedido{
		IDPedido:    idPedido,
		IDProducto:  input.IDProducto,
		Cantidad:    input.Cantidad,
		PrecioTotal: precioDetalle(producto, input.Cantidad, input.Descuento),
		Descuento:   input.Descuento,
	}
	if err := s.pedidoRepo.CreateDetalle(detalle); err != nil {
		return nil, err
	}
	return detalle, nil
}

func (s *pedidoService) DeleteDetalle(id uint) error {
	if _, err := s.pedidoRepo.FindDetalleByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDetalleNotFound
		}
		return err
	}
	return s.pedidoRepo.DeleteDetalle(id)
}
