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
	ErrProductoNotFound = errors.New("producto not found")
	ErrImagenNotFound   = errors.New("imagen not found")
)

// ProductoUpdateInput carries a partial update. Nil fields keep their
// stored value. A price change closes the open registro_precios row
// and opens a new one.
type ProductoUpdateInput struct {
	IDProveedor     *uint
	IDCategoria     *uint
	IDBodega        *uint
	IDUnidadMedida  *uint
	Nombre          *string
	Descripcion     *string
	PrecioNeto      *decimal.Decimal
	PrecioVenta     *decimal.Decimal
	UnidadesPorCaja *int
	SKU             *string
}

type ProductoService interface {
	Create(producto *model.Producto) error
	GetAll(filter repository.ProductoFilter) ([]model.Producto, error)
	GetByID(id uint) (*model.Producto, error)
	Update(id uint, input ProductoUpdateInput) (*model.Producto, error)
	Delete(id uint) error

	AddImagen(idProducto uint, url string) (*model.ImagenProducto, error)
	GetImagenes(idProducto uint) ([]model.ImagenProducto, error)
	DeleteImagen(id uint) (*model.ImagenProducto, error)
}

type productoService struct {
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	catalogoRepo  repository.CatalogoRepository
	precioRepo    repository.PrecioRepository
}

func NewProductoService(
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	catalogoRepo repository.CatalogoRepository,
	precioRepo repository.PrecioRepository,
) ProductoService {
	return &productoService{
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		catalogoRepo:  catalogoRepo,
		precioRepo:    precioRepo,
	}
}

func (s *productoService) checkReferences(idProveedor, idCategoria, idBodega, idUnidadMedida *uint) error {
	if idProveedor != nil {
		if _, err := s.proveedorRepo.FindByID(*idProveedor); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProveedorNotFound
			}
			return err
		}
	}
	if idCategoria != nil {
		if _, err := s.catalogoRepo.FindCategoriaByID(*idCategoria); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoriaNotFound
			}
			return err
		}
	}
	if idBodega != nil {
		if _, err := s.catalogoRepo.FindBodegaByID(*idBodega); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBodegaNotFound
			}
			return err
		}
	}
	if idUnidadMedida != nil {
		if _, err := s.catalogoRepo.FindUnidadMedidaByID(*idUnidadMedida); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnidadMedidaNotFound
			}
			return err
		}
	}
	return nil
}

// Create inserts the producto and opens its first price record.
func (s *productoService) Create(producto *model.Producto) error {
	err := s.checkReferences(
		&producto.IDProveedor,
		&producto.IDCategoria,
		&producto.IDBodega,
		&producto.IDUnidadMedida,
	)
	if err != nil {
		return err
	}

	registro := &model.RegistroPrecio{
		FechaCreacion: time.Now(),
		PrecioNeto:    producto.PrecioNeto,
		PrecioVenta:   producto.PrecioVenta,
	}
	if err := s.productoRepo.CreateConRegistroPrecio(producto, registro); err != nil {
		return err
	}

	logger.Info("Producto created", map[string]interface{}{
		"id_producto": producto.ID,
		"nombre":      producto.Nombre,
	})
	return nil
}

func (s *productoService) GetAll(filter repository.ProductoFilter) ([]model.Producto, error) {
	return s.productoRepo.FindAll(filter)
}

func (s *productoService) GetByID(id uint) (*model.Producto, error) {
	producto, err := s.productoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNotFound
		}
		return nil, err
	}
	return producto, nil
}

func (s *productoService) Update(id uint, input ProductoUpdateInput) (*model.Producto, error) {
	producto, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.checkReferences(input.IDProveedor, input.IDCategoria, input.IDBodega, input.IDUnidadMedida)
	if err != nil {
		return nil, err
	}

	if input.IDProveedor != nil {
		producto.IDProveedor = *input.IDProveedor
	}
	if input.IDCategoria != nil {
		producto.IDCategoria = *input.IDCategoria
	}
	if input.IDBodega != nil {
		producto.IDBodega = *input.IDBodega
	}
	if input.IDUnidadMedida != nil {
		producto.IDUnidadMedida = *input.IDUnidadMedida
	}
	if input.Nombre != nil {
		producto.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		producto.Descripcion = *input.Descripcion
	}
	if input.UnidadesPorCaja != nil {
		producto.UnidadesPorCaja = *input.UnidadesPorCaja
	}
	if input.SKU != nil {
		producto.SKU = *input.SKU
	}

	precioCambio := false
	if input.PrecioNeto != nil && !input.PrecioNeto.Equal(producto.PrecioNeto) {
		producto.PrecioNeto = *input.PrecioNeto
		precioCambio = true
	}
	if input.PrecioVenta != nil && !input.PrecioVenta.Equal(producto.PrecioVenta) {
		producto.PrecioVenta = *input.PrecioVenta
		precioCambio = true
	}

	if err := s.productoRepo.Update(producto); err != nil {
		return nil, err
	}

	if precioCambio {
		ahora := time.Now()
		if err := s.precioRepo.CerrarRegistroVigente(id, ahora); err != nil {
			return nil, err
		}
		registro := &model.RegistroPrecio{
			IDProducto:    id,
			FechaCreacion: ahora,
			PrecioNeto:    producto.PrecioNeto,
			PrecioVenta:   producto.PrecioVenta,
		}
		if err := s.precioRepo.CreateRegistro(registro); err != nil {
			return nil, err
		}
		logger.Info("Producto price changed", map[string]interface{}{
			"id_producto":  id,
			"precio_neto":  producto.PrecioNeto.String(),
			"precio_venta": producto.PrecioVenta.String(),
		})
	}

	return s.GetByID(id)
}

func (s *productoService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.productoRepo.Delete(id)
}

func (s *productoService) AddImagen(idProducto uint, url string) (*model.ImagenProducto, error) {
	if _, err := s.GetByID(idProducto); err != nil {
		return nil, err
	}

	imagen := &model.ImagenProducto{
		IDProducto: idProducto,
		URL:        url,
	}
	if err := s.productoRepo.CreateImagen(imagen); err != nil {
		return nil, err
	}
	return imagen, nil
}

func (s *productoService) GetImagenes(idProducto uint) ([]model.ImagenProducto, error) {
	if _, err := s.GetByID(idProducto); err != nil {
		return nil, err
	}
	return s.productoRepo.FindImagenesByProducto(idProducto)
}

// DeleteImagen removes the row and hands back the record so the caller
// can unlink the file on disk.
func (s *productoService) DeleteImagen(id uint) (*model.ImagenProducto, error) {
	imagen, err := s.productoRepo.FindImagenByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImagenNotFound
		}
		return nil, err
	}
	if err := s.productoRepo.DeleteImagen(id); err != nil {
		return nil, err
	}
	return imagen, nil
}
