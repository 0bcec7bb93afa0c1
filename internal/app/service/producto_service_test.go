package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

func newProductoService(t *testing.T) (ProductoService, PrecioService, *gorm.DB) {
	gdb := newTestDB(t)
	productoRepo := repository.NewProductoRepository(gdb)
	precioRepo := repository.NewPrecioRepository(gdb)
	productoSvc := NewProductoService(
		productoRepo,
		repository.NewProveedorRepository(gdb),
		repository.NewCatalogoRepository(gdb),
		precioRepo,
	)
	precioSvc := NewPrecioService(precioRepo, productoRepo, repository.NewClienteRepository(gdb))
	return productoSvc, precioSvc, gdb
}

func seedReferences(t *testing.T, gdb *gorm.DB) (proveedor model.Proveedor, categoria model.Categoria, bodega model.Bodega, unidad model.UnidadMedida) {
	t.Helper()
	proveedor = model.Proveedor{NombreEmpresa: "Distribuidora Sur", RazonSocial: "Distribuidora Sur SpA"}
	require.NoError(t, gdb.Create(&proveedor).Error)
	categoria = model.Categoria{Tipo: "Bebidas"}
	require.NoError(t, gdb.Create(&categoria).Error)
	bodega = model.Bodega{Nombre: "Bodega Central"}
	require.NoError(t, gdb.Create(&bodega).Error)
	unidad = model.UnidadMedida{Nombre: "Botella"}
	require.NoError(t, gdb.Create(&unidad).Error)
	return
}

func TestProductoCreateOpensPriceRecord(t *testing.T) {
	productoSvc, precioSvc, gdb := newProductoService(t)
	proveedor, categoria, bodega, unidad := seedReferences(t, gdb)

	producto := &model.Producto{
		IDProveedor:     proveedor.ID,
		IDCategoria:     categoria.ID,
		IDBodega:        bodega.ID,
		IDUnidadMedida:  unidad.ID,
		Nombre:          "Bebida Cola 1.5L",
		Descripcion:     "Botella desechable",
		PrecioNeto:      decimal.NewFromInt(1200),
		PrecioVenta:     decimal.NewFromInt(1590),
		UnidadesPorCaja: 6,
		SKU:             "BEB-001",
	}
	require.NoError(t, productoSvc.Create(producto))

	historial, err := precioSvc.GetHistorialByProducto(producto.ID)
	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.Nil(t, historial[0].FechaFin)
	assert.True(t, historial[0].PrecioVenta.Equal(decimal.NewFromInt(1590)))
}

func TestProductoCreateRollsBackWhenPriceRecordFails(t *testing.T) {
	gdb := newTestDB(t)
	repo := repository.NewProductoRepository(gdb)
	existente := seedProducto(t, gdb)

	abierto := &model.RegistroPrecio{
		IDProducto:    existente.ID,
		FechaCreacion: time.Now(),
		PrecioNeto:    existente.PrecioNeto,
		PrecioVenta:   existente.PrecioVenta,
	}
	require.NoError(t, gdb.Create(abierto).Error)

	nuevo := &model.Producto{
		IDProveedor:     existente.IDProveedor,
		IDCategoria:     existente.IDCategoria,
		IDBodega:        existente.IDBodega,
		IDUnidadMedida:  existente.IDUnidadMedida,
		Nombre:          "Fideos Spaghetti",
		Descripcion:     "Paquete 400g",
		PrecioNeto:      decimal.NewFromInt(700),
		PrecioVenta:     decimal.NewFromInt(990),
		UnidadesPorCaja: 20,
		SKU:             "FID-001",
	}
	// Collides with the existing registro's primary key, so the second
	// insert of the unit of work fails
	registro := &model.RegistroPrecio{
		ID:            abierto.ID,
		FechaCreacion: time.Now(),
		PrecioNeto:    nuevo.PrecioNeto,
		PrecioVenta:   nuevo.PrecioVenta,
	}
	require.Error(t, repo.CreateConRegistroPrecio(nuevo, registro))

	var productos int64
	require.NoError(t, gdb.Model(&model.Producto{}).Count(&productos).Error)
	assert.EqualValues(t, 1, productos)
}

func TestProductoCreateUnknownReference(t *testing.T) {
	productoSvc, _, gdb := newProductoService(t)
	proveedor, categoria, bodega, _ := seedReferences(t, gdb)

	err := productoSvc.Create(&model.Producto{
		IDProveedor:    proveedor.ID,
		IDCategoria:    categoria.ID,
		IDBodega:       bodega.ID,
		IDUnidadMedida: 999,
		Nombre:         "Sin unidad",
		Descripcion:    "n/a",
		PrecioNeto:     decimal.NewFromInt(100),
		PrecioVenta:    decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, ErrUnidadMedidaNotFound)
}

func TestProductoPriceChangeRollsHistory(t *testing.T) {
	productoSvc, precioSvc, gdb := newProductoService(t)
	producto := seedProducto(t, gdb)

	// Seeded directly, so open its first record through an update
	nuevoPrecio := decimal.NewFromInt(1100)
	_, err := productoSvc.Update(producto.ID, ProductoUpdateInput{PrecioVenta: &nuevoPrecio})
	require.NoError(t, err)

	segundoPrecio := decimal.NewFromInt(1250)
	updated, err := productoSvc.Update(producto.ID, ProductoUpdateInput{PrecioVenta: &segundoPrecio})
	require.NoError(t, err)
	assert.True(t, updated.PrecioVenta.Equal(segundoPrecio))

	historial, err := precioSvc.GetHistorialByProducto(producto.ID)
	require.NoError(t, err)
	require.Len(t, historial, 2)

	vigentes := 0
	for _, registro := range historial {
		if registro.FechaFin == nil {
			vigentes++
			assert.True(t, registro.PrecioVenta.Equal(segundoPrecio))
		}
	}
	assert.Equal(t, 1, vigentes)
}

func TestProductoUpdateWithoutPriceChangeKeepsHistory(t *testing.T) {
	productoSvc, precioSvc, gdb := newProductoService(t)
	producto := seedProducto(t, gdb)

	nombre := "Arroz Grado 2"
	mismoPrecio := producto.PrecioVenta
	updated, err := productoSvc.Update(producto.ID, ProductoUpdateInput{
		Nombre:      &nombre,
		PrecioVenta: &mismoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arroz Grado 2", updated.Nombre)

	historial, err := precioSvc.GetHistorialByProducto(producto.ID)
	require.NoError(t, err)
	assert.Empty(t, historial)
}

func TestImagenLifecycle(t *testing.T) {
	productoSvc, _, gdb := newProductoService(t)
	producto := seedProducto(t, gdb)

	imagen, err := productoSvc.AddImagen(producto.ID, "/uploads/imagenes/abc.png")
	require.NoError(t, err)
	require.NotZero(t, imagen.ID)

	imagenes, err := productoSvc.GetImagenes(producto.ID)
	require.NoError(t, err)
	require.Len(t, imagenes, 1)
	assert.Equal(t, "/uploads/imagenes/abc.png", imagenes[0].URL)

	removed, err := productoSvc.DeleteImagen(imagen.ID)
	require.NoError(t, err)
	assert.Equal(t, imagen.URL, removed.URL)

	_, err = productoSvc.DeleteImagen(imagen.ID)
	assert.ErrorIs(t, err, ErrImagenNotFound)
}
