package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somap/somap-backend/internal/app/repository"
)

func TestDeleteCategoriaBlockedWhileInUse(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCatalogoService(repository.NewCatalogoRepository(gdb))

	producto := seedProducto(t, gdb)

	err := svc.DeleteCategoria(producto.IDCategoria)
	assert.ErrorIs(t, err, ErrCategoriaEnUso)

	// Still there
	_, err = svc.GetCategoriaByID(producto.IDCategoria)
	require.NoError(t, err)
}

func TestDeleteCategoriaWithoutProductos(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCatalogoService(repository.NewCatalogoRepository(gdb))

	categoria, err := svc.CreateCategoria("Limpieza")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategoria(categoria.ID))

	_, err = svc.GetCategoriaByID(categoria.ID)
	assert.ErrorIs(t, err, ErrCategoriaNotFound)
}

func TestDeleteCategoriaFreedAfterProductoRemoved(t *testing.T) {
	gdb := newTestDB(t)
	catalogoSvc := NewCatalogoService(repository.NewCatalogoRepository(gdb))
	productoSvc := NewProductoService(
		repository.NewProductoRepository(gdb),
		repository.NewProveedorRepository(gdb),
		repository.NewCatalogoRepository(gdb),
		repository.NewPrecioRepository(gdb),
	)

	producto := seedProducto(t, gdb)

	require.ErrorIs(t, catalogoSvc.DeleteCategoria(producto.IDCategoria), ErrCategoriaEnUso)

	require.NoError(t, productoSvc.Delete(producto.ID))
	require.NoError(t, catalogoSvc.DeleteCategoria(producto.IDCategoria))
}

func TestBodegaPartialUpdate(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCatalogoService(repository.NewCatalogoRepository(gdb))

	bodega, err := svc.CreateBodega("Bodega Norte", "Camino a Lampa 500")
	require.NoError(t, err)

	nombre := "Bodega Norte 2"
	updated, err := svc.UpdateBodega(bodega.ID, &nombre, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bodega Norte 2", updated.Nombre)
	assert.Equal(t, "Camino a Lampa 500", updated.Direccion)
}

func TestUnidadMedidaLifecycle(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCatalogoService(repository.NewCatalogoRepository(gdb))

	unidad, err := svc.CreateUnidadMedida("Caja")
	require.NoError(t, err)

	updated, err := svc.UpdateUnidadMedida(unidad.ID, "Caja 12")
	require.NoError(t, err)
	assert.Equal(t, "Caja 12", updated.Nombre)

	require.NoError(t, svc.DeleteUnidadMedida(unidad.ID))
	_, err = svc.GetUnidadMedidaByID(unidad.ID)
	assert.ErrorIs(t, err, ErrUnidadMedidaNotFound)
}

func TestUnidadMedidaNombreConflicts(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewCatalogoService(repository.NewCatalogoRepository(gdb))

	caja, err := svc.CreateUnidadMedida("Caja")
	require.NoError(t, err)
	pallet, err := svc.CreateUnidadMedida("Pallet")
	require.NoError(t, err)

	_, err = svc.CreateUnidadMedida("Caja")
	assert.ErrorIs(t, err, ErrUnidadMedidaDuplicada)

	_, err = svc.UpdateUnidadMedida(pallet.ID, "Caja")
	assert.ErrorIs(t, err, ErrUnidadMedidaDuplicada)

	// Writing its own name back is not a conflict
	_, err = svc.UpdateUnidadMedida(caja.ID, "Caja")
	require.NoError(t, err)
}
