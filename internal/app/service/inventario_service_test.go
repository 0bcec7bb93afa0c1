package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

func TestStockActualFromLedger(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewInventarioService(
		repository.NewInventarioRepository(gdb),
		repository.NewProductoRepository(gdb),
	)
	producto := seedProducto(t, gdb)

	// Empty ledger means zero stock, not an error
	stock, err := svc.StockActual(producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	movimientos := []struct {
		tipo     model.TipoMovimiento
		cantidad int
	}{
		{model.MovimientoIngreso, 10},
		{model.MovimientoEgreso, 3},
		{model.MovimientoIngreso, 5},
	}
	for _, m := range movimientos {
		_, err := svc.RegistrarMovimiento(MovimientoInput{
			IDProducto:         producto.ID,
			Cantidad:           m.cantidad,
			TipoMovimiento:     m.tipo,
			UsuarioResponsable: "12345678-5",
		})
		require.NoError(t, err)
	}

	stock, err = svc.StockActual(producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, stock)

	// The advisory counter follows the ledger
	var refreshed model.Producto
	require.NoError(t, gdb.First(&refreshed, producto.ID).Error)
	assert.Equal(t, 12, refreshed.StockUnidades)
}

func TestRegistrarMovimientoValidation(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewInventarioService(
		repository.NewInventarioRepository(gdb),
		repository.NewProductoRepository(gdb),
	)
	producto := seedProducto(t, gdb)

	_, err := svc.RegistrarMovimiento(MovimientoInput{
		IDProducto:     producto.ID,
		Cantidad:       0,
		TipoMovimiento: model.MovimientoIngreso,
	})
	assert.ErrorIs(t, err, ErrCantidadInvalida)

	_, err = svc.RegistrarMovimiento(MovimientoInput{
		IDProducto:     producto.ID,
		Cantidad:       5,
		TipoMovimiento: "TRASPASO",
	})
	assert.ErrorIs(t, err, ErrTipoMovimientoInvalido)

	_, err = svc.RegistrarMovimiento(MovimientoInput{
		IDProducto:     999,
		Cantidad:       5,
		TipoMovimiento: model.MovimientoIngreso,
	})
	assert.ErrorIs(t, err, ErrProductoNotFound)
}

func TestEgresoRejectedOnInsufficientStock(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewInventarioService(
		repository.NewInventarioRepository(gdb),
		repository.NewProductoRepository(gdb),
	)
	producto := seedProducto(t, gdb)

	_, err := svc.RegistrarMovimiento(MovimientoInput{
		IDProducto:     producto.ID,
		Cantidad:       4,
		TipoMovimiento: model.MovimientoIngreso,
	})
	require.NoError(t, err)

	_, err = svc.RegistrarMovimiento(MovimientoInput{
		IDProducto:     producto.ID,
		Cantidad:       5,
		TipoMovimiento: model.MovimientoEgreso,
	})
	assert.ErrorIs(t, err, ErrStockInsuficiente)

	// Ledger untouched by the rejected egreso
	stock, err := svc.StockActual(producto.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stock)
}

func TestMovimientosByProducto(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewInventarioService(
		repository.NewInventarioRepository(gdb),
		repository.NewProductoRepository(gdb),
	)
	producto := seedProducto(t, gdb)
	otro := seedProducto(t, gdb)

	for range 3 {
		_, err := svc.RegistrarMovimiento(MovimientoInput{
			IDProducto:     producto.ID,
			Cantidad:       1,
			TipoMovimiento: model.MovimientoIngreso,
		})
		require.NoError(t, err)
	}
	_, err := svc.RegistrarMovimiento(MovimientoInput{
		IDProducto:     otro.ID,
		Cantidad:       7,
		TipoMovimiento: model.MovimientoIngreso,
	})
	require.NoError(t, err)

	movimientos, err := svc.GetMovimientosByProducto(producto.ID)
	require.NoError(t, err)
	assert.Len(t, movimientos, 3)

	_, err = svc.GetMovimientosByProducto(999)
	assert.ErrorIs(t, err, ErrProductoNotFound)
}

func TestDevolucionLifecycle(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewInventarioService(
		repository.NewInventarioRepository(gdb),
		repository.NewProductoRepository(gdb),
	)
	producto := seedProducto(t, gdb)

	devolucion := &model.Devolucion{
		IDProducto:       producto.ID,
		CantidadUnidades: 3,
		CantidadCajas:    1,
		Razon:            "envase dañado",
	}
	require.NoError(t, svc.CreateDevolucion(devolucion))
	require.NotZero(t, devolucion.ID)
	assert.False(t, devolucion.FechaDevolucion.IsZero())

	fetched, err := svc.GetDevolucionByID(devolucion.ID)
	require.NoError(t, err)
	assert.Equal(t, "envase dañado", fetched.Razon)

	require.NoError(t, svc.DeleteDevolucion(devolucion.ID))
	_, err = svc.GetDevolucionByID(devolucion.ID)
	assert.ErrorIs(t, err, ErrDevolucionNotFound)
}
