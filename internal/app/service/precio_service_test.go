package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/repository"
)

func newPrecioService(t *testing.T) (PrecioService, *gorm.DB) {
	gdb := newTestDB(t)
	svc := NewPrecioService(
		repository.NewPrecioRepository(gdb),
		repository.NewProductoRepository(gdb),
		repository.NewClienteRepository(gdb),
	)
	return svc, gdb
}

func TestCreateDescuentoBounds(t *testing.T) {
	svc, gdb := newPrecioService(t)
	producto := seedProducto(t, gdb)

	// Both bounds inclusive
	for _, porcentaje := range []float64{0, 100, 15.5} {
		descuento, err := svc.CreateDescuento(DescuentoInput{
			IDProducto: producto.ID,
			Porcentaje: porcentaje,
		})
		require.NoError(t, err)
		assert.Equal(t, porcentaje, descuento.Porcentaje)
		assert.False(t, descuento.FechaInicio.IsZero())
	}

	for _, porcentaje := range []float64{-0.1, 100.1} {
		_, err := svc.CreateDescuento(DescuentoInput{
			IDProducto: producto.ID,
			Porcentaje: porcentaje,
		})
		assert.ErrorIs(t, err, ErrPorcentajeInvalido)
	}
}

func TestCreateDescuentoVigencia(t *testing.T) {
	svc, gdb := newPrecioService(t)
	producto := seedProducto(t, gdb)

	inicio := time.Now()
	fin := inicio.Add(-time.Hour)
	_, err := svc.CreateDescuento(DescuentoInput{
		IDProducto:  producto.ID,
		Porcentaje:  10,
		FechaInicio: inicio,
		FechaFin:    &fin,
	})
	assert.ErrorIs(t, err, ErrVigenciaInvalida)
}

func TestCreateDescuentoReferences(t *testing.T) {
	svc, gdb := newPrecioService(t)
	producto := seedProducto(t, gdb)
	cliente := seedCliente(t, gdb)

	_, err := svc.CreateDescuento(DescuentoInput{IDProducto: 999, Porcentaje: 10})
	assert.ErrorIs(t, err, ErrProductoNotFound)

	_, err = svc.CreateDescuento(DescuentoInput{
		IDProducto: producto.ID,
		IDCliente:  ptrUint(999),
		Porcentaje: 10,
	})
	assert.ErrorIs(t, err, ErrClienteNotFound)

	descuento, err := svc.CreateDescuento(DescuentoInput{
		IDProducto: producto.ID,
		IDCliente:  &cliente.ID,
		Porcentaje: 10,
	})
	require.NoError(t, err)

	porCliente, err := svc.GetDescuentosByCliente(cliente.ID)
	require.NoError(t, err)
	require.Len(t, porCliente, 1)
	assert.Equal(t, descuento.ID, porCliente[0].ID)
}

func TestUpdateDescuento(t *testing.T) {
	svc, gdb := newPrecioService(t)
	producto := seedProducto(t, gdb)

	descuento, err := svc.CreateDescuento(DescuentoInput{
		IDProducto: producto.ID,
		Porcentaje: 10,
	})
	require.NoError(t, err)

	nuevo := 25.0
	updated, err := svc.UpdateDescuento(descuento.ID, DescuentoUpdateInput{Porcentaje: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Porcentaje)

	fueraDeRango := 101.0
	_, err = svc.UpdateDescuento(descuento.ID, DescuentoUpdateInput{Porcentaje: &fueraDeRango})
	assert.ErrorIs(t, err, ErrPorcentajeInvalido)
}
