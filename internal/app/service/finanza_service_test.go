package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

func newFinanzaService(t *testing.T) (FinanzaService, *gorm.DB) {
	gdb := newTestDB(t)
	return NewFinanzaService(repository.NewFinanzaRepository(gdb)), gdb
}

func TestCreateGastoCreatesTransaccion(t *testing.T) {
	svc, gdb := newFinanzaService(t)

	categoria, err := svc.CreateCategoriaGasto("Arriendo")
	require.NoError(t, err)

	gasto, err := svc.CreateGasto(GastoInput{
		NombreGasto:      "Arriendo local",
		IDCategoriaGasto: categoria.ID,
		Monto:            decimal.NewFromInt(450000),
		Descripcion:      "agosto",
	})
	require.NoError(t, err)
	require.NotZero(t, gasto.ID)
	require.NotZero(t, gasto.IDTransaccion)

	transaccion, err := svc.GetTransaccionByID(gasto.IDTransaccion)
	require.NoError(t, err)
	assert.Equal(t, model.TransaccionEgreso, transaccion.Tipo)
	assert.True(t, transaccion.Monto.Equal(decimal.NewFromInt(450000)))
	assert.Equal(t, "agosto", transaccion.Descripcion)

	var total int64
	require.NoError(t, gdb.Model(&model.Transaccion{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestCreateGastoValidation(t *testing.T) {
	svc, gdb := newFinanzaService(t)

	categoria, err := svc.CreateCategoriaGasto("Servicios")
	require.NoError(t, err)

	_, err = svc.CreateGasto(GastoInput{
		NombreGasto:      "Luz",
		IDCategoriaGasto: categoria.ID,
		Monto:            decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = svc.CreateGasto(GastoInput{
		NombreGasto:      "Luz",
		IDCategoriaGasto: 999,
		Monto:            decimal.NewFromInt(30000),
	})
	assert.ErrorIs(t, err, ErrCategoriaGastoNotFound)

	// Nothing half-written
	var transacciones int64
	require.NoError(t, gdb.Model(&model.Transaccion{}).Count(&transacciones).Error)
	assert.Zero(t, transacciones)
}

func TestDeleteGastoRemovesTransaccion(t *testing.T) {
	svc, gdb := newFinanzaService(t)

	categoria, err := svc.CreateCategoriaGasto("Mantención")
	require.NoError(t, err)

	gasto, err := svc.CreateGasto(GastoInput{
		NombreGasto:      "Reparación refrigerador",
		IDCategoriaGasto: categoria.ID,
		Monto:            decimal.NewFromInt(80000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGasto(gasto.ID))

	_, err = svc.GetGastoByID(gasto.ID)
	assert.ErrorIs(t, err, ErrGastoNotFound)
	_, err = svc.GetTransaccionByID(gasto.IDTransaccion)
	assert.ErrorIs(t, err, ErrTransaccionNotFound)

	var restantes int64
	require.NoError(t, gdb.Model(&model.Transaccion{}).Count(&restantes).Error)
	assert.Zero(t, restantes)
}

func TestCreateSueldo(t *testing.T) {
	svc, _ := newFinanzaService(t)

	sueldo, err := svc.CreateSueldo(SueldoInput{
		TipoSueldo:  model.SueldoMensual,
		Monto:       decimal.NewFromInt(600000),
		Descripcion: "sueldo agosto",
	})
	require.NoError(t, err)
	require.NotZero(t, sueldo.IDTransaccion)

	transaccion, err := svc.GetTransaccionByID(sueldo.IDTransaccion)
	require.NoError(t, err)
	assert.Equal(t, model.TransaccionEgreso, transaccion.Tipo)

	_, err = svc.CreateSueldo(SueldoInput{
		TipoSueldo: "diario",
		Monto:      decimal.NewFromInt(20000),
	})
	assert.ErrorIs(t, err, ErrTipoSueldoInvalido)

	_, err = svc.CreateSueldo(SueldoInput{
		TipoSueldo: model.SueldoSemanal,
		Monto:      decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)
}

func TestDeleteSueldoRemovesTransaccion(t *testing.T) {
	svc, _ := newFinanzaService(t)

	sueldo, err := svc.CreateSueldo(SueldoInput{
		TipoSueldo: model.SueldoQuincena,
		Monto:      decimal.NewFromInt(300000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSueldo(sueldo.ID))

	_, err = svc.GetSueldoByID(sueldo.ID)
	assert.ErrorIs(t, err, ErrSueldoNotFound)
	_, err = svc.GetTransaccionByID(sueldo.IDTransaccion)
	assert.ErrorIs(t, err, ErrTransaccionNotFound)
}

func TestCategoriaGastoLifecycle(t *testing.T) {
	svc, _ := newFinanzaService(t)

	categoria, err := svc.CreateCategoriaGasto("Transporte")
	require.NoError(t, err)

	updated, err := svc.UpdateCategoriaGasto(categoria.ID, "Transporte y fletes")
	require.NoError(t, err)
	assert.Equal(t, "Transporte y fletes", updated.Nombre)

	require.NoError(t, svc.DeleteCategoriaGasto(categoria.ID))
	_, err = svc.GetCategoriaGastoByID(categoria.ID)
	assert.ErrorIs(t, err, ErrCategoriaGastoNotFound)
}
