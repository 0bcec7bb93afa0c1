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

func newPedidoService(t *testing.T) (PedidoService, *gorm.DB) {
	gdb := newTestDB(t)
	svc := NewPedidoService(
		repository.NewPedidoRepository(gdb),
		repository.NewClienteRepository(gdb),
		repository.NewProveedorRepository(gdb),
		repository.NewProductoRepository(gdb),
	)
	return svc, gdb
}

func TestPedidoCreateComputesLinePrices(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb) // precio_venta 1000

	pedido, err := svc.Create(PedidoInput{
		IDCliente:    cliente.ID,
		IDProveedor:  producto.IDProveedor,
		TipoPedido:   "venta",
		FechaEntrega: time.Now().Add(48 * time.Hour),
		Estado:       model.EstadoPendiente,
		Detalles: []DetalleInput{
			{IDProducto: producto.ID, Cantidad: 3},
			{IDProducto: producto.ID, Cantidad: 2, Descuento: 10},
		},
	})
	require.NoError(t, err)
	require.Len(t, pedido.Detalles, 2)

	// 3 * 1000 and 2 * 1000 * 0.9
	assert.True(t, pedido.Detalles[0].PrecioTotal.Equal(decimal.NewFromInt(3000)),
		"got %s", pedido.Detalles[0].PrecioTotal)
	assert.True(t, pedido.Detalles[1].PrecioTotal.Equal(decimal.NewFromInt(1800)),
		"got %s", pedido.Detalles[1].PrecioTotal)
	assert.False(t, pedido.FechaPedido.IsZero())
}

func TestPedidoCreateRejectsInvalidEstado(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb)

	_, err := svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      "despachado",
		Detalles:    []DetalleInput{{IDProducto: producto.ID, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestPedidoCreateRequiresDetalles(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb)

	_, err := svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      model.EstadoPendiente,
	})
	assert.ErrorIs(t, err, ErrPedidoSinDetalles)
}

func TestPedidoCreateValidatesReferences(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb)

	_, err := svc.Create(PedidoInput{
		IDCliente:   999,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      model.EstadoPendiente,
		Detalles:    []DetalleInput{{IDProducto: producto.ID, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, ErrClienteNotFound)

	_, err = svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      model.EstadoPendiente,
		Detalles:    []DetalleInput{{IDProducto: 999, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, ErrProductoNotFound)

	_, err = svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      model.EstadoPendiente,
		Detalles:    []DetalleInput{{IDProducto: producto.ID, Cantidad: 1, Descuento: 120}},
	})
	assert.ErrorIs(t, err, ErrPorcentajeInvalido)
}

func TestPedidoPartialUpdate(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb)

	pedido, err := svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Comentarios: "entregar por la mañana",
		Estado:      model.EstadoPendiente,
		Detalles:    []DetalleInput{{IDProducto: producto.ID, Cantidad: 1}},
	})
	require.NoError(t, err)

	entregado := model.EstadoEntregado
	updated, err := svc.Update(pedido.ID, PedidoUpdateInput{Estado: &entregado})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoEntregado, updated.Estado)
	assert.Equal(t, "entregar por la mañana", updated.Comentarios)

	malEstado := model.EstadoPedido("anulado")
	_, err = svc.Update(pedido.ID, PedidoUpdateInput{Estado: &malEstado})
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestPedidoDeleteRemovesDetalles(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb)

	pedido, err := svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      model.EstadoSinEntregar,
		Detalles:    []DetalleInput{{IDProducto: producto.ID, Cantidad: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(pedido.ID))

	_, err = svc.GetByID(pedido.ID)
	assert.ErrorIs(t, err, ErrPedidoNotFound)

	var detalles int64
	require.NoError(t, gdb.Model(&model.DetallePedido{}).Where("id_pedido = ?", pedido.ID).Count(&detalles).Error)
	assert.Zero(t, detalles)
}

func TestAddAndDeleteDetalle(t *testing.T) {
	svc, gdb := newPedidoService(t)
	cliente := seedCliente(t, gdb)
	producto := seedProducto(t, gdb)

	pedido, err := svc.Create(PedidoInput{
		IDCliente:   cliente.ID,
		IDProveedor: producto.IDProveedor,
		TipoPedido:  "venta",
		Estado:      model.EstadoPendiente,
		Detalles:    []DetalleInput{{IDProducto: producto.ID, Cantidad: 1}},
	})
	require.NoError(t, err)

	detalle, err := svc.AddDetalle(pedido.ID, DetalleInput{IDProducto: producto.ID, Cantidad: 4, Descuento: 50})
	require.NoError(t, err)
	assert.True(t, detalle.PrecioTotal.Equal(decimal.NewFromInt(2000)), "got %s", detalle.PrecioTotal)

	require.NoError(t, svc.DeleteDetalle(detalle.ID))
	assert.ErrorIs(t, svc.DeleteDetalle(detalle.ID), ErrDetalleNotFound)
}
