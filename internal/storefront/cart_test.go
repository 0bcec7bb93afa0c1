package storefront

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func producto(id uint, nombre string, precio int64) Producto {
	return Producto{ID: id, Nombre: nombre, PrecioVenta: decimal.NewFromInt(precio)}
}

func TestCartAddAccumulates(t *testing.T) {
	cart := NewCart()

	cart.Add("s1", producto(1, "Arroz", 1000), 2)
	cart.Add("s1", producto(1, "Arroz", 1000), 3)

	items := cart.Items("s1")
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Cantidad)
	assert.Equal(t, 5, cart.Count("s1"))
	assert.True(t, cart.Total("s1").Equal(decimal.NewFromInt(5000)))
}

func TestCartIgnoresNonPositiveCantidad(t *testing.T) {
	cart := NewCart()

	cart.Add("s1", producto(1, "Arroz", 1000), 0)
	cart.Add("s1", producto(1, "Arroz", 1000), -2)

	assert.Empty(t, cart.Items("s1"))
	assert.Zero(t, cart.Count("s1"))
}

func TestCartSessionsAreIsolated(t *testing.T) {
	cart := NewCart()

	cart.Add("s1", producto(1, "Arroz", 1000), 1)
	cart.Add("s2", producto(2, "Azúcar", 1500), 2)

	assert.Len(t, cart.Items("s1"), 1)
	assert.Len(t, cart.Items("s2"), 1)
	assert.True(t, cart.Total("s1").Equal(decimal.NewFromInt(1000)))
	assert.True(t, cart.Total("s2").Equal(decimal.NewFromInt(3000)))
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()

	cart.Add("s1", producto(1, "Arroz", 1000), 1)
	cart.Add("s1", producto(2, "Azúcar", 1500), 1)

	cart.Remove("s1", 1)
	items := cart.Items("s1")
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].Producto.ID)

	// Removing something absent is a no-op
	cart.Remove("s1", 99)
	cart.Remove("otra-sesion", 2)
	assert.Len(t, cart.Items("s1"), 1)
}

func TestCartItemsSorted(t *testing.T) {
	cart := NewCart()

	cart.Add("s1", producto(3, "Aceite", 2500), 1)
	cart.Add("s1", producto(1, "Arroz", 1000), 1)
	cart.Add("s1", producto(2, "Azúcar", 1500), 1)

	items := cart.Items("s1")
	require.Len(t, items, 3)
	assert.EqualValues(t, 1, items[0].Producto.ID)
	assert.EqualValues(t, 2, items[1].Producto.ID)
	assert.EqualValues(t, 3, items[2].Producto.ID)
}

func TestFormatPrecio(t *testing.T) {
	assert.Equal(t, "$1.590", FormatPrecio(decimal.NewFromInt(1590)))
	assert.Equal(t, "$450.000", FormatPrecio(decimal.NewFromInt(450000)))
	assert.Equal(t, "$0", FormatPrecio(decimal.Zero))
	// Rounded to whole pesos
	assert.Equal(t, "$1.000", FormatPrecio(decimal.NewFromFloat(999.9)))
}
