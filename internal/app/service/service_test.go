package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/db"
)

var fixtureSeq atomic.Uint64

func nextSeq() uint64 {
	return fixtureSeq.Add(1)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })
	return gdb
}

// seedProducto inserts a producto with its full reference chain.
func seedProducto(t *testing.T, gdb *gorm.DB) *model.Producto {
	t.Helper()
	n := nextSeq()

	proveedor := &model.Proveedor{
		NombreEmpresa: "Distribuidora Sur",
		RazonSocial:   "Distribuidora Sur SpA",
	}
	require.NoError(t, gdb.Create(proveedor).Error)

	categoria := &model.Categoria{Tipo: "Abarrotes"}
	require.NoError(t, gdb.Create(categoria).Error)

	bodega := &model.Bodega{Nombre: "Bodega Central"}
	require.NoError(t, gdb.Create(bodega).Error)

	unidad := &model.UnidadMedida{Nombre: fmt.Sprintf("Unidad %d", n)}
	require.NoError(t, gdb.Create(unidad).Error)

	producto := &model.Producto{
		IDProveedor:     proveedor.ID,
		IDCategoria:     categoria.ID,
		IDBodega:        bodega.ID,
		IDUnidadMedida:  unidad.ID,
		Nombre:          "Arroz Grado 1",
		Descripcion:     "Arroz granel, bolsa de 1 kg",
		PrecioNeto:      decimal.NewFromInt(800),
		PrecioVenta:     decimal.NewFromInt(1000),
		UnidadesPorCaja: 12,
		SKU:             fmt.Sprintf("SKU-%04d", n),
	}
	require.NoError(t, gdb.Create(producto).Error)
	return producto
}

func seedPersona(t *testing.T, gdb *gorm.DB) *model.Persona {
	t.Helper()
	n := nextSeq()

	persona := &model.Persona{
		Rut:            fmt.Sprintf("%d-%d", 10000000+n, n%10),
		Nombre:         "Carla",
		PrimerApellido: "Rojas",
		Email:          fmt.Sprintf("carla.rojas+%d@example.cl", n),
		Telefono:       "+56922222222",
	}
	require.NoError(t, gdb.Create(persona).Error)
	return persona
}

func seedCliente(t *testing.T, gdb *gorm.DB) *model.Cliente {
	t.Helper()

	persona := seedPersona(t, gdb)

	region := &model.Region{Nombre: "Región Metropolitana de Santiago"}
	require.NoError(t, gdb.Create(region).Error)
	comuna := &model.Comuna{Nombre: "Maipú", IDRegion: region.ID}
	require.NoError(t, gdb.Create(comuna).Error)

	cliente := &model.Cliente{
		IDPersona:   persona.ID,
		IDComuna:    comuna.ID,
		Direccion:   "Av. Pajaritos 1234",
		NombreLocal: "Almacén Doña Carla",
		RazonSocial: "Comercial Rojas EIRL",
		Giro:        "almacén",
	}
	require.NoError(t, gdb.Create(cliente).Error)
	return cliente
}
