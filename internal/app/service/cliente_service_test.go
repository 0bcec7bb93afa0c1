package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

func newClienteService(t *testing.T) (ClienteService, *gorm.DB) {
	gdb := newTestDB(t)
	svc := NewClienteService(
		repository.NewClienteRepository(gdb),
		repository.NewPersonaRepository(gdb),
		repository.NewGeoRepository(gdb),
	)
	return svc, gdb
}

func TestClienteCreateValidatesReferences(t *testing.T) {
	svc, gdb := newClienteService(t)

	persona := seedPersona(t, gdb)
	region := &model.Region{Nombre: "Región de Valparaíso"}
	require.NoError(t, gdb.Create(region).Error)
	comuna := &model.Comuna{Nombre: "Quilpué", IDRegion: region.ID}
	require.NoError(t, gdb.Create(comuna).Error)

	err := svc.Create(&model.Cliente{
		IDPersona:   999,
		IDComuna:    comuna.ID,
		Direccion:   "Calle Falsa 123",
		NombreLocal: "Minimarket El Sol",
		RazonSocial: "El Sol Ltda",
		Giro:        "minimarket",
	})
	assert.ErrorIs(t, err, ErrPersonaNotFound)

	err = svc.Create(&model.Cliente{
		IDPersona:   persona.ID,
		IDComuna:    999,
		Direccion:   "Calle Falsa 123",
		NombreLocal: "Minimarket El Sol",
		RazonSocial: "El Sol Ltda",
		Giro:        "minimarket",
	})
	assert.ErrorIs(t, err, ErrComunaNotFound)

	cliente := &model.Cliente{
		IDPersona:   persona.ID,
		IDComuna:    comuna.ID,
		Direccion:   "Calle Falsa 123",
		NombreLocal: "Minimarket El Sol",
		RazonSocial: "El Sol Ltda",
		Giro:        "minimarket",
	}
	require.NoError(t, svc.Create(cliente))
	require.NotZero(t, cliente.ID)
}

func TestClientePartialUpdate(t *testing.T) {
	svc, gdb := newClienteService(t)
	cliente := seedCliente(t, gdb)

	mora := true
	updated, err := svc.Update(cliente.ID, ClienteUpdateInput{Mora: &mora})
	require.NoError(t, err)

	assert.True(t, updated.Mora)
	// Untouched fields survive
	assert.Equal(t, cliente.NombreLocal, updated.NombreLocal)
	assert.Equal(t, cliente.Direccion, updated.Direccion)
	assert.Equal(t, cliente.Giro, updated.Giro)
	assert.Equal(t, cliente.IDComuna, updated.IDComuna)

	_, err = svc.Update(cliente.ID, ClienteUpdateInput{IDComuna: ptrUint(999)})
	assert.ErrorIs(t, err, ErrComunaNotFound)
}

func TestClienteFilterByMora(t *testing.T) {
	svc, gdb := newClienteService(t)

	moroso := seedCliente(t, gdb)
	seedCliente(t, gdb)

	mora := true
	_, err := svc.Update(moroso.ID, ClienteUpdateInput{Mora: &mora})
	require.NoError(t, err)

	enMora, err := svc.GetAll(repository.ClienteFilter{Mora: &mora})
	require.NoError(t, err)
	require.Len(t, enMora, 1)
	assert.Equal(t, moroso.ID, enMora[0].ID)

	sinFiltro, err := svc.GetAll(repository.ClienteFilter{})
	require.NoError(t, err)
	assert.Len(t, sinFiltro, 2)
}

func ptrUint(v uint) *uint { return &v }
