package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
)

func newPersonaService(t *testing.T) (PersonaService, *gorm.DB) {
	gdb := newTestDB(t)
	return NewPersonaService(repository.NewPersonaRepository(gdb)), gdb
}

func TestPersonaCreateAndFetch(t *testing.T) {
	svc, _ := newPersonaService(t)

	persona := &model.Persona{
		Rut:            "12.345.678-5",
		Nombre:         "María",
		PrimerApellido: "Pérez",
		Email:          "Maria.Perez@Example.CL",
		Telefono:       "+56911111111",
	}
	require.NoError(t, svc.Create(persona))
	require.NotZero(t, persona.ID)

	// Stored normalized: dots stripped, lowercase
	fetched, err := svc.GetByID(persona.ID)
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", fetched.Rut)
	assert.Equal(t, "maria.perez@example.cl", fetched.Email)
	assert.Equal(t, "María", fetched.Nombre)

	byRut, err := svc.GetByRut("12.345.678-5")
	require.NoError(t, err)
	assert.Equal(t, persona.ID, byRut.ID)
}

func TestPersonaCreateInvalidRut(t *testing.T) {
	svc, _ := newPersonaService(t)

	err := svc.Create(&model.Persona{
		Rut:            "12345678-9",
		Nombre:         "Pedro",
		PrimerApellido: "Soto",
	})
	assert.ErrorIs(t, err, ErrRutInvalido)
}

func TestPersonaCreateDuplicates(t *testing.T) {
	svc, _ := newPersonaService(t)

	require.NoError(t, svc.Create(&model.Persona{
		Rut:            "12345678-5",
		Nombre:         "María",
		PrimerApellido: "Pérez",
		Email:          "maria@example.cl",
	}))

	// Same rut written differently still collides
	err := svc.Create(&model.Persona{
		Rut:            "12.345.678-5",
		Nombre:         "Otra",
		PrimerApellido: "Persona",
		Email:          "otra@example.cl",
	})
	assert.ErrorIs(t, err, ErrRutDuplicado)

	err = svc.Create(&model.Persona{
		Rut:            "11111111-1",
		Nombre:         "Otra",
		PrimerApellido: "Persona",
		Email:          "MARIA@example.cl",
	})
	assert.ErrorIs(t, err, ErrEmailDuplicado)
}

func TestPersonaPartialUpdate(t *testing.T) {
	svc, _ := newPersonaService(t)

	persona := &model.Persona{
		Rut:            "12345678-5",
		Nombre:         "María",
		PrimerApellido: "Pérez",
		Email:          "maria@example.cl",
		Telefono:       "+56911111111",
	}
	require.NoError(t, svc.Create(persona))

	nuevoTelefono := "+56933333333"
	updated, err := svc.Update(persona.ID, PersonaUpdateInput{Telefono: &nuevoTelefono})
	require.NoError(t, err)

	assert.Equal(t, "+56933333333", updated.Telefono)
	// Untouched fields keep their stored values
	assert.Equal(t, "María", updated.Nombre)
	assert.Equal(t, "Pérez", updated.PrimerApellido)
	assert.Equal(t, "maria@example.cl", updated.Email)
}

func TestPersonaUpdateNotFound(t *testing.T) {
	svc, _ := newPersonaService(t)

	nombre := "Nadie"
	_, err := svc.Update(999, PersonaUpdateInput{Nombre: &nombre})
	assert.ErrorIs(t, err, ErrPersonaNotFound)
}

func TestPersonaSearch(t *testing.T) {
	svc, _ := newPersonaService(t)

	require.NoError(t, svc.Create(&model.Persona{
		Rut: "12345678-5", Nombre: "María", PrimerApellido: "Pérez", SegundoApellido: "Soto",
	}))
	require.NoError(t, svc.Create(&model.Persona{
		Rut: "11111111-1", Nombre: "Juan", PrimerApellido: "Rojas",
	}))

	porNombre, err := svc.Search(repository.PersonaSearchFilter{Nombre: "mar"})
	require.NoError(t, err)
	require.Len(t, porNombre, 1)
	assert.Equal(t, "María", porNombre[0].Nombre)

	// Apellido matches either apellido column
	porApellido, err := svc.Search(repository.PersonaSearchFilter{Apellido: "soto"})
	require.NoError(t, err)
	require.Len(t, porApellido, 1)
	assert.Equal(t, "María", porApellido[0].Nombre)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPersonaDelete(t *testing.T) {
	svc, _ := newPersonaService(t)

	persona := &model.Persona{Rut: "12345678-5", Nombre: "María", PrimerApellido: "Pérez"}
	require.NoError(t, svc.Create(persona))

	require.NoError(t, svc.Delete(persona.ID))

	_, err := svc.GetByID(persona.ID)
	assert.ErrorIs(t, err, ErrPersonaNotFound)

	assert.ErrorIs(t, svc.Delete(persona.ID), ErrPersonaNotFound)
}
