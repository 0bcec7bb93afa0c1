package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/util"
)

func newUsuarioService(t *testing.T) (UsuarioService, *gorm.DB) {
	gdb := newTestDB(t)
	svc := NewUsuarioService(
		repository.NewUsuarioRepository(gdb),
		repository.NewPersonaRepository(gdb),
	)
	return svc, gdb
}

func TestUsuarioCreateHashesPassword(t *testing.T) {
	svc, gdb := newUsuarioService(t)
	persona := seedPersona(t, gdb)

	usuario, err := svc.Create(persona.ID, "clave-segura-123")
	require.NoError(t, err)
	assert.NotEqual(t, "clave-segura-123", usuario.Contrasenia)
	assert.True(t, util.VerifyPassword(usuario.Contrasenia, "clave-segura-123"))

	_, err = svc.Create(999, "otra-clave")
	assert.ErrorIs(t, err, ErrPersonaNotFound)
}

func TestChangePassword(t *testing.T) {
	svc, gdb := newUsuarioService(t)
	persona := seedPersona(t, gdb)

	usuario, err := svc.Create(persona.ID, "clave-original")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(usuario.ID, "clave-nueva"))

	actualizado, err := svc.GetByID(usuario.ID)
	require.NoError(t, err)
	assert.True(t, util.VerifyPassword(actualizado.Contrasenia, "clave-nueva"))
	assert.False(t, util.VerifyPassword(actualizado.Contrasenia, "clave-original"))
}

func TestRolNombreConflicts(t *testing.T) {
	svc, _ := newUsuarioService(t)

	rol, err := svc.CreateRol("Gerente")
	require.NoError(t, err)
	// Lowercased on the way in
	assert.Equal(t, "gerente", rol.Rol)

	_, err = svc.CreateRol("GERENTE")
	assert.ErrorIs(t, err, ErrRolDuplicado)
}

func TestUpdateRolRejectsExistingNombre(t *testing.T) {
	svc, _ := newUsuarioService(t)

	_, err := svc.CreateRol("gerente")
	require.NoError(t, err)
	vendedor, err := svc.CreateRol("vendedor")
	require.NoError(t, err)

	_, err = svc.UpdateRol(vendedor.ID, "GERENTE")
	assert.ErrorIs(t, err, ErrRolDuplicado)

	// Writing its own name back is not a conflict
	actualizado, err := svc.UpdateRol(vendedor.ID, "Vendedor")
	require.NoError(t, err)
	assert.Equal(t, "vendedor", actualizado.Rol)
}

func TestAssignAndRemoveRol(t *testing.T) {
	svc, gdb := newUsuarioService(t)
	persona := seedPersona(t, gdb)

	usuario, err := svc.Create(persona.ID, "clave-segura-123")
	require.NoError(t, err)
	rol, err := svc.CreateRol("jefe_inventarista")
	require.NoError(t, err)

	asignacion, err := svc.AssignRol(usuario.ID, rol.ID)
	require.NoError(t, err)
	require.NotZero(t, asignacion.ID)

	_, err = svc.AssignRol(usuario.ID, rol.ID)
	assert.ErrorIs(t, err, ErrRolYaAsignado)

	require.NoError(t, svc.RemoveRol(usuario.ID, rol.ID))
	assert.ErrorIs(t, svc.RemoveRol(usuario.ID, rol.ID), ErrAsignacionNotFound)
}
