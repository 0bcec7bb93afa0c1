package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/util"
)

func newAuthService(t *testing.T) (AuthService, *gorm.DB) {
	gdb := newTestDB(t)
	jwtConfig := &config.JWTConfig{Secret: "test-secret", TokenExpiry: time.Hour}
	return NewAuthService(repository.NewUsuarioRepository(gdb), jwtConfig), gdb
}

func seedUsuario(t *testing.T, gdb *gorm.DB, rut, contrasenia, rol string) *model.Usuario {
	t.Helper()

	persona := &model.Persona{Rut: rut, Nombre: "Laura", PrimerApellido: "Vidal"}
	require.NoError(t, gdb.Create(persona).Error)

	hash, err := util.HashPassword(contrasenia)
	require.NoError(t, err)
	usuario := &model.Usuario{IDPersona: persona.ID, Contrasenia: hash}
	require.NoError(t, gdb.Create(usuario).Error)

	rolRow := &model.Rol{Rol: rol}
	require.NoError(t, gdb.Create(rolRow).Error)
	require.NoError(t, gdb.Create(&model.RolUsuario{IDUsuario: usuario.ID, IDRol: rolRow.ID}).Error)
	return usuario
}

func TestLoginSuccess(t *testing.T) {
	svc, gdb := newAuthService(t)
	usuario := seedUsuario(t, gdb, "12345678-5", "somap.2026", "gerente")

	token, logged, err := svc.Login("12.345.678-5", "somap.2026")
	require.NoError(t, err)
	require.NotNil(t, logged)
	assert.Equal(t, usuario.ID, logged.ID)

	claims, err := util.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, claims.IDUsuario)
	assert.Equal(t, "12345678-5", claims.Rut)
	assert.Equal(t, []string{"gerente"}, claims.Roles)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, gdb := newAuthService(t)
	seedUsuario(t, gdb, "12345678-5", "somap.2026", "gerente")

	_, _, errUnknown := svc.Login("11111111-1", "somap.2026")
	_, _, errWrongPass := svc.Login("12345678-5", "not-the-password")

	assert.ErrorIs(t, errUnknown, ErrCredencialesInvalidas)
	assert.ErrorIs(t, errWrongPass, ErrCredencialesInvalidas)
	// Same sentinel, same message: the caller cannot tell which failed
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}
