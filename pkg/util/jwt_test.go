package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-testing"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "12345678-5", []string{"gerente"}, testSecret, 5*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, uint(42), claims.IDUsuario)
	assert.Equal(t, "12345678-5", claims.Rut)
	assert.Equal(t, []string{"gerente"}, claims.Roles)
	assert.Equal(t, "12345678-5", claims.Subject)
	assert.True(t, claims.IssuedAt.Before(claims.ExpiresAt.Time))
}

func TestValidateTokenErrors(t *testing.T) {
	token, err := GenerateToken(1, "11111111-1", []string{"jefe_inventarista"}, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"Wrong secret", token, "another-secret", ErrInvalidToken},
		{"Garbage token", "not.a.token", testSecret, ErrInvalidToken},
		{"Empty token", "", testSecret, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken(1, "11111111-1", nil, testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}
