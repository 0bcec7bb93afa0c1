package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somap/somap-backend/pkg/util"
)

const testSecret = "middleware-test-secret"

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authMiddleware := NewAuthMiddleware(testSecret)

	router := gin.New()
	group := router.Group("/api")
	group.Use(authMiddleware.Authenticate())
	handlers := []gin.HandlerFunc{}
	if len(roles) > 0 {
		handlers = append(handlers, authMiddleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUsuarioID(c)
		c.JSON(http.StatusOK, gin.H{"id_usuario": id, "rut": GetUsuarioRut(c)})
	})
	group.GET("/recurso", handlers...)
	return router
}

func request(t *testing.T, router *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/recurso", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	router := newProtectedRouter()

	w := request(t, router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	router := newProtectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/recurso", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	router := newProtectedRouter()

	token, err := util.GenerateToken(1, "12345678-5", []string{"gerente"}, testSecret, -time.Minute)
	require.NoError(t, err)

	w := request(t, router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	router := newProtectedRouter()

	token, err := util.GenerateToken(1, "12345678-5", []string{"gerente"}, "other-secret", time.Hour)
	require.NoError(t, err)

	w := request(t, router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	router := newProtectedRouter()

	token, err := util.GenerateToken(7, "12345678-5", []string{"gerente"}, testSecret, time.Hour)
	require.NoError(t, err)

	w := request(t, router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id_usuario":7`)
	assert.Contains(t, w.Body.String(), `"rut":"12345678-5"`)
}

func TestRequireRole(t *testing.T) {
	router := newProtectedRouter("gerente", "jefe_inventarista")

	gerente, err := util.GenerateToken(1, "12345678-5", []string{"gerente"}, testSecret, time.Hour)
	require.NoError(t, err)
	inventarista, err := util.GenerateToken(2, "11111111-1", []string{"jefe_inventarista"}, testSecret, time.Hour)
	require.NoError(t, err)
	sinRol, err := util.GenerateToken(3, "6-k", nil, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, request(t, router, gerente).Code)
	assert.Equal(t, http.StatusOK, request(t, router, inventarista).Code)
	assert.Equal(t, http.StatusForbidden, request(t, router, sinRol).Code)
}

func TestRequireRoleSingle(t *testing.T) {
	router := newProtectedRouter("gerente")

	inventarista, err := util.GenerateToken(2, "11111111-1", []string{"jefe_inventarista"}, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, request(t, router, inventarista).Code)
}
