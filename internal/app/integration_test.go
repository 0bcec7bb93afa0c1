package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/app/controller"
	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/internal/app/service"
	"github.com/somap/somap-backend/internal/db"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/internal/router"
	"github.com/somap/somap-backend/internal/storage"
	"github.com/somap/somap-backend/pkg/util"
	"github.com/somap/somap-backend/pkg/validation"
)

// newTestAPI wires the full stack against an in-memory database, the
// way cmd/server does against postgres.
func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.RegisterCustomValidators()

	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		JWT:    config.JWTConfig{Secret: "integration-secret", TokenExpiry: time.Hour},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Uploads: config.UploadConfig{
			Dir:         t.TempDir(),
			MaxSizeByte: 5 * 1024 * 1024,
		},
	}

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir, "/uploads/imagenes", cfg.Uploads.MaxSizeByte)
	require.NoError(t, err)

	personaRepo := repository.NewPersonaRepository(gdb)
	usuarioRepo := repository.NewUsuarioRepository(gdb)
	clienteRepo := repository.NewClienteRepository(gdb)
	geoRepo := repository.NewGeoRepository(gdb)
	proveedorRepo := repository.NewProveedorRepository(gdb)
	productoRepo := repository.NewProductoRepository(gdb)
	catalogoRepo := repository.NewCatalogoRepository(gdb)
	inventarioRepo := repository.NewInventarioRepository(gdb)
	precioRepo := repository.NewPrecioRepository(gdb)
	pedidoRepo := repository.NewPedidoRepository(gdb)
	finanzaRepo := repository.NewFinanzaRepository(gdb)

	r := router.NewRouter(
		controller.NewAuthController(service.NewAuthService(usuarioRepo, &cfg.JWT)),
		controller.NewPersonaController(service.NewPersonaService(personaRepo)),
		controller.NewUsuarioController(service.NewUsuarioService(usuarioRepo, personaRepo)),
		controller.NewClienteController(service.NewClienteService(clienteRepo, personaRepo, geoRepo)),
		controller.NewGeoController(service.NewGeoService(geoRepo)),
		controller.NewProveedorController(service.NewProveedorService(proveedorRepo)),
		controller.NewProductoController(service.NewProductoService(productoRepo, proveedorRepo, catalogoRepo, precioRepo), store),
		controller.NewCatalogoController(service.NewCatalogoService(catalogoRepo)),
		controller.NewInventarioController(service.NewInventarioService(inventarioRepo, productoRepo)),
		controller.NewPrecioController(service.NewPrecioService(precioRepo, productoRepo, clienteRepo)),
		controller.NewPedidoController(service.NewPedidoService(pedidoRepo, clienteRepo, proveedorRepo, productoRepo)),
		controller.NewFinanzaController(service.NewFinanzaService(finanzaRepo)),
		controller.NewReporteController(service.NewReporteService(productoRepo, inventarioRepo)),
		middleware.NewAuthMiddleware(cfg.JWT.Secret),
		cfg,
	)
	return r.Setup(), gdb
}

func seedGerente(t *testing.T, gdb *gorm.DB, rut, contrasenia string) {
	t.Helper()

	persona := &model.Persona{Rut: rut, Nombre: "Ana", PrimerApellido: "Gerente"}
	require.NoError(t, gdb.Create(persona).Error)

	hash, err := util.HashPassword(contrasenia)
	require.NoError(t, err)
	usuario := &model.Usuario{IDPersona: persona.ID, Contrasenia: hash}
	require.NoError(t, gdb.Create(usuario).Error)

	rol := &model.Rol{Rol: "gerente"}
	require.NoError(t, gdb.Create(rol).Error)
	require.NoError(t, gdb.Create(&model.RolUsuario{IDUsuario: usuario.ID, IDRol: rol.ID}).Error)
}

func login(t *testing.T, engine *gin.Engine, rut, contrasenia string) string {
	t.Helper()

	body, _ := json.Marshal(gin.H{"rut": rut, "contrasenia": contrasenia})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func doJSON(engine *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthAndPublicCatalog(t *testing.T) {
	engine, _ := newTestAPI(t)

	assert.Equal(t, http.StatusOK, doJSON(engine, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(engine, http.MethodGet, "/api/productos", "", nil).Code)
}

func TestPrivateRoutesRequireToken(t *testing.T) {
	engine, _ := newTestAPI(t)

	assert.Equal(t, http.StatusUnauthorized, doJSON(engine, http.MethodGet, "/api/personas", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(engine, http.MethodGet, "/api/gastos", "", nil).Code)
}

func TestLoginAndPersonaFlow(t *testing.T) {
	engine, gdb := newTestAPI(t)
	seedGerente(t, gdb, "12345678-5", "somap.2026")

	token := login(t, engine, "12.345.678-5", "somap.2026")

	nueva := gin.H{
		"rut_persona":     "11.111.111-1",
		"nombre":          "Carla",
		"primer_apellido": "Rojas",
		"email":           "carla@example.cl",
		"telefono":        "+56911111111",
	}
	w := doJSON(engine, http.MethodPost, "/api/personas", token, nueva)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Same rut again conflicts
	w = doJSON(engine, http.MethodPost, "/api/personas", token, nueva)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Bad check digit never reaches the service
	mala := gin.H{
		"rut_persona":     "12345678-9",
		"nombre":          "Mala",
		"primer_apellido": "Persona",
	}
	w = doJSON(engine, http.MethodPost, "/api/personas", token, mala)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = doJSON(engine, http.MethodGet, "/api/personas", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailure(t *testing.T) {
	engine, gdb := newTestAPI(t)
	seedGerente(t, gdb, "12345678-5", "somap.2026")

	body, _ := json.Marshal(gin.H{"rut": "12345678-5", "contrasenia": "incorrecta"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFinanceRoutesAreGerenteOnly(t *testing.T) {
	engine, gdb := newTestAPI(t)

	// An inventarista can write inventory but not finance
	persona := &model.Persona{Rut: "11111111-1", Nombre: "Iván", PrimerApellido: "Bodega"}
	require.NoError(t, gdb.Create(persona).Error)
	hash, err := util.HashPassword("clave-bodega")
	require.NoError(t, err)
	usuario := &model.Usuario{IDPersona: persona.ID, Contrasenia: hash}
	require.NoError(t, gdb.Create(usuario).Error)
	rol := &model.Rol{Rol: "jefe_inventarista"}
	require.NoError(t, gdb.Create(rol).Error)
	require.NoError(t, gdb.Create(&model.RolUsuario{IDUsuario: usuario.ID, IDRol: rol.ID}).Error)

	token := login(t, engine, "11111111-1", "clave-bodega")

	assert.Equal(t, http.StatusForbidden, doJSON(engine, http.MethodGet, "/api/gastos", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(engine, http.MethodGet, "/api/reportes/inventario.xlsx", token, nil).Code)

	w := doJSON(engine, http.MethodPost, "/api/categorias", token, gin.H{"tipo": "Abarrotes"})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
