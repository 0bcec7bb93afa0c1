package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/app/controller"
	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/internal/app/service"
	"github.com/somap/somap-backend/internal/db"
	"github.com/somap/somap-backend/internal/middleware"
	"github.com/somap/somap-backend/internal/router"
	"github.com/somap/somap-backend/internal/scheduler"
	"github.com/somap/somap-backend/internal/storage"
	"github.com/somap/somap-backend/pkg/logger"
	"github.com/somap/somap-backend/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console",
		EnableColor: true,
	})

	logger.Info("Starting SOMAP Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	validation.RegisterCustomValidators()

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir, "/uploads/imagenes", cfg.Uploads.MaxSizeByte)
	if err != nil {
		logger.Fatal("Failed to initialize upload storage", err)
	}

	// Repositories
	personaRepo := repository.NewPersonaRepository(db.GetDB())
	usuarioRepo := repository.NewUsuarioRepository(db.GetDB())
	clienteRepo := repository.NewClienteRepository(db.GetDB())
	geoRepo := repository.NewGeoRepository(db.GetDB())
	proveedorRepo := repository.NewProveedorRepository(db.GetDB())
	productoRepo := repository.NewProductoRepository(db.GetDB())
	catalogoRepo := repository.NewCatalogoRepository(db.GetDB())
	inventarioRepo := repository.NewInventarioRepository(db.GetDB())
	precioRepo := repository.NewPrecioRepository(db.GetDB())
	pedidoRepo := repository.NewPedidoRepository(db.GetDB())
	finanzaRepo := repository.NewFinanzaRepository(db.GetDB())

	// Services
	authService := service.NewAuthService(usuarioRepo, &cfg.JWT)
	personaService := service.NewPersonaService(personaRepo)
	usuarioService := service.NewUsuarioService(usuarioRepo, personaRepo)
	clienteService := service.NewClienteService(clienteRepo, personaRepo, geoRepo)
	geoService := service.NewGeoService(geoRepo)
	proveedorService := service.NewProveedorService(proveedorRepo)
	productoService := service.NewProductoService(productoRepo, proveedorRepo, catalogoRepo, precioRepo)
	catalogoService := service.NewCatalogoService(catalogoRepo)
	inventarioService := service.NewInventarioService(inventarioRepo, productoRepo)
	precioService := service.NewPrecioService(precioRepo, productoRepo, clienteRepo)
	pedidoService := service.NewPedidoService(pedidoRepo, clienteRepo, proveedorRepo, productoRepo)
	finanzaService := service.NewFinanzaService(finanzaRepo)
	reporteService := service.NewReporteService(productoRepo, inventarioRepo)

	// Controllers
	authController := controller.NewAuthController(authService)
	personaController := controller.NewPersonaController(personaService)
	usuarioController := controller.NewUsuarioController(usuarioService)
	clienteController := controller.NewClienteController(clienteService)
	geoController := controller.NewGeoController(geoService)
	proveedorController := controller.NewProveedorController(proveedorService)
	productoController := controller.NewProductoController(productoService, store)
	catalogoController := controller.NewCatalogoController(catalogoService)
	inventarioController := controller.NewInventarioController(inventarioService)
	precioController := controller.NewPrecioController(precioService)
	pedidoController := controller.NewPedidoController(pedidoService)
	finanzaController := controller.NewFinanzaController(finanzaService)
	reporteController := controller.NewReporteController(reporteService)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		personaController,
		usuarioController,
		clienteController,
		geoController,
		proveedorController,
		productoController,
		catalogoController,
		inventarioController,
		precioController,
		pedidoController,
		finanzaController,
		reporteController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	stockScheduler := scheduler.NewStockScheduler(productoRepo, inventarioRepo)
	if err := stockScheduler.Start(); err != nil {
		logger.Error("Failed to start stock scheduler", err)
	}
	defer stockScheduler.Stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
}
