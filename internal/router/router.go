package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/app/controller"
	"github.com/somap/somap-backend/internal/middleware"
)

// Roles with write access to the back office.
const (
	RolGerente          = "gerente"
	RolJefeInventarista = "jefe_inventarista"
)

type Router struct {
	authController       *controller.AuthController
	personaController    *controller.PersonaController
	usuarioController    *controller.UsuarioController
	clienteController    *controller.ClienteController
	geoController        *controller.GeoController
	proveedorController  *controller.ProveedorController
	productoController   *controller.ProductoController
	catalogoController   *controller.CatalogoController
	inventarioController *controller.InventarioController
	precioController     *controller.PrecioController
	pedidoController     *controller.PedidoController
	finanzaController    *controller.FinanzaController
	reporteController    *controller.ReporteController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	personaController *controller.PersonaController,
	usuarioController *controller.UsuarioController,
	clienteController *controller.ClienteController,
	geoController *controller.GeoController,
	proveedorController *controller.ProveedorController,
	productoController *controller.ProductoController,
	catalogoController *controller.CatalogoController,
	inventarioController *controller.InventarioController,
	precioController *controller.PrecioController,
	pedidoController *controller.PedidoController,
	finanzaController *controller.FinanzaController,
	reporteController *controller.ReporteController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		personaController:    personaController,
		usuarioController:    usuarioController,
		clienteController:    clienteController,
		geoController:        geoController,
		proveedorController:  proveedorController,
		productoController:   productoController,
		catalogoController:   catalogoController,
		inventarioController: inventarioController,
		precioController:     precioController,
		pedidoController:     pedidoController,
		finanzaController:    finanzaController,
		reporteController:    reporteController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "SOMAP API is running",
		})
	})

	// Product images uploaded through the API.
	router.Static("/uploads/imagenes", r.config.Uploads.Dir)

	api := router.Group("/api")
	{
		// Public surface: login plus the read-only catalog the
		// storefront consumes.
		api.POST("/auth/login", r.authController.Login)
		api.GET("/productos", r.productoController.GetAllProductos)
		api.GET("/productos/:id", r.productoController.GetProductoByID)
		api.GET("/producto/:id/imagenes", r.productoController.GetImagenes)

		private := api.Group("")
		private.Use(r.authMiddleware.Authenticate())
		escritura := r.authMiddleware.RequireRole(RolGerente, RolJefeInventarista)
		soloGerente := r.authMiddleware.RequireRole(RolGerente)
		{
			personas := private.Group("/personas")
			{
				personas.GET("", r.personaController.GetAllPersonas)
				personas.GET("/count", r.personaController.CountPersonas)
				personas.GET("/:id", r.personaController.GetPersonaByID)
				personas.POST("", escritura, r.personaController.CreatePersona)
				personas.PUT("/:id", escritura, r.personaController.UpdatePersona)
				personas.DELETE("/:id", soloGerente, r.personaController.DeletePersona)
			}

			usuarios := private.Group("/usuarios")
			{
				usuarios.GET("", r.usuarioController.GetAllUsuarios)
				usuarios.GET("/:id", r.usuarioController.GetUsuarioByID)
				usuarios.POST("", soloGerente, r.usuarioController.CreateUsuario)
				usuarios.PUT("/:id/contrasenia", soloGerente, r.usuarioController.ChangePassword)
				usuarios.DELETE("/:id", soloGerente, r.usuarioController.DeleteUsuario)
			}

			roles := private.Group("/roles")
			{
				roles.GET("", r.usuarioController.GetAllRoles)
				roles.POST("", soloGerente, r.usuarioController.CreateRol)
				roles.PUT("/:id", soloGerente, r.usuarioController.UpdateRol)
				roles.DELETE("/:id", soloGerente, r.usuarioController.DeleteRol)
				roles.POST("/asignar", soloGerente, r.usuarioController.AsignarRol)
				roles.DELETE("/asignar", soloGerente, r.usuarioController.QuitarRol)
			}

			clientes := private.Group("/clientes")
			{
				clientes.GET("", r.clienteController.GetAllClientes)
				clientes.GET("/:id", r.clienteController.GetClienteByID)
				clientes.POST("", escritura, r.clienteController.CreateCliente)
				clientes.PUT("/:id", escritura, r.clienteController.UpdateCliente)
				clientes.DELETE("/:id", soloGerente, r.clienteController.DeleteCliente)
			}

			regiones := private.Group("/regiones")
			{
				regiones.GET("", r.geoController.GetAllRegiones)
				regiones.GET("/:id", r.geoController.GetRegionByID)
				regiones.POST("", soloGerente, r.geoController.CreateRegion)
				regiones.PUT("/:id", soloGerente, r.geoController.UpdateRegion)
				regiones.DELETE("/:id", soloGerente, r.geoController.DeleteRegion)
			}

			comunas := private.Group("/comunas")
			{
				comunas.GET("", r.geoController.GetAllComunas)
				comunas.GET("/:id", r.geoController.GetComunaByID)
				comunas.POST("", soloGerente, r.geoController.CreateComuna)
				comunas.PUT("/:id", soloGerente, r.geoController.UpdateComuna)
				comunas.DELETE("/:id", soloGerente, r.geoController.DeleteComuna)
			}

			proveedores := private.Group("/proveedores")
			{
				proveedores.GET("", r.proveedorController.GetAllProveedores)
				proveedores.GET("/:id", r.proveedorController.GetProveedorByID)
				proveedores.POST("", escritura, r.proveedorController.CreateProveedor)
				proveedores.PUT("/:id", escritura, r.proveedorController.UpdateProveedor)
				proveedores.DELETE("/:id", soloGerente, r.proveedorController.DeleteProveedor)
			}

			productos := private.Group("/productos")
			{
				productos.POST("", escritura, r.productoController.CreateProducto)
				productos.PUT("/:id", escritura, r.productoController.UpdateProducto)
				productos.DELETE("/:id", soloGerente, r.productoController.DeleteProducto)
				productos.GET("/:id/movimientos", r.inventarioController.GetMovimientosByProducto)
				productos.GET("/:id/stock", r.inventarioController.GetStockActual)
				productos.GET("/:id/precios", r.precioController.GetHistorialPrecios)
			}

			private.POST("/producto/:id/imagenes", escritura, r.productoController.UploadImagen)
			private.DELETE("/imagenes/:id", escritura, r.productoController.DeleteImagen)

			categorias := private.Group("/categorias")
			{
				categorias.GET("", r.catalogoController.GetAllCategorias)
				categorias.GET("/:id", r.catalogoController.GetCategoriaByID)
				categorias.POST("", escritura, r.catalogoController.CreateCategoria)
				categorias.PUT("/:id", escritura, r.catalogoController.UpdateCategoria)
				categorias.DELETE("/:id", escritura, r.catalogoController.DeleteCategoria)
			}

			bodegas := private.Group("/bodegas")
			{
				bodegas.GET("", r.catalogoController.GetAllBodegas)
				bodegas.GET("/:id", r.catalogoController.GetBodegaByID)
				bodegas.POST("", escritura, r.catalogoController.CreateBodega)
				bodegas.PUT("/:id", escritura, r.catalogoController.UpdateBodega)
				bodegas.DELETE("/:id", escritura, r.catalogoController.DeleteBodega)
			}

			unidades := private.Group("/unidades-medida")
			{
				unidades.GET("", r.catalogoController.GetAllUnidadesMedida)
				unidades.GET("/:id", r.catalogoController.GetUnidadMedidaByID)
				unidades.POST("", escritura, r.catalogoController.CreateUnidadMedida)
				unidades.PUT("/:id", escritura, r.catalogoController.UpdateUnidadMedida)
				unidades.DELETE("/:id", escritura, r.catalogoController.DeleteUnidadMedida)
			}

			movimientos := private.Group("/movimientos-stock")
			{
				movimientos.GET("", r.inventarioController.GetAllMovimientos)
				movimientos.POST("", escritura, r.inventarioController.CreateMovimiento)
			}

			devoluciones := private.Group("/devoluciones")
			{
				devoluciones.GET("", r.inventarioController.GetAllDevoluciones)
				devoluciones.GET("/:id", r.inventarioController.GetDevolucionByID)
				devoluciones.POST("", escritura, r.inventarioController.CreateDevolucion)
				devoluciones.DELETE("/:id", escritura, r.inventarioController.DeleteDevolucion)
			}

			descuentos := private.Group("/descuentos")
			{
				descuentos.GET("", r.precioController.GetAllDescuentos)
				descuentos.GET("/:id", r.precioController.GetDescuentoByID)
				descuentos.POST("", escritura, r.precioController.CreateDescuento)
				descuentos.PUT("/:id", escritura, r.precioController.UpdateDescuento)
				descuentos.DELETE("/:id", escritura, r.precioController.DeleteDescuento)
			}

			pedidos := private.Group("/pedidos")
			{
				pedidos.GET("", r.pedidoController.GetAllPedidos)
				pedidos.GET("/:id", r.pedidoController.GetPedidoByID)
				pedidos.POST("", escritura, r.pedidoController.CreatePedido)
				pedidos.PUT("/:id", escritura, r.pedidoController.UpdatePedido)
				pedidos.DELETE("/:id", soloGerente, r.pedidoController.DeletePedido)
				pedidos.POST("/:id/detalles", escritura, r.pedidoController.AddDetalle)
			}
			private.DELETE("/detalles/:id", escritura, r.pedidoController.DeleteDetalle)

			transacciones := private.Group("/transacciones")
			transacciones.Use(soloGerente)
			{
				transacciones.GET("", r.finanzaController.GetAllTransacciones)
				transacciones.GET("/:id", r.finanzaController.GetTransaccionByID)
			}

			gastos := private.Group("/gastos")
			gastos.Use(soloGerente)
			{
				gastos.GET("", r.finanzaController.GetAllGastos)
				gastos.GET("/:id", r.finanzaController.GetGastoByID)
				gastos.POST("", r.finanzaController.CreateGasto)
				gastos.DELETE("/:id", r.finanzaController.DeleteGasto)
			}

			sueldos := private.Group("/sueldos")
			sueldos.Use(soloGerente)
			{
				sueldos.GET("", r.finanzaController.GetAllSueldos)
				sueldos.GET("/:id", r.finanzaController.GetSueldoByID)
				sueldos.POST("", r.finanzaController.CreateSueldo)
				sueldos.DELETE("/:id", r.finanzaController.DeleteSueldo)
			}

			categoriasGasto := private.Group("/categorias-gasto")
			categoriasGasto.Use(soloGerente)
			{
				categoriasGasto.GET("", r.finanzaController.GetAllCategoriasGasto)
				categoriasGasto.POST("", r.finanzaController.CreateCategoriaGasto)
				categoriasGasto.PUT("/:id", r.finanzaController.UpdateCategoriaGasto)
				categoriasGasto.DELETE("/:id", r.finanzaController.DeleteCategoriaGasto)
			}

			private.GET("/reportes/inventario.xlsx", soloGerente, r.reporteController.InventarioXLSX)
		}
	}

	return router
}
