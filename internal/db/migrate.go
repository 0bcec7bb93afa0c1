package db

import (
	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

// AllModels lists every entity in dependency order (lookups before the
// tables that reference them). Shared with the test DB helper.
func AllModels() []interface{} {
	return []interface{}{
		&model.Persona{},
		&model.Usuario{},
		&model.Rol{},
		&model.RolUsuario{},
		&model.Region{},
		&model.Comuna{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.Categoria{},
		&model.Bodega{},
		&model.UnidadMedida{},
		&model.Producto{},
		&model.ImagenProducto{},
		&model.MovimientoStock{},
		&model.Devolucion{},
		&model.RegistroPrecio{},
		&model.Descuento{},
		&model.Pedido{},
		&model.DetallePedido{},
		&model.Transaccion{},
		&model.CategoriaGasto{},
		&model.Gasto{},
		&model.Sueldo{},
	}
}

// Migrate synchronizes the schema. The deployment is auto-sync, not
// migration-file driven, matching the observed configuration.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := AllModels()
	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
