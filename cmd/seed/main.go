package main

import (
	"errors"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/config"
	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/internal/db"
	"github.com/somap/somap-backend/pkg/logger"
	"github.com/somap/somap-backend/pkg/util"
)

// Seeds the baseline data a fresh installation needs: roles, a couple
// of regiones with their comunas, catalog defaults and the initial
// gerente account. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	gdb := db.GetDB()

	if err := seedRoles(gdb); err != nil {
		logger.Fatal("Failed to seed roles", err)
	}
	if err := seedGeografia(gdb); err != nil {
		logger.Fatal("Failed to seed regiones y comunas", err)
	}
	if err := seedCatalogo(gdb); err != nil {
		logger.Fatal("Failed to seed catalogo", err)
	}
	if err := seedAdmin(gdb); err != nil {
		logger.Fatal("Failed to seed admin account", err)
	}

	logger.Info("Seed finished", nil)
}

func seedRoles(gdb *gorm.DB) error {
	for _, nombre := range []string{"gerente", "jefe_inventarista"} {
		var rol model.Rol
		err := gdb.Where("rol = ?", nombre).First(&rol).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gdb.Create(&model.Rol{Rol: nombre}).Error; err != nil {
				return err
			}
			logger.Info("Rol created", map[string]interface{}{"rol": nombre})
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func seedGeografia(gdb *gorm.DB) error {
	regiones := []struct {
		nombre  string
		comunas []string
	}{
		{"Región Metropolitana de Santiago", []string{"Santiago", "Providencia", "Maipú", "Puente Alto", "La Florida"}},
		{"Región de Valparaíso", []string{"Valparaíso", "Viña del Mar", "Quilpué"}},
		{"Región del Biobío", []string{"Concepción", "Talcahuano", "Los Ángeles"}},
	}

	for _, entry := range regiones {
		var region model.Region
		err := gdb.Where("nombre = ?", entry.nombre).First(&region).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			region = model.Region{Nombre: entry.nombre}
			if err := gdb.Create(&region).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, nombreComuna := range entry.comunas {
			var comuna model.Comuna
			err := gdb.Where("nombre = ? AND id_region = ?", nombreComuna, region.ID).First(&comuna).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := gdb.Create(&model.Comuna{Nombre: nombreComuna, IDRegion: region.ID}).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedCatalogo(gdb *gorm.DB) error {
	for _, tipo := range []string{"Abarrotes", "Bebidas", "Aseo"} {
		var categoria model.Categoria
		err := gdb.Where("tipo = ?", tipo).First(&categoria).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gdb.Create(&model.Categoria{Tipo: tipo}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	var bodega model.Bodega
	err := gdb.Where("nombre = ?", "Bodega Central").First(&bodega).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := gdb.Create(&model.Bodega{Nombre: "Bodega Central", Direccion: "Local principal"}).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	for _, nombre := range []string{"Unidad", "Kilogramo", "Litro"} {
		var unidad model.UnidadMedida
		err := gdb.Where("nombre = ?", nombre).First(&unidad).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := gdb.Create(&model.UnidadMedida{Nombre: nombre}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(gdb *gorm.DB) error {
	const adminRut = "11111111-1"

	var persona model.Persona
	err := gdb.Where("rut_persona = ?", adminRut).First(&persona).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		persona = model.Persona{
			Rut:            adminRut,
			Nombre:         "Admin",
			PrimerApellido: "Somap",
			Email:          "admin@somap.cl",
			Telefono:       "+56911111111",
		}
		if err := gdb.Create(&persona).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var usuario model.Usuario
	err = gdb.Where("id_persona = ?", persona.ID).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := util.HashPassword("somap.2026")
		if err != nil {
			return err
		}
		usuario = model.Usuario{IDPersona: persona.ID, Contrasenia: hash}
		if err := gdb.Create(&usuario).Error; err != nil {
			return err
		}
		logger.Info("Admin usuario created", map[string]interface{}{
			"rut": adminRut,
		})
	} else if err != nil {
		return err
	}

	var rol model.Rol
	if err := gdb.Where("rol = ?", "gerente").First(&rol).Error; err != nil {
		return err
	}

	var asignacion model.RolUsuario
	err = gdb.Where("id_usuario = ? AND id_rol = ?", usuario.ID, rol.ID).First(&asignacion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gdb.Create(&model.RolUsuario{IDUsuario: usuario.ID, IDRol: rol.ID}).Error
	}
	return err
}
