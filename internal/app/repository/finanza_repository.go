package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

// Transacciones are written only through the gasto and sueldo units of
// work; there is no standalone transaccion mutation.
type FinanzaRepository interface {
	FindAllTransacciones() ([]model.Transaccion, error)
	FindTransaccionByID(id uint) (*model.Transaccion, error)

	CreateGastoConTransaccion(transaccion *model.Transaccion, gasto *model.Gasto) error
	FindAllGastos() ([]model.Gasto, error)
	FindGastoByID(id uint) (*model.Gasto, error)
	DeleteGasto(id uint) error

	CreateSueldoConTransaccion(transaccion *model.Transaccion, sueldo *model.Sueldo) error
	FindAllSueldos() ([]model.Sueldo, error)
	FindSueldoByID(id uint) (*model.Sueldo, error)
	DeleteSueldo(id uint) error

	CreateCategoriaGasto(categoria *model.CategoriaGasto) error
	FindAllCategoriasGasto() ([]model.CategoriaGasto, error)
	FindCategoriaGastoByID(id uint) (*model.CategoriaGasto, error)
	UpdateCategoriaGasto(categoria *model.CategoriaGasto) error
	DeleteCategoriaGasto(id uint) error
}

type finanzaRepository struct {
	db *gorm.DB
}

func NewFinanzaRepository(db *gorm.DB) FinanzaRepository {
	return &finanzaRepository{db: db}
}

func (r *finanzaRepository) FindAllTransacciones() ([]model.Transaccion, error) {
	var transacciones []model.Transaccion
	err := r.db.Order("fecha DESC").Find(&transacciones).Error
	return transacciones, err
}

func (r *finanzaRepository) FindTransaccionByID(id uint) (*model.Transaccion, error) {
	var transaccion model.Transaccion
	if err := r.db.First(&transaccion, id).Error; err != nil {
		return nil, err
	}
	return &transaccion, nil
}

// CreateGastoConTransaccion inserts the backing transaccion and the
// gasto as one unit. Either both rows land or neither does.
func (r *finanzaRepository) CreateGastoConTransaccion(transaccion *model.Transaccion, gasto *model.Gasto) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaccion).Error; err != nil {
			return err
		}
		gasto.IDTransaccion = transaccion.ID
		return tx.Create(gasto).Error
	})
	if err != nil {
		logger.Error("Failed to create gasto with transaccion", err, map[string]interface{}{
			"nombre_gasto": gasto.NombreGasto,
		})
	}
	return err
}

func (r *finanzaRepository) FindAllGastos() ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.Preload("Transaccion").Preload("CategoriaGasto").Find(&gastos).Error
	return gastos, err
}

func (r *finanzaRepository) FindGastoByID(id uint) (*model.Gasto, error) {
	var gasto model.Gasto
	err := r.db.Preload("Transaccion").Preload("CategoriaGasto").First(&gasto, id).Error
	if err != nil {
		return nil, err
	}
	return &gasto, nil
}

func (r *finanzaRepository) DeleteGasto(id uint) error {
	var gasto model.Gasto
	if err := r.db.First(&gasto, id).Error; err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Gasto{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Transaccion{}, gasto.IDTransaccion).Error
	})
}

// CreateSueldoConTransaccion mirrors the gasto flow for salary payouts.
func (r *finanzaRepository) CreateSueldoConTransaccion(transaccion *model.Transaccion, sueldo *model.Sueldo) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaccion).Error; err != nil {
			return err
		}
		sueldo.IDTransaccion = transaccion.ID
		return tx.Create(sueldo).Error
	})
	if err != nil {
		logger.Error("Failed to create sueldo with transaccion", err, map[string]interface{}{
			"tipo_sueldo": sueldo.TipoSueldo,
		})
	}
	return err
}

func (r *finanzaRepository) FindAllSueldos() ([]model.Sueldo, error) {
	var sueldos []model.Sueldo
	err := r.db.Preload("Transaccion").Find(&sueldos).Error
	return sueldos, err
}

func (r *finanzaRepository) FindSueldoByID(id uint) (*model.Sueldo, error) {
	var sueldo model.Sueldo
	if err := r.db.Preload("Transaccion").First(&sueldo, id).Error; err != nil {
		return nil, err
	}
	return &sueldo, nil
}

func (r *finanzaRepository) DeleteSueldo(id uint) error {
	var sueldo model.Sueldo
	if err := r.db.First(&sueldo, id).Error; err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Sueldo{}, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Transaccion{}, sueldo.IDTransaccion).Error
	})
}

func (r *finanzaRepository) CreateCategoriaGasto(categoria *model.CategoriaGasto) error {
	return r.db.Create(categoria).Error
}

func (r *finanzaRepository) FindAllCategoriasGasto() ([]model.CategoriaGasto, error) {
	var categorias []model.CategoriaGasto
	err := r.db.Find(&categorias).Error
	return categorias, err
}

func (r *finanzaRepository) FindCategoriaGastoByID(id uint) (*model.CategoriaGasto, error) {
	var categoria model.CategoriaGasto
	if err := r.db.First(&categoria, id).Error; err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *finanzaRepository) UpdateCategoriaGasto(categoria *model.CategoriaGasto) error {
	return r.db.Save(categoria).Error
}

func (r *finanzaRepository) DeleteCategoriaGasto(id uint) error {
	return r.db.Delete(&model.CategoriaGasto{}, id).Error
}
