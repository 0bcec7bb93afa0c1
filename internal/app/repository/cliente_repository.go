package repository

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

// ClienteFilter narrows the cliente listing. Filters are conjunctive.
type ClienteFilter struct {
	IDComuna *uint
	Mora     *bool
	Giro     string
}

type ClienteRepository interface {
	Create(cliente *model.Cliente) error
	FindAll(filter ClienteFilter) ([]model.Cliente, error)
	FindByID(id uint) (*model.Cliente, error)
	FindByPersona(idPersona uint) (*model.Cliente, error)
	Update(cliente *model.Cliente) error
	Delete(id uint) error
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(cliente *model.Cliente) error {
	if err := r.db.Create(cliente).Error; err != nil {
		logger.Error("Failed to create cliente in database", err, map[string]interface{}{
			"id_persona": cliente.IDPersona,
		})
		return err
	}
	return nil
}

func (r *clienteRepository) FindAll(filter ClienteFilter) ([]model.Cliente, error) {
	query := r.db.Model(&model.Cliente{}).
		Preload("Persona").
		Preload("Comuna.Region")

	if filter.IDComuna != nil {
		query = query.Where("id_comuna = ?", *filter.IDComuna)
	}
	if filter.Mora != nil {
		query = query.Where("mora = ?", *filter.Mora)
	}
	if filter.Giro != "" {
		query = query.Where("giro LIKE ?", "%"+filter.Giro+"%")
	}

	var clientes []model.Cliente
	if err := query.Find(&clientes).Error; err != nil {
		logger.Error("Failed to find clientes in database", err)
		return nil, err
	}
	return clientes, nil
}

func (r *clienteRepository) FindByID(id uint) (*model.Cliente, error) {
	var cliente model.Cliente
	err := r.db.Preload("Persona").Preload("Comuna.Region").First(&cliente, id).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) FindByPersona(idPersona uint) (*model.Cliente, error) {
	var cliente model.Cliente
	err := r.db.Where("id_persona = ?", idPersona).First(&cliente).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) Update(cliente *model.Cliente) error {
	if err := r.db.Save(cliente).Error; err != nil {
		logger.Error("Failed to update cliente in database", err, map[string]interface{}{
			"id_cliente": cliente.ID,
		})
		return err
	}
	return nil
}

func (r *clienteRepository) Delete(id uint) error {
	return r.db.Delete(&model.Cliente{}, id).Error
}
