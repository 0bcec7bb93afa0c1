package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/somap/somap-backend/internal/app/model"
	"github.com/somap/somap-backend/pkg/logger"
)

// PersonaSearchFilter holds the optional search criteria. Provided
// filters are conjunctive; absent ones are skipped.
type PersonaSearchFilter struct {
	Nombre   string
	Apellido string
	Email    string
}

type PersonaRepository interface {
	Create(persona *model.Persona) error
	FindAll() ([]model.Persona, error)
	FindByID(id uint) (*model.Persona, error)
	FindByRut(rut string) (*model.Persona, error)
	FindByEmail(email string) (*model.Persona, error)
	Search(filter PersonaSearchFilter) ([]model.Persona, error)
	Count() (int64, error)
	Update(persona *model.Persona) error
	Delete(id uint) error
}

type personaRepository struct {
	db *gorm.DB
}

func NewPersonaRepository(db *gorm.DB) PersonaRepository {
	return &personaRepository{db: db}
}

func (r *personaRepository) Create(persona *model.Persona) error {
	if err := r.db.Create(persona).Error; err != nil {
		logger.Error("Failed to create persona in database", err, map[string]interface{}{
			"rut": persona.Rut,
		})
		return err
	}
	return nil
}

func (r *personaRepository) FindAll() ([]model.Persona, error) {
	var personas []model.Persona
	if err := r.db.Find(&personas).Error; err != nil {
		logger.Error("Failed to find personas in database", err)
		return nil, err
	}
	return personas, nil
}

func (r *personaRepository) FindByID(id uint) (*model.Persona, error) {
	var persona model.Persona
	if err := r.db.First(&persona, id).Error; err != nil {
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepository) FindByRut(rut string) (*model.Persona, error) {
	var persona model.Persona
	if err := r.db.Where("rut_persona = ?", rut).First(&persona).Error; err != nil {
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepository) FindByEmail(email string) (*model.Persona, error) {
	var persona model.Persona
	if err := r.db.Where("email = ?", email).First(&persona).Error; err != nil {
		return nil, err
	}
	return &persona, nil
}

// insensitive builds an accent/case-insensitive LIKE condition. The
// unaccent extension only exists on postgres; the sqlite test database
// falls back to plain lower().
func (r *personaRepository) insensitive(column string) string {
	if r.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("unaccent(lower(%s)) LIKE unaccent(lower(?))", column)
	}
	return fmt.Sprintf("lower(%s) LIKE lower(?)", column)
}

func (r *personaRepository) Search(filter PersonaSearchFilter) ([]model.Persona, error) {
	query := r.db.Model(&model.Persona{})

	if filter.Nombre != "" {
		query = query.Where(r.insensitive("nombre"), "%"+filter.Nombre+"%")
	}
	if filter.Apellido != "" {
		query = query.Where(
			r.insensitive("primer_apellido")+" OR "+r.insensitive("segundo_apellido"),
			"%"+filter.Apellido+"%", "%"+filter.Apellido+"%",
		)
	}
	if filter.Email != "" {
		query = query.Where(r.insensitive("email"), "%"+filter.Email+"%")
	}

	var personas []model.Persona
	if err := query.Find(&personas).Error; err != nil {
		logger.Error("Failed to search personas in database", err)
		return nil, err
	}
	return personas, nil
}

func (r *personaRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Persona{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *personaRepository) Update(persona *model.Persona) error {
	if err := r.db.Save(persona).Error; err != nil {
		logger.Error("Failed to update persona in database", err, map[string]interface{}{
			"id_persona": persona.ID,
		})
		return err
	}
	return nil
}

func (r *personaRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Persona{}, id).Error; err != nil {
		logger.Error("Failed to delete persona from database", err, map[string]interface{}{
			"id_persona": id,
		})
		return err
	}
	return nil
}
