package model

import (
	"gorm.io/gorm"

	"github.com/somap/somap-backend/pkg/util"
)

// Persona is a natural person. A persona may back at most one login
// account (Usuario) and at most one commercial profile (Cliente).
type Persona struct {
	ID              uint   `gorm:"primaryKey;column:id_persona" json:"id_persona"`
	Rut             string `gorm:"column:rut_persona;size:12;uniqueIndex;not null" json:"rut_persona"`
	Nombre          string `gorm:"size:100;not null" json:"nombre"`
	PrimerApellido  string `gorm:"column:primer_apellido;size:100;not null" json:"primer_apellido"`
	SegundoApellido string `gorm:"column:segundo_apellido;size:100" json:"segundo_apellido"`
	Email           string `gorm:"size:100" json:"email"`
	Telefono        string `gorm:"size:20" json:"telefono"`

	Usuarios []Usuario `gorm:"foreignKey:IDPersona" json:"usuarios,omitempty"`
	Clientes []Cliente `gorm:"foreignKey:IDPersona" json:"clientes,omitempty"`
}

func (Persona) TableName() string {
	return "personas"
}

// BeforeSave normalizes the RUT (lowercase, no dots, lowercase check
// digit) and the email so uniqueness is case-insensitive in practice.
func (p *Persona) BeforeSave(_ *gorm.DB) error {
	p.Rut = util.NormalizeRut(p.Rut)
	if p.Email != "" {
		p.Email = normalizeLower(p.Email)
	}
	return nil
}
