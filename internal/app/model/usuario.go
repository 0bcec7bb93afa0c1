package model

import (
	"strings"

	"gorm.io/gorm"
)

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Usuario is a login account bound to exactly one Persona. The
// credential is stored as a bcrypt hash, never returned in responses.
type Usuario struct {
	ID          uint   `gorm:"primaryKey;column:id_usuario" json:"id_usuario"`
	IDPersona   uint   `gorm:"column:id_persona;not null;index" json:"id_persona"`
	Contrasenia string `gorm:"column:contrasenia;not null" json:"-"`

	Persona Persona      `gorm:"foreignKey:IDPersona" json:"persona,omitempty"`
	Roles   []RolUsuario `gorm:"foreignKey:IDUsuario" json:"roles,omitempty"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// Rol is the role catalog. Names are unique and lowercased on write.
type Rol struct {
	ID  uint   `gorm:"primaryKey;column:id_rol" json:"id_rol"`
	Rol string `gorm:"column:rol;size:50;uniqueIndex;not null" json:"rol"`

	RolUsuarios []RolUsuario `gorm:"foreignKey:IDRol" json:"-"`
}

func (Rol) TableName() string {
	return "roles"
}

func (r *Rol) BeforeSave(_ *gorm.DB) error {
	r.Rol = normalizeLower(r.Rol)
	return nil
}

// RolUsuario assigns a Rol to a Usuario (many-to-many join).
type RolUsuario struct {
	ID        uint `gorm:"primaryKey;column:id_rol_usuario" json:"id_rol_usuario"`
	IDUsuario uint `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	IDRol     uint `gorm:"column:id_rol;not null;index" json:"id_rol"`

	Usuario Usuario `gorm:"foreignKey:IDUsuario" json:"-"`
	Rol     Rol     `gorm:"foreignKey:IDRol" json:"rol,omitempty"`
}

func (RolUsuario) TableName() string {
	return "rol_usuario"
}
