package model

// Region is the top level of the Chilean administrative hierarchy.
type Region struct {
	ID     uint   `gorm:"primaryKey;column:id_region" json:"id_region"`
	Nombre string `gorm:"size:100;not null" json:"nombre"`

	Comunas []Comuna `gorm:"foreignKey:IDRegion;constraint:OnDelete:CASCADE" json:"comunas,omitempty"`
}

func (Region) TableName() string {
	return "region"
}

// Comuna nests within a Region.
type Comuna struct {
	ID       uint   `gorm:"primaryKey;column:id_comuna" json:"id_comuna"`
	Nombre   string `gorm:"size:100;not null" json:"nombre"`
	IDRegion uint   `gorm:"column:id_region;not null;index" json:"id_region"`

	Region   Region    `gorm:"foreignKey:IDRegion" json:"region,omitempty"`
	Clientes []Cliente `gorm:"foreignKey:IDComuna" json:"-"`
}

func (Comuna) TableName() string {
	return "comuna"
}
