package model

// Cliente is the commercial profile of a Persona: the shop it runs,
// where it sits and whether it is behind on payments (mora).
type Cliente struct {
	ID          uint   `gorm:"primaryKey;column:id_cliente" json:"id_cliente"`
	IDPersona   uint   `gorm:"column:id_persona;not null;index" json:"id_persona"`
	IDComuna    uint   `gorm:"column:id_comuna;not null;index" json:"id_comuna"`
	Direccion   string `gorm:"size:255;not null" json:"direccion"`
	NombreLocal string `gorm:"column:nombre_local;size:100;not null" json:"nombre_local"`
	RazonSocial string `gorm:"column:razon_social;size:100;not null" json:"razon_social"`
	Giro        string `gorm:"size:50;not null" json:"giro"`
	Mora        bool   `gorm:"default:false" json:"mora"`

	Persona    Persona     `gorm:"foreignKey:IDPersona" json:"persona,omitempty"`
	Comuna     Comuna      `gorm:"foreignKey:IDComuna" json:"comuna,omitempty"`
	Pedidos    []Pedido    `gorm:"foreignKey:IDCliente" json:"pedidos,omitempty"`
	Descuentos []Descuento `gorm:"foreignKey:IDCliente" json:"descuentos,omitempty"`
}

func (Cliente) TableName() string {
	return "clientes"
}
