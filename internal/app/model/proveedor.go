package model

// Proveedor is a supplier of productos and counterparty on pedidos.
type Proveedor struct {
	ID            uint   `gorm:"primaryKey;column:id_proveedor" json:"id_proveedor"`
	NombreEmpresa string `gorm:"column:nombre_empresa;not null" json:"nombre_empresa"`
	Telefono      string `gorm:"size:20" json:"telefono"`
	RazonSocial   string `gorm:"column:razon_social;not null" json:"razon_social"`
	Direccion     string `gorm:"size:255" json:"direccion"`

	Productos []Producto `gorm:"foreignKey:IDProveedor" json:"productos,omitempty"`
	Pedidos   []Pedido   `gorm:"foreignKey:IDProveedor" json:"pedidos,omitempty"`
}

func (Proveedor) TableName() string {
	return "proveedor"
}
