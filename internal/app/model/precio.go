package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroPrecio is a historical price record for a producto. An open
// record (FechaFin nil) is the price in force.
type RegistroPrecio struct {
	ID            uint            `gorm:"primaryKey;column:id_registro" json:"id_registro"`
	IDProducto    uint            `gorm:"column:id_producto;not null;index" json:"id_producto"`
	FechaCreacion time.Time       `gorm:"column:fecha_creacion;not null" json:"fecha_creacion"`
	FechaFin      *time.Time      `gorm:"column:fecha_fin" json:"fecha_fin"`
	PrecioNeto    decimal.Decimal `gorm:"column:precio_neto;type:decimal(10,2);not null" json:"precio_neto"`
	PrecioVenta   decimal.Decimal `gorm:"column:precio_venta;type:decimal(10,2);not null" json:"precio_venta"`

	Producto Producto `gorm:"foreignKey:IDProducto" json:"-"`
}

func (RegistroPrecio) TableName() string {
	return "registro_precios"
}

// Descuento is a percentage discount on a producto, optionally scoped
// to a single cliente. Porcentaje is bounded to [0,100] at the API.
type Descuento struct {
	ID         uint       `gorm:"primaryKey;column:id_descuento" json:"id_descuento"`
	IDProducto uint       `gorm:"column:id_producto;not null;index" json:"id_producto"`
	IDCliente  *uint      `gorm:"column:id_cliente;index" json:"id_cliente"`
	Porcentaje float64    `gorm:"column:porcentaje_descuento;not null" json:"porcentaje_descuento"`
	FechaInicio time.Time `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	FechaFin   *time.Time `gorm:"column:fecha_fin" json:"fecha_fin"`

	Producto Producto `gorm:"foreignKey:IDProducto" json:"producto,omitempty"`
	Cliente  *Cliente `gorm:"foreignKey:IDCliente" json:"cliente,omitempty"`
}

func (Descuento) TableName() string {
	return "descuentos"
}
