package model

import "time"

type TipoMovimiento string // dirección de un movimiento de stock

const (
	MovimientoIngreso TipoMovimiento = "INGRESO"
	MovimientoEgreso  TipoMovimiento = "EGRESO"
)

// MovimientoStock is one entry in the stock ledger. Current stock is
// the signed sum of entries (INGRESO positive, EGRESO negative), never
// a mutable counter.
type MovimientoStock struct {
	ID                 uint           `gorm:"primaryKey;column:id_movimiento" json:"id_movimiento"`
	IDProducto         uint           `gorm:"column:id_producto;not null;index" json:"id_producto"`
	FechaMovimiento    time.Time      `gorm:"column:fecha_movimiento;not null" json:"fecha_movimiento"`
	Cantidad           int            `gorm:"not null" json:"cantidad"`
	TipoMovimiento     TipoMovimiento `gorm:"column:tipo_movimiento;type:varchar(10);not null" json:"tipo_movimiento"`
	Descripcion        string         `gorm:"size:255" json:"descripcion"`
	UsuarioResponsable string         `gorm:"column:usuario_responsable;size:100" json:"usuario_responsable"`

	Producto Producto `gorm:"foreignKey:IDProducto" json:"-"`
}

func (MovimientoStock) TableName() string {
	return "movimientos_stock"
}

// Devolucion records product returns, in loose units and whole cases.
type Devolucion struct {
	ID               uint      `gorm:"primaryKey;column:id_devolucion" json:"id_devolucion"`
	IDProducto       uint      `gorm:"column:id_producto;not null;index" json:"id_producto"`
	CantidadUnidades int       `gorm:"column:cantidad_unidades;not null" json:"cantidad_unidades"`
	CantidadCajas    int       `gorm:"column:cantidad_cajas;not null" json:"cantidad_cajas"`
	FechaDevolucion  time.Time `gorm:"column:fecha_devolucion;not null" json:"fecha_devolucion"`
	Razon            string    `gorm:"size:255;not null" json:"razon"`

	Producto Producto `gorm:"foreignKey:IDProducto" json:"-"`
}

func (Devolucion) TableName() string {
	return "devoluciones"
}
