package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TipoTransaccion string // ingreso o egreso de caja

const (
	TransaccionIngreso TipoTransaccion = "ingreso"
	TransaccionEgreso  TipoTransaccion = "egreso"
)

type TipoSueldo string // periodicidad de pago

const (
	SueldoSemanal  TipoSueldo = "semanal"
	SueldoMensual  TipoSueldo = "mensual"
	SueldoQuincena TipoSueldo = "quincena"
)

// Transaccion is a financial movement. Gastos hang off it and are
// removed with it (FK cascade, mirrored by the unit-of-work creates).
type Transaccion struct {
	ID          uint            `gorm:"primaryKey;column:id_transaccion" json:"id_transaccion"`
	Fecha       time.Time       `gorm:"type:date;not null" json:"fecha"`
	Tipo        TipoTransaccion `gorm:"type:varchar(10);not null" json:"tipo"`
	Monto       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monto"`
	Descripcion string          `gorm:"size:255" json:"descripcion"`

	Gastos []Gasto `gorm:"foreignKey:IDTransaccion;constraint:OnDelete:CASCADE" json:"gastos,omitempty"`
}

func (Transaccion) TableName() string {
	return "transacciones"
}

// Gasto is an expense line tied to a transaccion and a category.
type Gasto struct {
	ID               uint   `gorm:"primaryKey;column:id_gasto" json:"id_gasto"`
	IDTransaccion    uint   `gorm:"column:id_transaccion;not null;index" json:"id_transaccion"`
	NombreGasto      string `gorm:"column:nombre_gasto;size:100;not null" json:"nombre_gasto"`
	IDCategoriaGasto uint   `gorm:"column:id_categoria_gasto;not null;index" json:"id_categoria_gasto"`

	Transaccion    Transaccion    `gorm:"foreignKey:IDTransaccion" json:"transaccion,omitempty"`
	CategoriaGasto CategoriaGasto `gorm:"foreignKey:IDCategoriaGasto" json:"categoria_gasto,omitempty"`
}

func (Gasto) TableName() string {
	return "gasto"
}

// Sueldo is a salary payment tied to a transaccion.
type Sueldo struct {
	ID            uint       `gorm:"primaryKey;column:id_sueldo" json:"id_sueldo"`
	IDTransaccion uint       `gorm:"column:id_transaccion;not null;index" json:"id_transaccion"`
	TipoSueldo    TipoSueldo `gorm:"column:tipo_sueldo;type:varchar(10);not null" json:"tipo_sueldo"`
	Descripcion   string     `gorm:"size:255" json:"descripcion"`

	Transaccion Transaccion `gorm:"foreignKey:IDTransaccion" json:"transaccion,omitempty"`
}

func (Sueldo) TableName() string {
	return "sueldos"
}

// CategoriaGasto is the expense-category lookup.
type CategoriaGasto struct {
	ID     uint   `gorm:"primaryKey;column:id_categoria_gasto" json:"id_categoria_gasto"`
	Nombre string `gorm:"size:100;not null" json:"nombre"`

	Gastos []Gasto `gorm:"foreignKey:IDCategoriaGasto" json:"-"`
}

func (CategoriaGasto) TableName() string {
	return "categoria_gasto"
}
