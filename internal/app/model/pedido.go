package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EstadoPedido string // estado de entrega de un pedido

const (
	EstadoEntregado   EstadoPedido = "entregado"
	EstadoSinEntregar EstadoPedido = "sin entregar"
	EstadoPendiente   EstadoPedido = "pendiente"
)

// EstadosPedido is the closed set accepted by the API.
var EstadosPedido = []EstadoPedido{EstadoEntregado, EstadoSinEntregar, EstadoPendiente}

// Pedido is an order between a cliente and a proveedor.
type Pedido struct {
	ID           uint         `gorm:"primaryKey;column:id_pedido" json:"id_pedido"`
	IDCliente    uint         `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	IDProveedor  uint         `gorm:"column:id_proveedor;not null;index" json:"id_proveedor"`
	TipoPedido   string       `gorm:"column:tipo_pedido;size:50;not null" json:"tipo_pedido"`
	FechaPedido  time.Time    `gorm:"column:fecha_pedido;not null" json:"fecha_pedido"`
	FechaEntrega time.Time    `gorm:"column:fecha_entrega;not null" json:"fecha_entrega"`
	Comentarios  string       `gorm:"size:255" json:"comentarios"`
	Estado       EstadoPedido `gorm:"type:varchar(50);not null" json:"estado"`

	Cliente   Cliente         `gorm:"foreignKey:IDCliente" json:"cliente,omitempty"`
	Proveedor Proveedor       `gorm:"foreignKey:IDProveedor" json:"proveedor,omitempty"`
	Detalles  []DetallePedido `gorm:"foreignKey:IDPedido" json:"detalles,omitempty"`
}

func (Pedido) TableName() string {
	return "pedidos"
}

// DetallePedido is one order line. Descuento is a percentage in [0,100].
type DetallePedido struct {
	ID          uint            `gorm:"primaryKey;column:id_detalle" json:"id_detalle"`
	IDPedido    uint            `gorm:"column:id_pedido;not null;index" json:"id_pedido"`
	IDProducto  uint            `gorm:"column:id_producto;not null;index" json:"id_producto"`
	Cantidad    int             `gorm:"not null" json:"cantidad"`
	PrecioTotal decimal.Decimal `gorm:"column:precio_total;type:decimal(10,2);not null" json:"precio_total"`
	Descuento   float64         `gorm:"not null;default:0" json:"descuento"`

	Pedido   Pedido   `gorm:"foreignKey:IDPedido" json:"-"`
	Producto Producto `gorm:"foreignKey:IDProducto" json:"producto,omitempty"`
}

func (DetallePedido) TableName() string {
	return "detalle_pedido"
}
