package model

import (
	"github.com/shopspring/decimal"
)

// Producto is the central catalog entity. Prices use decimal columns;
// StockUnidades is an advisory counter; the authoritative stock level
// is always derived from the movimientos_stock ledger.
type Producto struct {
	ID              uint            `gorm:"primaryKey;column:id_producto" json:"id_producto"`
	IDProveedor     uint            `gorm:"column:id_proveedor;not null;index" json:"id_proveedor"`
	IDCategoria     uint            `gorm:"column:id_categoria;not null;index" json:"id_categoria"`
	IDBodega        uint            `gorm:"column:id_bodega;not null;index" json:"id_bodega"`
	IDUnidadMedida  uint            `gorm:"column:id_unidad_medida;not null;index" json:"id_unidad_medida"`
	Nombre          string          `gorm:"size:100;not null" json:"nombre"`
	Descripcion     string          `gorm:"size:500;not null" json:"descripcion"`
	PrecioNeto      decimal.Decimal `gorm:"column:precio_neto;type:decimal(10,2);not null" json:"precio_neto"`
	PrecioVenta     decimal.Decimal `gorm:"column:precio_venta;type:decimal(10,2);not null" json:"precio_venta"`
	StockUnidades   int             `gorm:"column:stock_unidades;not null;default:0" json:"stock_unidades"`
	UnidadesPorCaja int             `gorm:"column:unidades_por_caja;not null" json:"unidades_por_caja"`
	SKU             string          `gorm:"column:sku;size:50;not null" json:"sku"`

	Proveedor       Proveedor        `gorm:"foreignKey:IDProveedor" json:"proveedor,omitempty"`
	Categoria       Categoria        `gorm:"foreignKey:IDCategoria" json:"categoria,omitempty"`
	Bodega          Bodega           `gorm:"foreignKey:IDBodega" json:"bodega,omitempty"`
	UnidadMedida    UnidadMedida     `gorm:"foreignKey:IDUnidadMedida" json:"unidad_medida,omitempty"`
	Imagenes        []ImagenProducto `gorm:"foreignKey:IDProducto" json:"imagenes,omitempty"`
	Movimientos     []MovimientoStock `gorm:"foreignKey:IDProducto" json:"-"`
	Descuentos      []Descuento      `gorm:"foreignKey:IDProducto" json:"-"`
	Detalles        []DetallePedido  `gorm:"foreignKey:IDProducto" json:"-"`
	RegistroPrecios []RegistroPrecio `gorm:"foreignKey:IDProducto" json:"-"`
	Devoluciones    []Devolucion     `gorm:"foreignKey:IDProducto" json:"-"`
}

func (Producto) TableName() string {
	return "productos"
}

// Categoria is a lookup referenced by productos. Deletion is blocked
// while any producto references it.
type Categoria struct {
	ID   uint   `gorm:"primaryKey;column:id_categoria" json:"id_categoria"`
	Tipo string `gorm:"not null" json:"tipo"`

	Productos []Producto `gorm:"foreignKey:IDCategoria" json:"productos,omitempty"`
}

func (Categoria) TableName() string {
	return "categoria"
}

// Bodega is a warehouse/storage location.
type Bodega struct {
	ID        uint   `gorm:"primaryKey;column:id_bodega" json:"id_bodega"`
	Nombre    string `gorm:"not null" json:"nombre"`
	Direccion string `gorm:"size:255" json:"direccion"`

	Productos []Producto `gorm:"foreignKey:IDBodega" json:"-"`
}

func (Bodega) TableName() string {
	return "bodegas"
}

// UnidadMedida is the unit-of-measure lookup ("Unidades", "Kilogramos", ...).
type UnidadMedida struct {
	ID     uint   `gorm:"primaryKey;column:id_unidad" json:"id_unidad"`
	Nombre string `gorm:"uniqueIndex;not null" json:"nombre"`

	Productos []Producto `gorm:"foreignKey:IDUnidadMedida" json:"-"`
}

func (UnidadMedida) TableName() string {
	return "unidad_medida"
}

// ImagenProducto stores the relative URL of an uploaded product image.
type ImagenProducto struct {
	ID         uint   `gorm:"primaryKey;column:id_imagen" json:"id_imagen"`
	URL        string `gorm:"column:url;not null" json:"url"`
	IDProducto uint   `gorm:"column:id_producto;not null;index" json:"id_producto"`

	Producto Producto `gorm:"foreignKey:IDProducto" json:"-"`
}

func (ImagenProducto) TableName() string {
	return "imagen_producto"
}
