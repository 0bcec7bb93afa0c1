package storefront

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	Producto Producto
	Cantidad int
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Producto.PrecioVenta.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Cart keeps one shopping cart per session cookie, in memory only.
// Everything is lost on restart, which is fine for a catalog browser
// without checkout.
type Cart struct {
	mu       sync.RWMutex
	sessions map[string]map[uint]*CartItem
}

func NewCart() *Cart {
	return &Cart{sessions: make(map[string]map[uint]*CartItem)}
}

func (c *Cart) Add(session string, producto Producto, cantidad int) {
	if cantidad <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, ok := c.sessions[session]
	if !ok {
		items = make(map[uint]*CartItem)
		c.sessions[session] = items
	}

	if item, ok := items[producto.ID]; ok {
		item.Cantidad += cantidad
		return
	}
	items[producto.ID] = &CartItem{Producto: producto, Cantidad: cantidad}
}

func (c *Cart) Remove(session string, idProducto uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, ok := c.sessions[session]
	if !ok {
		return
	}
	delete(items, idProducto)
	if len(items) == 0 {
		delete(c.sessions, session)
	}
}

// Items returns a stable snapshot of the session cart.
func (c *Cart) Items(session string) []CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]CartItem, 0, len(c.sessions[session]))
	for _, item := range c.sessions[session] {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Producto.ID < items[j].Producto.ID
	})
	return items
}

func (c *Cart) Total(session string) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items(session) {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) Count(session string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, item := range c.sessions[session] {
		count += item.Cantidad
	}
	return count
}
