package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Producto is the slice of the catalog API the storefront renders.
type Producto struct {
	ID            uint            `json:"id_producto"`
	Nombre        string          `json:"nombre"`
	Descripcion   string          `json:"descripcion"`
	SKU           string          `json:"sku"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	StockUnidades int             `json:"stock_unidades"`
	Categoria     struct {
		Tipo string `json:"tipo"`
	} `json:"categoria"`
}

type Imagen struct {
	ID  uint   `json:"id_imagen"`
	URL string `json:"url"`
}

// Client talks to the back-office API over its public endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s returned status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Productos(ctx context.Context) ([]Producto, error) {
	var payload struct {
		Productos []Producto `json:"productos"`
	}
	if err := c.get(ctx, "/api/productos", &payload); err != nil {
		return nil, err
	}
	return payload.Productos, nil
}

func (c *Client) Producto(ctx context.Context, id uint) (*Producto, error) {
	var payload struct {
		Producto Producto `json:"producto"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/productos/%d", id), &payload); err != nil {
		return nil, err
	}
	return &payload.Producto, nil
}

func (c *Client) Imagenes(ctx context.Context, idProducto uint) ([]Imagen, error) {
	var payload struct {
		Imagenes []Imagen `json:"imagenes"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/producto/%d/imagenes", idProducto), &payload); err != nil {
		return nil, err
	}
	return payload.Imagenes, nil
}
