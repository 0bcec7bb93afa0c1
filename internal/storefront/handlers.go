package storefront

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/somap/somap-backend/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "somap_carrito"

var clp = message.NewPrinter(language.MustParse("es-CL"))

// FormatPrecio renders a price as Chilean pesos, no decimals.
func FormatPrecio(d decimal.Decimal) string {
	return clp.Sprintf("$%d", d.Round(0).IntPart())
}

// Server renders the customer-facing catalog on top of the public API.
type Server struct {
	client     *Client
	cart       *Cart
	apiBaseURL string
}

func NewServer(client *Client, cart *Cart, apiBaseURL string) *Server {
	return &Server{client: client, cart: cart, apiBaseURL: apiBaseURL}
}

type productoView struct {
	Producto
	ImagenURL string
	Precio    string
}

type cartItemView struct {
	CartItem
	Precio   string
	Subtotal string
}

func (s *Server) Setup() *gin.Engine {
	funcs := template.FuncMap{
		"precio": FormatPrecio,
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(tmpl)

	engine.GET("/", s.Catalogo)
	engine.GET("/producto/:id", s.Detalle)
	engine.GET("/carrito", s.VerCarrito)
	engine.POST("/carrito", s.AgregarAlCarrito)
	engine.POST("/carrito/eliminar", s.QuitarDelCarrito)

	return engine
}

// session returns the cart cookie, minting one when the visitor has
// none yet.
func (s *Server) session(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	session := uuid.NewString()
	c.SetCookie(sessionCookie, session, 86400, "/", "", false, true)
	return session
}

func (s *Server) imagenURL(c *gin.Context, idProducto uint) string {
	imagenes, err := s.client.Imagenes(c.Request.Context(), idProducto)
	if err != nil || len(imagenes) == 0 {
		return ""
	}
	return s.apiBaseURL + imagenes[0].URL
}

// GET /
func (s *Server) Catalogo(c *gin.Context) {
	productos, err := s.client.Productos(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch catalog", err)
		c.String(http.StatusBadGateway, "El catálogo no está disponible")
		return
	}

	views := make([]productoView, 0, len(productos))
	for _, producto := range productos {
		views = append(views, productoView{
			Producto:  producto,
			ImagenURL: s.imagenURL(c, producto.ID),
			Precio:    FormatPrecio(producto.PrecioVenta),
		})
	}

	c.HTML(http.StatusOK, "catalogo.html", gin.H{
		"Productos":   views,
		"CarritoSize": s.cart.Count(s.session(c)),
	})
}

// GET /producto/:id
func (s *Server) Detalle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.String(http.StatusNotFound, "Producto no encontrado")
		return
	}

	producto, err := s.client.Producto(c.Request.Context(), uint(id))
	if err != nil {
		logger.Error("Failed to fetch producto", err, map[string]interface{}{
			"id_producto": id,
		})
		c.String(http.StatusNotFound, "Producto no encontrado")
		return
	}

	imagenes, err := s.client.Imagenes(c.Request.Context(), producto.ID)
	if err != nil {
		imagenes = nil
	}
	urls := make([]string, 0, len(imagenes))
	for _, imagen := range imagenes {
		urls = append(urls, s.apiBaseURL+imagen.URL)
	}

	c.HTML(http.StatusOK, "producto.html", gin.H{
		"Producto":    producto,
		"Precio":      FormatPrecio(producto.PrecioVenta),
		"Imagenes":    urls,
		"CarritoSize": s.cart.Count(s.session(c)),
	})
}

// POST /carrito
func (s *Server) AgregarAlCarrito(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id_producto"), 10, 32)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "Producto inválido")
		return
	}
	cantidad, err := strconv.Atoi(c.PostForm("cantidad"))
	if err != nil || cantidad <= 0 {
		cantidad = 1
	}

	producto, err := s.client.Producto(c.Request.Context(), uint(id))
	if err != nil {
		c.String(http.StatusNotFound, "Producto no encontrado")
		return
	}

	s.cart.Add(s.session(c), *producto, cantidad)
	c.Redirect(http.StatusSeeOther, "/carrito")
}

// POST /carrito/eliminar
func (s *Server) QuitarDelCarrito(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id_producto"), 10, 32)
	if err == nil && id > 0 {
		s.cart.Remove(s.session(c), uint(id))
	}
	c.Redirect(http.StatusSeeOther, "/carrito")
}

// GET /carrito
func (s *Server) VerCarrito(c *gin.Context) {
	session := s.session(c)

	items := s.cart.Items(session)
	views := make([]cartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, cartItemView{
			CartItem: item,
			Precio:   FormatPrecio(item.Producto.PrecioVenta),
			Subtotal: FormatPrecio(item.Subtotal()),
		})
	}

	c.HTML(http.StatusOK, "carrito.html", gin.H{
		"Items":       views,
		"Total":       FormatPrecio(s.cart.Total(session)),
		"CarritoSize": s.cart.Count(session),
	})
}
