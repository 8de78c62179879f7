package backend

import "github.com/shopspring/decimal"

// бэкенд ждёт precio числом, а не строкой
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Categoria запись категории в REST-бэкенде
type Categoria struct {
	Slug        string `json:"slug"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	ImagenURL   string `json:"imagenUrl"`
	Icono       string `json:"icono"`
	Activo      bool   `json:"activo"`
}

// PrecioProducto вариант цены внутри товара
type PrecioProducto struct {
	DescripcionPrecio string          `json:"descripcionPrecio"`
	Precio            decimal.Decimal `json:"precio"`
}

// Producto запись товара в REST-бэкенде
type Producto struct {
	Slug            string           `json:"slug"`
	Nombre          string           `json:"nombre"`
	Descripcion     string           `json:"descripcion"`
	ImagenURL       string           `json:"imagenUrl"`
	CategoriaSlug   string           `json:"categoriaSlug"`
	ProductoPrecios []PrecioProducto `json:"productoPrecios"`
	EsDeTemporada   bool             `json:"esDeTemporada"`
	EsDestacado     bool             `json:"esDestacado"`
	Activo          bool             `json:"activo"`
}

// Precio отдельная запись /api/Precios
type Precio struct {
	ID                int64           `json:"id"`
	ProductoSlug      string          `json:"productoSlug"`
	DescripcionPrecio string          `json:"descripcionPrecio"`
	Precio            decimal.Decimal `json:"precio"`
}

// CatalogPayload ответ единственного запроса каталога
type CatalogPayload struct {
	Categorias []Categoria `json:"categorias"`
	Productos  []Producto  `json:"productos"`
	Temporada  []Producto  `json:"temporada"`
}
