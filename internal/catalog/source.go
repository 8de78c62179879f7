package catalog

import (
	"context"
	"strings"

	"bakery/internal/backend"
	"bakery/internal/domain"
)

// Source отдаёт весь каталог одним запросом
type Source interface {
	Fetch(ctx context.Context) (domain.Snapshot, error)
}

// BackendSource читает каталог из REST-бэкенда и приводит его к domain
type BackendSource struct {
	client        *backend.Client
	imageBasePath string
}

func NewBackendSource(client *backend.Client, imageBasePath string) *BackendSource {
	return &BackendSource{client: client, imageBasePath: imageBasePath}
}

var _ Source = (*BackendSource)(nil)

func (s *BackendSource) Fetch(ctx context.Context) (domain.Snapshot, error) {
	payload, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return FromPayload(*payload, s.imageBasePath), nil
}

// FromPayload keeps only active categories; products are filtered server-side.
func FromPayload(p backend.CatalogPayload, imageBasePath string) domain.Snapshot {
	snap := domain.Snapshot{
		Categories: make([]domain.Category, 0, len(p.Categorias)),
		Products:   make([]domain.Product, 0, len(p.Productos)),
		Seasonal:   make([]domain.Product, 0, len(p.Temporada)),
	}
	for _, c := range p.Categorias {
		if !c.Activo {
			continue
		}
		snap.Categories = append(snap.Categories, domain.Category{
			Slug:        c.Slug,
			Name:        c.Nombre,
			Description: c.Descripcion,
			Image:       NormalizeImage(c.ImagenURL, imageBasePath),
			Icon:        c.Icono,
		})
	}
	for _, pr := range p.Productos {
		snap.Products = append(snap.Products, toProduct(pr, imageBasePath))
	}
	for _, pr := range p.Temporada {
		snap.Seasonal = append(snap.Seasonal, toProduct(pr, imageBasePath))
	}
	return snap
}

func toProduct(p backend.Producto, imageBasePath string) domain.Product {
	prices := make([]domain.ProductPrice, 0, len(p.ProductoPrecios))
	for _, pp := range p.ProductoPrecios {
		prices = append(prices, domain.ProductPrice{Size: pp.DescripcionPrecio, Price: pp.Precio})
	}
	return domain.Product{
		ID:          p.Slug,
		Name:        p.Nombre,
		Description: p.Descripcion,
		Image:       NormalizeImage(p.ImagenURL, imageBasePath),
		Category:    p.CategoriaSlug,
		Prices:      prices,
		Featured:    p.EsDestacado,
		Seasonal:    p.EsDeTemporada,
	}
}

// NormalizeImage: absolute URLs pass through, bare names go under basePath.
func NormalizeImage(img, basePath string) string {
	img = strings.TrimSpace(img)
	if img == "" {
		return ""
	}
	for _, prefix := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(img, prefix) {
			return img
		}
	}
	if strings.HasPrefix(img, "/") {
		return img
	}
	return strings.TrimRight(basePath, "/") + "/" + img
}
