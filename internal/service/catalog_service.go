package service

import (
	"context"
	"strings"

	"bakery/internal/catalog"
	"bakery/internal/domain"
)

// ProductFilter параметры фильтрации списка товаров
type ProductFilter struct {
	Category      string
	NameSubstring string
	Featured      bool
	Seasonal      bool
}

// CategoryView категория и её товары
type CategoryView struct {
	Category domain.Category  `json:"category"`
	Products []domain.Product `json:"products"`
}

// ProductView товар, его категория (может отсутствовать) и похожие товары
type ProductView struct {
	Product  domain.Product   `json:"product"`
	Category *domain.Category `json:"category"`
	Related  []domain.Product `json:"related"`
}

// CatalogService читает каталог из памяти; сеть не трогает
type CatalogService struct {
	store *catalog.Store
}

func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) State(ctx context.Context) catalog.State {
	return s.store.State()
}

func (s *CatalogService) Category(ctx context.Context, slug string) (*CategoryView, error) {
	if slug == "" {
		return nil, ErrInvalidInput
	}
	snap := s.store.State().Snapshot()
	c, ok := snap.CategoryBySlug(slug)
	if !ok {
		return nil, ErrNotFound
	}
	return &CategoryView{Category: *c, Products: snap.ProductsByCategory(slug)}, nil
}

func (s *CatalogService) Product(ctx context.Context, id string) (*ProductView, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	snap := s.store.State().Snapshot()
	p, ok := snap.ProductByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	// dangling category is rendered as "category not found", not an error
	c, _ := snap.CategoryBySlug(p.Category)
	return &ProductView{Product: *p, Category: c, Related: snap.Related(*p, domain.RelatedLimit)}, nil
}

func (s *CatalogService) List(ctx context.Context, f ProductFilter) []domain.Product {
	st := s.store.State()
	src := st.Products
	if f.Seasonal {
		src = st.Seasonal
	}
	out := make([]domain.Product, 0)
	for _, p := range src {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured && !p.Featured {
			continue
		}
		if !containsIgnoreCase(p.Name, f.NameSubstring) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
