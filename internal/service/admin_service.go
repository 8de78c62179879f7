package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"bakery/internal/backend"
	"bakery/internal/catalog"
)

// AdminService прокси CRUD к бэкенду. После успешного изменения каталог
// перечитывается, так как клиент сам сущности каталога не меняет.
type AdminService struct {
	client *backend.Client
	store  *catalog.Store
	log    *zap.Logger
}

func NewAdminService(client *backend.Client, store *catalog.Store, log *zap.Logger) *AdminService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminService{client: client, store: store, log: log}
}

func (s *AdminService) refresh(ctx context.Context) {
	if err := s.store.Refresh(ctx); err != nil {
		s.log.Warn("catalog refresh after admin change failed", zap.Error(err))
	}
}

func (s *AdminService) ListCategories(ctx context.Context) ([]backend.Categoria, error) {
	return s.client.Categorias().List(ctx)
}

func (s *AdminService) GetCategory(ctx context.Context, slug string) (*backend.Categoria, error) {
	if slug == "" {
		return nil, ErrInvalidInput
	}
	return s.client.Categorias().Get(ctx, slug)
}

func (s *AdminService) CreateCategory(ctx context.Context, c backend.Categoria) (*backend.Categoria, error) {
	if c.Slug == "" || c.Nombre == "" {
		return nil, ErrInvalidInput
	}
	out, err := s.client.Categorias().Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return out, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, slug string, c backend.Categoria) (*backend.Categoria, error) {
	if slug == "" || c.Nombre == "" {
		return nil, ErrInvalidInput
	}
	out, err := s.client.Categorias().Update(ctx, slug, c)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return out, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, slug string) error {
	if slug == "" {
		return ErrInvalidInput
	}
	if err := s.client.Categorias().Delete(ctx, slug); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *AdminService) ListProducts(ctx context.Context) ([]backend.Producto, error) {
	return s.client.Productos().List(ctx)
}

func (s *AdminService) GetProduct(ctx context.Context, slug string) (*backend.Producto, error) {
	if slug == "" {
		return nil, ErrInvalidInput
	}
	return s.client.Productos().Get(ctx, slug)
}

func (s *AdminService) CreateProduct(ctx context.Context, p backend.Producto) (*backend.Producto, error) {
	if err := validateProducto(p); err != nil {
		return nil, err
	}
	out, err := s.client.Productos().Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return out, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, slug string, p backend.Producto) (*backend.Producto, error) {
	if slug == "" {
		return nil, ErrInvalidInput
	}
	if err := validateProducto(p); err != nil {
		return nil, err
	}
	out, err := s.client.Productos().Update(ctx, slug, p)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return out, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, slug string) error {
	if slug == "" {
		return ErrInvalidInput
	}
	if err := s.client.Productos().Delete(ctx, slug); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *AdminService) ListPrices(ctx context.Context) ([]backend.Precio, error) {
	return s.client.Precios().List(ctx)
}

func (s *AdminService) CreatePrice(ctx context.Context, p backend.Precio) (*backend.Precio, error) {
	if err := validatePrecio(p); err != nil {
		return nil, err
	}
	out, err := s.client.Precios().Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return out, nil
}

func (s *AdminService) UpdatePrice(ctx context.Context, id int64, p backend.Precio) (*backend.Precio, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if err := validatePrecio(p); err != nil {
		return nil, err
	}
	out, err := s.client.Precios().Update(ctx, strconv.FormatInt(id, 10), p)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return out, nil
}

func (s *AdminService) DeletePrice(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := s.client.Precios().Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func validateProducto(p backend.Producto) error {
	if p.Slug == "" || p.Nombre == "" || p.CategoriaSlug == "" {
		return ErrInvalidInput
	}
	for _, pp := range p.ProductoPrecios {
		if pp.DescripcionPrecio == "" || pp.Precio.IsNegative() {
			return ErrInvalidInput
		}
	}
	return nil
}

func validatePrecio(p backend.Precio) error {
	if p.ProductoSlug == "" || p.DescripcionPrecio == "" || p.Precio.IsNegative() {
		return ErrInvalidInput
	}
	return nil
}
