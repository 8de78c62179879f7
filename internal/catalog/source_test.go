package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/backend"
)

func TestNormalizeImage(t *testing.T) {
	cases := map[string]string{
		"":                              "",
		"concha.jpg":                    "/images/concha.jpg",
		"  rosca.png ":                  "/images/rosca.png",
		"https://cdn.example.com/a.jpg": "https://cdn.example.com/a.jpg",
		"http://cdn.example.com/a.jpg":  "http://cdn.example.com/a.jpg",
		"//cdn.example.com/a.jpg":       "//cdn.example.com/a.jpg",
		"/static/a.jpg":                 "/static/a.jpg",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeImage(in, "/images/"), "input %q", in)
	}
}

func TestFromPayload(t *testing.T) {
	p := backend.CatalogPayload{
		Categorias: []backend.Categoria{
			{Slug: "pasteles", Nombre: "Pasteles", ImagenURL: "pasteles.jpg", Icono: "cake", Activo: true},
			{Slug: "retirada", Nombre: "Retirada", Activo: false},
		},
		Productos: []backend.Producto{{
			Slug: "cake1", Nombre: "Tres leches", CategoriaSlug: "pasteles", ImagenURL: "https://img/x.jpg",
			ProductoPrecios: []backend.PrecioProducto{
				{DescripcionPrecio: "M", Precio: decimal.NewFromInt(20)},
				{DescripcionPrecio: "L", Precio: decimal.NewFromInt(35)},
			},
			EsDestacado: true,
		}},
		Temporada: []backend.Producto{{Slug: "rosca", CategoriaSlug: "panaderia", EsDeTemporada: true}},
	}

	snap := FromPayload(p, "/images")
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "pasteles", snap.Categories[0].Slug)
	assert.Equal(t, "/images/pasteles.jpg", snap.Categories[0].Image)

	require.Len(t, snap.Products, 1)
	prod := snap.Products[0]
	assert.Equal(t, "cake1", prod.ID)
	assert.Equal(t, "pasteles", prod.Category)
	assert.Equal(t, "https://img/x.jpg", prod.Image)
	assert.True(t, prod.Featured)
	require.Len(t, prod.Prices, 2)
	assert.Equal(t, "M", prod.Prices[0].Size)

	require.Len(t, snap.Seasonal, 1)
	assert.True(t, snap.Seasonal[0].Seasonal)
}

func TestBackendSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categorias":[{"slug":"pasteles","activo":true}],"productos":[{"slug":"p1","categoriaSlug":"pasteles","imagenUrl":"p1.jpg"}],"temporada":[]}`))
	}))
	defer srv.Close()

	src := NewBackendSource(backend.NewClient(srv.URL, "/api/Catalogo", time.Second, nil), "/images")
	snap, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "/images/p1.jpg", snap.Products[0].Image)
}
