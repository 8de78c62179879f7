package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Categories: []Category{{Slug: "pasteles", Name: "Pasteles"}, {Slug: "panaderia", Name: "Panadería"}},
		Products: []Product{
			{ID: "p1", Name: "Tres leches", Category: "pasteles", Featured: true},
			{ID: "p2", Name: "Bolillo", Category: "panaderia"},
			{ID: "p3", Name: "Selva negra", Category: "pasteles"},
			{ID: "p4", Name: "Huérfano", Category: "descontinuados"},
		},
	}
}

func TestSnapshot_ProductsByCategory(t *testing.T) {
	s := sampleSnapshot()

	got := s.ProductsByCategory("pasteles")
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)

	got = s.ProductsByCategory("panaderia")
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	assert.Empty(t, s.ProductsByCategory("nope"))
}

func TestSnapshot_CategoryBySlug(t *testing.T) {
	s := sampleSnapshot()
	c, ok := s.CategoryBySlug("panaderia")
	require.True(t, ok)
	assert.Equal(t, "Panadería", c.Name)

	// dangling category reference is just a miss
	p, ok := s.ProductByID("p4")
	require.True(t, ok)
	_, ok = s.CategoryBySlug(p.Category)
	assert.False(t, ok)
}

func TestSnapshot_Related(t *testing.T) {
	s := sampleSnapshot()
	for i := 0; i < 6; i++ {
		s.Products = append(s.Products, Product{ID: "x" + string(rune('a'+i)), Category: "pasteles"})
	}
	p, _ := s.ProductByID("p1")
	rel := s.Related(*p, RelatedLimit)
	require.Len(t, rel, RelatedLimit)
	for _, r := range rel {
		assert.NotEqual(t, "p1", r.ID)
		assert.Equal(t, "pasteles", r.Category)
	}
	assert.Empty(t, s.Related(*p, 0))
}

func TestSnapshot_Featured(t *testing.T) {
	got := sampleSnapshot().Featured()
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestProduct_Prices(t *testing.T) {
	p := Product{Prices: []ProductPrice{
		{Size: "M", Price: decimal.NewFromInt(20)},
		{Size: "L", Price: decimal.NewFromInt(35)},
	}}
	def, ok := p.DefaultPrice()
	require.True(t, ok)
	assert.Equal(t, "M", def.Size)

	l, ok := p.PriceBySize("L")
	require.True(t, ok)
	assert.True(t, l.Price.Equal(decimal.NewFromInt(35)))

	_, ok = p.PriceBySize("XL")
	assert.False(t, ok)

	_, ok = Product{}.DefaultPrice()
	assert.False(t, ok)
}

func TestProductPrice_JSONNumber(t *testing.T) {
	data, err := json.Marshal(Product{ID: "p1", Prices: []ProductPrice{{Size: "M", Price: decimal.RequireFromString("20.50")}}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":20.5`)

	var back Product
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Prices[0].Price.Equal(decimal.RequireFromString("20.5")))
}
