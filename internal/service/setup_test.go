package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"bakery/internal/catalog"
	"bakery/internal/domain"
)

type staticSource struct{ snap domain.Snapshot }

func (s staticSource) Fetch(ctx context.Context) (domain.Snapshot, error) { return s.snap, nil }

func testSnapshot() domain.Snapshot {
	cake := domain.Product{
		ID: "cake1", Name: "Tres leches", Category: "pasteles", Featured: true,
		Prices: []domain.ProductPrice{
			{Size: "M", Price: decimal.NewFromInt(20)},
			{Size: "L", Price: decimal.NewFromInt(35)},
		},
	}
	rosca := domain.Product{
		ID: "rosca", Name: "Rosca de reyes", Category: "panaderia", Seasonal: true,
		Prices: []domain.ProductPrice{{Size: "Grande", Price: decimal.NewFromInt(480)}},
	}
	return domain.Snapshot{
		Categories: []domain.Category{{Slug: "pasteles", Name: "Pasteles"}, {Slug: "panaderia", Name: "Panadería"}},
		Products: []domain.Product{
			cake,
			{ID: "selva", Name: "Selva negra", Category: "pasteles", Prices: []domain.ProductPrice{{Size: "M", Price: decimal.NewFromInt(30)}}},
			{ID: "concha", Name: "Concha", Category: "panaderia", Prices: []domain.ProductPrice{{Size: "Pieza", Price: decimal.NewFromInt(15)}}},
			rosca,
			{ID: "huerfano", Name: "Huérfano", Category: "sin-categoria"},
		},
		Seasonal: []domain.Product{rosca},
	}
}

func setupStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore(staticSource{snap: testSnapshot()})
	store.Initialize(context.Background())
	return store
}
