package service

import (
	"context"
	"testing"
)

func TestCatalog_Category(t *testing.T) {
	ctx := context.Background()
	cs := NewCatalogService(setupStore(t))

	v, err := cs.Category(ctx, "pasteles")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if len(v.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(v.Products))
	}
	if _, err := cs.Category(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := cs.Category(ctx, ""); err != ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCatalog_Product(t *testing.T) {
	ctx := context.Background()
	cs := NewCatalogService(setupStore(t))

	v, err := cs.Product(ctx, "cake1")
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	if v.Category == nil || v.Category.Slug != "pasteles" {
		t.Fatalf("expected category pasteles")
	}
	if len(v.Related) != 1 || v.Related[0].ID != "selva" {
		t.Fatalf("unexpected related: %+v", v.Related)
	}

	// dangling category is not an error
	v, err = cs.Product(ctx, "huerfano")
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	if v.Category != nil {
		t.Fatalf("expected nil category")
	}

	if _, err := cs.Product(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalog_List(t *testing.T) {
	ctx := context.Background()
	cs := NewCatalogService(setupStore(t))

	if got := cs.List(ctx, ProductFilter{}); len(got) != 5 {
		t.Fatalf("expected all 5, got %d", len(got))
	}
	if got := cs.List(ctx, ProductFilter{Category: "panaderia"}); len(got) != 2 {
		t.Fatalf("expected 2 in panaderia, got %d", len(got))
	}
	got := cs.List(ctx, ProductFilter{Featured: true})
	if len(got) != 1 || got[0].ID != "cake1" {
		t.Fatalf("featured filter failed: %+v", got)
	}
	got = cs.List(ctx, ProductFilter{Seasonal: true})
	if len(got) != 1 || got[0].ID != "rosca" {
		t.Fatalf("seasonal filter failed: %+v", got)
	}
	got = cs.List(ctx, ProductFilter{NameSubstring: "NEGRA"})
	if len(got) != 1 || got[0].ID != "selva" {
		t.Fatalf("name filter failed: %+v", got)
	}
}
