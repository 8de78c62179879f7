package catalog

import (
	"github.com/shopspring/decimal"

	"bakery/internal/domain"
)

// LoadFailedMessage текст баннера, когда каталог не загрузился
const LoadFailedMessage = "No pudimos cargar el catálogo. Mostramos productos de ejemplo."

func price(size string, amount int64) domain.ProductPrice {
	return domain.ProductPrice{Size: size, Price: decimal.NewFromInt(amount)}
}

// Placeholder небольшой встроенный каталог, чтобы витрина оставалась навигируемой
func Placeholder() domain.Snapshot {
	const img = "/images/placeholder.jpg"
	products := []domain.Product{
		{
			ID: "pastel-tres-leches", Name: "Pastel de tres leches",
			Description: "Bizcocho esponjoso bañado en tres leches.",
			Image:       img, Category: "pasteles", Featured: true,
			Prices: []domain.ProductPrice{price("Chico", 250), price("Mediano", 380), price("Grande", 520)},
		},
		{
			ID: "concha-vainilla", Name: "Concha de vainilla",
			Description: "Pan dulce tradicional con cubierta de vainilla.",
			Image:       img, Category: "panaderia",
			Prices: []domain.ProductPrice{price("Pieza", 15), price("Docena", 160)},
		},
		{
			ID: "galletas-mantequilla", Name: "Galletas de mantequilla",
			Description: "Caja de galletas horneadas cada mañana.",
			Image:       img, Category: "galletas",
			Prices: []domain.ProductPrice{price("Caja", 90)},
		},
		{
			ID: "rosca-de-reyes", Name: "Rosca de reyes",
			Description: "Edición de temporada con fruta cristalizada.",
			Image:       img, Category: "panaderia", Seasonal: true,
			Prices: []domain.ProductPrice{price("Mediana", 320), price("Grande", 480)},
		},
	}
	return domain.Snapshot{
		Categories: []domain.Category{
			{Slug: "pasteles", Name: "Pasteles", Description: "Pasteles para toda ocasión", Image: img, Icon: "cake"},
			{Slug: "panaderia", Name: "Panadería", Description: "Pan dulce y salado", Image: img, Icon: "bread"},
			{Slug: "galletas", Name: "Galletas", Description: "Galletas artesanales", Image: img, Icon: "cookie"},
		},
		Products: products,
		Seasonal: []domain.Product{products[3]},
	}
}
