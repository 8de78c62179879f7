package domain

import "github.com/shopspring/decimal"

// цены и суммы уходят в JSON числами
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductPrice вариант товара: размер и цена
type ProductPrice struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// Product товар каталога пекарни
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Category    string         `json:"category"`
	Prices      []ProductPrice `json:"prices"`
	Featured    bool           `json:"featured,omitempty"`
	Seasonal    bool           `json:"seasonal,omitempty"`
}

// DefaultPrice первый вариант товара, если он есть
func (p Product) DefaultPrice() (ProductPrice, bool) {
	if len(p.Prices) == 0 {
		return ProductPrice{}, false
	}
	return p.Prices[0], true
}

// PriceBySize ищет вариант по размеру
func (p Product) PriceBySize(size string) (ProductPrice, bool) {
	for _, pp := range p.Prices {
		if pp.Size == size {
			return pp, true
		}
	}
	return ProductPrice{}, false
}

// Category категория каталога, slug используется как ключ маршрута
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
}
