package domain

// RelatedLimit сколько похожих товаров показывается на странице товара
const RelatedLimit = 4

// Snapshot копия каталога в памяти после единственной загрузки.
// Seasonal является подмножеством Products. Ссылка Product.Category на
// несуществующую категорию допустима: поиск просто ничего не находит.
type Snapshot struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	Seasonal   []Product  `json:"seasonal"`
}

// Empty true, если в снимке нет ни категорий, ни товаров
func (s Snapshot) Empty() bool {
	return len(s.Categories) == 0 && len(s.Products) == 0
}

func (s Snapshot) CategoryBySlug(slug string) (*Category, bool) {
	for i := range s.Categories {
		if s.Categories[i].Slug == slug {
			c := s.Categories[i]
			return &c, true
		}
	}
	return nil, false
}

func (s Snapshot) ProductByID(id string) (*Product, bool) {
	for i := range s.Products {
		if s.Products[i].ID == id {
			p := s.Products[i]
			return &p, true
		}
	}
	return nil, false
}

// ProductsByCategory линейный проход, индекс не строится
func (s Snapshot) ProductsByCategory(slug string) []Product {
	out := make([]Product, 0)
	for _, p := range s.Products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

// Related товары той же категории, кроме самого p, не больше limit
func (s Snapshot) Related(p Product, limit int) []Product {
	if limit < 0 {
		limit = 0
	}
	out := make([]Product, 0, limit)
	for _, other := range s.Products {
		if len(out) >= limit {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}

func (s Snapshot) Featured() []Product {
	out := make([]Product, 0)
	for _, p := range s.Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
