package models

// ProductCategory — категория товара в каталоге.
type ProductCategory string

const (
	CategoryTrousers ProductCategory = "trousers"
	CategoryShirts   ProductCategory = "shirts"
)

// Valid проверяет категорию товара.
func (c ProductCategory) Valid() bool {
	return c == CategoryTrousers || c == CategoryShirts
}

// Product — товар каталога. Каталог статический, хранится в памяти,
// фильтрация и сортировка выполняются на клиенте.
type Product struct {
	ID       string          `json:"id"`
	Slug     string          `json:"slug"`
	Category ProductCategory `json:"category"`

	Name        string `json:"name"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`

	PriceNGN int `json:"priceNgn"`

	Images []string `json:"images"`
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`

	Highlights []string `json:"highlights"`
	Details    []string `json:"details"`
}
