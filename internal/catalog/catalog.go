package catalog

import (
	"errors"

	"github.com/clorywears/storefront/internal/domain/models"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog — статический каталог товаров в памяти.
// Фильтрация и сортировка выполняются на клиенте, сервер отдает список целиком.
type Catalog struct {
	products []*models.Product
	byID     map[string]*models.Product
	bySlug   map[string]*models.Product
}

// New собирает каталог из переданного списка товаров.
func New(products []*models.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
		bySlug:   make(map[string]*models.Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}
	return c
}

// NewSeeded возвращает каталог с базовым ассортиментом магазина.
func NewSeeded() *Catalog {
	return New(seedProducts)
}

// All возвращает все товары каталога.
func (c *Catalog) All() []*models.Product {
	return c.products
}

// ByCategory возвращает товары указанной категории.
func (c *Catalog) ByCategory(category models.ProductCategory) []*models.Product {
	var out []*models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByID ищет товар по стабильному идентификатору (используется корзиной и заказами).
func (c *Catalog) ByID(id string) (*models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// BySlug ищет товар по slug (используется для роутинга страниц товара).
func (c *Catalog) BySlug(slug string) (*models.Product, error) {
	p, ok := c.bySlug[slug]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}
