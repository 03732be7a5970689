package category

import (
	"errors"

	"github.com/wichananm65/printvogue-backend/internal/product"
)

var ErrNotFound = errors.New("category not found")

// Service provides business logic for categories.
type Service struct {
	products product.ServiceInterface
}

func NewService(products product.ServiceInterface) *Service {
	return &Service{products: products}
}

// List returns every category in display order with its product count.
func (s *Service) List() []CategoryItem {
	counts := make(map[product.Category]int, len(product.AllowedCategories))
	for _, p := range s.products.List() {
		counts[p.Category]++
	}
	out := make([]CategoryItem, 0, len(product.AllowedCategories))
	for _, c := range product.AllowedCategories {
		d := categoryDetails[c]
		out = append(out, CategoryItem{
			CategoryName: string(c),
			Description:  d.description,
			CategoryImg:  d.image,
			ProductCount: counts[c],
		})
	}
	return out
}

// Products returns the products of a single category. Names outside the
// enumeration are ErrNotFound.
func (s *Service) Products(name string) ([]product.Product, error) {
	c, ok := product.ParseCategory(name)
	if !ok {
		return nil, ErrNotFound
	}
	return s.products.ListByCategory(c), nil
}
