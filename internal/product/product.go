package product

// Category is one of the fixed catalog categories.
type Category string

const (
	CategoryShirts  Category = "Shirts"
	CategoryTShirts Category = "T-Shirts"
	CategoryShorts  Category = "Shorts"
	CategoryPants   Category = "Pants"
)

// AllowedCategories lists the supported categories in display order.
var AllowedCategories = []Category{
	CategoryShirts,
	CategoryTShirts,
	CategoryShorts,
	CategoryPants,
}

// ParseCategory matches a category label exactly.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllowedCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Product is an immutable catalog record.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       int      `json:"price" yaml:"price"`
	Image       string   `json:"image" yaml:"image"`
	Category    Category `json:"category" yaml:"category"`
	Sizes       []string `json:"sizes" yaml:"sizes"`
	Colors      []string `json:"colors" yaml:"colors"`
}

// HasSize reports whether the product is offered in size s.
func (p Product) HasSize(s string) bool {
	for _, v := range p.Sizes {
		if v == s {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in color c.
func (p Product) HasColor(c string) bool {
	for _, v := range p.Colors {
		if v == c {
			return true
		}
	}
	return false
}
