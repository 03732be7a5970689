package product

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidProduct  = errors.New("invalid product")
)

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// DefaultCatalog returns the embedded seed catalog.
func DefaultCatalog() ([]Product, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalogFile reads a catalog from a YAML file on disk.
func LoadCatalogFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(b)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(b []byte) ([]Product, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(doc.Products); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// Validate checks id uniqueness, the category enumeration and non-empty
// size and color lists.
func Validate(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("%w: id and name are required", ErrInvalidProduct)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if _, ok := ParseCategory(string(p.Category)); !ok {
			return fmt.Errorf("%w: %q on %s", ErrInvalidCategory, p.Category, p.ID)
		}
		if len(p.Sizes) == 0 || len(p.Colors) == 0 {
			return fmt.Errorf("%w: %s has no sizes or colors", ErrInvalidProduct, p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("%w: %s has a negative price", ErrInvalidProduct, p.ID)
		}
	}
	return nil
}
