package wishlist

import "github.com/wichananm65/printvogue-backend/internal/product"

// State is the set of saved products in the order they were added.
type State struct {
	Items []product.Product `json:"items"`
}

func Empty() State {
	return State{Items: []product.Product{}}
}

// Contains reports whether productID is saved.
func (s State) Contains(productID string) bool {
	for _, p := range s.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Action is a wishlist mutation applied by Reduce.
type Action interface {
	apply(items []product.Product) []product.Product
}

// Add saves a product; saving a product twice changes nothing.
type Add struct {
	Product product.Product
}

// Remove drops a product; unknown ids are ignored.
type Remove struct {
	ProductID string
}

type Clear struct{}

func (a Add) apply(items []product.Product) []product.Product {
	for _, p := range items {
		if p.ID == a.Product.ID {
			return items
		}
	}
	return append(items, a.Product)
}

func (a Remove) apply(items []product.Product) []product.Product {
	out := items[:0]
	for _, p := range items {
		if p.ID != a.ProductID {
			out = append(out, p)
		}
	}
	return out
}

func (Clear) apply([]product.Product) []product.Product {
	return []product.Product{}
}

// Reduce returns the state after applying a without modifying s.
func Reduce(s State, a Action) State {
	items := make([]product.Product, len(s.Items))
	copy(items, s.Items)
	items = a.apply(items)
	if items == nil {
		items = []product.Product{}
	}
	return State{Items: items}
}

// Toggle removes p when saved and adds it otherwise. The returned bool is
// the new membership.
func Toggle(s State, p product.Product) (State, bool) {
	if s.Contains(p.ID) {
		return Reduce(s, Remove{ProductID: p.ID}), false
	}
	return Reduce(s, Add{Product: p}), true
}
