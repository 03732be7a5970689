package cart

import "strings"

// LineItem is one product variant in the cart. Its ID is the composite
// productId-size-color key, so the same variant never appears twice.
type LineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// LineItemID builds the composite key for a product variant.
func LineItemID(productID, size, color string) string {
	return strings.Join([]string{productID, size, color}, "-")
}

// State is an immutable cart snapshot. Subtotal and ItemCount are derived
// from Items by Reduce and never set directly.
type State struct {
	Items     []LineItem `json:"items"`
	Subtotal  int        `json:"subtotal"`
	ItemCount int        `json:"itemCount"`
}

func Empty() State {
	return State{Items: []LineItem{}}
}

func (s State) find(id string) int {
	for i, it := range s.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Action is a cart mutation applied by Reduce.
type Action interface {
	apply(items []LineItem) []LineItem
}

// AddItem merges Item into the cart; an existing line with the same ID has
// its quantity increased. Items with a quantity below 1 are ignored.
type AddItem struct {
	Item LineItem
}

// RemoveItem drops a line; unknown IDs are ignored.
type RemoveItem struct {
	ID string
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are ignored:
// a line only leaves the cart through RemoveItem or Clear.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

type Clear struct{}

func (a AddItem) apply(items []LineItem) []LineItem {
	if a.Item.Quantity < 1 {
		return items
	}
	for i := range items {
		if items[i].ID == a.Item.ID {
			items[i].Quantity += a.Item.Quantity
			return items
		}
	}
	return append(items, a.Item)
}

func (a RemoveItem) apply(items []LineItem) []LineItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != a.ID {
			out = append(out, it)
		}
	}
	return out
}

func (a UpdateQuantity) apply(items []LineItem) []LineItem {
	if a.Quantity < 1 {
		return items
	}
	for i := range items {
		if items[i].ID == a.ID {
			items[i].Quantity = a.Quantity
		}
	}
	return items
}

func (Clear) apply([]LineItem) []LineItem {
	return []LineItem{}
}

// Reduce returns the state after applying a. The input state is not
// modified.
func Reduce(s State, a Action) State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return withTotals(a.apply(items))
}

func withTotals(items []LineItem) State {
	s := State{Items: items}
	if s.Items == nil {
		s.Items = []LineItem{}
	}
	for _, it := range s.Items {
		s.Subtotal += it.Price * it.Quantity
		s.ItemCount += it.Quantity
	}
	return s
}
