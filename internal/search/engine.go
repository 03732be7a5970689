package search

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wichananm65/printvogue-backend/internal/product"
)

// Sort selects the ordering of a result set.
type Sort string

const (
	SortRelevance Sort = "relevance"
	SortName      Sort = "name"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortCategory  Sort = "category"
)

// ParseSort maps a query value onto a Sort, falling back when the value is
// empty or unknown.
func ParseSort(s string, fallback Sort) Sort {
	switch Sort(s) {
	case SortRelevance, SortName, SortPriceLow, SortPriceHigh, SortCategory:
		return Sort(s)
	}
	return fallback
}

const (
	nameWeight        = 10
	categoryWeight    = 5
	descriptionWeight = 3
)

// Query describes one search request. An empty Category means all
// categories; nil price bounds are open.
type Query struct {
	Text     string
	Category product.Category
	MinPrice *int
	MaxPrice *int
	Sort     Sort
	Limit    int
}

// Result is a matched product with its relevance score.
type Result struct {
	product.Product
	Score int `json:"relevanceScore"`
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Matches reports whether text is a case-insensitive substring of the
// product's name, description or category label. Empty text matches
// everything.
func Matches(p product.Product, text string) bool {
	q := normalize(text)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q)
}

// Score sums the weights of the fields containing text.
func Score(p product.Product, text string) int {
	q := normalize(text)
	if q == "" {
		return 0
	}
	score := 0
	if strings.Contains(strings.ToLower(p.Name), q) {
		score += nameWeight
	}
	if strings.Contains(strings.ToLower(string(p.Category)), q) {
		score += categoryWeight
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		score += descriptionWeight
	}
	return score
}

type Engine struct {
	products product.ServiceInterface
}

func NewEngine(products product.ServiceInterface) *Engine {
	return &Engine{products: products}
}

// Search runs a full-results query. A blank query yields no results.
func (e *Engine) Search(q Query) []Result {
	if normalize(q.Text) == "" {
		return []Result{}
	}
	return e.run(q)
}

// Browse lists the catalog filtered by q. A blank query lists everything.
func (e *Engine) Browse(q Query) []Result {
	return e.run(q)
}

func (e *Engine) run(q Query) []Result {
	out := make([]Result, 0)
	for _, p := range e.products.List() {
		if !Matches(p, q.Text) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		out = append(out, Result{Product: p, Score: Score(p, q.Text)})
	}
	sortResults(out, q.Sort)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// sortResults orders results in place. Equal keys keep catalog order.
func sortResults(rs []Result, by Sort) {
	switch by {
	case SortRelevance:
		slices.SortStableFunc(rs, func(a, b Result) int { return b.Score - a.Score })
	case SortPriceLow:
		slices.SortStableFunc(rs, func(a, b Result) int { return a.Price - b.Price })
	case SortPriceHigh:
		slices.SortStableFunc(rs, func(a, b Result) int { return b.Price - a.Price })
	case SortName:
		// collators keep internal buffers and are not safe to share
		col := collate.New(language.English)
		slices.SortStableFunc(rs, func(a, b Result) int { return col.CompareString(a.Name, b.Name) })
	case SortCategory:
		col := collate.New(language.English)
		slices.SortStableFunc(rs, func(a, b Result) int {
			return col.CompareString(string(a.Category), string(b.Category))
		})
	}
}
