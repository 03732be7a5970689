package search

import (
	"net/url"
	"strings"

	"github.com/wichananm65/printvogue-backend/internal/product"
)

const (
	// QuickLimit caps the quick-search overlay.
	QuickLimit = 8

	resultsPath = "/search"
)

var misspellings = map[string]string{
	"tshirt": "t-shirt",
	"tee":    "t-shirt",
	"pant":   "pants",
	"short":  "shorts",
	"shrit":  "shirt",
}

// Suggest returns a spelling correction for text. Only queries longer than
// two characters are looked up, and only exact matches are corrected.
func Suggest(text string) (string, bool) {
	q := normalize(text)
	if len(q) <= 2 {
		return "", false
	}
	s, ok := misspellings[q]
	return s, ok
}

// ResultsURL builds the full-results address for text.
func ResultsURL(text string) string {
	v := url.Values{}
	v.Set("q", text)
	return resultsPath + "?" + v.Encode()
}

// ProductURL is the detail page address of a product.
func ProductURL(id string) string {
	return "/product/" + url.PathEscape(id)
}

type QuickResult struct {
	Query      string            `json:"query"`
	Results    []Result          `json:"results"`
	Suggestion string            `json:"suggestion,omitempty"`
	ViewAllURL string            `json:"viewAllUrl,omitempty"`
	Popular    []product.Product `json:"popular,omitempty"`
}

// Quick runs the overlay search: relevance order, at most QuickLimit hits.
// When nothing matches, a spelling suggestion (if any) and the popular
// products are attached.
func (e *Engine) Quick(text string) QuickResult {
	res := QuickResult{Query: text, Results: []Result{}}
	if strings.TrimSpace(text) != "" {
		res.Results = e.run(Query{Text: text, Sort: SortRelevance, Limit: QuickLimit})
		res.ViewAllURL = ResultsURL(text)
	}
	if len(res.Results) == 0 {
		if s, ok := Suggest(text); ok {
			res.Suggestion = s
		}
		res.Popular = e.products.Popular(product.PopularCount)
	}
	return res
}
