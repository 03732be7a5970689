package product

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	products, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, products, 21)

	counts := NewService(NewInMemoryRepository(products)).CountByCategory()
	assert.Equal(t, 5, counts[CategoryShirts])
	assert.Equal(t, 6, counts[CategoryTShirts])
	assert.Equal(t, 5, counts[CategoryShorts])
	assert.Equal(t, 5, counts[CategoryPants])
}

func TestParseCatalog_Rejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"duplicate id": {
			doc: `products:
  - {id: a, name: A, price: 1, category: Shirts, sizes: [M], colors: ["#000"]}
  - {id: a, name: B, price: 1, category: Shirts, sizes: [M], colors: ["#000"]}`,
			want: ErrDuplicateID,
		},
		"unknown category": {
			doc: `products:
  - {id: a, name: A, price: 1, category: Hats, sizes: [M], colors: ["#000"]}`,
			want: ErrInvalidCategory,
		},
		"no sizes": {
			doc: `products:
  - {id: a, name: A, price: 1, category: Pants, sizes: [], colors: ["#000"]}`,
			want: ErrInvalidProduct,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestInMemoryRepository_ReadOnlyCopies(t *testing.T) {
	r := NewInMemoryRepository([]Product{{ID: "x", Name: "X", Category: CategoryPants}})
	list := r.List()
	list[0].Name = "mutated"

	p, err := r.GetByID("x")
	require.NoError(t, err)
	assert.Equal(t, "X", p.Name)

	_, err = r.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProduct_Variants(t *testing.T) {
	p := Product{Sizes: []string{"S", "M"}, Colors: []string{"#000000"}}
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))
	assert.True(t, p.HasColor("#000000"))
	assert.False(t, p.HasColor("#FFFFFF"))
}
