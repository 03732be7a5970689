package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/printvogue-backend/internal/cart"
	"github.com/wichananm65/printvogue-backend/internal/product"
)

func seedProducts() []product.Product {
	return []product.Product{
		{ID: "tshirt-001", Name: "Minimalist Logo Tee", Price: 1999, Category: product.CategoryTShirts,
			Sizes: []string{"S", "M", "L"}, Colors: []string{"#000000", "#ffffff"}},
		{ID: "shorts-001", Name: "Beach Shorts", Price: 999, Category: product.CategoryShorts,
			Sizes: []string{"28", "30"}, Colors: []string{"#1e3a8a"}},
	}
}

func newService() (*Service, *cart.Service) {
	products := product.NewService(product.NewInMemoryRepository(seedProducts()))
	carts := cart.NewService(cart.NewInMemoryRepository(), products)
	return NewService(NewInMemoryRepository(), products, carts), carts
}

func TestReduce_AddIsIdempotent(t *testing.T) {
	p := seedProducts()[0]
	s := Reduce(Empty(), Add{Product: p})
	s = Reduce(s, Add{Product: p})
	assert.Len(t, s.Items, 1)
	assert.True(t, s.Contains(p.ID))
}

func TestReduce_RemoveAndClear(t *testing.T) {
	ps := seedProducts()
	s := Reduce(Reduce(Empty(), Add{Product: ps[0]}), Add{Product: ps[1]})

	assert.Equal(t, s, Reduce(s, Remove{ProductID: "missing"}))

	s = Reduce(s, Remove{ProductID: ps[0].ID})
	assert.False(t, s.Contains(ps[0].ID))
	assert.Len(t, s.Items, 1)

	s = Reduce(s, Clear{})
	assert.Empty(t, s.Items)
	assert.NotNil(t, s.Items)
}

func TestToggle(t *testing.T) {
	p := seedProducts()[0]
	s, saved := Toggle(Empty(), p)
	assert.True(t, saved)
	assert.True(t, s.Contains(p.ID))

	s, saved = Toggle(s, p)
	assert.False(t, saved)
	assert.Empty(t, s.Items)
}

func TestService_AddUnknownProduct(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Add("s", "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, _, err = svc.Toggle("s", "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_MoveToCartPrefersSizeM(t *testing.T) {
	svc, carts := newService()
	_, err := svc.Add("s", "tshirt-001")
	require.NoError(t, err)

	cs, ws, err := svc.MoveToCart("s", "tshirt-001")
	require.NoError(t, err)
	require.Len(t, cs.Items, 1)
	assert.Equal(t, "tshirt-001-M-#000000", cs.Items[0].ID)
	assert.Equal(t, 1, cs.Items[0].Quantity)
	assert.Empty(t, ws.Items)

	stored, _ := carts.GetCart("s")
	assert.Equal(t, 1999, stored.Subtotal)
}

func TestService_MoveToCartFallsBackToFirstSize(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Add("s", "shorts-001")
	require.NoError(t, err)

	cs, _, err := svc.MoveToCart("s", "shorts-001")
	require.NoError(t, err)
	assert.Equal(t, "28", cs.Items[0].Size)
	assert.Equal(t, "#1e3a8a", cs.Items[0].Color)
}

func TestService_MoveToCartRequiresSaved(t *testing.T) {
	svc, _ := newService()
	_, _, err := svc.MoveToCart("s", "tshirt-001")
	assert.ErrorIs(t, err, ErrNotSaved)
}
