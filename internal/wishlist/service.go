package wishlist

import (
	"errors"

	"github.com/wichananm65/printvogue-backend/internal/cart"
	"github.com/wichananm65/printvogue-backend/internal/product"
	"github.com/wichananm65/printvogue-backend/internal/session"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotSaved        = errors.New("product not in wishlist")
)

// DefaultSize is preferred when a saved product moves to the cart.
const DefaultSize = "M"

// CartAdder is the slice of the cart service used by MoveToCart.
type CartAdder interface {
	AddToCart(sessionID string, req cart.AddRequest) (cart.State, error)
}

type Service struct {
	repo     Repository
	products product.ServiceInterface
	cart     CartAdder
	locks    *session.Locks
}

func NewService(repo Repository, products product.ServiceInterface, c CartAdder) *Service {
	return &Service{repo: repo, products: products, cart: c, locks: session.NewLocks()}
}

func (s *Service) GetWishlist(sessionID string) (State, error) {
	return s.repo.Load(sessionID)
}

// update runs fn against the session's wishlist under its lock and saves
// the returned state.
func (s *Service) update(sessionID string, fn func(State) State) (State, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()
	cur, err := s.repo.Load(sessionID)
	if err != nil {
		return State{}, err
	}
	next := fn(cur)
	if err := s.repo.Save(sessionID, next); err != nil {
		return State{}, err
	}
	return next, nil
}

func (s *Service) resolve(productID string) (product.Product, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return product.Product{}, ErrProductNotFound
		}
		return product.Product{}, err
	}
	return p, nil
}

func (s *Service) Add(sessionID, productID string) (State, error) {
	p, err := s.resolve(productID)
	if err != nil {
		return State{}, err
	}
	return s.update(sessionID, func(cur State) State {
		return Reduce(cur, Add{Product: p})
	})
}

func (s *Service) Remove(sessionID, productID string) (State, error) {
	return s.update(sessionID, func(cur State) State {
		return Reduce(cur, Remove{ProductID: productID})
	})
}

func (s *Service) Clear(sessionID string) error {
	_, err := s.update(sessionID, func(cur State) State {
		return Reduce(cur, Clear{})
	})
	return err
}

// Toggle flips membership of productID and reports whether it is now saved.
func (s *Service) Toggle(sessionID, productID string) (State, bool, error) {
	p, err := s.resolve(productID)
	if err != nil {
		return State{}, false, err
	}
	var saved bool
	st, err := s.update(sessionID, func(cur State) State {
		var next State
		next, saved = Toggle(cur, p)
		return next
	})
	if err != nil {
		return State{}, false, err
	}
	return st, saved, nil
}

func (s *Service) Contains(sessionID, productID string) (bool, error) {
	st, err := s.repo.Load(sessionID)
	if err != nil {
		return false, err
	}
	return st.Contains(productID), nil
}

// MoveToCart adds one unit of a saved product to the cart in size M (or its
// first size when M is not offered) and its first color, then removes it
// from the wishlist.
func (s *Service) MoveToCart(sessionID, productID string) (cart.State, State, error) {
	cur, err := s.repo.Load(sessionID)
	if err != nil {
		return cart.State{}, State{}, err
	}
	if !cur.Contains(productID) {
		return cart.State{}, State{}, ErrNotSaved
	}
	p, err := s.resolve(productID)
	if err != nil {
		return cart.State{}, State{}, err
	}

	size := DefaultSize
	if !p.HasSize(size) {
		size = p.Sizes[0]
	}
	cs, err := s.cart.AddToCart(sessionID, cart.AddRequest{
		ProductID: p.ID,
		Size:      size,
		Color:     p.Colors[0],
		Quantity:  1,
	})
	if err != nil {
		return cart.State{}, State{}, err
	}
	ws, err := s.Remove(sessionID, productID)
	if err != nil {
		return cart.State{}, State{}, err
	}
	return cs, ws, nil
}
