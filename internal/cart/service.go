package cart

import (
	"errors"

	"github.com/wichananm65/printvogue-backend/internal/product"
	"github.com/wichananm65/printvogue-backend/internal/session"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidVariant  = errors.New("size or color not offered for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// AddRequest identifies a product variant to put in the cart.
type AddRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// Service applies cart actions one at a time per session: each call loads
// the snapshot, reduces it and saves the result under the session's lock.
type Service struct {
	repo     Repository
	products product.ServiceInterface
	locks    *session.Locks
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products, locks: session.NewLocks()}
}

// Dispatch applies a to the session's cart and returns the new snapshot.
func (s *Service) Dispatch(sessionID string, a Action) (State, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()
	cur, err := s.repo.Load(sessionID)
	if err != nil {
		return State{}, err
	}
	next := Reduce(cur, a)
	if err := s.repo.Save(sessionID, next); err != nil {
		return State{}, err
	}
	return next, nil
}

func (s *Service) GetCart(sessionID string) (State, error) {
	return s.repo.Load(sessionID)
}

// AddToCart resolves the product from the catalog and adds the variant.
func (s *Service) AddToCart(sessionID string, req AddRequest) (State, error) {
	if req.Quantity < 1 {
		return State{}, ErrInvalidQuantity
	}
	p, err := s.products.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return State{}, ErrProductNotFound
		}
		return State{}, err
	}
	if !p.HasSize(req.Size) || !p.HasColor(req.Color) {
		return State{}, ErrInvalidVariant
	}
	return s.Dispatch(sessionID, AddItem{Item: LineItem{
		ID:        LineItemID(p.ID, req.Size, req.Color),
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}})
}

func (s *Service) UpdateQuantity(sessionID, id string, qty int) (State, error) {
	return s.Dispatch(sessionID, UpdateQuantity{ID: id, Quantity: qty})
}

func (s *Service) RemoveItem(sessionID, id string) (State, error) {
	return s.Dispatch(sessionID, RemoveItem{ID: id})
}

// ClearCart empties a session's cart.
func (s *Service) ClearCart(sessionID string) error {
	_, err := s.Dispatch(sessionID, Clear{})
	return err
}
