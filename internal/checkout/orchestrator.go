package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wichananm65/printvogue-backend/internal/cart"
	"github.com/wichananm65/printvogue-backend/internal/order"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusConfirmed  Status = "confirmed"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrSubmissionInProgress = errors.New("an order is already being placed for this session")
	ErrOrderFailed          = errors.New("failed to create order")
)

// OrderCreator is the order-creation boundary. Both the local order service
// and the remote function client satisfy it.
type OrderCreator interface {
	CreateOrder(ctx context.Context, sub order.Submission) (order.Result, error)
}

type CartStore interface {
	GetCart(sessionID string) (cart.State, error)
	ClearCart(sessionID string) error
}

// Progress is what a session's checkout looks like from the outside.
type Progress struct {
	Status    Status `json:"status"`
	OrderID   string `json:"orderId,omitempty"`
	EmailSent bool   `json:"emailSent"`
}

type Summary struct {
	Items     []cart.LineItem `json:"items"`
	ItemCount int             `json:"itemCount"`
	Totals
}

type Confirmation struct {
	OrderID   string `json:"orderId"`
	EmailSent bool   `json:"emailSent"`
	Totals
}

// Orchestrator turns a session's cart plus a checkout form into one call to
// the order-creation boundary. A session only has a progress entry while its
// order is being placed or while a confirmed order waits for the cart clear.
type Orchestrator struct {
	mu       sync.Mutex
	progress map[string]Progress

	orders     OrderCreator
	carts      CartStore
	clearDelay time.Duration
	after      func(time.Duration, func())
	log        logrus.FieldLogger
}

func NewOrchestrator(orders OrderCreator, carts CartStore, clearDelay time.Duration, log logrus.FieldLogger) *Orchestrator {
	return &Orchestrator{
		progress:   make(map[string]Progress),
		orders:     orders,
		carts:      carts,
		clearDelay: clearDelay,
		after:      func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		log:        log,
	}
}

func (o *Orchestrator) Summary(sessionID string) (Summary, error) {
	state, err := o.carts.GetCart(sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: state.Items, ItemCount: state.ItemCount, Totals: ComputeTotals(state.Subtotal)}, nil
}

func (o *Orchestrator) Status(sessionID string) Progress {
	o.mu.Lock()
	defer o.mu.Unlock()
	if p, ok := o.progress[sessionID]; ok {
		return p
	}
	return Progress{Status: StatusIdle}
}

// Submit validates the form, places the order and schedules the cart clear.
// On failure the cart is left as it was and the session returns to idle.
func (o *Orchestrator) Submit(ctx context.Context, sessionID string, f Form) (Confirmation, error) {
	if err := f.Validate(); err != nil {
		return Confirmation{}, err
	}
	payment, _ := PaymentLabel(f.PaymentMethod)

	state, err := o.carts.GetCart(sessionID)
	if err != nil {
		return Confirmation{}, err
	}
	if len(state.Items) == 0 {
		return Confirmation{}, ErrEmptyCart
	}
	if err := o.begin(sessionID); err != nil {
		return Confirmation{}, err
	}

	totals := ComputeTotals(state.Subtotal)
	sub := order.Submission{
		CustomerName:    f.Name,
		CustomerEmail:   f.Email,
		CustomerPhone:   f.Phone,
		ShippingAddress: f.ShippingAddress(),
		PaymentMethod:   payment,
		Items:           submissionItems(state.Items),
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Tax:             totals.Tax,
		Total:           totals.Total,
	}

	log := o.log.WithField("session_id", sessionID)
	res, err := o.orders.CreateOrder(ctx, sub)
	if err == nil && (!res.Success || res.OrderID == "") {
		err = errors.New(res.Error)
		if res.Error == "" {
			err = errors.New("no order id returned")
		}
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrOrderFailed, err)
		log.WithError(err).Warn("checkout failed")
		o.forget(sessionID)
		return Confirmation{}, err
	}

	o.confirm(sessionID, Progress{Status: StatusConfirmed, OrderID: res.OrderID, EmailSent: res.EmailSent})
	o.after(o.clearDelay, func() { o.clearCart(sessionID) })
	log.WithFields(logrus.Fields{"order_id": res.OrderID, "total": totals.Total}).Info("checkout confirmed")
	return Confirmation{OrderID: res.OrderID, EmailSent: res.EmailSent, Totals: totals}, nil
}

func (o *Orchestrator) begin(sessionID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.progress[sessionID]; ok {
		return ErrSubmissionInProgress
	}
	o.progress[sessionID] = Progress{Status: StatusSubmitting}
	return nil
}

func (o *Orchestrator) confirm(sessionID string, p Progress) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.progress[sessionID] = p
}

func (o *Orchestrator) forget(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.progress, sessionID)
}

func (o *Orchestrator) clearCart(sessionID string) {
	if err := o.carts.ClearCart(sessionID); err != nil {
		o.log.WithError(err).WithField("session_id", sessionID).Error("delayed cart clear failed")
	}
	o.forget(sessionID)
}

// Pending is the number of sessions with an order in flight or a cart clear
// still scheduled.
func (o *Orchestrator) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.progress)
}

func submissionItems(items []cart.LineItem) []order.Item {
	out := make([]order.Item, 0, len(items))
	for _, it := range items {
		out = append(out, order.Item{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
			Image:    it.Image,
		})
	}
	return out
}
