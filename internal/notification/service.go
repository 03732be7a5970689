package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result reports the outcome of each of the two sends.
type Result struct {
	Success       bool       `json:"success"`
	StoreEmail    SendResult `json:"storeEmail"`
	CustomerEmail SendResult `json:"customerEmail"`
}

// Service renders and sends the store-owner and customer emails for an
// order.
type Service struct {
	sender     Sender
	from       string
	storeOwner string
	log        logrus.FieldLogger
}

func NewService(sender Sender, from, storeOwner string, log logrus.FieldLogger) *Service {
	return &Service{sender: sender, from: from, storeOwner: storeOwner, log: log}
}

// StoreSubject is the subject line of the store-owner email.
func StoreSubject(data OrderData) string {
	return fmt.Sprintf("New Order #%s - ₹%s", data.OrderID, Amount(data.Total))
}

// CustomerSubject is the subject line of the customer confirmation.
func CustomerSubject(data OrderData) string {
	return fmt.Sprintf("Order Confirmation #%s - PrintVogue", data.OrderID)
}

// SendOrderEmails sends the store notification, then the customer
// confirmation. Both sends are always attempted; each outcome is recorded in
// the result and the failures are joined into the returned error.
func (s *Service) SendOrderEmails(ctx context.Context, data *OrderData) (Result, error) {
	if data == nil {
		return Result{}, ErrMissingOrderData
	}
	log := s.log.WithField("order_id", data.OrderID)

	storeHTML, err := StoreEmailHTML(*data)
	if err != nil {
		return Result{}, fmt.Errorf("render store email: %w", err)
	}
	customerHTML, err := CustomerEmailHTML(*data)
	if err != nil {
		return Result{}, fmt.Errorf("render customer email: %w", err)
	}

	var res Result
	var errs []error
	res.StoreEmail, err = s.send(ctx, Email{
		From:    s.from,
		To:      []string{s.storeOwner},
		Subject: StoreSubject(*data),
		HTML:    storeHTML,
	})
	if err != nil {
		log.WithError(err).Warn("store notification failed")
		errs = append(errs, fmt.Errorf("store notification: %w", err))
	}
	res.CustomerEmail, err = s.send(ctx, Email{
		From:    s.from,
		To:      []string{data.CustomerEmail},
		Subject: CustomerSubject(*data),
		HTML:    customerHTML,
	})
	if err != nil {
		log.WithError(err).Warn("customer confirmation failed")
		errs = append(errs, fmt.Errorf("customer confirmation: %w", err))
	}

	if len(errs) > 0 {
		return res, errors.Join(errs...)
	}
	res.Success = true
	log.Info("order emails sent")
	return res, nil
}

func (s *Service) send(ctx context.Context, e Email) (SendResult, error) {
	r, err := s.sender.Send(ctx, e)
	if err != nil {
		return SendResult{Error: err.Error()}, err
	}
	return r, nil
}
