package order

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wichananm65/printvogue-backend/internal/notification"
)

// Notifier sends the two order emails.
type Notifier interface {
	SendOrderEmails(ctx context.Context, data *notification.OrderData) (notification.Result, error)
}

// Service runs the order-creation steps in order: generate id, insert the
// order row, insert item rows, send emails, log the email outcome. A failed
// step does not undo the earlier ones.
type Service struct {
	repo       Repository
	notifier   Notifier
	ids        *IDGenerator
	storeOwner string
	now        func() time.Time
	log        logrus.FieldLogger
}

func NewService(repo Repository, notifier Notifier, storeOwner string, log logrus.FieldLogger) *Service {
	return &Service{
		repo:       repo,
		notifier:   notifier,
		ids:        NewIDGenerator(),
		storeOwner: storeOwner,
		now:        time.Now,
		log:        log,
	}
}

// CreateOrder persists sub and reports whether the emails went out. Email
// failures are not errors: the order stands with EmailSent false.
func (s *Service) CreateOrder(ctx context.Context, sub Submission) (Result, error) {
	id := s.ids.Next()
	log := s.log.WithField("order_id", id)

	ord, err := s.repo.CreateOrder(newOrder(id, sub))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create order: %w", err)
	}
	if err := s.repo.CreateItems(ord.ID, itemRows(ord.ID, sub.Items)); err != nil {
		log.WithError(err).Error("order row written but items failed")
		return Result{}, fmt.Errorf("failed to create order items: %w", err)
	}

	emailSent := true
	if _, err := s.notifier.SendOrderEmails(ctx, emailData(id, sub, s.now())); err != nil {
		log.WithError(err).Warn("order emails failed")
		emailSent = false
	}

	status := EmailSent
	if !emailSent {
		status = EmailFailed
	}
	if err := s.repo.LogNotifications([]Notification{
		{OrderRef: ord.ID, EmailType: notification.TypeStoreNotification, RecipientEmail: s.storeOwner, Status: status},
		{OrderRef: ord.ID, EmailType: notification.TypeCustomerConfirmation, RecipientEmail: sub.CustomerEmail, Status: status},
	}); err != nil {
		log.WithError(err).Warn("notification log failed")
	}

	log.WithFields(logrus.Fields{"total": sub.Total, "email_sent": emailSent}).Info("order created")
	return Result{Success: true, OrderID: id, Order: &ord, EmailSent: emailSent}, nil
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) GetByOrderID(orderID string) (Order, error) {
	return s.repo.GetByOrderID(orderID)
}
