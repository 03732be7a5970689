package order

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("PV1", "Asha", "a@x.com", "98", "addr", "Cash on Delivery", 1000, 99, 180, 1279, StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	o, err := repo.CreateOrder(Order{
		OrderID: "PV1", CustomerName: "Asha", CustomerEmail: "a@x.com", CustomerPhone: "98",
		ShippingAddress: "addr", PaymentMethod: "Cash on Delivery",
		Subtotal: 1000, ShippingCost: 99, TaxAmount: 180, TotalAmount: 1279, Status: StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != 7 || !o.CreatedAt.Equal(created) {
		t.Fatalf("unexpected order %+v", o)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateItems_SingleStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(7), `{"Tee","Shorts"}`, "{1999,999}", "{2,1}", `{"M","30"}`, `{"#000000","#1e3a8a"}`, `{"",""}`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.CreateItems(7, []ItemRow{
		{ProductName: "Tee", ProductPrice: 1999, Quantity: 2, Size: "M", Color: "#000000"},
		{ProductName: "Shorts", ProductPrice: 999, Quantity: 1, Size: "30", Color: "#1e3a8a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// no rows means no statement
	if err := repo.CreateItems(7, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresLogNotifications(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO email_notifications").
		WithArgs("{7,7}", `{"store_notification","customer_confirmation"}`, `{"o@x.com","a@x.com"}`, `{"failed","failed"}`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.LogNotifications([]Notification{
		{OrderRef: 7, EmailType: "store_notification", RecipientEmail: "o@x.com", Status: EmailFailed},
		{OrderRef: 7, EmailType: "customer_confirmation", RecipientEmail: "a@x.com", Status: EmailFailed},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

var orderCols = []string{"id", "order_id", "customer_name", "customer_email", "customer_phone", "shipping_address",
	"payment_method", "subtotal", "shipping_cost", "tax_amount", "total_amount", "status", "created_at"}

var itemCols = []string{"id", "order_id", "product_name", "product_price", "quantity", "size", "color", "product_image"}

func TestPostgresList_AttachesItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(int64(2), "PV2", "B", "b@x", "1", "addr", "UPI Payment", 500, 99, 90, 689, "confirmed", now).
			AddRow(int64(1), "PV1", "A", "a@x", "1", "addr", "Cash on Delivery", 3000, 0, 540, 3540, "confirmed", now.Add(-time.Hour)))
	mock.ExpectQuery("FROM order_items").WithArgs("{2,1}").
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(int64(10), int64(1), "Tee", 1500, 2, "M", "#000", "").
			AddRow(int64(11), int64(2), "Shorts", 500, 1, "30", "#fff", ""))

	orders, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].OrderID != "PV2" {
		t.Fatalf("unexpected orders %+v", orders)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].ProductName != "Shorts" {
		t.Fatalf("unexpected items for PV2 %+v", orders[0].Items)
	}
	if len(orders[1].Items) != 1 || orders[1].Items[0].Quantity != 2 {
		t.Fatalf("unexpected items for PV1 %+v", orders[1].Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByOrderID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("WHERE order_id = ").WithArgs("PV1").
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(int64(1), "PV1", "A", "a@x", "1", "addr", "Cash on Delivery", 3000, 0, 540, 3540, "confirmed", now))
	mock.ExpectQuery("FROM order_items").WithArgs("{1}").
		WillReturnRows(sqlmock.NewRows(itemCols).AddRow(int64(10), int64(1), "Tee", 1500, 2, "M", "#000", ""))
	mock.ExpectQuery("FROM email_notifications").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "email_type", "recipient_email", "status", "created_at"}).
			AddRow(int64(20), int64(1), "store_notification", "o@x", "sent", now).
			AddRow(int64(21), int64(1), "customer_confirmation", "a@x", "sent", now))

	o, err := repo.GetByOrderID("PV1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o.Items) != 1 || len(o.Notifications) != 2 {
		t.Fatalf("unexpected order %+v", o)
	}

	mock.ExpectQuery("WHERE order_id = ").WithArgs("PV404").WillReturnRows(sqlmock.NewRows(orderCols))
	if _, err := repo.GetByOrderID("PV404"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
