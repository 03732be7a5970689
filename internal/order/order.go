package order

import (
	"time"

	"github.com/wichananm65/printvogue-backend/internal/notification"
)

const StatusConfirmed = "confirmed"

// Notification log statuses.
const (
	EmailSent   = "sent"
	EmailFailed = "failed"
)

// Item is one line of an order submission.
type Item struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Image    string `json:"image"`
}

// Submission is the create-order request. Totals are computed by the caller
// and stored as given.
type Submission struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	Items           []Item `json:"items"`
	Subtotal        int    `json:"subtotal"`
	Shipping        int    `json:"shipping"`
	Tax             int    `json:"tax"`
	Total           int    `json:"total"`
}

// Result is the create-order response.
type Result struct {
	Success   bool   `json:"success"`
	OrderID   string `json:"orderId,omitempty"`
	Order     *Order `json:"order,omitempty"`
	EmailSent bool   `json:"emailSent"`
	Error     string `json:"error,omitempty"`
}

// Order is a stored order row. ID is the surrogate key; OrderID is the
// customer-facing identifier.
type Order struct {
	ID              int64          `json:"id"`
	OrderID         string         `json:"orderId"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	ShippingAddress string         `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	Subtotal        int            `json:"subtotal"`
	ShippingCost    int            `json:"shippingCost"`
	TaxAmount       int            `json:"taxAmount"`
	TotalAmount     int            `json:"totalAmount"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	Items           []ItemRow      `json:"items,omitempty"`
	Notifications   []Notification `json:"notifications,omitempty"`
}

type ItemRow struct {
	ID           int64  `json:"id"`
	OrderRef     int64  `json:"orderRef"`
	ProductName  string `json:"productName"`
	ProductPrice int    `json:"productPrice"`
	Quantity     int    `json:"quantity"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	ProductImage string `json:"productImage"`
}

type Notification struct {
	ID             int64     `json:"id"`
	OrderRef       int64     `json:"orderRef"`
	EmailType      string    `json:"emailType"`
	RecipientEmail string    `json:"recipientEmail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newOrder(id string, s Submission) Order {
	return Order{
		OrderID:         id,
		CustomerName:    s.CustomerName,
		CustomerEmail:   s.CustomerEmail,
		CustomerPhone:   s.CustomerPhone,
		ShippingAddress: s.ShippingAddress,
		PaymentMethod:   s.PaymentMethod,
		Subtotal:        s.Subtotal,
		ShippingCost:    s.Shipping,
		TaxAmount:       s.Tax,
		TotalAmount:     s.Total,
		Status:          StatusConfirmed,
	}
}

func itemRows(orderRef int64, items []Item) []ItemRow {
	rows := make([]ItemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, ItemRow{
			OrderRef:     orderRef,
			ProductName:  it.Name,
			ProductPrice: it.Price,
			Quantity:     it.Quantity,
			Size:         it.Size,
			Color:        it.Color,
			ProductImage: it.Image,
		})
	}
	return rows
}

func emailData(id string, s Submission, at time.Time) *notification.OrderData {
	items := make([]notification.Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, notification.Item(it))
	}
	return &notification.OrderData{
		OrderID:         id,
		CustomerName:    s.CustomerName,
		CustomerEmail:   s.CustomerEmail,
		CustomerPhone:   s.CustomerPhone,
		ShippingAddress: s.ShippingAddress,
		Items:           items,
		Subtotal:        s.Subtotal,
		Shipping:        s.Shipping,
		Tax:             s.Tax,
		Total:           s.Total,
		PaymentMethod:   s.PaymentMethod,
		OrderDate:       notification.FormatOrderDate(at),
	}
}
