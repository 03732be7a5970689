package notification

import (
	"errors"
	"time"
)

var ErrMissingOrderData = errors.New("order data is required")

type Item struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Image    string `json:"image"`
}

// OrderData is everything the two order emails need.
type OrderData struct {
	OrderID         string `json:"orderId"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress"`
	Items           []Item `json:"items"`
	Subtotal        int    `json:"subtotal"`
	Shipping        int    `json:"shipping"`
	Tax             int    `json:"tax"`
	Total           int    `json:"total"`
	PaymentMethod   string `json:"paymentMethod"`
	OrderDate       string `json:"orderDate"`
}

// Request is the email function's input envelope.
type Request struct {
	OrderData *OrderData `json:"orderData"`
}

// Email is one outbound transactional message.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Email type labels used in notification logs.
const (
	TypeStoreNotification    = "store_notification"
	TypeCustomerConfirmation = "customer_confirmation"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

// FormatOrderDate renders t in India Standard Time, e.g.
// "Monday, 2 January 2006 at 3:04 pm".
func FormatOrderDate(t time.Time) string {
	return t.In(ist).Format("Monday, 2 January 2006 at 3:04 pm")
}
