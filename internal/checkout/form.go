package checkout

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultState = "Karnataka"

// Payment methods accepted on the form.
const (
	PaymentCOD = "cod"
	PaymentUPI = "upi"
)

var ErrInvalidPaymentMethod = errors.New("payment method must be cod or upi")

// Form is the shipping and contact data posted at checkout.
type Form struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"paymentMethod"`
}

// ValidationError lists the required form fields that were left blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (f Form) Validate() error {
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if _, err := PaymentLabel(f.PaymentMethod); err != nil {
		return err
	}
	return nil
}

// ShippingAddress renders "<address>, <city>, <state> - <pincode>".
func (f Form) ShippingAddress() string {
	state := f.State
	if state == "" {
		state = DefaultState
	}
	return fmt.Sprintf("%s, %s, %s - %s", f.Address, f.City, state, f.Pincode)
}

// PaymentLabel maps a form payment method to the label stored on the order.
// Blank means cash on delivery.
func PaymentLabel(method string) (string, error) {
	switch strings.ToLower(method) {
	case "", PaymentCOD:
		return "Cash on Delivery", nil
	case PaymentUPI:
		return "UPI Payment", nil
	}
	return "", ErrInvalidPaymentMethod
}
