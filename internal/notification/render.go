package notification

import (
	"bytes"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount groups thousands the way the storefront displays rupees.
func Amount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

var funcs = template.FuncMap{
	"amount": Amount,
	"lineTotal": func(it Item) int {
		return it.Price * it.Quantity
	},
	"totalQty": func(items []Item) int {
		n := 0
		for _, it := range items {
			n += it.Quantity
		}
		return n
	},
}

const itemBlock = `{{define "items"}}{{range .Items}}
    <div style="padding: 15px 0; border-bottom: 1px solid #eee;">
      <h4 style="margin: 0 0 5px 0; color: #333;">{{.Name}}</h4>
      <p style="margin: 0; color: #666; font-size: 14px;">Size: {{.Size}} | Color: {{.Color}} | Qty: {{.Quantity}}</p>
      <p style="margin: 5px 0 0 0; font-weight: bold; color: #D4AF37;">₹{{amount (lineTotal .)}}</p>
    </div>{{end}}{{end}}`

var storeTemplate = template.Must(template.New("store").Funcs(funcs).Parse(itemBlock + `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #D4AF37; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">New Order Received!</h1>
    <h2 style="color: white; margin: 10px 0 0 0;">Order #{{.OrderID}}</h2>
  </div>
  <div style="padding: 20px; background-color: #f9f9f9;">
    <h3>Customer Information</h3>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
    <p><strong>Address:</strong> {{.ShippingAddress}}</p>
    <p><strong>Order Date:</strong> {{.OrderDate}}</p>
    <p><strong>Payment:</strong> {{.PaymentMethod}}</p>
  </div>
  <div style="padding: 20px;">
    <h3>Order Items ({{len .Items}} items, {{totalQty .Items}} total qty)</h3>
    {{template "items" .}}
  </div>
  <div style="padding: 20px; background-color: #f9f9f9;">
    <h3>Order Summary</h3>
    <div>Subtotal: ₹{{amount .Subtotal}}</div>
    <div>Shipping: {{if eq .Shipping 0}}Free{{else}}₹{{.Shipping}}{{end}}</div>
    <div>Tax: ₹{{amount .Tax}}</div>
    <div style="font-weight: bold; font-size: 18px; color: #D4AF37;">Total: ₹{{amount .Total}}</div>
  </div>
  <div style="padding: 20px; text-align: center; background-color: #333; color: white;">
    <p style="margin: 0;">PrintVogue - Premium Printed Fashion</p>
    <p style="margin: 5px 0 0 0; font-size: 14px;">Kalyan Nagar, Bangalore | +91 98765 43210</p>
  </div>
</div>
`))

var customerTemplate = template.Must(template.New("customer").Funcs(funcs).Parse(itemBlock + `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #D4AF37; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Order Confirmed!</h1>
    <h2 style="color: white; margin: 10px 0 0 0;">Thank you for your purchase</h2>
    <p style="color: white; margin: 10px 0 0 0;">Order #{{.OrderID}}</p>
  </div>
  <div style="padding: 20px;">
    <p>Dear {{.CustomerName}},</p>
    <p>Thank you for choosing PrintVogue! Your order has been confirmed and we're preparing it for shipment.</p>
    <h3>Order Summary</h3>
    {{template "items" .}}
    <div style="margin-top: 20px; padding: 15px; background-color: #f9f9f9; border-radius: 8px;">
      <h4 style="margin: 0 0 10px 0;">Shipping Information</h4>
      <p style="margin: 0; font-size: 14px;">{{.ShippingAddress}}</p>
      <p style="margin: 10px 0 0 0; font-size: 14px; color: #666;">Estimated delivery: 3-5 business days</p>
    </div>
    <div style="margin-top: 20px; text-align: center;">
      <p><strong>Order Total: ₹{{amount .Total}}</strong></p>
      <p>Payment Method: {{.PaymentMethod}}</p>
    </div>
    <div style="margin-top: 20px; text-align: center;">
      <p>We'll send you tracking information once your order ships.</p>
      <p>For any questions, contact us at hello@printvogue.com or +91 98765 43210</p>
    </div>
  </div>
  <div style="padding: 20px; text-align: center; background-color: #333; color: white;">
    <p style="margin: 0;">PrintVogue - Premium Printed Fashion</p>
    <p style="margin: 5px 0 0 0; font-size: 14px;">Kalyan Nagar, Bangalore | hello@printvogue.com</p>
  </div>
</div>
`))

func render(t *template.Template, data OrderData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// StoreEmailHTML renders the store-owner notification body.
func StoreEmailHTML(data OrderData) (string, error) {
	return render(storeTemplate, data)
}

// CustomerEmailHTML renders the customer confirmation body.
func CustomerEmailHTML(data OrderData) (string, error) {
	return render(customerTemplate, data)
}
