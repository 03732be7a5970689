package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *OrderData {
	return &OrderData{
		OrderID:         "PVLX2ABCDE12",
		CustomerName:    "Asha <b>Rao</b>",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		ShippingAddress: "12 MG Road, Bangalore, Karnataka - 560001",
		Items: []Item{
			{Name: "Minimalist Logo Tee", Price: 1999, Quantity: 2, Size: "M", Color: "#000000"},
			{Name: "Beach Shorts", Price: 999, Quantity: 1, Size: "30", Color: "#1e3a8a"},
		},
		Subtotal:      4997,
		Shipping:      0,
		Tax:           899,
		Total:         5896,
		PaymentMethod: "Cash on Delivery",
		OrderDate:     FormatOrderDate(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
	}
}

type fakeSender struct {
	sent    []Email
	failOn  int
	callNum int
}

func (f *fakeSender) Send(_ context.Context, e Email) (SendResult, error) {
	f.callNum++
	if f.callNum == f.failOn {
		return SendResult{}, errors.New("provider down")
	}
	f.sent = append(f.sent, e)
	return SendResult{ID: "msg-" + string(rune('0'+f.callNum))}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1,279", Amount(1279))
	assert.Equal(t, "999", Amount(999))
	assert.Equal(t, "1,234,567", Amount(1234567))
}

func TestFormatOrderDate(t *testing.T) {
	got := FormatOrderDate(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "Monday, 2 March 2026 at 2:30 pm", got)
}

func TestSubjects(t *testing.T) {
	d := sampleOrder()
	assert.Equal(t, "New Order #PVLX2ABCDE12 - ₹5,896", StoreSubject(*d))
	assert.Equal(t, "Order Confirmation #PVLX2ABCDE12 - PrintVogue", CustomerSubject(*d))
}

func TestRender_EscapesAndTotals(t *testing.T) {
	html, err := StoreEmailHTML(*sampleOrder())
	require.NoError(t, err)
	assert.Contains(t, html, "Asha &lt;b&gt;Rao&lt;/b&gt;")
	assert.Contains(t, html, "Order Items (2 items, 3 total qty)")
	assert.Contains(t, html, "₹3,998")
	assert.Contains(t, html, "Shipping: Free")
	assert.Contains(t, html, "Total: ₹5,896")

	cust, err := CustomerEmailHTML(*sampleOrder())
	require.NoError(t, err)
	assert.Contains(t, cust, "Order Total: ₹5,896")
	assert.Contains(t, cust, "Estimated delivery: 3-5 business days")
}

func TestService_SendsBothEmails(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, "PrintVogue <orders@printvogue.com>", "owner@example.com", quietLogger())

	res, err := svc.SendOrderEmails(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, []string{"owner@example.com"}, sender.sent[0].To)
	assert.Equal(t, []string{"asha@example.com"}, sender.sent[1].To)
	assert.Equal(t, "PrintVogue <orders@printvogue.com>", sender.sent[1].From)
}

func TestService_Failures(t *testing.T) {
	svc := NewService(&fakeSender{failOn: 2}, "from", "owner", quietLogger())
	res, err := svc.SendOrderEmails(context.Background(), sampleOrder())
	assert.EqualError(t, err, "customer confirmation: provider down")
	assert.False(t, res.Success)
	assert.Equal(t, "msg-1", res.StoreEmail.ID)
	assert.Equal(t, "provider down", res.CustomerEmail.Error)

	_, err = svc.SendOrderEmails(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingOrderData)
}

func TestService_StoreFailureStillSendsCustomerEmail(t *testing.T) {
	sender := &fakeSender{failOn: 1}
	svc := NewService(sender, "from", "owner@example.com", quietLogger())

	res, err := svc.SendOrderEmails(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.EqualError(t, err, "store notification: provider down")
	assert.False(t, res.Success)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, sender.sent[0].To)
	assert.Equal(t, "provider down", res.StoreEmail.Error)
	assert.Empty(t, res.StoreEmail.ID)
	assert.Equal(t, "msg-2", res.CustomerEmail.ID)
}

type downSender struct{ calls int }

func (d *downSender) Send(context.Context, Email) (SendResult, error) {
	d.calls++
	return SendResult{}, errors.New("provider down")
}

func TestService_BothFailuresJoined(t *testing.T) {
	sender := &downSender{}
	res, err := NewService(sender, "from", "owner", quietLogger()).SendOrderEmails(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Equal(t, 2, sender.calls)
	assert.Contains(t, err.Error(), "store notification: provider down")
	assert.Contains(t, err.Error(), "customer confirmation: provider down")
	assert.Equal(t, "provider down", res.StoreEmail.Error)
	assert.Equal(t, "provider down", res.CustomerEmail.Error)
}

func TestResendClient(t *testing.T) {
	var got Email
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_123"}`))
	}))
	defer srv.Close()

	c := NewResendClient(srv.URL, "rk", time.Second)
	res, err := c.Send(context.Background(), Email{From: "a", To: []string{"b"}, Subject: "s", HTML: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(t, "re_123", res.ID)
	assert.Equal(t, "Bearer rk", auth)
	assert.Equal(t, "<p>x</p>", got.HTML)
}

func TestResendClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to"}`))
	}))
	defer srv.Close()

	_, err := NewResendClient(srv.URL, "rk", time.Second).Send(context.Background(), Email{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "422"))
}

type fakeInvoker struct {
	name string
	in   any
}

func (f *fakeInvoker) Invoke(_ context.Context, name string, in, out any) error {
	f.name, f.in = name, in
	return json.Unmarshal([]byte(`{"success":true}`), out)
}

func TestFunctionNotifier(t *testing.T) {
	inv := &fakeInvoker{}
	res, err := NewFunctionNotifier(inv).SendOrderEmails(context.Background(), sampleOrder())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "send-order-emails", inv.name)
	assert.Equal(t, "PVLX2ABCDE12", inv.in.(Request).OrderData.OrderID)
}
