package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Sender delivers one email.
type Sender interface {
	Send(ctx context.Context, e Email) (SendResult, error)
}

// SendResult is the provider's acknowledgement, or the reason the send
// failed.
type SendResult struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// ResendClient sends email through the Resend HTTP API.
type ResendClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewResendClient(baseURL, apiKey string, timeout time.Duration) *ResendClient {
	return &ResendClient{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, timeout: timeout}
}

func (r *ResendClient) Send(ctx context.Context, e Email) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}
	timeout := r.timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d < timeout || timeout <= 0 {
			timeout = d
		}
	}

	a := fiber.Post(r.baseURL + "/emails")
	a.Set(fiber.HeaderAuthorization, "Bearer "+r.apiKey)
	a.JSON(e)
	if timeout > 0 {
		a.Timeout(timeout)
	}
	if err := a.Parse(); err != nil {
		return SendResult{}, fmt.Errorf("send email: %w", err)
	}

	var res SendResult
	code, body, errs := a.Struct(&res)
	if len(errs) > 0 && code == 0 {
		return SendResult{}, fmt.Errorf("send email: %w", errors.Join(errs...))
	}
	if code < 200 || code >= 300 {
		return SendResult{}, fmt.Errorf("send email: status %d: %s", code, strings.TrimSpace(string(body)))
	}
	return res, nil
}
