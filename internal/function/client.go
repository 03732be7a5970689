package function

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StatusError is returned when a function answers with a non-2xx status.
// Message carries the function's own error text when it sent one.
type StatusError struct {
	Function string
	Code     int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("function %s returned status %d", e.Function, e.Code)
}

// Client calls the order and email functions over HTTP.
type Client struct {
	baseURL string
	key     string
	timeout time.Duration
}

func NewClient(baseURL, key string, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), key: key, timeout: timeout}
}

// Invoke posts in as JSON to {base}/functions/v1/{name} and decodes the
// response into out (when non-nil). The call is bounded by the configured
// timeout or the context deadline, whichever is sooner.
func (c *Client) Invoke(ctx context.Context, name string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d < timeout || timeout <= 0 {
			timeout = d
		}
	}

	a := fiber.Post(c.baseURL + "/functions/v1/" + name)
	a.JSON(in)
	if c.key != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.key)
	}
	if timeout > 0 {
		a.Timeout(timeout)
	}
	if err := a.Parse(); err != nil {
		return fmt.Errorf("invoke %s: %w", name, err)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("invoke %s: %w", name, errors.Join(errs...))
	}
	if code < 200 || code >= 300 {
		return &StatusError{Function: name, Code: code, Message: errorMessage(body)}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", name, err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
