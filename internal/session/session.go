package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	HeaderName = "X-Session-ID"
	CookieName = "pv_session"
	localsKey  = "session_id"
)

var ErrNoSession = errors.New("no session")

// Middleware attaches a shopper session id to every request. The id is read
// from the X-Session-ID header or the pv_session cookie; anything that is not
// a UUID is replaced with a fresh one, which is echoed back to the client.
// The id outlives the request as a map key, so it is copied out of the
// request buffer.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = c.Cookies(CookieName)
		}
		id = utils.CopyString(id)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}
		c.Set(HeaderName, id)
		c.Locals(localsKey, id)
		return c.Next()
	}
}

// FromCtx returns the session id stored by Middleware.
func FromCtx(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(localsKey).(string)
	if !ok || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}
