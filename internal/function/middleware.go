package function

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// RequireServiceKey guards function routes with a bearer service key.
// An empty key disables the check.
func RequireServiceKey(key string) fiber.Handler {
	want := []byte("Bearer " + key)
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		got := []byte(c.Get(fiber.HeaderAuthorization))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
