package notification

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterFunctionRoutes expects r to be mounted at /functions/v1.
func (h *Handler) RegisterFunctionRoutes(r fiber.Router) {
	r.Post("/send-order-emails", h.sendOrderEmails)
}

func (h *Handler) sendOrderEmails(c *fiber.Ctx) error {
	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.service.SendOrderEmails(c.UserContext(), payload.OrderData)
	if err != nil {
		if errors.Is(err, ErrMissingOrderData) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order data is required"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":         err.Error(),
			"success":       false,
			"storeEmail":    res.StoreEmail,
			"customerEmail": res.CustomerEmail,
		})
	}
	return c.JSON(res)
}
