package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the create-order function and the admin order views.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterFunctionRoutes expects r to be mounted at /functions/v1.
func (h *Handler) RegisterFunctionRoutes(r fiber.Router) {
	r.Post("/create-order", h.createOrder)
}

// RegisterAdminRoutes expects r to be mounted at /api/v1/admin behind the
// admin guard.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/orders", h.listOrders)
	r.Get("/orders/:orderId", h.getOrder)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(Submission)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.service.CreateOrder(c.UserContext(), *payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	o, err := h.service.GetByOrderID(c.Params("orderId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(o)
}
