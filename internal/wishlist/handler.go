package wishlist

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/printvogue-backend/internal/cart"
	"github.com/wichananm65/printvogue-backend/internal/session"
)

// Handler delegates wishlist operations to the wishlist service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterSessionRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist", h.addProduct)
	app.Delete("/api/v1/wishlist", h.clear)
	app.Post("/api/v1/wishlist/toggle", h.toggle)
	app.Get("/api/v1/wishlist/:productId", h.contains)
	app.Delete("/api/v1/wishlist/:productId", h.removeProduct)
	app.Post("/api/v1/wishlist/:productId/cart", h.moveToCart)
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) parse(c *fiber.Ctx) (string, string, error) {
	sid, err := session.FromCtx(c)
	if err != nil {
		return "", "", err
	}
	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return "", "", err
	}
	if payload.ProductID == "" {
		return "", "", errors.New("invalid productId")
	}
	return sid, payload.ProductID, nil
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "session required"})
	}
	st, err := h.service.GetWishlist(sid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) addProduct(c *fiber.Ctx) error {
	sid, pid, err := h.parse(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	st, err := h.service.Add(sid, pid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	sid, pid, err := h.parse(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	st, saved, err := h.service.Toggle(sid, pid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"productId": pid, "saved": saved, "items": st.Items})
}

func (h *Handler) contains(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "session required"})
	}
	pid := c.Params("productId")
	saved, err := h.service.Contains(sid, pid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"productId": pid, "saved": saved})
}

func (h *Handler) removeProduct(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "session required"})
	}
	st, err := h.service.Remove(sid, c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) clear(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "session required"})
	}
	if err := h.service.Clear(sid); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) moveToCart(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "session required"})
	}
	cs, ws, err := h.service.MoveToCart(sid, c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"cart": cs, "wishlist": ws})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, cart.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	case errors.Is(err, ErrNotSaved):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
