package search

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/wichananm65/printvogue-backend/internal/product"
	"github.com/wichananm65/printvogue-backend/internal/session"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPrice    = errors.New("invalid price")
)

type Handler struct {
	engine   *Engine
	stats    *Stats
	recorder *Recorder
	overlays *Overlays
}

func NewHandler(engine *Engine, stats *Stats, recorder *Recorder, overlays *Overlays) *Handler {
	return &Handler{engine: engine, stats: stats, recorder: recorder, overlays: overlays}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/search", h.search)
	app.Get("/api/v1/search/quick", h.quick)
	app.Post("/api/v1/search/quick/keys", h.pressKey)
	app.Get("/api/v1/products", h.browse)
}

// RegisterAdminRoutes expects r to be mounted at /api/v1/admin behind the
// admin guard.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Get("/search/queries", h.topQueries)
}

func (h *Handler) search(c *fiber.Ctx) error {
	q, err := parseQuery(c, SortRelevance)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	results := h.engine.Search(q)
	h.stats.Record(q.Text)

	resp := fiber.Map{"query": q.Text, "count": len(results), "results": results}
	if len(results) == 0 {
		if s, ok := Suggest(q.Text); ok {
			resp["suggestion"] = s
		}
	}
	return c.JSON(resp)
}

func (h *Handler) browse(c *fiber.Ctx) error {
	q, err := parseQuery(c, SortName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	results := h.engine.Browse(q)
	return c.JSON(fiber.Map{"count": len(results), "results": results})
}

func (h *Handler) quick(c *fiber.Ctx) error {
	text := utils.CopyString(c.Query("q"))
	res := h.engine.Quick(text)
	if sid, err := session.FromCtx(c); err == nil {
		h.overlays.Show(sid, res)
		h.recorder.Observe(sid, text)
	}
	return c.JSON(res)
}

type keyRequest struct {
	Key string `json:"key"`
}

func (h *Handler) pressKey(c *fiber.Ctx) error {
	sid, err := session.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "session required"})
	}
	payload := new(keyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	action, dest, cursor := h.overlays.Press(sid, Key(payload.Key))
	return c.JSON(fiber.Map{"action": action.String(), "url": dest, "cursor": cursor})
}

func (h *Handler) topQueries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	return c.JSON(h.stats.Top(limit))
}

func parseQuery(c *fiber.Ctx, fallback Sort) (Query, error) {
	q := Query{
		Text: utils.CopyString(c.Query("q")),
		Sort: ParseSort(c.Query("sort"), fallback),
	}
	if cat := c.Query("category"); cat != "" && cat != "all" && cat != "All" {
		parsed, ok := product.ParseCategory(cat)
		if !ok {
			return Query{}, ErrInvalidCategory
		}
		q.Category = parsed
	}
	var err error
	if q.MinPrice, err = parsePrice(c.Query("minPrice")); err != nil {
		return Query{}, err
	}
	if q.MaxPrice, err = parsePrice(c.Query("maxPrice")); err != nil {
		return Query{}, err
	}
	return q, nil
}

func parsePrice(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, ErrInvalidPrice
	}
	return &v, nil
}
