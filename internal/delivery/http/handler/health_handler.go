package handler

import (
	"context"

	"talent-scout/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(c fiber.Ctx) error {
	out := fiber.Map{"status": "ok"}
	if h.db != nil {
		out["database"] = pingStatus(c.Context(), h.db)
	}
	if h.cache != nil {
		out["cache"] = pingStatus(c.Context(), h.cache)
	}
	return response.Success(c, fiber.StatusOK, out)
}

func pingStatus(ctx context.Context, p pinger) string {
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "up"
}
