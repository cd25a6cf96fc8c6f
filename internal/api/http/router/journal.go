package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/internal/api/http/handler"
)

func (r *Router) registerJournalRoutes(
	api fiber.Router,
	h *handler.JournalHandler,
	identity fiber.Handler,
) {
	entries := api.Group("/journal", identity)
	entries.Post("/", h.Create)
	entries.Get("/", h.List)
	entries.Get("/summary", h.Summary)
}
