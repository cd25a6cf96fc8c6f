package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/internal/api/http/handler"
)

func (r *Router) registerResourceRoutes(
	api fiber.Router,
	h *handler.ResourceHandler,
) {
	resources := api.Group("/resources")
	resources.Get("/", h.List)
	resources.Get("/crisis", h.Crisis)
}
