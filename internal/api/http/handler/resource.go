package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/internal/service/resource"
)

type ResourceHandler struct {
	svc resource.Service
}

func NewResourceHandler(svc resource.Service) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// GET /resources
func (h *ResourceHandler) List(c fiber.Ctx) error {
	var q struct {
		Category string `query:"category"`
		Query    string `query:"q"`
	}
	_ = c.Bind().Query(&q)

	resources, err := h.svc.List(c.Context(), q.Category, q.Query)
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{
		"resources":  resources,
		"categories": h.svc.Categories(),
	})
}

// GET /resources/crisis
func (h *ResourceHandler) Crisis(c fiber.Ctx) error {
	resources, err := h.svc.Crisis(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, resources)
}
