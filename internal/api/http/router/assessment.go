package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/internal/api/http/handler"
)

func (r *Router) registerAssessmentRoutes(
	api fiber.Router,
	h *handler.AssessmentHandler,
	identity fiber.Handler,
) {
	instruments := api.Group("/instruments")
	instruments.Get("/", h.Instruments)
	instruments.Get("/:instrument/questions", h.Questions)

	assessments := api.Group("/assessments", identity)
	assessments.Post("/", h.Start)
	assessments.Put("/:id/answers", h.Answer)
	assessments.Post("/:id/complete", h.Complete)
	assessments.Get("/:id/recommendations", h.Recommendations)

	history := api.Group("/history", identity)
	history.Get("/", h.History)
	history.Get("/latest", h.Latest)
	history.Get("/trend", h.Trend)
}
