package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/nidohealth/nido_backend/config"
	"github.com/nidohealth/nido_backend/internal/api/http/handler"
	"github.com/nidohealth/nido_backend/internal/api/http/middleware"
	"github.com/nidohealth/nido_backend/internal/service/assessment"
	"github.com/nidohealth/nido_backend/internal/service/journal"
	"github.com/nidohealth/nido_backend/internal/service/resource"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	AssessmentSvc assessment.Service
	JournalSvc    journal.Service
	ResourceSvc   resource.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	identity := middleware.Identity()

	assessmentH := handler.NewAssessmentHandler(r.p.AssessmentSvc)
	journalH := handler.NewJournalHandler(r.p.JournalSvc)
	resourceH := handler.NewResourceHandler(r.p.ResourceSvc)

	api := app.Group("/api/v1")

	r.registerAssessmentRoutes(api, assessmentH, identity)
	r.registerJournalRoutes(api, journalH, identity)
	r.registerResourceRoutes(api, resourceH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
