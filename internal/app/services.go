package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nidohealth/nido_backend/config"
	"github.com/nidohealth/nido_backend/internal/repo"
	"github.com/nidohealth/nido_backend/internal/screening"
	"github.com/nidohealth/nido_backend/internal/service/assessment"
	"github.com/nidohealth/nido_backend/internal/service/journal"
	"github.com/nidohealth/nido_backend/internal/service/resource"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAssessmentService,
		ProvideJournalService,
		ProvideResourceService,
	),
)

func ProvideAssessmentService(db *repo.Client, cfg *config.Config) assessment.Service {
	crisis := screening.CrisisConfig{
		Hotlines:         cfg.Crisis.Hotlines,
		DisclosurePrompt: cfg.Crisis.DisclosurePrompt,
	}
	if len(crisis.Hotlines) == 0 {
		crisis = screening.DefaultCrisisConfig()
	}
	return assessment.New(db, crisis)
}

func ProvideJournalService(db *repo.Client) journal.Service {
	return journal.New(db)
}

func ProvideResourceService(rdb *redis.Client) resource.Service {
	return resource.New(rdb)
}
