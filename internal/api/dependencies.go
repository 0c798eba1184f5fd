package api

import (
	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/config"
	"flighttrack/logbook/internal/db"
	"flighttrack/logbook/internal/db/repositories"
	"flighttrack/logbook/internal/logging"
	"flighttrack/logbook/internal/metrics"
	"flighttrack/logbook/internal/services"
)

type Repositories struct {
	Flights   *repositories.FlightRepository
	Aircraft  *repositories.AircraftRepository
	Reminders *repositories.ReminderRepository
	Export    *repositories.ExportRepository
}

type Services struct {
	Cache     common.CacheInterface
	Logbook   *services.LogbookService
	Import    *services.ImportService
	Stats     *services.StatsService
	Reminders *services.ReminderService
	Export    *services.ExportService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services against the global
// database handles. db.DB is nil on sqlite deployments, so the export
// repository is only wired for postgres; the export service falls back
// to the ORM repository otherwise.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Flights:   repositories.NewFlightRepository(db.ORM),
		Aircraft:  repositories.NewAircraftRepository(db.ORM),
		Reminders: repositories.NewReminderRepository(db.ORM),
	}
	if db.DB != nil {
		repos.Export = repositories.NewExportRepository(db.DB)
	}

	var cacheSvc common.CacheInterface
	if cfg.UseRedis {
		redisCache, err := common.NewRedisCacheService(cfg)
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(300, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(300, 600)
	}

	svcs := &Services{
		Cache:     cacheSvc,
		Logbook:   services.NewLogbookService(repos.Flights, repos.Aircraft, cacheSvc, metricsReg),
		Import:    services.NewImportService(repos.Flights, repos.Aircraft, cacheSvc, metricsReg),
		Stats:     services.NewStatsService(repos.Flights, cacheSvc, metricsReg),
		Reminders: services.NewReminderService(repos.Reminders, repos.Aircraft, cacheSvc),
		Export:    services.NewExportService(repos.Flights, repos.Aircraft, repos.Reminders, repos.Export),
	}

	return &Dependencies{Repo: repos, Services: svcs}, nil
}
