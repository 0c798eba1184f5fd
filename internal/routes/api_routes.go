package routes

import (
	"github.com/go-chi/chi/v5"

	"flighttrack/logbook/internal/api"
	"flighttrack/logbook/internal/config"
	"flighttrack/logbook/internal/middleware"
)

// RegisterAPIRoutes mounts the authenticated v1 surface. Every route
// below resolves an owner through the auth middleware, so handlers never
// see a request without claims.
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, handlers *api.Handlers) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(cfg))

		v1.Route("/flights", func(flights chi.Router) {
			flights.Get("/", handlers.ListFlights())
			flights.Post("/", handlers.SaveFlight())
			flights.Delete("/", handlers.ClearFlights())
			flights.Post("/demo", handlers.SeedDemoFlights())
			flights.Post("/import", handlers.ImportFlights())
			flights.Put("/{id}", handlers.UpdateFlight())
			flights.Delete("/{id}", handlers.DeleteFlight())
		})

		v1.Get("/stats/summary", handlers.FlightSummary())

		v1.Route("/aircrafts", func(aircrafts chi.Router) {
			aircrafts.Get("/", handlers.ListAircraft())
			aircrafts.Post("/", handlers.AddAircraft())
			aircrafts.Delete("/{name}", handlers.DeleteAircraft())
		})

		v1.Route("/reminders", func(reminders chi.Router) {
			reminders.Get("/", handlers.ListReminders())
			reminders.Post("/", handlers.SaveReminder())
			reminders.Get("/upcoming", handlers.UpcomingReminders())
			reminders.Post("/ack", handlers.AcknowledgeReminders())
			reminders.Delete("/{id}", handlers.DeleteReminder())
		})

		v1.Route("/export", func(export chi.Router) {
			export.Get("/flights.json", handlers.ExportFlightsJSON())
			export.Get("/flights.csv", handlers.ExportFlightsCSV())
			export.Get("/flights.xlsx", handlers.ExportFlightsXLSX())
			export.Get("/snapshot", handlers.ExportSnapshot())
		})
	})
}
