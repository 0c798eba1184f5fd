package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"flighttrack/logbook/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck. db is the sqlx handle
// for postgres deployments and nil on sqlite, where the embedded store
// has no connection to probe.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		if db != nil {
			pgStatus := "ok"
			pgDetails := "Postgres connected"
			if err := db.Ping(); err != nil {
				pgStatus = "down"
				pgDetails = err.Error()
			}
			services["postgres"] = entities.ServiceStatus{
				Status:  pgStatus,
				Details: pgDetails,
			}
		} else {
			services["sqlite"] = entities.ServiceStatus{
				Status:  "ok",
				Details: "Embedded store",
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
