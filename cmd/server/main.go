package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flighttrack/logbook/internal/config"
	"flighttrack/logbook/internal/db"
	"flighttrack/logbook/internal/logging"
	"flighttrack/logbook/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Logbook starting up",
		"environment", cfg.AppEnv,
		"driver", cfg.DBDriver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// InitORM migrates the schema as part of opening the store
	if _, err := db.InitORM(cfg); err != nil {
		logging.Error("Failed to open record store", "error", err.Error())
		log.Fatalf("Failed to open record store: %v", err)
	}
	logging.Info("Record store ready", "driver", cfg.DBDriver)

	// sqlx handle only exists on the remote variant; it feeds the health
	// probe and the export reads
	if cfg.IsPostgres() {
		if err := db.InitPostgres(cfg); err != nil {
			logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
		}
		logging.Info("Connected to Postgres (sqlx)")
	}

	upSince := time.Now()

	router := routes.RegisterRoutes(cfg, upSince)

	// metrics endpoint lives outside the Chi router so it skips the
	// request middleware chain
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	addr := ":" + cfg.Port
	logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
