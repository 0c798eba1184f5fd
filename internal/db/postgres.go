package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"flighttrack/logbook/internal/config"
)

// DB is the raw sqlx handle, used by the health ping and the streaming
// export reads. Nil in sqlite deployments.
var DB *sqlx.DB

func InitPostgres(cfg *config.Config) error {
	dsn := cfg.PostgresDSN()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
