package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every environment-derived setting. The storage driver
// selects the deployment variant: "postgres" for the remote row store,
// "sqlite" for the single-user local file store.
type Config struct {
	AppEnv string
	Port   string

	DBDriver   string
	SQLitePath string
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	AuthDisabled bool
	JWTSecret    string

	UseRedis      bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "logbook.db"),
		PGHost:        os.Getenv("PG_HOST"),
		PGPort:        getEnv("PG_PORT", "5432"),
		PGUser:        os.Getenv("PG_USER"),
		PGPassword:    os.Getenv("PG_PASSWORD"),
		PGDatabase:    os.Getenv("PG_DB"),
		AuthDisabled:  getEnv("AUTH_DISABLED", "false") == "true",
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UseRedis:      getEnv("USE_REDIS", "false") == "true",
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	return cfg
}

// PostgresDSN builds the connection string for the remote variant.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func (c *Config) IsPostgres() bool {
	return c.DBDriver == "postgres"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
