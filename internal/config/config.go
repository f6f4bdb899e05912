package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	SecretKey     string `env:"SECRET_KEY" envDefault:"change_me_in_production"`
	TimeZone      string `env:"TZ" envDefault:"UTC"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
	StoreBackend  string `env:"STORE_BACKEND" envDefault:"file"`
	DataFile      string `env:"DATA_FILE" envDefault:"data/constancia.json"`
	DBPath        string `env:"DB_PATH" envDefault:"data/constancia.db"`
	AdminUser     string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	WeeklyContactGoal int `env:"WEEKLY_CONTACT_GOAL" envDefault:"30"`
	WeeklyDemoGoal    int `env:"WEEKLY_DEMO_GOAL" envDefault:"5"`
	WeeklyPlanGoal    int `env:"WEEKLY_PLAN_GOAL" envDefault:"3"`
}

// Load reads configuration from environment variables. A local .env file is
// optional.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.StoreBackend {
	case StoreBackendFile, StoreBackendSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}
