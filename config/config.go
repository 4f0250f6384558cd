package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"3000"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
	StaticDir       string        `envconfig:"STATIC_DIR"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	// DatabaseURL takes precedence over the DB_* fields. Either a mysql:// URL
	// or a raw go-sql-driver DSN. MYSQL_URL is read as a fallback.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	MySQLURL    string `envconfig:"MYSQL_URL"`

	DB struct {
		Host        string `envconfig:"HOST" default:"127.0.0.1"`
		Port        string `envconfig:"PORT" default:"3306"`
		User        string `envconfig:"USER" default:"root"`
		Pass        string `envconfig:"PASS"`
		Name        string `envconfig:"NAME" default:"hotel_booking_system"`
		AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`
	} `envconfig:"DB"`

	Auth struct {
		Username  string        `envconfig:"USERNAME" default:"admin"`
		Password  string        `envconfig:"PASSWORD" default:"password"`
		JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
		Required  bool          `envconfig:"REQUIRED" default:"false"`
	} `envconfig:"AUTH"`

	Login struct {
		RatePerMinute int `envconfig:"RATE_PER_MINUTE" default:"10"`
		Burst         int `envconfig:"BURST" default:"5"`
	} `envconfig:"LOGIN"`

	Booking struct {
		// RestoreAvailabilityOnDelete flips the room back to available when a
		// booking is deleted. Off by default: deleting a booking leaves the
		// room flag untouched.
		RestoreAvailabilityOnDelete bool `envconfig:"RESTORE_AVAILABILITY_ON_DELETE" default:"false"`
	} `envconfig:"BOOKING"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal; the process environment is used as is.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.CORSOrigins = normalizeOrigins(cfg.CORSOrigins)
	return &cfg, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
