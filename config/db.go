package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking/models"
)

// ConnectionInfo is the non-secret part of the DSN, reported by the
// database status endpoint.
type ConnectionInfo struct {
	Host     string `json:"host"`
	Database string `json:"database"`
	User     string `json:"user"`
}

func mysqlConfigFromURL(raw string) (*mysqldriver.Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return nil, fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	mc := baseMySQLConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Addr = net.JoinHostPort(u.Hostname(), port)
	mc.DBName = dbName
	for k, v := range u.Query() {
		// loc and parseTime are fixed above, not session variables.
		if k == "loc" || k == "parseTime" {
			continue
		}
		if len(v) > 0 {
			mc.Params[k] = v[0]
		}
	}
	return mc, nil
}

func baseMySQLConfig() *mysqldriver.Config {
	mc := mysqldriver.NewConfig()
	mc.Net = "tcp"
	mc.ParseTime = true
	// DATE columns hold calendar days; UTC keeps the driver from shifting them.
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc
}

// ResolveMySQLConfig picks DATABASE_URL, then MYSQL_URL, then the DB_* fields.
func ResolveMySQLConfig(cfg *Config) (*mysqldriver.Config, error) {
	raw := strings.TrimSpace(cfg.DatabaseURL)
	if raw == "" {
		raw = strings.TrimSpace(cfg.MySQLURL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlConfigFromURL(raw)
		}
		mc, err := mysqldriver.ParseDSN(raw)
		if err != nil {
			return nil, fmt.Errorf("parse database dsn: %w", err)
		}
		mc.ParseTime = true
		mc.Loc = time.UTC
		return mc, nil
	}

	mc := baseMySQLConfig()
	mc.User = cfg.DB.User
	mc.Passwd = cfg.DB.Pass
	mc.Addr = net.JoinHostPort(cfg.DB.Host, cfg.DB.Port)
	mc.DBName = cfg.DB.Name
	return mc, nil
}

// Info strips the password from a driver config.
func Info(mc *mysqldriver.Config) ConnectionInfo {
	host := mc.Addr
	if h, _, err := net.SplitHostPort(mc.Addr); err == nil {
		host = h
	}
	return ConnectionInfo{Host: host, Database: mc.DBName, User: mc.User}
}

// NewGormLogger routes gorm's SQL log through zerolog.
func NewGormLogger(log *zerolog.Logger) logger.Interface {
	level := logger.Warn
	if log.GetLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}
	return logger.New(log, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ConnectDatabase opens the MySQL connection and, unless disabled, migrates
// the schema.
func ConnectDatabase(cfg *Config, log *zerolog.Logger) (*gorm.DB, ConnectionInfo, error) {
	mc, err := ResolveMySQLConfig(cfg)
	if err != nil {
		return nil, ConnectionInfo{}, err
	}
	info := Info(mc)

	db, err := gorm.Open(mysql.Open(mc.FormatDSN()), &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, info, err
	}

	if cfg.DB.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, info, err
		}
		log.Info().Str("database", info.Database).Msg("schema migrated")
	}
	return db, info, nil
}

// Migrate creates or updates the rooms, customers, bookings and services
// tables in parent->child order.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
