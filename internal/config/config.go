package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type ReportAPIConfig struct {
	Addr         string        `envconfig:"REPORT_API_ADDR"          default:":8081"`
	ReadTimeout  time.Duration `envconfig:"REPORT_API_READ_TIMEOUT"  default:"10s"`
	WriteTimeout time.Duration `envconfig:"REPORT_API_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"REPORT_API_IDLE_TIMEOUT"  default:"60s"`
}

// ReportConfig holds report presentation and query settings.
type ReportConfig struct {
	CurrencySymbol string        `envconfig:"REPORT_CURRENCY_SYMBOL" default:"€"`
	Timezone       string        `envconfig:"REPORT_TIMEZONE"        default:"Europe/Paris"`
	QueryTimeout   time.Duration `envconfig:"REPORT_QUERY_TIMEOUT"   default:"30s"`
}

// AuthConfig protects the admin pages with HTTP basic auth.
type AuthConfig struct {
	AdminUser         string `envconfig:"REPORT_ADMIN_USER"          default:"admin"`
	AdminPasswordHash string `envconfig:"REPORT_ADMIN_PASSWORD_HASH"`
}

// Config holds the overall application configuration.
type Config struct {
	DatabaseURL    string `envconfig:"DATABASE_URL"    required:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL"                       default:"info"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED"                 default:"true"`
	ReportAPI      ReportAPIConfig
	Report         ReportConfig
	Auth           AuthConfig
}

// Location resolves the report timezone used to pick the current month.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	log.Println("Loading configuration from environment variables...")

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, skipping: %v", err)
	} else {
		log.Println(".env loaded")
	}

	err := envconfig.Process("", &cfg) // Use "" prefix for env vars
	if err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	log.Printf("Configuration loaded successfully (Report API Addr: %s)", cfg.ReportAPI.Addr)
	return &cfg, nil
}
