package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration loaded from config.toml.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Business BusinessConfig `toml:"business"`
	Razorpay RazorpayConfig `toml:"razorpay"`
	Sheets   SheetsConfig   `toml:"sheets"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig configures the PostgreSQL connection.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig configures the file logger.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures prometheus exposure.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig configures JWT verification.
type AuthConfig struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenTTLHrs int    `toml:"token_ttl_hours"`
}

// BusinessConfig configures the facility calendar rules.
type BusinessConfig struct {
	// UTCOffsetMinutes is the fixed business timezone offset (IST = 330).
	UTCOffsetMinutes int `toml:"utc_offset_minutes"`

	OpenHour      int `toml:"open_hour"`
	LastStartHour int `toml:"last_start_hour"`

	BasePrice     int `toml:"base_price"`
	PeakPrice     int `toml:"peak_price"`
	PeakStartHour int `toml:"peak_start_hour"`

	LockTTLMinutes         int `toml:"lock_ttl_minutes"`
	ReclaimIntervalMinutes int `toml:"reclaim_interval_minutes"`
}

// RazorpayConfig configures the payment gateway client.
type RazorpayConfig struct {
	BaseURL   string `toml:"base_url"`
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	Timeout   int    `toml:"timeout"` // seconds
}

// SheetsConfig configures the booking export sink.
type SheetsConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load reads and parses the TOML configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "turf-booking-service"
	}
	if cfg.Auth.TokenTTLHrs == 0 {
		cfg.Auth.TokenTTLHrs = 24 * 30
	}
	if cfg.Business.UTCOffsetMinutes == 0 {
		cfg.Business.UTCOffsetMinutes = 330
	}
	if cfg.Business.OpenHour == 0 {
		cfg.Business.OpenHour = 5
	}
	if cfg.Business.LastStartHour == 0 {
		cfg.Business.LastStartHour = 23
	}
	if cfg.Business.BasePrice == 0 {
		cfg.Business.BasePrice = 300
	}
	if cfg.Business.PeakPrice == 0 {
		cfg.Business.PeakPrice = 400
	}
	if cfg.Business.PeakStartHour == 0 {
		cfg.Business.PeakStartHour = 17
	}
	if cfg.Business.LockTTLMinutes == 0 {
		cfg.Business.LockTTLMinutes = 10
	}
	if cfg.Business.ReclaimIntervalMinutes == 0 {
		cfg.Business.ReclaimIntervalMinutes = 1
	}
	if cfg.Razorpay.BaseURL == "" {
		cfg.Razorpay.BaseURL = "https://api.razorpay.com/v1"
	}
	if cfg.Razorpay.Timeout == 0 {
		cfg.Razorpay.Timeout = 10
	}
	if cfg.Sheets.Timeout == 0 {
		cfg.Sheets.Timeout = 15
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if cfg.Business.OpenHour < 0 || cfg.Business.OpenHour > 23 {
		return fmt.Errorf("config: business.open_hour out of range")
	}
	if cfg.Business.LastStartHour < cfg.Business.OpenHour || cfg.Business.LastStartHour > 23 {
		return fmt.Errorf("config: business.last_start_hour out of range")
	}
	return nil
}
