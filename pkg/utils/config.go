package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Service names accepted by Config.Validate.
const (
	ServicePublic = "public"
	ServiceAdmin  = "admin"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type HTTPConfig struct {
	AdminPort       string
	AllowedOrigins  []string
	MaxInFlight     int
	Backlog         int
	BacklogTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxConns     int32
	QueryTimeout time.Duration
}

type AdminConfig struct {
	Key            string
	ProtectCatalog bool
}

// LoadConfig reads the optional env file at path, then the process environment.
// Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-hub")
	v.SetDefault("PORT", "5000")
	v.SetDefault("ADMIN_PORT", "5001")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "movie_hub")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("PROTECT_CATALOG_ADMIN", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("HTTP_MAX_INFLIGHT", 100)
	v.SetDefault("HTTP_BACKLOG", 200)
	v.SetDefault("HTTP_BACKLOG_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("HTTP_MAX_BODY_BYTES", 1<<20)

	if path != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		HTTP: HTTPConfig{
			AdminPort:       v.GetString("ADMIN_PORT"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			MaxInFlight:     v.GetInt("HTTP_MAX_INFLIGHT"),
			Backlog:         v.GetInt("HTTP_BACKLOG"),
			BacklogTimeout:  v.GetDuration("HTTP_BACKLOG_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			MaxBodyBytes:    v.GetInt64("HTTP_MAX_BODY_BYTES"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Name:         v.GetString("DB_NAME"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASS"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxConns:     v.GetInt32("DB_MAX_CONNS"),
			QueryTimeout: v.GetDuration("DB_QUERY_TIMEOUT"),
		},
		Admin: AdminConfig{
			Key:            v.GetString("ADMIN_KEY"),
			ProtectCatalog: v.GetBool("PROTECT_CATALOG_ADMIN"),
		},
	}

	return config, nil
}

// Validate checks the settings the given service cannot run without.
func (c *Config) Validate(service string) error {
	switch service {
	case ServiceAdmin:
		if c.Admin.Key == "" {
			return errors.New("ADMIN_KEY is required for the admin service")
		}
		if c.HTTP.AdminPort == "" {
			return errors.New("ADMIN_PORT is required")
		}
	case ServicePublic:
		if c.Admin.ProtectCatalog && c.Admin.Key == "" {
			return errors.New("ADMIN_KEY is required when PROTECT_CATALOG_ADMIN is enabled")
		}
		if c.App.Port == "" {
			return errors.New("PORT is required")
		}
	default:
		return fmt.Errorf("unknown service %q", service)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive, got %s", c.Database.QueryTimeout)
	}
	if c.HTTP.MaxInFlight < 1 {
		return fmt.Errorf("HTTP_MAX_INFLIGHT must be positive, got %d", c.HTTP.MaxInFlight)
	}
	if c.HTTP.MaxBodyBytes < 1 {
		return fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive, got %d", c.HTTP.MaxBodyBytes)
	}
	if c.HTTP.Backlog < 0 {
		return fmt.Errorf("HTTP_BACKLOG must not be negative, got %d", c.HTTP.Backlog)
	}

	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
