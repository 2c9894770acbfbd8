package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", config.App.Port)
	assert.Equal(t, "5001", config.HTTP.AdminPort)
	assert.Equal(t, []string{"*"}, config.HTTP.AllowedOrigins)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, 5*time.Second, config.Database.QueryTimeout)
	assert.Equal(t, 15*time.Second, config.HTTP.ShutdownTimeout)
	assert.False(t, config.Admin.ProtectCatalog)
	assert.Equal(t, int64(1<<20), config.HTTP.MaxBodyBytes)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_NAME=films\nADMIN_KEY=from-file\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ADMIN_KEY", "from-env")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("PROTECT_CATALOG_ADMIN", "true")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "films", config.Database.Name)
	assert.Equal(t, "from-env", config.Admin.Key)
	assert.Equal(t, 2*time.Second, config.Database.QueryTimeout)
	assert.True(t, config.Admin.ProtectCatalog)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, config.HTTP.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Port: "5000"},
			HTTP:     HTTPConfig{AdminPort: "5001", MaxInFlight: 1, MaxBodyBytes: 1 << 20},
			Database: DatabaseConfig{MaxConns: 1, QueryTimeout: time.Second},
			Admin:    AdminConfig{Key: "k"},
		}
	}

	tests := []struct {
		name    string
		service string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"public ok", ServicePublic, func(c *Config) {}, false},
		{"public without key", ServicePublic, func(c *Config) { c.Admin.Key = "" }, false},
		{"protected public without key", ServicePublic, func(c *Config) {
			c.Admin.Key = ""
			c.Admin.ProtectCatalog = true
		}, true},
		{"admin ok", ServiceAdmin, func(c *Config) {}, false},
		{"admin without key", ServiceAdmin, func(c *Config) { c.Admin.Key = "" }, true},
		{"zero pool", ServicePublic, func(c *Config) { c.Database.MaxConns = 0 }, true},
		{"zero query timeout", ServiceAdmin, func(c *Config) { c.Database.QueryTimeout = 0 }, true},
		{"zero in flight", ServicePublic, func(c *Config) { c.HTTP.MaxInFlight = 0 }, true},
		{"zero body limit", ServiceAdmin, func(c *Config) { c.HTTP.MaxBodyBytes = 0 }, true},
		{"negative backlog", ServicePublic, func(c *Config) { c.HTTP.Backlog = -1 }, true},
		{"unknown service", "worker", func(c *Config) {}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.mutate(config)

			err := config.Validate(tt.service)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
