package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("CACHE_OVERVIEW_TTL_IN_SECONDS", "")
		t.Setenv("CACHE_CATALOG_REFRESH_CRON", "")

		cfg := NewInternalConfig()
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, time.Minute, cfg.Cache.OverviewTTL())
		assert.Equal(t, 24*time.Hour, cfg.Minio.PreSignedURLExpiry())
		assert.Equal(t, []string{"*"}, cfg.App.CORSAllowedOrigins)
		assert.Equal(t, "@every 12h", cfg.Cache.CatalogRefreshCron)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("CACHE_CATALOG_TTL_IN_HOURS", "2")
		t.Setenv("APP_REQUEST_TIMEOUT_IN_SECONDS", "5")
		t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg := NewInternalConfig()
		assert.Equal(t, "production", cfg.App.Env)
		assert.Equal(t, 2*time.Hour, cfg.Cache.CatalogTTL())
		assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
	})
}
