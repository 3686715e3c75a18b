package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "PERSIST_BACKEND", "SHIPPING_FEE", "CHECKOUT_DELAY_MS", "SESSION_SECRET"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "memory", cfg.PersistBackend)
	require.Equal(t, 49.0, cfg.ShippingFee)
	require.Equal(t, 2000, cfg.CheckoutDelayMS)
	require.Equal(t, 720, cfg.SessionTTLHours)
	require.Equal(t, "us", cfg.ContentstackRegion)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PERSIST_BACKEND", "SQLite")
	t.Setenv("SHIPPING_FEE", "50")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "sqlite", cfg.PersistBackend)
	require.Equal(t, 50.0, cfg.ShippingFee)
	require.Equal(t, 2.5, cfg.RateLimitRPS)
	require.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_PostgresNeedsURL(t *testing.T) {
	t.Setenv("PERSIST_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")
	require.Panics(t, func() { Load() })

	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/bookjam")
	require.Equal(t, "postgres://u:p@localhost:5432/bookjam", Load().DatabaseURL)
}
