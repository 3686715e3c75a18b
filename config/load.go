package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func Load() App {
	cfg := App{
		Port:     getenv("APP_PORT", "8080"),
		Env:      getenv("APP_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		SessionSecret:   getenv("SESSION_SECRET", "local_dev_secret"),
		SessionTTLHours: getint("SESSION_TTL_HOURS", 720),
		SessionIdleMins: getint("SESSION_IDLE_MINUTES", 30),

		PersistBackend: strings.ToLower(getenv("PERSIST_BACKEND", "memory")),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getint("REDIS_DB", 0),
		SQLitePath:     getenv("SQLITE_PATH", "bookjam.db"),

		ContentstackAPIKey:        os.Getenv("CONTENTSTACK_API_KEY"),
		ContentstackDeliveryToken: os.Getenv("CONTENTSTACK_DELIVERY_TOKEN"),
		ContentstackEnvironment:   getenv("CONTENTSTACK_ENVIRONMENT", "development"),
		ContentstackRegion:        getenv("CONTENTSTACK_REGION", "us"),

		CurrencyTablePath: os.Getenv("CURRENCY_TABLE_PATH"),
		ShippingFee:       getfloat("SHIPPING_FEE", 49),
		CheckoutDelayMS:   getint("CHECKOUT_DELAY_MS", 2000),
		RateLimitRPS:      getfloat("RATE_LIMIT_RPS", 20),
	}
	if cfg.PersistBackend == "postgres" {
		cfg.DatabaseURL = must("DATABASE_URL")
	}
	if cfg.Env != "dev" && cfg.SessionSecret == "local_dev_secret" {
		slog.Warn("SESSION_SECRET not set outside dev", "env", cfg.Env)
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int env, using default", "key", k, "value", v, "default", def)
		return def
	}
	return n
}

func getfloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid float env, using default", "key", k, "value", v, "default", def)
		return def
	}
	return f
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
