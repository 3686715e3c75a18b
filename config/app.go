package config

type App struct {
	Port     string `env:"APP_PORT" default:"8080"`
	Env      string `env:"APP_ENV" default:"dev"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	SessionSecret   string `env:"SESSION_SECRET" default:"local_dev_secret"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" default:"720"`
	SessionIdleMins int    `env:"SESSION_IDLE_MINUTES" default:"30"`

	PersistBackend string `env:"PERSIST_BACKEND" default:"memory"` // memory | redis | sqlite | postgres
	RedisAddr      string `env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" default:"0"`
	SQLitePath     string `env:"SQLITE_PATH" default:"bookjam.db"`
	DatabaseURL    string `env:"DATABASE_URL"` // required for postgres

	ContentstackAPIKey        string `env:"CONTENTSTACK_API_KEY"`
	ContentstackDeliveryToken string `env:"CONTENTSTACK_DELIVERY_TOKEN"`
	ContentstackEnvironment   string `env:"CONTENTSTACK_ENVIRONMENT" default:"development"`
	ContentstackRegion        string `env:"CONTENTSTACK_REGION" default:"us"`

	CurrencyTablePath string  `env:"CURRENCY_TABLE_PATH"`
	ShippingFee       float64 `env:"SHIPPING_FEE" default:"49"`
	CheckoutDelayMS   int     `env:"CHECKOUT_DELAY_MS" default:"2000"`
	RateLimitRPS      float64 `env:"RATE_LIMIT_RPS" default:"20"`
}
