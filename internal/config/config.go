package config

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Billing  BillingConfig
	Worker   WorkerConfig
	Renderer RendererConfig
}

type AppConfig struct {
	Name     string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// BillingConfig holds the deployment-tunable billing constants. These are
// configuration, not literals: tests and deployments vary them without
// touching the calculator.
type BillingConfig struct {
	TaxPct        decimal.Decimal
	ServiceCharge decimal.Decimal
}

// WorkerConfig tunes the audit outbox worker.
type WorkerConfig struct {
	Enabled      bool
	PollInterval time.Duration
	BatchSize    int
	MaxRetries   int
}

// RendererConfig points at the external bill document renderer.
type RendererConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("BILLING_TAX_PCT", "13")
	viper.SetDefault("BILLING_SERVICE_CHARGE", "5")
	viper.SetDefault("WORKER_ENABLED", true)
	viper.SetDefault("WORKER_POLL_INTERVAL_MS", 1000)
	viper.SetDefault("WORKER_BATCH_SIZE", 50)
	viper.SetDefault("WORKER_MAX_RETRIES", 5)
	viper.SetDefault("RENDERER_BASE_URL", "http://localhost:9090")
	viper.SetDefault("RENDERER_TIMEOUT_MS", 10000)
	viper.SetDefault("RENDERER_REQUESTS_PER_SEC", 5.0)

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("APP_LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Billing: BillingConfig{
			TaxPct:        mustDecimal(viper.GetString("BILLING_TAX_PCT")),
			ServiceCharge: mustDecimal(viper.GetString("BILLING_SERVICE_CHARGE")),
		},
		Worker: WorkerConfig{
			Enabled:      viper.GetBool("WORKER_ENABLED"),
			PollInterval: time.Duration(viper.GetInt("WORKER_POLL_INTERVAL_MS")) * time.Millisecond,
			BatchSize:    viper.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:   viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Renderer: RendererConfig{
			BaseURL:        viper.GetString("RENDERER_BASE_URL"),
			Timeout:        time.Duration(viper.GetInt("RENDERER_TIMEOUT_MS")) * time.Millisecond,
			RequestsPerSec: viper.GetFloat64("RENDERER_REQUESTS_PER_SEC"),
		},
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("invalid decimal config value %q: %v", s, err)
	}
	return d
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
