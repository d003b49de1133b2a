package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Queue       QueueConfig
	Payment     PaymentConfig
	Fulfillment FulfillmentConfig
	Email       EmailConfig
	Order       OrderConfig
	Sweeper     SweeperConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type QueueConfig struct {
	Host      string
	Port      int
	Namespace string
	Token     string
	Queue     string
	JobTTL    time.Duration
	JobTTR    time.Duration
	Timeout   time.Duration
}

type PaymentConfig struct {
	APIKey        string
	WebhookSecret string
	BaseURL       string
	Currency      string
	SuccessURL    string
	CancelURL     string
}

type FulfillmentConfig struct {
	APIKey           string
	BaseURL          string
	DefaultSKU       string
	DefaultSize      string
	AllowPlaceholder bool
}

type EmailConfig struct {
	APIKey        string
	BaseURL       string
	Sender        string
	NotifyAddress string
}

type OrderConfig struct {
	CheckoutExpiry time.Duration
}

type SweeperConfig struct {
	Interval time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "posterworks")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "posterworks")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("QUEUE_HOST", "localhost")
	viper.SetDefault("QUEUE_PORT", 7777)
	viper.SetDefault("QUEUE_NAMESPACE", "posterworks")
	viper.SetDefault("QUEUE_TOKEN", "")
	viper.SetDefault("QUEUE_NAME", "fulfillment")
	viper.SetDefault("QUEUE_JOB_TTL", "24h")
	viper.SetDefault("QUEUE_JOB_TTR", "60s")
	viper.SetDefault("QUEUE_CONSUME_TIMEOUT", "10s")
	viper.SetDefault("PAYMENT_API_KEY", "")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "")
	viper.SetDefault("PAYMENT_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("PAYMENT_CURRENCY", "usd")
	viper.SetDefault("PAYMENT_SUCCESS_URL", "")
	viper.SetDefault("PAYMENT_CANCEL_URL", "")
	viper.SetDefault("FULFILLMENT_API_KEY", "")
	viper.SetDefault("FULFILLMENT_BASE_URL", "https://api.prodigi.com")
	viper.SetDefault("FULFILLMENT_DEFAULT_SKU", "GLOBAL-POSTER-A2")
	viper.SetDefault("FULFILLMENT_DEFAULT_SIZE", "A2")
	viper.SetDefault("FULFILLMENT_ALLOW_PLACEHOLDER", false)
	viper.SetDefault("EMAIL_API_KEY", "")
	viper.SetDefault("EMAIL_BASE_URL", "https://api.sendgrid.com")
	viper.SetDefault("EMAIL_SENDER", "orders@posterworks.shop")
	viper.SetDefault("EMAIL_NOTIFY_ADDRESS", "")
	viper.SetDefault("ORDER_CHECKOUT_EXPIRY", "900s")
	viper.SetDefault("SWEEPER_INTERVAL", "15m")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}
	jobTTL, err := time.ParseDuration(viper.GetString("QUEUE_JOB_TTL"))
	if err != nil {
		return nil, err
	}
	jobTTR, err := time.ParseDuration(viper.GetString("QUEUE_JOB_TTR"))
	if err != nil {
		return nil, err
	}
	consumeTimeout, err := time.ParseDuration(viper.GetString("QUEUE_CONSUME_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	checkoutExpiry, err := time.ParseDuration(viper.GetString("ORDER_CHECKOUT_EXPIRY"))
	if err != nil {
		return nil, err
	}
	sweeperInterval, err := time.ParseDuration(viper.GetString("SWEEPER_INTERVAL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           viper.GetInt("SERVER_PORT"),
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Queue: QueueConfig{
			Host:      viper.GetString("QUEUE_HOST"),
			Port:      viper.GetInt("QUEUE_PORT"),
			Namespace: viper.GetString("QUEUE_NAMESPACE"),
			Token:     viper.GetString("QUEUE_TOKEN"),
			Queue:     viper.GetString("QUEUE_NAME"),
			JobTTL:    jobTTL,
			JobTTR:    jobTTR,
			Timeout:   consumeTimeout,
		},
		Payment: PaymentConfig{
			APIKey:        viper.GetString("PAYMENT_API_KEY"),
			WebhookSecret: viper.GetString("PAYMENT_WEBHOOK_SECRET"),
			BaseURL:       viper.GetString("PAYMENT_BASE_URL"),
			Currency:      viper.GetString("PAYMENT_CURRENCY"),
			SuccessURL:    viper.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:     viper.GetString("PAYMENT_CANCEL_URL"),
		},
		Fulfillment: FulfillmentConfig{
			APIKey:           viper.GetString("FULFILLMENT_API_KEY"),
			BaseURL:          viper.GetString("FULFILLMENT_BASE_URL"),
			DefaultSKU:       viper.GetString("FULFILLMENT_DEFAULT_SKU"),
			DefaultSize:      viper.GetString("FULFILLMENT_DEFAULT_SIZE"),
			AllowPlaceholder: viper.GetBool("FULFILLMENT_ALLOW_PLACEHOLDER"),
		},
		Email: EmailConfig{
			APIKey:        viper.GetString("EMAIL_API_KEY"),
			BaseURL:       viper.GetString("EMAIL_BASE_URL"),
			Sender:        viper.GetString("EMAIL_SENDER"),
			NotifyAddress: viper.GetString("EMAIL_NOTIFY_ADDRESS"),
		},
		Order: OrderConfig{
			CheckoutExpiry: checkoutExpiry,
		},
		Sweeper: SweeperConfig{
			Interval: sweeperInterval,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
