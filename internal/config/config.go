package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	PayPalAPIURL       string
	PayPalClientID     string
	PayPalClientSecret string
	Currency           string
	AMQPURL            string
	EmailQueue         string
	AdminEmail         string
	JWTSecret          string
	TokenTTL           time.Duration
	CampaignPollInterval time.Duration
	CampaignBatchSize    int
	SubscriberBatchSize  int
	WorkerPoolSize       int
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultPayPalAPIURL         = "https://api-m.sandbox.paypal.com"
	defaultCurrency             = "USD"
	defaultEmailQueue           = "storefront_email"
	defaultAdminEmail           = "admin@storefront.local"
	defaultJWTSecret            = "change-me-in-production"
	defaultTokenTTL             = 24 * time.Hour
	defaultCampaignPollInterval = 30 * time.Second
	defaultCampaignBatchSize    = 4
	defaultSubscriberBatchSize  = 100
	defaultWorkerPoolSize       = 4
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		PayPalAPIURL:         getString(lookup, "PAYPAL_API_URL", defaultPayPalAPIURL),
		PayPalClientID:       getString(lookup, "PAYPAL_CLIENT_ID", ""),
		PayPalClientSecret:   getString(lookup, "PAYPAL_CLIENT_SECRET", ""),
		Currency:             getString(lookup, "PAYPAL_CURRENCY", defaultCurrency),
		AMQPURL:              getString(lookup, "AMQP_URL", ""),
		EmailQueue:           getString(lookup, "EMAIL_QUEUE", defaultEmailQueue),
		AdminEmail:           getString(lookup, "ADMIN_EMAIL", defaultAdminEmail),
		JWTSecret:            getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:             getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		CampaignPollInterval: getDuration(lookup, "CAMPAIGN_POLL_INTERVAL", defaultCampaignPollInterval),
		CampaignBatchSize:    getInt(lookup, "CAMPAIGN_BATCH_SIZE", defaultCampaignBatchSize),
		SubscriberBatchSize:  getInt(lookup, "SUBSCRIBER_BATCH_SIZE", defaultSubscriberBatchSize),
		WorkerPoolSize:       getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.CampaignPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PayPalAPIURL, "paypal-api", cfg.PayPalAPIURL, "PayPal API base URL (sandbox or live)")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "Checkout currency code")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "RabbitMQ connection URL")
	fs.StringVar(&cfg.EmailQueue, "email-queue", cfg.EmailQueue, "Mail dispatch queue name")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Recipient for admin notification mail")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent campaign workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between campaign polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.CampaignBatchSize, "campaign-batch", cfg.CampaignBatchSize, "Maximum campaigns per polling batch")
	fs.IntVar(&cfg.SubscriberBatchSize, "subscriber-batch", cfg.SubscriberBatchSize, "Subscribers per dispatched mail message")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CampaignPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.CampaignBatchSize <= 0 {
		cfg.CampaignBatchSize = defaultCampaignBatchSize
	}

	if cfg.SubscriberBatchSize <= 0 {
		cfg.SubscriberBatchSize = defaultSubscriberBatchSize
	}

	if cfg.CampaignPollInterval <= 0 {
		cfg.CampaignPollInterval = defaultCampaignPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PayPalClientID == "" || cfg.PayPalClientSecret == "" {
		return nil, fmt.Errorf("paypal credentials must be provided")
	}

	if cfg.AMQPURL == "" {
		return nil, fmt.Errorf("amqp URL must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
