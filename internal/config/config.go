package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string
	RedisAddr   string

	KafkaBrokers []string

	JWTSecret string

	PaymentAddress   string
	PaymentPartner   string
	PaymentAccessKey string
	PaymentSecretKey string

	PaymentTimeout     time.Duration
	ExpirePollInterval time.Duration
	ExpireBatchSize    int
	WorkerPoolSize     int

	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultJWTSecret          = "change-me-in-production"
	defaultPaymentTimeout     = 30 * time.Minute
	defaultExpirePollInterval = time.Minute
	defaultExpireBatchSize    = 32
	defaultWorkerPoolSize     = 4
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from an optional .env file, flags, and
// environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		RedisAddr:          getString(lookup, "REDIS_ADDR", ""),
		KafkaBrokers:       splitCSV(getString(lookup, "KAFKA_BROKERS", "")),
		JWTSecret:          getString(lookup, "JWT_SECRET", defaultJWTSecret),
		PaymentAddress:     getString(lookup, "PAYMENT_ADDRESS", ""),
		PaymentPartner:     getString(lookup, "PAYMENT_PARTNER_CODE", ""),
		PaymentAccessKey:   getString(lookup, "PAYMENT_ACCESS_KEY", ""),
		PaymentSecretKey:   getString(lookup, "PAYMENT_SECRET_KEY", ""),
		PaymentTimeout:     getDuration(lookup, "PAYMENT_TIMEOUT", defaultPaymentTimeout),
		ExpirePollInterval: getDuration(lookup, "EXPIRE_POLL_INTERVAL", defaultExpirePollInterval),
		ExpireBatchSize:    getInt(lookup, "EXPIRE_BATCH_SIZE", defaultExpireBatchSize),
		WorkerPoolSize:     getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		brokersStr         = strings.Join(cfg.KafkaBrokers, ",")
		paymentTimeoutStr  = cfg.PaymentTimeout.String()
		pollIntervalStr    = cfg.ExpirePollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address (empty disables caching)")
	fs.StringVar(&brokersStr, "kafka-brokers", brokersStr, "Kafka broker list (empty disables events)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.PaymentAddress, "payment-address", cfg.PaymentAddress, "Payment provider base URL")
	fs.StringVar(&cfg.PaymentPartner, "payment-partner", cfg.PaymentPartner, "Payment provider partner code")
	fs.StringVar(&cfg.PaymentAccessKey, "payment-access-key", cfg.PaymentAccessKey, "Payment provider access key")
	fs.StringVar(&cfg.PaymentSecretKey, "payment-secret-key", cfg.PaymentSecretKey, "Payment provider signing secret")
	fs.StringVar(&paymentTimeoutStr, "payment-timeout", paymentTimeoutStr, "How long an unpaid order stays pending")
	fs.StringVar(&pollIntervalStr, "expire-poll-interval", pollIntervalStr, "Interval between expired order sweeps")
	fs.IntVar(&cfg.ExpireBatchSize, "expire-batch", cfg.ExpireBatchSize, "Maximum orders per expiration sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent expiration workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg.KafkaBrokers = splitCSV(brokersStr)

	var err error

	if cfg.PaymentTimeout, err = time.ParseDuration(paymentTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid payment timeout: %w", err)
	}

	if cfg.ExpirePollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid expire poll interval: %w", err)
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

	if cfg.ExpireBatchSize <= 0 {
		cfg.ExpireBatchSize = defaultExpireBatchSize
	}

	if cfg.PaymentTimeout <= 0 {
		cfg.PaymentTimeout = defaultPaymentTimeout
	}

	if cfg.ExpirePollInterval <= 0 {
		cfg.ExpirePollInterval = defaultExpirePollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentSecretKey == "" {
		return nil, fmt.Errorf("payment signing secret must be provided")
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

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
