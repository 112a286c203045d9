package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Crossref CrossrefConfig
	Crawler  CrawlerConfig
	Dupes    DupesConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// CrossrefConfig tunes catalog cross-referencing for one order.
type CrossrefConfig struct {
	BatchSize     int           // concurrent outstanding lookups per batch
	MaxRetries    int           // retry ceiling per batch on transient failure
	RetryBaseWait time.Duration // first backoff step, doubled per attempt
	BatchDelay    time.Duration // inter-batch delay when rate-limiting a live API
	LookupTimeout time.Duration
}

// CrawlerConfig tunes the batch catalog crawl.
type CrawlerConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestDelay   time.Duration // pause between brand pages
	MaxRetries     int
	UpsertBatch    int
}

// DupesConfig selects duplicate-detection strictness.
type DupesConfig struct {
	// Strict requires every available identifying field to agree before
	// declaring a duplicate. Lenient declares on orderNumber + any one
	// agreeing tie-breaker.
	Strict bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Crossref: CrossrefConfig{
			BatchSize:     getEnvAsInt("XREF_BATCH_SIZE", 5),
			MaxRetries:    getEnvAsInt("XREF_MAX_RETRIES", 3),
			RetryBaseWait: getEnvAsDuration("XREF_RETRY_BASE_WAIT", 500*time.Millisecond),
			BatchDelay:    getEnvAsDuration("XREF_BATCH_DELAY", 0),
			LookupTimeout: getEnvAsDuration("XREF_LOOKUP_TIMEOUT", 10*time.Second),
		},
		Crawler: CrawlerConfig{
			BaseURL:        getEnv("CATALOG_API_URL", ""),
			RequestTimeout: getEnvAsDuration("CRAWL_REQUEST_TIMEOUT", 30*time.Second),
			RequestDelay:   getEnvAsDuration("CRAWL_REQUEST_DELAY", 1*time.Second),
			MaxRetries:     getEnvAsInt("CRAWL_MAX_RETRIES", 3),
			UpsertBatch:    getEnvAsInt("CRAWL_UPSERT_BATCH", 100),
		},
		Dupes: DupesConfig{
			Strict: getEnvAsBool("DUPES_STRICT", true),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Crossref.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "XREF_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
