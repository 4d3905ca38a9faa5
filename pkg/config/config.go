// Package config reads the service configuration from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/chris/kudos-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config holds every setting of the binaries.
type Config struct {
	HTTPPort       string
	StorageBackend string
	Tables         dynamodb.Tables

	AllocationQueueURL    string
	NotificationsQueueURL string

	AllocationTickInterval     time.Duration
	AllocationSchedulerEnabled bool

	CORSAllowedOrigins []string
	LogLevel           slog.Level
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		HTTPPort:       getenv("HTTP_PORT", "8080"),
		StorageBackend: strings.ToLower(getenv("STORAGE_BACKEND", BackendDynamoDB)),
		Tables: dynamodb.Tables{
			Wallets:               os.Getenv("DYNAMODB_WALLETS_TABLE_NAME"),
			Transactions:          os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME"),
			Claims:                os.Getenv("DYNAMODB_CLAIMS_TABLE_NAME"),
			AllocationRecords:     os.Getenv("DYNAMODB_ALLOCATION_RECORDS_TABLE_NAME"),
			AllocationDefinitions: os.Getenv("DYNAMODB_ALLOCATION_DEFINITIONS_TABLE_NAME"),
			Users:                 os.Getenv("DYNAMODB_USERS_TABLE_NAME"),
			Recognitions:          os.Getenv("DYNAMODB_RECOGNITIONS_TABLE_NAME"),
		},
		AllocationQueueURL:    os.Getenv("SQS_ALLOCATION_QUEUE_URL"),
		NotificationsQueueURL: os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"),
		CORSAllowedOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	if cfg.AllocationTickInterval, err = time.ParseDuration(getenv("ALLOCATION_TICK_INTERVAL", "1h")); err != nil {
		return nil, fmt.Errorf("invalid ALLOCATION_TICK_INTERVAL: %w", err)
	}
	if cfg.AllocationSchedulerEnabled, err = strconv.ParseBool(getenv("ALLOCATION_SCHEDULER_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("invalid ALLOCATION_SCHEDULER_ENABLED: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendDynamoDB:
		var missing []string
		for env, value := range map[string]string{
			"DYNAMODB_WALLETS_TABLE_NAME":                c.Tables.Wallets,
			"DYNAMODB_TRANSACTIONS_TABLE_NAME":           c.Tables.Transactions,
			"DYNAMODB_CLAIMS_TABLE_NAME":                 c.Tables.Claims,
			"DYNAMODB_ALLOCATION_RECORDS_TABLE_NAME":     c.Tables.AllocationRecords,
			"DYNAMODB_ALLOCATION_DEFINITIONS_TABLE_NAME": c.Tables.AllocationDefinitions,
			"DYNAMODB_USERS_TABLE_NAME":                  c.Tables.Users,
			"DYNAMODB_RECOGNITIONS_TABLE_NAME":           c.Tables.Recognitions,
		} {
			if value == "" {
				missing = append(missing, env)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing DynamoDB table names: %d environment variables not set", len(missing))
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.AllocationTickInterval <= 0 {
		return errors.New("ALLOCATION_TICK_INTERVAL must be positive")
	}
	return nil
}

// LoadAWS loads the default AWS SDK configuration.
func LoadAWS(ctx context.Context) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the JSON logger used by the binaries and makes it the default.
func NewLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
