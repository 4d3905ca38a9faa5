package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTables(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		"DYNAMODB_WALLETS_TABLE_NAME",
		"DYNAMODB_TRANSACTIONS_TABLE_NAME",
		"DYNAMODB_CLAIMS_TABLE_NAME",
		"DYNAMODB_ALLOCATION_RECORDS_TABLE_NAME",
		"DYNAMODB_ALLOCATION_DEFINITIONS_TABLE_NAME",
		"DYNAMODB_USERS_TABLE_NAME",
		"DYNAMODB_RECOGNITIONS_TABLE_NAME",
	} {
		t.Setenv(env, "table-"+env)
	}
}

func TestLoad(t *testing.T) {
	t.Run("DynamoDB", func(t *testing.T) {
		setTables(t)
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("ALLOCATION_TICK_INTERVAL", "15m")
		t.Setenv("ALLOCATION_SCHEDULER_ENABLED", "true")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example, https://app.example")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, BackendDynamoDB, cfg.StorageBackend)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, 15*time.Minute, cfg.AllocationTickInterval)
		assert.True(t, cfg.AllocationSchedulerEnabled)
		assert.Equal(t, []string{"https://admin.example", "https://app.example"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
		assert.Equal(t, "table-DYNAMODB_CLAIMS_TABLE_NAME", cfg.Tables.Claims)
	})

	t.Run("Missing Tables", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "dynamodb")
		t.Setenv("DYNAMODB_WALLETS_TABLE_NAME", "")
		t.Setenv("DYNAMODB_CLAIMS_TABLE_NAME", "")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing DynamoDB table names")
	})

	t.Run("Memory Needs No Tables", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "MEMORY")
		t.Setenv("DYNAMODB_WALLETS_TABLE_NAME", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.StorageBackend)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, time.Hour, cfg.AllocationTickInterval)
	})

	t.Run("Invalid Values", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "memory")

		t.Setenv("ALLOCATION_TICK_INTERVAL", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "ALLOCATION_TICK_INTERVAL")

		t.Setenv("ALLOCATION_TICK_INTERVAL", "1h")
		t.Setenv("LOG_LEVEL", "chatty")
		_, err = Load()
		assert.ErrorContains(t, err, "LOG_LEVEL")

		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("STORAGE_BACKEND", "sqlite")
		_, err = Load()
		assert.ErrorContains(t, err, "unknown STORAGE_BACKEND")
	})
}
