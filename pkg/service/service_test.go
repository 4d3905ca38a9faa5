package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/chris/kudos-ledger/pkg/config"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/notifications"
	"github.com/chris/kudos-ledger/pkg/service"
	"github.com/chris/kudos-ledger/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Memory(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := service.New(ctx, &config.Config{StorageBackend: config.BackendMemory}, logger)
	require.NoError(t, err)

	assert.IsType(t, &memory.Store{}, s.Store)
	assert.IsType(t, notifications.NoOpPublisher{}, s.Publisher)
	assert.Nil(t, s.Scheduler)

	_, err = s.Store.CreateWallet(ctx, "alice")
	require.NoError(t, err)
	affected, err := s.Allocation.AllocateCoinsToAll(ctx, 5, models.EARNED)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, affected)

	balance, err := s.Ledger.ChargeOrder(ctx, "alice", "order-1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}
