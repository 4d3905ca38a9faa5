package allocation

import (
	"context"
	"testing"
	"time"

	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/ledger"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerRunsImmediately(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, "alice")
	require.NoError(t, store.PutAllocationDefinition(ctx, &models.AllocationDefinition{
		Id: "daily", Amount: 4, Cadence: cadence.Daily, BalanceClass: models.GIVEABLE, Active: true,
	}))
	e := newEngine(store, ledger.New(store), may15)

	ticker := NewTicker(e, nil)
	ticker.Interval = time.Hour
	ticker.Start()
	ticker.Start() // second start is a no-op

	assert.Eventually(t, func() bool {
		w, err := store.GetWallet(ctx, "alice")
		return err == nil && w.GiveableBalance == 4
	}, time.Second, 10*time.Millisecond)

	ticker.Stop()
	ticker.Stop()
}
