package allocation

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/ledger"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/notifications"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/chris/kudos-ledger/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var may15 = time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)

// flakyStore fails wallet increments for one user while failing is set.
type flakyStore struct {
	*memory.Store
	failUser string
	failing  bool
}

func (s *flakyStore) Run(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.Store.Run(ctx, func(tx storage.Tx) error {
		return fn(&flakyTx{Tx: tx, store: s})
	})
}

type flakyTx struct {
	storage.Tx
	store *flakyStore
}

func (t *flakyTx) IncrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if t.store.failing && userID == t.store.failUser {
		return 0, errors.New("connection reset")
	}
	return t.Tx.IncrementWallet(ctx, userID, class, amount)
}

// racingStore never sees an existing success record, as if another run had not
// yet committed when the check was made.
type racingStore struct {
	*memory.Store
}

func (s *racingStore) GetSuccessfulAllocation(ctx context.Context, fence string) (*models.AllocationRecord, error) {
	return nil, nil
}

func newStore(t *testing.T, users ...string) *memory.Store {
	t.Helper()
	store := memory.New()
	for _, u := range users {
		_, err := store.CreateWallet(context.Background(), u)
		require.NoError(t, err)
	}
	return store
}

func newEngine(store Store, l *ledger.Ledger, now time.Time) *Engine {
	e := NewEngine(store, l, notifications.NoOpPublisher{}, nil)
	e.now = func() time.Time { return now }
	return e
}

func monthlyDefinition(t *testing.T, store storage.AllocationStore) *models.AllocationDefinition {
	t.Helper()
	def := &models.AllocationDefinition{
		Id:           "monthly-giveable",
		Name:         "Monthly giveable budget",
		Amount:       5,
		Cadence:      cadence.Monthly,
		BalanceClass: models.GIVEABLE,
		Active:       true,
	}
	require.NoError(t, store.PutAllocationDefinition(context.Background(), def))
	return def
}

func giveable(t *testing.T, store storage.WalletStore, userID string) int64 {
	t.Helper()
	w, err := store.GetWallet(context.Background(), userID)
	require.NoError(t, err)
	return w.GiveableBalance
}

func TestRunScheduledIsIdempotentPerPeriod(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, "alice", "bob")
	def := monthlyDefinition(t, store)
	e := newEngine(store, ledger.New(store), may15)

	outcome, err := e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, int64(5), giveable(t, store, "alice"))
	assert.Equal(t, int64(5), giveable(t, store, "bob"))

	record, err := store.GetSuccessfulAllocation(ctx, "monthly-giveable#MONTHLY#2024-05")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.ElementsMatch(t, []string{"alice", "bob"}, record.ReceiverIds)
	assert.Equal(t, "2024-05", record.Period)

	// Later in the same month.
	e.now = func() time.Time { return may15.AddDate(0, 0, 10) }
	outcome, err = e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, int64(5), giveable(t, store, "alice"))

	// Next month pays again.
	e.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	outcome, err = e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, int64(10), giveable(t, store, "alice"))
}

func TestRunScheduledRecordsFailureAndRetries(t *testing.T) {
	ctx := context.Background()
	flaky := &flakyStore{Store: newStore(t, "alice", "bob"), failUser: "bob", failing: true}
	def := monthlyDefinition(t, flaky)
	e := newEngine(flaky, ledger.New(flaky), may15)

	outcome, err := e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, int64(0), giveable(t, flaky, "alice"))
	assert.Equal(t, int64(0), giveable(t, flaky, "bob"))

	records, err := flaky.ListAllocationRecords(ctx, def.Id)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AllocationFailed, records[0].Status)
	assert.Empty(t, records[0].ReceiverIds)
	assert.Contains(t, records[0].Error, "connection reset")

	flaky.failing = false
	e.now = func() time.Time { return may15.Add(time.Hour) }
	outcome, err = e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, int64(5), giveable(t, flaky, "alice"))
	assert.Equal(t, int64(5), giveable(t, flaky, "bob"))

	records, err = flaky.ListAllocationRecords(ctx, def.Id)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.AllocationSuccess, records[0].Status)
	assert.Equal(t, models.AllocationFailed, records[1].Status)
}

func TestRunScheduledLosesRaceAsSkipped(t *testing.T) {
	ctx := context.Background()
	racing := &racingStore{Store: newStore(t, "alice")}
	def := monthlyDefinition(t, racing)
	e := newEngine(racing, ledger.New(racing), may15)

	outcome, err := e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)

	outcome, err = e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, int64(5), giveable(t, racing, "alice"))

	records, err := racing.ListAllocationRecords(ctx, def.Id)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRunScheduledErrors(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, "alice")
	def := monthlyDefinition(t, store)
	e := newEngine(store, ledger.New(store), may15)

	_, err := e.RunScheduled(ctx, "missing", cadence.Monthly)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = e.RunScheduled(ctx, def.Id, cadence.Daily)
	assert.ErrorIs(t, err, ErrCadenceMismatch)

	def.Active = false
	require.NoError(t, store.PutAllocationDefinition(ctx, def))
	outcome, err := e.RunScheduled(ctx, def.Id, cadence.Monthly)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, int64(0), giveable(t, store, "alice"))
}

func TestRunScheduledCohort(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, "alice", "bob", "carol")
	require.NoError(t, store.PutAllocationDefinition(ctx, &models.AllocationDefinition{
		Id:           "daily-earned",
		Amount:       2,
		Cadence:      cadence.Daily,
		BalanceClass: models.EARNED,
		ReceiverIds:  []string{"bob", "carol", "bob"},
		Active:       true,
	}))
	e := newEngine(store, ledger.New(store), may15)

	outcome, err := e.RunScheduled(ctx, "daily-earned", cadence.Daily)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)

	alice, _ := store.GetWallet(ctx, "alice")
	bob, _ := store.GetWallet(ctx, "bob")
	assert.Equal(t, int64(0), alice.EarnedBalance)
	assert.Equal(t, int64(2), bob.EarnedBalance)

	record, err := store.GetSuccessfulAllocation(ctx, "daily-earned#DAILY#2024-05-15")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"bob", "carol"}, record.ReceiverIds)
}

func TestRunDueContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	flaky := &flakyStore{Store: newStore(t, "alice", "bob"), failUser: "bob", failing: true}
	monthlyDefinition(t, flaky)
	require.NoError(t, flaky.PutAllocationDefinition(ctx, &models.AllocationDefinition{
		Id: "alice-daily", Amount: 1, Cadence: cadence.Daily, BalanceClass: models.GIVEABLE,
		ReceiverIds: []string{"alice"}, Active: true,
	}))
	require.NoError(t, flaky.PutAllocationDefinition(ctx, &models.AllocationDefinition{
		Id: "retired", Amount: 1, Cadence: cadence.Daily, BalanceClass: models.GIVEABLE, Active: false,
	}))
	e := newEngine(flaky, ledger.New(flaky), may15)

	results, err := e.RunDue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byID := map[string]Outcome{}
	for _, r := range results {
		byID[r.DefinitionId] = r.Outcome
	}
	assert.Equal(t, OutcomeSuccess, byID["alice-daily"])
	assert.Equal(t, OutcomeFailed, byID["monthly-giveable"])
	assert.Equal(t, int64(1), giveable(t, flaky, "alice"))
}

func TestAdHocAllocation(t *testing.T) {
	ctx := context.Background()

	t.Run("To All", func(t *testing.T) {
		store := newStore(t, "alice", "bob")
		e := newEngine(store, ledger.New(store), may15)

		affected, err := e.AllocateCoinsToAll(ctx, 7, models.GIVEABLE)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alice", "bob"}, affected)
		assert.Equal(t, int64(7), giveable(t, store, "alice"))

		records, err := store.ListAllocationRecords(ctx, models.AdHocAllocationType)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.AdHocAllocationType, records[0].Type)
	})

	t.Run("Unknown User Fails Everything", func(t *testing.T) {
		store := newStore(t, "alice")
		e := newEngine(store, ledger.New(store), may15)

		_, err := e.AllocateCoinsToSpecificUsers(ctx, []string{"alice", "ghost"}, 3, models.EARNED)

		assert.ErrorIs(t, err, storage.ErrWalletNotFound)
		alice, _ := store.GetWallet(ctx, "alice")
		assert.Equal(t, int64(0), alice.EarnedBalance)
	})

	t.Run("Balance Overflow Fails", func(t *testing.T) {
		store := newStore(t, "alice")
		e := newEngine(store, ledger.New(store), may15)

		_, err := e.AllocateCoinsToSpecificUsers(ctx, []string{"alice"}, math.MaxInt64, models.GIVEABLE)
		require.NoError(t, err)

		_, err = e.AllocateCoinsToSpecificUsers(ctx, []string{"alice"}, 5, models.GIVEABLE)

		assert.ErrorIs(t, err, storage.ErrBalanceOverflow)
		assert.Equal(t, int64(math.MaxInt64), giveable(t, store, "alice"))
	})

	t.Run("Invalid Input", func(t *testing.T) {
		store := newStore(t, "alice")
		e := newEngine(store, ledger.New(store), may15)

		_, err := e.AllocateCoinsToSpecificUsers(ctx, []string{"alice"}, 0, models.GIVEABLE)
		assert.ErrorIs(t, err, ErrInvalidAllocation)

		_, err = e.AllocateCoinsToSpecificUsers(ctx, nil, 5, models.GIVEABLE)
		assert.ErrorIs(t, err, ErrInvalidAllocation)

		_, err = e.AllocateCoinsToSpecificUsers(ctx, []string{"alice"}, 5, "bonus")
		assert.ErrorIs(t, err, ErrInvalidAllocation)
	})
}
