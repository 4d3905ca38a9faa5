// Package allocation grants coin budgets, either ad hoc or once per period of an
// allocation definition's cadence.
//
// A scheduled run is fenced by its AllocationRecord: the success record of a
// period is written in the same unit of work as the wallet increments and its ID
// is the period fence, so a second success for the same period cannot commit.
// Failed attempts are recorded separately and retried on the next tick.
package allocation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/ledger"
	"github.com/chris/kudos-ledger/pkg/metrics"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/notifications"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/google/uuid"
)

var (
	// ErrInvalidAllocation is returned for a non-positive amount, an unknown
	// balance class or an empty receiver list.
	ErrInvalidAllocation = errors.New("invalid allocation")

	// ErrCadenceMismatch is returned when a run asks for a cadence the definition does not use.
	ErrCadenceMismatch = errors.New("cadence does not match definition")
)

// Outcome is the result of one scheduled run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// RunResult is the outcome of one definition in a RunDue batch.
type RunResult struct {
	DefinitionId string
	Cadence      cadence.Cadence
	Outcome      Outcome
	Err          error
}

// Store is the storage the engine depends on.
type Store interface {
	storage.UnitOfWork
	storage.WalletStore
	storage.AllocationStore
}

// Engine runs allocations.
type Engine struct {
	store     Store
	ledger    *ledger.Ledger
	publisher notifications.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewEngine creates an Engine. A nil publisher drops notifications.
func NewEngine(store Store, l *ledger.Ledger, publisher notifications.Publisher, logger *slog.Logger) *Engine {
	if publisher == nil {
		publisher = notifications.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:     store,
		ledger:    l,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "allocation")),
		now:       time.Now,
	}
}

// AllocateCoinsToAll grants amount to every wallet and returns the affected users.
func (e *Engine) AllocateCoinsToAll(ctx context.Context, amount int64, class models.BalanceClass) ([]string, error) {
	wallets, err := e.store.ListWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	userIDs := make([]string, len(wallets))
	for i, w := range wallets {
		userIDs[i] = w.UserId
	}
	if len(userIDs) == 0 {
		return []string{}, nil
	}
	return e.allocateAdHoc(ctx, userIDs, amount, class)
}

// AllocateCoinsToSpecificUsers grants amount to each listed user and returns the
// affected users. An unknown user fails the whole allocation.
func (e *Engine) AllocateCoinsToSpecificUsers(ctx context.Context, userIDs []string, amount int64, class models.BalanceClass) ([]string, error) {
	return e.allocateAdHoc(ctx, userIDs, amount, class)
}

func (e *Engine) allocateAdHoc(ctx context.Context, userIDs []string, amount int64, class models.BalanceClass) ([]string, error) {
	if err := validateGrant(amount, class); err != nil {
		return nil, err
	}
	receivers := dedupe(userIDs)
	if len(receivers) == 0 {
		return nil, fmt.Errorf("%w: no receivers", ErrInvalidAllocation)
	}

	now := e.now().UTC()
	id := uuid.New().String()
	record := &models.AllocationRecord{
		Id:             id,
		Fence:          id,
		DefinitionId:   models.AdHocAllocationType,
		Type:           models.AdHocAllocationType,
		Period:         now.Format("2006-01-02"),
		AllocationDate: now,
		Amount:         amount,
		BalanceClass:   class,
		ReceiverIds:    receivers,
		Status:         models.AllocationSuccess,
		CreatedAt:      now,
	}

	if err := e.pay(ctx, record); err != nil {
		return nil, err
	}

	e.completed(ctx, record)
	return receivers, nil
}

// RunScheduled pays one definition for the period of c containing now. A period
// that already has a success record is skipped. A payout failure is recorded as
// a failed AllocationRecord and reported as OutcomeFailed with a nil error; only
// an unknown definition or a cadence mismatch return an error.
func (e *Engine) RunScheduled(ctx context.Context, definitionID string, c cadence.Cadence) (Outcome, error) {
	def, err := e.store.GetAllocationDefinition(ctx, definitionID)
	if err != nil {
		return "", err
	}
	if def.Cadence != c {
		return "", fmt.Errorf("%w: %s runs %s, not %s", ErrCadenceMismatch, def.Id, def.Cadence, c)
	}
	log := e.logger.With(slog.String("definition_id", def.Id), slog.String("cadence", string(c)))
	if !def.Active {
		log.Info("definition inactive, skipping")
		return e.outcome(c, OutcomeSkipped), nil
	}

	now := e.now().UTC()
	period := c.PeriodFor(now)
	fence := models.AllocationFence(def.Id, period)
	log = log.With(slog.String("period", period.Key()))

	existing, err := e.store.GetSuccessfulAllocation(ctx, fence)
	if err != nil {
		return e.fail(ctx, log, def, period, fence, fmt.Errorf("failed to check allocation record: %w", err)), nil
	}
	if existing != nil {
		log.Info("period already allocated, skipping")
		return e.outcome(c, OutcomeSkipped), nil
	}

	receivers, err := e.receivers(ctx, def)
	if err != nil {
		return e.fail(ctx, log, def, period, fence, err), nil
	}

	record := &models.AllocationRecord{
		Id:             fence,
		Fence:          fence,
		DefinitionId:   def.Id,
		Type:           string(c),
		Period:         period.Key(),
		AllocationDate: now,
		Amount:         def.Amount,
		BalanceClass:   def.BalanceClass,
		ReceiverIds:    receivers,
		Status:         models.AllocationSuccess,
		CreatedAt:      now,
	}

	err = e.pay(ctx, record)
	if errors.Is(err, storage.ErrAllocationConflict) {
		log.Info("period allocated concurrently, skipping")
		return e.outcome(c, OutcomeSkipped), nil
	}
	if err != nil {
		return e.fail(ctx, log, def, period, fence, err), nil
	}

	log.Info("allocation completed", slog.Int("receivers", len(receivers)), slog.Int64("amount", def.Amount))
	e.completed(ctx, record)
	return e.outcome(c, OutcomeSuccess), nil
}

// RunDue runs every active definition with its own cadence. A failing
// definition never stops the batch.
func (e *Engine) RunDue(ctx context.Context) ([]RunResult, error) {
	defs, err := e.store.ListAllocationDefinitions(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation definitions: %w", err)
	}

	results := make([]RunResult, 0, len(defs))
	for _, def := range defs {
		outcome, err := e.RunScheduled(ctx, def.Id, def.Cadence)
		if err != nil {
			e.logger.Error("scheduled allocation failed",
				slog.String("definition_id", def.Id),
				slog.Any("error", err),
			)
		}
		results = append(results, RunResult{DefinitionId: def.Id, Cadence: def.Cadence, Outcome: outcome, Err: err})
	}
	return results, nil
}

// ListRecords returns every record of a definition, newest first.
func (e *Engine) ListRecords(ctx context.Context, definitionID string) ([]models.AllocationRecord, error) {
	return e.store.ListAllocationRecords(ctx, definitionID)
}

// pay increments every receiver and writes the success record in one unit of work.
func (e *Engine) pay(ctx context.Context, record *models.AllocationRecord) error {
	return e.store.Run(ctx, func(tx storage.Tx) error {
		for _, userID := range record.ReceiverIds {
			if _, err := e.ledger.Increment(ctx, tx, userID, record.BalanceClass, record.Amount); err != nil {
				return fmt.Errorf("failed to allocate to %s: %w", userID, err)
			}
		}
		return tx.PutAllocationRecord(ctx, record)
	})
}

func (e *Engine) receivers(ctx context.Context, def *models.AllocationDefinition) ([]string, error) {
	if len(def.ReceiverIds) > 0 {
		return dedupe(def.ReceiverIds), nil
	}
	wallets, err := e.store.ListWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	ids := make([]string, len(wallets))
	for i, w := range wallets {
		ids[i] = w.UserId
	}
	return ids, nil
}

// fail writes the failed record outside the aborted unit of work. The write is
// best effort: if it fails too, the attempt is only logged.
func (e *Engine) fail(ctx context.Context, log *slog.Logger, def *models.AllocationDefinition, period cadence.Period, fence string, cause error) Outcome {
	log.Error("allocation failed", slog.Any("error", cause))

	now := e.now().UTC()
	record := &models.AllocationRecord{
		Id:             uuid.New().String(),
		Fence:          fence,
		DefinitionId:   def.Id,
		Type:           string(period.Cadence),
		Period:         period.Key(),
		AllocationDate: now,
		Amount:         def.Amount,
		BalanceClass:   def.BalanceClass,
		ReceiverIds:    []string{},
		Status:         models.AllocationFailed,
		Error:          cause.Error(),
		CreatedAt:      now,
	}
	if err := e.store.PutAllocationRecord(ctx, record); err != nil {
		log.Error("failed to record failed allocation", slog.Any("error", err))
	}
	return e.outcome(period.Cadence, OutcomeFailed)
}

func (e *Engine) outcome(c cadence.Cadence, o Outcome) Outcome {
	metrics.AllocationRuns.WithLabelValues(string(c), string(o)).Inc()
	return o
}

func (e *Engine) completed(ctx context.Context, record *models.AllocationRecord) {
	metrics.CoinsAllocated.WithLabelValues(string(record.BalanceClass)).Add(float64(record.Amount) * float64(len(record.ReceiverIds)))

	msg := &notifications.Message{
		Kind:         notifications.AllocationCompleted,
		DefinitionId: record.DefinitionId,
		Period:       record.Period,
		ReceiverIds:  record.ReceiverIds,
		Amount:       record.Amount,
		OccurredAt:   record.CreatedAt,
	}
	if err := e.publisher.Publish(ctx, msg); err != nil {
		e.logger.Error("failed to publish allocation notification",
			slog.String("record_id", record.Id),
			slog.Any("error", err),
		)
	}
}

func validateGrant(amount int64, class models.BalanceClass) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAllocation)
	}
	if !class.Valid() {
		return fmt.Errorf("%w: unknown balance class %q", ErrInvalidAllocation, class)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
