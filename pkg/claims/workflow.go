// Package claims implements the claim state machine. A claim is created PENDING
// when a recognition is awarded and becomes APPROVED or REJECTED exactly once.
package claims

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/chris/kudos-ledger/pkg/ledger"
	"github.com/chris/kudos-ledger/pkg/metrics"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/notifications"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/google/uuid"
)

// ErrInvalidClaim is returned when a claim's receivers are malformed.
var ErrInvalidClaim = errors.New("invalid claim")

// Store is the storage the workflow depends on.
type Store interface {
	storage.UnitOfWork
	storage.ClaimReader
	storage.UserDirectory
	storage.RecognitionChecker
}

// Workflow drives claims through their lifecycle.
type Workflow struct {
	store     Store
	ledger    *ledger.Ledger
	publisher notifications.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewWorkflow creates a Workflow. A nil publisher drops notifications.
func NewWorkflow(store Store, l *ledger.Ledger, publisher notifications.Publisher, logger *slog.Logger) *Workflow {
	if publisher == nil {
		publisher = notifications.NoOpPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		store:     store,
		ledger:    l,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Award authors the coin side of a recognition: the sender's giveable balance is
// debited by the total, a DEBIT entry is recorded and a PENDING claim is created,
// all in one unit of work. An insufficient balance fails before any claim exists.
func (w *Workflow) Award(ctx context.Context, senderID string, receivers []models.ClaimReceiver, recognitionID string) (*models.Claim, error) {
	if err := validateReceivers(senderID, receivers); err != nil {
		return nil, err
	}
	var total int64
	for _, r := range receivers {
		total += r.Amount
	}

	var claim *models.Claim
	err := w.store.Run(ctx, func(tx storage.Tx) error {
		if _, err := w.ledger.Decrement(ctx, tx, senderID, models.GIVEABLE, total); err != nil {
			return err
		}
		var err error
		claim, err = w.RecordClaim(ctx, tx, senderID, receivers, recognitionID)
		if err != nil {
			return err
		}
		_, err = w.ledger.Record(ctx, tx, models.Transaction{
			UserId:     senderID,
			Amount:     -total,
			Kind:       models.DEBIT,
			EntityType: models.RECOGNITION,
			EntityId:   recognitionID,
			ClaimId:    claim.Id,
			Status:     models.SUCCESS,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.ClaimsAwarded.Inc()
	return claim, nil
}

// RecordClaim creates a PENDING claim inside the caller's unit of work. The
// caller is responsible for the matching giveable-balance debit.
func (w *Workflow) RecordClaim(ctx context.Context, tx storage.Tx, senderID string, receivers []models.ClaimReceiver, recognitionID string) (*models.Claim, error) {
	if err := validateReceivers(senderID, receivers); err != nil {
		return nil, err
	}
	if recognitionID == "" {
		return nil, fmt.Errorf("%w: missing recognition id", ErrInvalidClaim)
	}
	exists, err := w.store.RecognitionExists(ctx, recognitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recognition: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("recognition %s: %w", recognitionID, storage.ErrNotFound)
	}

	now := w.now().UTC()
	claim := &models.Claim{
		Id:            uuid.New().String(),
		SenderId:      senderID,
		RecognitionId: recognitionID,
		Receivers:     append([]models.ClaimReceiver(nil), receivers...),
		Status:        models.PENDING,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tx.CreateClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	return claim, nil
}

// Approve credits every receiver's earned balance, records one CREDIT entry per
// receiver and marks the claim APPROVED. Either all of it commits or none does.
func (w *Workflow) Approve(ctx context.Context, claimID string) (*models.Claim, error) {
	var claim *models.Claim
	err := w.store.Run(ctx, func(tx storage.Tx) error {
		c, err := pendingClaim(ctx, tx, claimID)
		if err != nil {
			return err
		}

		for _, r := range c.Receivers {
			if _, err := w.ledger.Increment(ctx, tx, r.ReceiverId, models.EARNED, r.Amount); err != nil {
				return fmt.Errorf("failed to credit receiver %s: %w", r.ReceiverId, err)
			}
			_, err := w.ledger.Record(ctx, tx, models.Transaction{
				UserId:        r.ReceiverId,
				Amount:        r.Amount,
				Kind:          models.CREDIT,
				EntityType:    models.RECOGNITION,
				EntityId:      c.RecognitionId,
				RelatedUserId: c.SenderId,
				ClaimId:       c.Id,
				Status:        models.SUCCESS,
			})
			if err != nil {
				return err
			}
		}

		if err := tx.TransitionClaim(ctx, c.Id, models.PENDING, models.APPROVED); err != nil {
			return err
		}
		c.Status = models.APPROVED
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := claim.TotalAmount()
	metrics.ClaimsSettled.WithLabelValues("approved").Inc()
	metrics.CoinsCredited.Add(float64(total))
	w.publish(ctx, notifications.ClaimApproved, claim)
	return claim, nil
}

// Reject records a REVERSED entry for every receiver without touching their
// wallets, refunds the total to the sender's giveable balance and marks the
// claim REJECTED, in one unit of work.
func (w *Workflow) Reject(ctx context.Context, claimID string) (*models.Claim, error) {
	var claim *models.Claim
	err := w.store.Run(ctx, func(tx storage.Tx) error {
		c, err := pendingClaim(ctx, tx, claimID)
		if err != nil {
			return err
		}

		for _, r := range c.Receivers {
			_, err := w.ledger.Record(ctx, tx, models.Transaction{
				UserId:        r.ReceiverId,
				Amount:        r.Amount,
				Kind:          models.CREDIT,
				EntityType:    models.RECOGNITION,
				EntityId:      c.RecognitionId,
				RelatedUserId: c.SenderId,
				ClaimId:       c.Id,
				Status:        models.REVERSED,
			})
			if err != nil {
				return err
			}
		}

		if _, err := w.ledger.Increment(ctx, tx, c.SenderId, models.GIVEABLE, c.TotalAmount()); err != nil {
			return fmt.Errorf("failed to refund sender %s: %w", c.SenderId, err)
		}

		if err := tx.TransitionClaim(ctx, c.Id, models.PENDING, models.REJECTED); err != nil {
			return err
		}
		c.Status = models.REJECTED
		claim = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ClaimsSettled.WithLabelValues("rejected").Inc()
	metrics.CoinsRefunded.Add(float64(claim.TotalAmount()))
	w.publish(ctx, notifications.ClaimRejected, claim)
	return claim, nil
}

// Get retrieves a claim by ID.
func (w *Workflow) Get(ctx context.Context, claimID string) (*models.Claim, error) {
	return w.store.GetClaim(ctx, claimID)
}

func pendingClaim(ctx context.Context, tx storage.Tx, claimID string) (*models.Claim, error) {
	c, err := tx.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if c.Status != models.PENDING {
		return nil, &storage.InvalidClaimStateError{ClaimID: c.Id, Status: c.Status}
	}
	return c, nil
}

func validateReceivers(senderID string, receivers []models.ClaimReceiver) error {
	if senderID == "" {
		return fmt.Errorf("%w: missing sender id", ErrInvalidClaim)
	}
	if len(receivers) == 0 {
		return fmt.Errorf("%w: no receivers", ErrInvalidClaim)
	}
	seen := make(map[string]struct{}, len(receivers))
	var total int64
	for _, r := range receivers {
		switch {
		case r.ReceiverId == "":
			return fmt.Errorf("%w: missing receiver id", ErrInvalidClaim)
		case r.ReceiverId == senderID:
			return fmt.Errorf("%w: sender cannot award themselves", ErrInvalidClaim)
		case r.Amount <= 0:
			return fmt.Errorf("%w: amount for %s must be positive", ErrInvalidClaim, r.ReceiverId)
		}
		if _, dup := seen[r.ReceiverId]; dup {
			return fmt.Errorf("%w: duplicate receiver %s", ErrInvalidClaim, r.ReceiverId)
		}
		seen[r.ReceiverId] = struct{}{}
		if r.Amount > math.MaxInt64-total {
			return fmt.Errorf("%w: total amount overflows", ErrInvalidClaim)
		}
		total += r.Amount
	}
	return nil
}

// publish notifies the notification subsystem. Failures are logged and dropped.
func (w *Workflow) publish(ctx context.Context, kind notifications.Kind, claim *models.Claim) {
	receiverIDs := make([]string, len(claim.Receivers))
	for i, r := range claim.Receivers {
		receiverIDs[i] = r.ReceiverId
	}
	msg := &notifications.Message{
		Kind:          kind,
		ClaimId:       claim.Id,
		RecognitionId: claim.RecognitionId,
		SenderId:      claim.SenderId,
		ReceiverIds:   receiverIDs,
		Amount:        claim.TotalAmount(),
		OccurredAt:    w.now().UTC(),
	}
	if err := w.publisher.Publish(ctx, msg); err != nil {
		w.logger.Error("failed to publish claim notification",
			slog.String("kind", string(kind)),
			slog.String("claim_id", claim.Id),
			slog.Any("error", err),
		)
	}
}
