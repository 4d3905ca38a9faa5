// Package ledger implements the wallet balance primitives and the append-only
// transaction log. Every balance change is made through a storage.Tx so that it
// commits together with the ledger entry that explains it.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Ledger exposes the wallet primitives and the transaction log.
type Ledger struct {
	uow storage.UnitOfWork
	now func() time.Time
}

// New creates a Ledger. The unit of work is only used by operations that open
// their own scope, such as ChargeOrder.
func New(uow storage.UnitOfWork) *Ledger {
	return &Ledger{uow: uow, now: time.Now}
}

// Increment adds amount to a user's balance inside the caller's unit of work.
func (l *Ledger) Increment(ctx context.Context, tx storage.Tx, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if err := validateMutation(class, amount); err != nil {
		return 0, err
	}
	return tx.IncrementWallet(ctx, userID, class, amount)
}

// Decrement subtracts amount from a user's balance inside the caller's unit of
// work. It fails with storage.ErrInsufficientBalance rather than go negative.
func (l *Ledger) Decrement(ctx context.Context, tx storage.Tx, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if err := validateMutation(class, amount); err != nil {
		return 0, err
	}
	return tx.DecrementWallet(ctx, userID, class, amount)
}

// Record appends a ledger entry inside the caller's unit of work. Id and
// Timestamp are assigned here.
func (l *Ledger) Record(ctx context.Context, tx storage.Tx, entry models.Transaction) (*models.Transaction, error) {
	if err := validateEntry(&entry); err != nil {
		return nil, err
	}
	entry.Id = uuid.New().String()
	entry.Timestamp = l.now().UTC()

	if err := tx.AppendTransaction(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return &entry, nil
}

// ChargeOrder debits a user's earned balance for an order and records the
// matching DEBIT entry. It returns the remaining earned balance.
func (l *Ledger) ChargeOrder(ctx context.Context, userID, orderID string, amount int64) (int64, error) {
	var balance int64
	err := l.uow.Run(ctx, func(tx storage.Tx) error {
		var err error
		balance, err = l.Decrement(ctx, tx, userID, models.EARNED, amount)
		if err != nil {
			return err
		}
		_, err = l.Record(ctx, tx, models.Transaction{
			UserId:     userID,
			Amount:     -amount,
			Kind:       models.DEBIT,
			EntityType: models.ORDER,
			EntityId:   orderID,
			Status:     models.SUCCESS,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func validateMutation(class models.BalanceClass, amount int64) error {
	if !class.Valid() {
		return fmt.Errorf("unknown balance class %q", class)
	}
	if amount <= 0 {
		return storage.ErrInvalidAmount
	}
	return nil
}

func validateEntry(entry *models.Transaction) error {
	switch {
	case entry.UserId == "":
		return fmt.Errorf("%w: missing user id", storage.ErrInvalidTransaction)
	case entry.EntityId == "":
		return fmt.Errorf("%w: missing entity id", storage.ErrInvalidTransaction)
	case entry.Amount == 0:
		return fmt.Errorf("%w: zero amount", storage.ErrInvalidTransaction)
	}

	switch entry.Kind {
	case models.DEBIT:
		if entry.Amount > 0 {
			return fmt.Errorf("%w: debit with positive amount", storage.ErrInvalidTransaction)
		}
	case models.CREDIT:
		if entry.Amount < 0 {
			return fmt.Errorf("%w: credit with negative amount", storage.ErrInvalidTransaction)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", storage.ErrInvalidTransaction, entry.Kind)
	}

	switch entry.EntityType {
	case models.RECOGNITION, models.ORDER, models.MISSION:
	default:
		return fmt.Errorf("%w: unknown entity type %q", storage.ErrInvalidTransaction, entry.EntityType)
	}

	switch entry.Status {
	case models.SUCCESS, models.FAILED, models.REVERSED:
	default:
		return fmt.Errorf("%w: unknown status %q", storage.ErrInvalidTransaction, entry.Status)
	}
	return nil
}
