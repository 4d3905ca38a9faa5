package memory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// unit is the storage.Tx handed to a unit of work. It is only used while the
// store lock is held.
type unit struct {
	store        *Store
	now          time.Time
	wallets      map[string]models.Wallet
	transactions []models.Transaction
	claims       map[string]models.Claim
	records      map[string]models.AllocationRecord
}

func (u *unit) wallet(userID string) (models.Wallet, error) {
	if w, ok := u.wallets[userID]; ok {
		return w, nil
	}
	w, ok := u.store.wallets[userID]
	if !ok {
		return models.Wallet{}, fmt.Errorf("user %s: %w", userID, storage.ErrWalletNotFound)
	}
	return w, nil
}

func (u *unit) IncrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, storage.ErrInvalidAmount
	}
	w, err := u.wallet(userID)
	if err != nil {
		return 0, err
	}
	if w.Balance(class) > math.MaxInt64-amount {
		return 0, fmt.Errorf("user %s %s balance: %w", userID, class, storage.ErrBalanceOverflow)
	}
	if class == models.EARNED {
		w.EarnedBalance += amount
	} else {
		w.GiveableBalance += amount
	}
	w.Version++
	w.UpdatedAt = u.now
	u.wallets[userID] = w
	return w.Balance(class), nil
}

func (u *unit) DecrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, storage.ErrInvalidAmount
	}
	w, err := u.wallet(userID)
	if err != nil {
		return 0, err
	}
	if available := w.Balance(class); available < amount {
		return 0, &storage.InsufficientBalanceError{UserID: userID, Class: class, Available: available, Requested: amount}
	}
	if class == models.EARNED {
		w.EarnedBalance -= amount
	} else {
		w.GiveableBalance -= amount
	}
	w.Version++
	w.UpdatedAt = u.now
	u.wallets[userID] = w
	return w.Balance(class), nil
}

func (u *unit) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	u.transactions = append(u.transactions, *tx)
	return nil
}

func (u *unit) CreateClaim(ctx context.Context, claim *models.Claim) error {
	if _, ok := u.claims[claim.Id]; ok {
		return fmt.Errorf("claim %s already exists", claim.Id)
	}
	if _, ok := u.store.claims[claim.Id]; ok {
		return fmt.Errorf("claim %s already exists", claim.Id)
	}
	u.claims[claim.Id] = *copyClaim(*claim)
	return nil
}

func (u *unit) GetClaim(ctx context.Context, claimID string) (*models.Claim, error) {
	if c, ok := u.claims[claimID]; ok {
		return copyClaim(c), nil
	}
	c, ok := u.store.claims[claimID]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", claimID, storage.ErrNotFound)
	}
	return copyClaim(c), nil
}

func (u *unit) TransitionClaim(ctx context.Context, claimID string, from, to models.ClaimStatus) error {
	c, err := u.GetClaim(ctx, claimID)
	if err != nil {
		return err
	}
	if c.Status != from {
		return &storage.InvalidClaimStateError{ClaimID: claimID, Status: c.Status}
	}
	c.Status = to
	c.UpdatedAt = u.now
	u.claims[claimID] = *c
	return nil
}

func (u *unit) PutAllocationRecord(ctx context.Context, record *models.AllocationRecord) error {
	_, staged := u.records[record.Id]
	_, stored := u.store.records[record.Id]
	if staged || stored {
		return fmt.Errorf("allocation record %s: %w", record.Id, storage.ErrAllocationConflict)
	}
	u.records[record.Id] = *record
	return nil
}

func (u *unit) commit() {
	for id, w := range u.wallets {
		u.store.wallets[id] = w
	}
	u.store.transactions = append(u.store.transactions, u.transactions...)
	for id, c := range u.claims {
		u.store.claims[id] = c
	}
	for id, r := range u.records {
		u.store.records[id] = r
	}
}
