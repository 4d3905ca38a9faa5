package storage

import (
	"context"

	"github.com/chris/kudos-ledger/pkg/models"
)

// UnitOfWork executes a group of writes atomically.
type UnitOfWork interface {
	// Run calls fn with a Tx handle. Every write made through the handle commits
	// together when fn returns nil, and none of them is applied when fn returns an
	// error or the commit fails. The error from fn is returned unchanged.
	Run(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the handle passed to a unit of work. Reads made through it observe the
// writes already staged in the same unit.
type Tx interface {
	// IncrementWallet adds amount to the given balance and returns the new balance.
	// It fails with ErrWalletNotFound if the user has no wallet.
	IncrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error)

	// DecrementWallet subtracts amount from the given balance and returns the new balance.
	// It fails with ErrInsufficientBalance if the balance would become negative; the
	// check is enforced again when the unit commits.
	DecrementWallet(ctx context.Context, userID string, class models.BalanceClass, amount int64) (int64, error)

	// AppendTransaction stages a new ledger entry.
	AppendTransaction(ctx context.Context, tx *models.Transaction) error

	// CreateClaim stages a new claim.
	CreateClaim(ctx context.Context, claim *models.Claim) error

	// GetClaim reads a claim, failing with ErrNotFound.
	GetClaim(ctx context.Context, claimID string) (*models.Claim, error)

	// TransitionClaim moves a claim from one status to another. The commit fails
	// with ErrInvalidClaimState if the stored status is no longer from.
	TransitionClaim(ctx context.Context, claimID string, from, to models.ClaimStatus) error

	// PutAllocationRecord stages an allocation record. Success records are unique per
	// fence; a duplicate fails with ErrAllocationConflict.
	PutAllocationRecord(ctx context.Context, record *models.AllocationRecord) error
}
