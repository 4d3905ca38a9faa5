package storage

import (
	"context"

	"github.com/chris/kudos-ledger/pkg/models"
)

// TransactionReader defines the interface for reading the transaction log.
type TransactionReader interface {
	// ListTransactionsByUserID retrieves all ledger entries owned by a user, newest first.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)

	// ListTransactionsByClaimID retrieves all ledger entries that reference a claim.
	ListTransactionsByClaimID(ctx context.Context, claimID string) ([]models.Transaction, error)
}
