package storage

import (
	"context"

	"github.com/chris/kudos-ledger/pkg/models"
)

// ClaimQuery selects claims. Empty fields do not filter.
type ClaimQuery struct {
	SenderID string
	Status   models.ClaimStatus
}

// ClaimReader defines the interface for reading claims outside a unit of work.
type ClaimReader interface {
	// GetClaim retrieves a claim by its ID.
	GetClaim(ctx context.Context, claimID string) (*models.Claim, error)

	// ListClaims retrieves every claim matching the query, in no particular order.
	ListClaims(ctx context.Context, query ClaimQuery) ([]models.Claim, error)
}
