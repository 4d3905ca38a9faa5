package storage

import (
	"context"

	"github.com/chris/kudos-ledger/pkg/models"
)

// UserDirectory resolves display data for users owned by the user subsystem.
type UserDirectory interface {
	// FindUser returns nil, nil when the user is unknown.
	FindUser(ctx context.Context, userID string) (*models.UserProfile, error)
}

// RecognitionChecker validates recognition ids owned by the recognition subsystem.
type RecognitionChecker interface {
	RecognitionExists(ctx context.Context, recognitionID string) (bool, error)
}
