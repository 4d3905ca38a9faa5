package storage

import (
	"context"

	"github.com/chris/kudos-ledger/pkg/models"
)

// AllocationStore defines the interface for allocation definitions and records.
type AllocationStore interface {
	// GetAllocationDefinition retrieves a definition, failing with ErrNotFound.
	GetAllocationDefinition(ctx context.Context, id string) (*models.AllocationDefinition, error)

	// PutAllocationDefinition creates or replaces a definition.
	PutAllocationDefinition(ctx context.Context, def *models.AllocationDefinition) error

	// ListAllocationDefinitions retrieves definitions, optionally only the active ones.
	ListAllocationDefinitions(ctx context.Context, activeOnly bool) ([]models.AllocationDefinition, error)

	// GetSuccessfulAllocation returns the success record for a fence, or nil if there is none.
	GetSuccessfulAllocation(ctx context.Context, fence string) (*models.AllocationRecord, error)

	// PutAllocationRecord writes a record outside any unit of work. It is used for
	// failed attempts, which must stay visible after the attempt rolled back.
	PutAllocationRecord(ctx context.Context, record *models.AllocationRecord) error

	// ListAllocationRecords retrieves every record written for a definition, newest first.
	ListAllocationRecords(ctx context.Context, definitionID string) ([]models.AllocationRecord, error)
}
