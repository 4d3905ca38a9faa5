package models

import (
	"time"

	"github.com/chris/kudos-ledger/pkg/cadence"
)

// AllocationStatus is the outcome of one allocation attempt.
type AllocationStatus string

const (
	AllocationSuccess AllocationStatus = "success"
	AllocationFailed  AllocationStatus = "failed"
)

// AdHocAllocationType marks records written by one-off allocations.
const AdHocAllocationType = "ADHOC"

// AllocationDefinition describes a recurring coin grant.
type AllocationDefinition struct {
	Id           string          `dynamodbav:"id"`
	Name         string          `dynamodbav:"name"`
	Amount       int64           `dynamodbav:"amount"`
	Cadence      cadence.Cadence `dynamodbav:"cadence"`
	BalanceClass BalanceClass    `dynamodbav:"balance_class"`
	// ReceiverIds restricts the grant to a cohort. Empty means every wallet.
	ReceiverIds []string  `dynamodbav:"receiver_ids,omitempty"`
	Active      bool      `dynamodbav:"active"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
}

// AllocationRecord is the durable result of one allocation attempt.
// A success record's Id equals its Fence, so at most one can exist per period.
type AllocationRecord struct {
	Id             string           `dynamodbav:"id"`
	Fence          string           `dynamodbav:"fence"`
	DefinitionId   string           `dynamodbav:"definition_id"`
	Type           string           `dynamodbav:"type"`
	Period         string           `dynamodbav:"period"`
	AllocationDate time.Time        `dynamodbav:"allocation_date"`
	Amount         int64            `dynamodbav:"amount"`
	BalanceClass   BalanceClass     `dynamodbav:"balance_class"`
	ReceiverIds    []string         `dynamodbav:"receiver_ids"`
	Status         AllocationStatus `dynamodbav:"status"`
	Error          string           `dynamodbav:"error,omitempty"`
	CreatedAt      time.Time        `dynamodbav:"created_at"`
}

// AllocationFence is the identity of one (definition, cadence, period) payout.
func AllocationFence(definitionID string, p cadence.Period) string {
	return definitionID + "#" + string(p.Cadence) + "#" + p.Key()
}

// AllocationRequest asks a worker to run one scheduled allocation.
type AllocationRequest struct {
	DefinitionId string          `json:"definition_id"`
	Cadence      cadence.Cadence `json:"cadence"`
	RequestedAt  time.Time       `json:"requested_at"`
}
