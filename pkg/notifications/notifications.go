// Package notifications publishes ledger events for the notification subsystem.
// Delivery (Slack, email) is handled by the consumer of the queue.
package notifications

import (
	"context"
	"time"
)

// Kind names a ledger event.
type Kind string

const (
	ClaimApproved       Kind = "claimApproved"
	ClaimRejected       Kind = "claimRejected"
	AllocationCompleted Kind = "allocationCompleted"
)

// Message is the payload published for one ledger event.
type Message struct {
	Kind          Kind      `json:"kind"`
	ClaimId       string    `json:"claim_id,omitempty"`
	RecognitionId string    `json:"recognition_id,omitempty"`
	SenderId      string    `json:"sender_id,omitempty"`
	DefinitionId  string    `json:"definition_id,omitempty"`
	Period        string    `json:"period,omitempty"`
	ReceiverIds   []string  `json:"receiver_ids"`
	Amount        int64     `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher sends messages to the notification subsystem.
type Publisher interface {
	Publish(ctx context.Context, msg *Message) error
}

// NoOpPublisher drops every message.
type NoOpPublisher struct{}

// Publish does nothing.
func (NoOpPublisher) Publish(ctx context.Context, msg *Message) error {
	return nil
}
