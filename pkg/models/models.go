package models

import (
	"time"
)

// BalanceClass selects one of the two balances held by a wallet.
type BalanceClass string

const (
	// EARNED is the spendable balance credited when a claim is approved.
	EARNED BalanceClass = "earned"
	// GIVEABLE is the budget a user may award to others.
	GIVEABLE BalanceClass = "giveable"
)

// Valid reports whether c is a known balance class.
func (c BalanceClass) Valid() bool {
	return c == EARNED || c == GIVEABLE
}

// TransactionKind is the accounting side of a ledger entry.
type TransactionKind string

const (
	DEBIT  TransactionKind = "DEBIT"
	CREDIT TransactionKind = "CREDIT"
)

// EntityType names the business object that caused a ledger entry.
type EntityType string

const (
	RECOGNITION EntityType = "RECOGNITION"
	ORDER       EntityType = "ORDER"
	MISSION     EntityType = "MISSION"
)

// TransactionStatus defines the possible states of a ledger entry.
type TransactionStatus string

const (
	SUCCESS  TransactionStatus = "SUCCESS"
	FAILED   TransactionStatus = "FAILED"
	REVERSED TransactionStatus = "REVERSED"
)

// ClaimStatus defines the possible states of a claim.
type ClaimStatus string

const (
	PENDING  ClaimStatus = "PENDING"
	APPROVED ClaimStatus = "APPROVED"
	REJECTED ClaimStatus = "REJECTED"
)

// Valid reports whether s is a known claim status.
func (s ClaimStatus) Valid() bool {
	return s == PENDING || s == APPROVED || s == REJECTED
}

// Wallet represents the internal domain model for a user's wallet.
type Wallet struct {
	UserId          string    `json:"user_id" dynamodbav:"user_id"`
	EarnedBalance   int64     `json:"earned_balance" dynamodbav:"earned_balance"`
	GiveableBalance int64     `json:"giveable_balance" dynamodbav:"giveable_balance"`
	Version         int64     `json:"version" dynamodbav:"version"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Balance returns the balance held in the given class.
func (w *Wallet) Balance(class BalanceClass) int64 {
	if class == EARNED {
		return w.EarnedBalance
	}
	return w.GiveableBalance
}

// Transaction is an immutable ledger entry. Amount is signed: negative for debits.
type Transaction struct {
	Id            string            `dynamodbav:"id"`
	UserId        string            `dynamodbav:"user_id"`
	Amount        int64             `dynamodbav:"amount"`
	Kind          TransactionKind   `dynamodbav:"kind"`
	EntityType    EntityType        `dynamodbav:"entity_type"`
	EntityId      string            `dynamodbav:"entity_id"`
	RelatedUserId string            `dynamodbav:"related_user_id,omitempty"`
	ClaimId       string            `dynamodbav:"claim_id,omitempty"`
	Status        TransactionStatus `dynamodbav:"status"`
	Timestamp     time.Time         `dynamodbav:"timestamp"`
}

// ClaimReceiver is one receiver of a claim and the coins awarded to them.
type ClaimReceiver struct {
	ReceiverId string `json:"receiver_id" dynamodbav:"receiver_id"`
	Amount     int64  `json:"amount" dynamodbav:"amount"`
}

// Claim is a sender -> receivers coin award waiting for an admin decision.
type Claim struct {
	Id            string          `dynamodbav:"id"`
	SenderId      string          `dynamodbav:"sender_id"`
	RecognitionId string          `dynamodbav:"recognition_id"`
	Receivers     []ClaimReceiver `dynamodbav:"receivers"`
	Status        ClaimStatus     `dynamodbav:"status"`
	CreatedAt     time.Time       `dynamodbav:"created_at"`
	UpdatedAt     time.Time       `dynamodbav:"updated_at"`
}

// TotalAmount is the sum of all receiver amounts.
func (c *Claim) TotalAmount() int64 {
	var total int64
	for _, r := range c.Receivers {
		total += r.Amount
	}
	return total
}

// UserProfile is the display data the user directory returns for a user.
type UserProfile struct {
	UserId  string `dynamodbav:"user_id"`
	Name    string `dynamodbav:"name"`
	Picture string `dynamodbav:"picture,omitempty"`
}
