package storage

import (
	"errors"
	"fmt"

	"github.com/chris/kudos-ledger/pkg/models"
)

var (
	// ErrNotFound is returned when a claim, wallet or allocation definition does not exist.
	ErrNotFound = errors.New("not found")

	// ErrWalletNotFound is returned when a balance mutation targets a user without a wallet.
	// Wallets are provisioned with the account, so this indicates a data-integrity problem.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletExists is returned when provisioning a wallet that already exists.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrInsufficientBalance is returned when a decrement would leave a balance negative.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceOverflow is returned when an increment would exceed the largest representable balance.
	ErrBalanceOverflow = errors.New("balance overflow")

	// ErrInvalidClaimState is returned when approving or rejecting a claim that is not PENDING.
	ErrInvalidClaimState = errors.New("claim is not pending")

	// ErrAllocationConflict is returned when a success record already exists for the period.
	ErrAllocationConflict = errors.New("allocation already recorded for period")

	// ErrInvalidAmount is returned when a wallet mutation is asked for a non-positive amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidTransaction is returned when a ledger entry misses a required field.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrUnitOfWorkTooLarge is returned when a unit of work exceeds what the store can commit atomically.
	ErrUnitOfWorkTooLarge = errors.New("unit of work too large")
)

// InsufficientBalanceError provides details about a balance shortage.
type InsufficientBalanceError struct {
	UserID    string
	Class     models.BalanceClass
	Available int64
	Requested int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance for user %s: available %d, requested %d",
		e.Class, e.UserID, e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// InvalidClaimStateError names the claim and the state it was found in.
type InvalidClaimStateError struct {
	ClaimID string
	Status  models.ClaimStatus
}

func (e *InvalidClaimStateError) Error() string {
	return fmt.Sprintf("claim %s is %s, expected %s", e.ClaimID, e.Status, models.PENDING)
}

func (e *InvalidClaimStateError) Unwrap() error {
	return ErrInvalidClaimState
}
