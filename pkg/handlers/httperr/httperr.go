// Package httperr maps domain errors to HTTP status codes.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/claims"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// Status returns the HTTP status code that describes err.
func Status(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrWalletNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidClaimState),
		errors.Is(err, storage.ErrAllocationConflict),
		errors.Is(err, storage.ErrWalletExists):
		return http.StatusConflict
	case errors.Is(err, storage.ErrInsufficientBalance), errors.Is(err, storage.ErrBalanceOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrInvalidAmount),
		errors.Is(err, storage.ErrInvalidTransaction),
		errors.Is(err, claims.ErrInvalidClaim),
		errors.Is(err, claims.ErrInvalidFilter),
		errors.Is(err, allocation.ErrInvalidAllocation),
		errors.Is(err, allocation.ErrCadenceMismatch),
		errors.Is(err, cadence.ErrUnknownCadence):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Write responds with the status for err and a message naming the failed action.
func Write(w http.ResponseWriter, action string, err error) {
	http.Error(w, fmt.Sprintf("Failed to %s: %v", action, err), Status(err))
}
