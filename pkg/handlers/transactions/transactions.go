package transactions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/kudos-ledger/pkg/handlers/httperr"
	"github.com/chris/kudos-ledger/pkg/mapping"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/oapi-codegen/runtime/types"
)

// TransactionsHandler serves reads of the transaction log.
type TransactionsHandler struct {
	Store storage.TransactionReader
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionReader) *TransactionsHandler {
	return &TransactionsHandler{Store: store}
}

// ListWalletTransactions handles the logic for retrieving all transactions of a user, newest first.
func (h *TransactionsHandler) ListWalletTransactions(w http.ResponseWriter, r *http.Request, userId string) {
	domainTxs, err := h.Store.ListTransactionsByUserID(r.Context(), userId)
	if err != nil {
		httperr.Write(w, "retrieve transactions", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiTransactions(domainTxs)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListClaimTransactions handles the logic for retrieving the entries that reference a claim.
func (h *TransactionsHandler) ListClaimTransactions(w http.ResponseWriter, r *http.Request, claimId types.UUID) {
	domainTxs, err := h.Store.ListTransactionsByClaimID(r.Context(), claimId.String())
	if err != nil {
		httperr.Write(w, "retrieve transactions", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiTransactions(domainTxs)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
