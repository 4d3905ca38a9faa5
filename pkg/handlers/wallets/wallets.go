package wallets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/handlers/httperr"
	"github.com/chris/kudos-ledger/pkg/mapping"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// Ledger is the balance-changing side of the wallet API.
type Ledger interface {
	ChargeOrder(ctx context.Context, userID, orderID string, amount int64) (int64, error)
}

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store  storage.WalletStore
	Ledger Ledger
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.WalletStore, ledger Ledger) *WalletsHandler {
	return &WalletsHandler{Store: store, Ledger: ledger}
}

// CreateWallet handles the logic for provisioning a new wallet.
func (h *WalletsHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var newWallet api.NewWallet
	if err := json.NewDecoder(r.Body).Decode(&newWallet); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(newWallet.UserId) == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	createdWallet, err := h.Store.CreateWallet(r.Context(), newWallet.UserId)
	if err != nil {
		httperr.Write(w, "create wallet", err)
		return
	}

	apiWallet := mapping.ToApiWallet(createdWallet)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiWallet); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListWallets handles the logic for retrieving all wallets.
func (h *WalletsHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	domainWallets, err := h.Store.ListWallets(r.Context())
	if err != nil {
		httperr.Write(w, "retrieve wallets", err)
		return
	}

	apiWallets := make([]*api.Wallet, len(domainWallets))
	for i := range domainWallets {
		apiWallets[i] = mapping.ToApiWallet(&domainWallets[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiWallets); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetWallet handles the logic for retrieving a user's wallet.
func (h *WalletsHandler) GetWallet(w http.ResponseWriter, r *http.Request, userId string) {
	domainWallet, err := h.Store.GetWallet(r.Context(), userId)
	if err != nil {
		httperr.Write(w, "retrieve wallet", err)
		return
	}

	apiWallet := mapping.ToApiWallet(domainWallet)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiWallet); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ChargeOrder debits an order from the user's earned balance.
func (h *WalletsHandler) ChargeOrder(w http.ResponseWriter, r *http.Request, userId string) {
	var order api.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if order.OrderId == "" || order.Amount <= 0 {
		http.Error(w, "orderId and a positive amount are required", http.StatusBadRequest)
		return
	}

	balance, err := h.Ledger.ChargeOrder(r.Context(), userId, order.OrderId, order.Amount)
	if err != nil {
		httperr.Write(w, "charge order", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.OrderCharge{
		UserId:        userId,
		OrderId:       order.OrderId,
		Amount:        order.Amount,
		EarnedBalance: balance,
	}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
