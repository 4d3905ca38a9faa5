package storage

import (
	"context"

	"github.com/chris/kudos-ledger/pkg/models"
)

// WalletStore defines the interface for provisioning and reading wallets.
// Balances are only ever changed through a Tx.
type WalletStore interface {
	// GetWallet retrieves a user's wallet by their user ID.
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// CreateWallet provisions a wallet with both balances at zero.
	CreateWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// ListWallets retrieves all wallets from the storage.
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}
