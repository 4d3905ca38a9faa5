// Package handlers composes the per-resource handlers into the API server.
package handlers

import (
	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/handlers/allocations"
	"github.com/chris/kudos-ledger/pkg/handlers/claims"
	"github.com/chris/kudos-ledger/pkg/handlers/transactions"
	"github.com/chris/kudos-ledger/pkg/handlers/wallets"
)

// ApiHandler implements the generated server interface.
type ApiHandler struct {
	*wallets.WalletsHandler
	*transactions.TransactionsHandler
	*claims.ClaimsHandler
	*allocations.AllocationsHandler
}

// NewApiHandler creates a new ApiHandler from its resource handlers.
func NewApiHandler(
	w *wallets.WalletsHandler,
	t *transactions.TransactionsHandler,
	c *claims.ClaimsHandler,
	a *allocations.AllocationsHandler,
) *ApiHandler {
	return &ApiHandler{
		WalletsHandler:      w,
		TransactionsHandler: t,
		ClaimsHandler:       c,
		AllocationsHandler:  a,
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
