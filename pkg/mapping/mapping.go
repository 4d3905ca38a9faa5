package mapping

import (
	"fmt"

	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/claims"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/google/uuid"
)

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(wallet *models.Wallet) *api.Wallet {
	return &api.Wallet{
		UserId:          wallet.UserId,
		EarnedBalance:   wallet.EarnedBalance,
		GiveableBalance: wallet.GiveableBalance,
		Version:         wallet.Version,
		CreatedAt:       wallet.CreatedAt,
		UpdatedAt:       wallet.UpdatedAt,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:            tx.Id,
		UserId:        tx.UserId,
		Amount:        tx.Amount,
		Kind:          api.TransactionKind(tx.Kind),
		EntityType:    api.TransactionEntityType(tx.EntityType),
		EntityId:      tx.EntityId,
		RelatedUserId: optional(tx.RelatedUserId),
		ClaimId:       optional(tx.ClaimId),
		Status:        api.TransactionStatus(tx.Status),
		Timestamp:     tx.Timestamp,
	}
}

// ToApiTransactions converts a list of ledger entries, keeping their order.
func ToApiTransactions(txs []models.Transaction) []*api.Transaction {
	out := make([]*api.Transaction, len(txs))
	for i := range txs {
		out[i] = ToApiTransaction(&txs[i])
	}
	return out
}

// ToApiClaim converts a domain Claim model to an API Claim model.
// Claim IDs are UUIDs; anything else is reported as an error.
func ToApiClaim(claim *models.Claim) (*api.Claim, error) {
	id, err := uuid.Parse(claim.Id)
	if err != nil {
		return nil, fmt.Errorf("claim %q has a malformed id: %w", claim.Id, err)
	}

	receivers := make([]api.ClaimReceiver, len(claim.Receivers))
	for i, r := range claim.Receivers {
		receivers[i] = api.ClaimReceiver{ReceiverId: r.ReceiverId, Amount: r.Amount}
	}

	return &api.Claim{
		Id:            id,
		SenderId:      claim.SenderId,
		RecognitionId: claim.RecognitionId,
		Receivers:     receivers,
		Status:        api.ClaimStatus(claim.Status),
		CreatedAt:     claim.CreatedAt,
		UpdatedAt:     claim.UpdatedAt,
	}, nil
}

// ToApiClaimView converts a listed claim, including the display data of its participants.
func ToApiClaimView(view *claims.ClaimView) (*api.Claim, error) {
	apiClaim, err := ToApiClaim(&view.Claim)
	if err != nil {
		return nil, err
	}

	apiClaim.Sender = &api.UserSummary{
		UserId:  view.Sender.UserId,
		Name:    optional(view.Sender.Name),
		Picture: optional(view.Sender.Picture),
	}
	apiClaim.Receivers = make([]api.ClaimReceiver, len(view.Receivers))
	for i, r := range view.Receivers {
		apiClaim.Receivers[i] = api.ClaimReceiver{
			ReceiverId: r.UserId,
			Amount:     r.Amount,
			Name:       optional(r.Name),
			Picture:    optional(r.Picture),
		}
	}
	return apiClaim, nil
}

// ToApiClaimPage converts one page of a claim listing.
func ToApiClaimPage(page *claims.PagedClaims) (*api.ClaimPage, error) {
	items := make([]api.Claim, 0, len(page.Claims))
	for i := range page.Claims {
		c, err := ToApiClaimView(&page.Claims[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return &api.ClaimPage{
		Items: items,
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
	}, nil
}

// ToDomainReceivers converts the receivers of an award request.
func ToDomainReceivers(receivers []api.AwardReceiver) []models.ClaimReceiver {
	out := make([]models.ClaimReceiver, len(receivers))
	for i, r := range receivers {
		out[i] = models.ClaimReceiver{ReceiverId: r.ReceiverId, Amount: r.Amount}
	}
	return out
}

// ToDomainClaimFilter converts the query parameters of a claim listing.
func ToDomainClaimFilter(params api.ListClaimsParams) claims.Filter {
	var f claims.Filter
	if params.UserId != nil {
		f.UserID = *params.UserId
	}
	if params.Status != nil {
		f.Status = models.ClaimStatus(*params.Status)
	}
	if params.Page != nil {
		f.Page = *params.Page
	}
	if params.Limit != nil {
		f.Limit = *params.Limit
	}
	if params.Order != nil {
		f.Order = claims.Order(*params.Order)
	}
	return f
}

// ToApiAllocationDefinition converts a domain AllocationDefinition to its API model.
func ToApiAllocationDefinition(def *models.AllocationDefinition) *api.AllocationDefinition {
	out := &api.AllocationDefinition{
		Id:           def.Id,
		Name:         optional(def.Name),
		Amount:       def.Amount,
		Cadence:      api.Cadence(def.Cadence),
		BalanceClass: api.BalanceClass(def.BalanceClass),
		Active:       def.Active,
	}
	if len(def.ReceiverIds) > 0 {
		ids := append([]string(nil), def.ReceiverIds...)
		out.ReceiverIds = &ids
	}
	if !def.CreatedAt.IsZero() {
		createdAt := def.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}

// ToDomainAllocationDefinition converts an API AllocationDefinition to a domain model.
// CreatedAt is left for the engine to stamp.
func ToDomainAllocationDefinition(def *api.AllocationDefinition) *models.AllocationDefinition {
	out := &models.AllocationDefinition{
		Id:           def.Id,
		Amount:       def.Amount,
		Cadence:      cadence.Cadence(def.Cadence),
		BalanceClass: models.BalanceClass(def.BalanceClass),
		Active:       def.Active,
	}
	if def.Name != nil {
		out.Name = *def.Name
	}
	if def.ReceiverIds != nil {
		out.ReceiverIds = append([]string(nil), (*def.ReceiverIds)...)
	}
	return out
}

// ToApiAllocationRecord converts a domain AllocationRecord to its API model.
func ToApiAllocationRecord(record *models.AllocationRecord) *api.AllocationRecord {
	receivers := record.ReceiverIds
	if receivers == nil {
		receivers = []string{}
	}
	return &api.AllocationRecord{
		Id:             record.Id,
		Fence:          record.Fence,
		DefinitionId:   record.DefinitionId,
		Type:           record.Type,
		Period:         record.Period,
		AllocationDate: record.AllocationDate,
		Amount:         record.Amount,
		BalanceClass:   api.BalanceClass(record.BalanceClass),
		ReceiverIds:    receivers,
		Status:         api.AllocationRecordStatus(record.Status),
		Error:          optional(record.Error),
		CreatedAt:      record.CreatedAt,
	}
}

// ToApiAllocationRequest converts a queued allocation run.
func ToApiAllocationRequest(req *models.AllocationRequest) *api.AllocationRequest {
	return &api.AllocationRequest{
		DefinitionId: req.DefinitionId,
		Cadence:      api.Cadence(req.Cadence),
		RequestedAt:  req.RequestedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
