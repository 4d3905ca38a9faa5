package claims

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/kudos-ledger/pkg/api"
	workflow "github.com/chris/kudos-ledger/pkg/claims"
	"github.com/chris/kudos-ledger/pkg/handlers/httperr"
	"github.com/chris/kudos-ledger/pkg/mapping"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/oapi-codegen/runtime/types"
)

// Workflow is the claim lifecycle the handlers drive.
type Workflow interface {
	Award(ctx context.Context, senderID string, receivers []models.ClaimReceiver, recognitionID string) (*models.Claim, error)
	Approve(ctx context.Context, claimID string) (*models.Claim, error)
	Reject(ctx context.Context, claimID string) (*models.Claim, error)
	Get(ctx context.Context, claimID string) (*models.Claim, error)
	Filter(ctx context.Context, f workflow.Filter) (*workflow.PagedClaims, error)
}

// ClaimsHandler holds the dependencies for claim-related handlers.
type ClaimsHandler struct {
	Workflow Workflow
}

// NewClaimsHandler creates a new ClaimsHandler.
func NewClaimsHandler(wf Workflow) *ClaimsHandler {
	return &ClaimsHandler{Workflow: wf}
}

// AwardRecognition debits the sender and opens a PENDING claim for a recognition.
func (h *ClaimsHandler) AwardRecognition(w http.ResponseWriter, r *http.Request, recognitionId string) {
	var award api.NewAward
	if err := json.NewDecoder(r.Body).Decode(&award); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	claim, err := h.Workflow.Award(r.Context(), award.SenderId, mapping.ToDomainReceivers(award.Receivers), recognitionId)
	if err != nil {
		httperr.Write(w, "award recognition", err)
		return
	}

	writeClaim(w, http.StatusCreated, claim)
}

// ListClaims handles the logic for listing one page of claims.
func (h *ClaimsHandler) ListClaims(w http.ResponseWriter, r *http.Request, params api.ListClaimsParams) {
	page, err := h.Workflow.Filter(r.Context(), mapping.ToDomainClaimFilter(params))
	if err != nil {
		httperr.Write(w, "list claims", err)
		return
	}

	apiPage, err := mapping.ToApiClaimPage(page)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list claims: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiPage); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetClaim handles the logic for retrieving a claim by its ID.
func (h *ClaimsHandler) GetClaim(w http.ResponseWriter, r *http.Request, claimId types.UUID) {
	claim, err := h.Workflow.Get(r.Context(), claimId.String())
	if err != nil {
		httperr.Write(w, "retrieve claim", err)
		return
	}

	writeClaim(w, http.StatusOK, claim)
}

// ApproveClaim credits every receiver of a pending claim.
func (h *ClaimsHandler) ApproveClaim(w http.ResponseWriter, r *http.Request, claimId types.UUID) {
	claim, err := h.Workflow.Approve(r.Context(), claimId.String())
	if err != nil {
		httperr.Write(w, "approve claim", err)
		return
	}

	writeClaim(w, http.StatusOK, claim)
}

// RejectClaim refunds the sender of a pending claim.
func (h *ClaimsHandler) RejectClaim(w http.ResponseWriter, r *http.Request, claimId types.UUID) {
	claim, err := h.Workflow.Reject(r.Context(), claimId.String())
	if err != nil {
		httperr.Write(w, "reject claim", err)
		return
	}

	writeClaim(w, http.StatusOK, claim)
}

func writeClaim(w http.ResponseWriter, status int, claim *models.Claim) {
	apiClaim, err := mapping.ToApiClaim(claim)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiClaim); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
