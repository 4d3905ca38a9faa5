package allocations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/handlers/httperr"
	"github.com/chris/kudos-ledger/pkg/mapping"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/scheduler"
)

// maxTriggerDelay mirrors the longest delivery delay the allocation queue accepts.
const maxTriggerDelay = 900

// Engine is the allocation engine as seen by the HTTP layer.
type Engine interface {
	AllocateCoinsToAll(ctx context.Context, amount int64, class models.BalanceClass) ([]string, error)
	AllocateCoinsToSpecificUsers(ctx context.Context, userIDs []string, amount int64, class models.BalanceClass) ([]string, error)
	RunScheduled(ctx context.Context, definitionID string, c cadence.Cadence) (allocation.Outcome, error)
	SaveDefinition(ctx context.Context, def *models.AllocationDefinition) error
	Definitions(ctx context.Context, activeOnly bool) ([]models.AllocationDefinition, error)
	Definition(ctx context.Context, id string) (*models.AllocationDefinition, error)
	ListRecords(ctx context.Context, definitionID string) ([]models.AllocationRecord, error)
}

// AllocationsHandler holds the dependencies for allocation-related handlers.
// Scheduler may be nil, in which case runs cannot be queued.
type AllocationsHandler struct {
	Engine    Engine
	Scheduler scheduler.Scheduler
	Now       func() time.Time
}

// NewAllocationsHandler creates a new AllocationsHandler.
func NewAllocationsHandler(engine Engine, sched scheduler.Scheduler) *AllocationsHandler {
	return &AllocationsHandler{Engine: engine, Scheduler: sched, Now: time.Now}
}

// AllocateCoins grants coins to the listed users, or to every wallet when none are listed.
func (h *AllocationsHandler) AllocateCoins(w http.ResponseWriter, r *http.Request) {
	var req api.NewAllocation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var (
		affected []string
		err      error
	)
	class := models.BalanceClass(req.BalanceClass)
	if req.UserIds == nil {
		affected, err = h.Engine.AllocateCoinsToAll(r.Context(), req.Amount, class)
	} else {
		affected, err = h.Engine.AllocateCoinsToSpecificUsers(r.Context(), *req.UserIds, req.Amount, class)
	}
	if err != nil {
		httperr.Write(w, "allocate coins", err)
		return
	}
	if affected == nil {
		affected = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.AllocationResult{AffectedUserIds: affected}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListAllocationDefinitions handles the logic for retrieving every definition.
func (h *AllocationsHandler) ListAllocationDefinitions(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Engine.Definitions(r.Context(), false)
	if err != nil {
		httperr.Write(w, "retrieve allocation definitions", err)
		return
	}

	apiDefs := make([]*api.AllocationDefinition, len(defs))
	for i := range defs {
		apiDefs[i] = mapping.ToApiAllocationDefinition(&defs[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiDefs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateAllocationDefinition creates or replaces a definition.
func (h *AllocationsHandler) CreateAllocationDefinition(w http.ResponseWriter, r *http.Request) {
	var newDef api.AllocationDefinition
	if err := json.NewDecoder(r.Body).Decode(&newDef); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	def := mapping.ToDomainAllocationDefinition(&newDef)
	if err := h.Engine.SaveDefinition(r.Context(), def); err != nil {
		httperr.Write(w, "save allocation definition", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAllocationDefinition(def)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RunAllocationDefinition runs a definition for the current period, synchronously.
func (h *AllocationsHandler) RunAllocationDefinition(w http.ResponseWriter, r *http.Request, definitionId string, params api.RunAllocationDefinitionParams) {
	var c cadence.Cadence
	if params.Cadence != nil {
		c = cadence.Cadence(*params.Cadence)
	} else {
		def, err := h.Engine.Definition(r.Context(), definitionId)
		if err != nil {
			httperr.Write(w, "run allocation", err)
			return
		}
		c = def.Cadence
	}

	outcome, err := h.Engine.RunScheduled(r.Context(), definitionId, c)
	if err != nil {
		httperr.Write(w, "run allocation", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.AllocationRun{
		DefinitionId: definitionId,
		Cadence:      api.Cadence(c),
		Outcome:      api.AllocationOutcome(outcome),
	}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// TriggerAllocationDefinition queues a run of a definition for the allocation worker.
func (h *AllocationsHandler) TriggerAllocationDefinition(w http.ResponseWriter, r *http.Request, definitionId string) {
	if h.Scheduler == nil {
		http.Error(w, "Allocation queue is not configured", http.StatusServiceUnavailable)
		return
	}

	// The body is optional.
	var trigger api.NewTrigger
	if err := json.NewDecoder(r.Body).Decode(&trigger); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	delay := 0
	if trigger.DelaySeconds != nil {
		delay = *trigger.DelaySeconds
	}
	if delay < 0 || delay > maxTriggerDelay {
		http.Error(w, fmt.Sprintf("delaySeconds must be between 0 and %d", maxTriggerDelay), http.StatusBadRequest)
		return
	}

	def, err := h.Engine.Definition(r.Context(), definitionId)
	if err != nil {
		httperr.Write(w, "trigger allocation", err)
		return
	}

	req := &models.AllocationRequest{
		DefinitionId: def.Id,
		Cadence:      def.Cadence,
		RequestedAt:  h.Now().UTC(),
	}
	if err := h.Scheduler.ScheduleAllocation(r.Context(), req, time.Duration(delay)*time.Second); err != nil {
		http.Error(w, fmt.Sprintf("Failed to queue allocation: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(mapping.ToApiAllocationRequest(req)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListAllocationRecords returns the audit trail of a definition, newest first.
func (h *AllocationsHandler) ListAllocationRecords(w http.ResponseWriter, r *http.Request, definitionId string) {
	records, err := h.Engine.ListRecords(r.Context(), definitionId)
	if err != nil {
		httperr.Write(w, "retrieve allocation records", err)
		return
	}

	apiRecords := make([]*api.AllocationRecord, len(records))
	for i := range records {
		apiRecords[i] = mapping.ToApiAllocationRecord(&records[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRecords); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
