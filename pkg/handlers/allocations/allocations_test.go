package allocations_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/kudos-ledger/pkg/allocation"
	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/cadence"
	"github.com/chris/kudos-ledger/pkg/handlers/allocations"
	"github.com/chris/kudos-ledger/pkg/handlers/allocations/mocks"
	"github.com/chris/kudos-ledger/pkg/models"
	scheduler_mocks "github.com/chris/kudos-ledger/pkg/scheduler/mocks"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var monthly = &models.AllocationDefinition{
	Id:           "monthly-giveable",
	Amount:       100,
	Cadence:      cadence.Monthly,
	BalanceClass: models.GIVEABLE,
	Active:       true,
}

func TestAllocateCoins(t *testing.T) {
	t.Run("Everyone", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("AllocateCoinsToAll", mock.Anything, int64(50), models.GIVEABLE).Return([]string{"alice", "bob"}, nil)

		h := allocations.NewAllocationsHandler(engine, nil)

		body, _ := json.Marshal(api.NewAllocation{Amount: 50, BalanceClass: api.BalanceClassGiveable})
		rr := httptest.NewRecorder()
		h.AllocateCoins(rr, httptest.NewRequest(http.MethodPost, "/allocations", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.AllocationResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, []string{"alice", "bob"}, got.AffectedUserIds)
	})

	t.Run("Specific Users", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("AllocateCoinsToSpecificUsers", mock.Anything, []string{"bob"}, int64(10), models.EARNED).Return([]string{"bob"}, nil)

		h := allocations.NewAllocationsHandler(engine, nil)

		ids := []string{"bob"}
		body, _ := json.Marshal(api.NewAllocation{UserIds: &ids, Amount: 10, BalanceClass: api.BalanceClassEarned})
		rr := httptest.NewRecorder()
		h.AllocateCoins(rr, httptest.NewRequest(http.MethodPost, "/allocations", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Unknown User", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("AllocateCoinsToSpecificUsers", mock.Anything, []string{"ghost"}, int64(10), models.EARNED).
			Return(nil, fmt.Errorf("user ghost: %w", storage.ErrWalletNotFound))

		h := allocations.NewAllocationsHandler(engine, nil)

		rr := httptest.NewRecorder()
		h.AllocateCoins(rr, httptest.NewRequest(http.MethodPost, "/allocations",
			bytes.NewReader([]byte(`{"userIds":["ghost"],"amount":10,"balanceClass":"earned"}`))))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("AllocateCoinsToAll", mock.Anything, int64(0), models.GIVEABLE).
			Return(nil, fmt.Errorf("%w: amount must be positive", allocation.ErrInvalidAllocation))

		h := allocations.NewAllocationsHandler(engine, nil)

		rr := httptest.NewRecorder()
		h.AllocateCoins(rr, httptest.NewRequest(http.MethodPost, "/allocations",
			bytes.NewReader([]byte(`{"amount":0,"balanceClass":"giveable"}`))))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateAllocationDefinition(t *testing.T) {
	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	engine := mocks.NewEngine(t)
	engine.On("SaveDefinition", mock.Anything, mock.MatchedBy(func(def *models.AllocationDefinition) bool {
		return def.Id == "monthly-giveable" && def.Cadence == cadence.Monthly && def.Active
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.AllocationDefinition).CreatedAt = created
	}).Return(nil)

	h := allocations.NewAllocationsHandler(engine, nil)

	body, _ := json.Marshal(api.AllocationDefinition{
		Id:           "monthly-giveable",
		Amount:       100,
		Cadence:      api.CadenceMONTHLY,
		BalanceClass: api.BalanceClassGiveable,
		Active:       true,
	})
	rr := httptest.NewRecorder()
	h.CreateAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var got api.AllocationDefinition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.NotNil(t, got.CreatedAt)
	assert.True(t, created.Equal(*got.CreatedAt))
}

func TestListAllocationDefinitions(t *testing.T) {
	engine := mocks.NewEngine(t)
	engine.On("Definitions", mock.Anything, false).Return([]models.AllocationDefinition{*monthly}, nil)

	h := allocations.NewAllocationsHandler(engine, nil)

	rr := httptest.NewRecorder()
	h.ListAllocationDefinitions(rr, httptest.NewRequest(http.MethodGet, "/allocations/definitions", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []api.AllocationDefinition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, api.CadenceMONTHLY, got[0].Cadence)
}

func TestRunAllocationDefinition(t *testing.T) {
	t.Run("Uses Definition Cadence", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("Definition", mock.Anything, "monthly-giveable").Return(monthly, nil)
		engine.On("RunScheduled", mock.Anything, "monthly-giveable", cadence.Monthly).Return(allocation.OutcomeSuccess, nil)

		h := allocations.NewAllocationsHandler(engine, nil)

		rr := httptest.NewRecorder()
		h.RunAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/run", nil),
			"monthly-giveable", api.RunAllocationDefinitionParams{})

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.AllocationRun
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, api.AllocationOutcomeSuccess, got.Outcome)
	})

	t.Run("Already Paid", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("RunScheduled", mock.Anything, "monthly-giveable", cadence.Monthly).Return(allocation.OutcomeSkipped, nil)

		h := allocations.NewAllocationsHandler(engine, nil)

		c := api.CadenceMONTHLY
		rr := httptest.NewRecorder()
		h.RunAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/run?cadence=MONTHLY", nil),
			"monthly-giveable", api.RunAllocationDefinitionParams{Cadence: &c})

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.AllocationRun
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, api.AllocationOutcomeSkipped, got.Outcome)
	})

	t.Run("Cadence Mismatch", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("RunScheduled", mock.Anything, "monthly-giveable", cadence.Daily).
			Return(allocation.Outcome(""), fmt.Errorf("%w: monthly-giveable runs MONTHLY", allocation.ErrCadenceMismatch))

		h := allocations.NewAllocationsHandler(engine, nil)

		c := api.CadenceDAILY
		rr := httptest.NewRecorder()
		h.RunAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/run?cadence=DAILY", nil),
			"monthly-giveable", api.RunAllocationDefinitionParams{Cadence: &c})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown Definition", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("Definition", mock.Anything, "ghost").Return(nil, storage.ErrNotFound)

		h := allocations.NewAllocationsHandler(engine, nil)

		rr := httptest.NewRecorder()
		h.RunAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/ghost/run", nil),
			"ghost", api.RunAllocationDefinitionParams{})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTriggerAllocationDefinition(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)

	t.Run("Queued With Delay", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("Definition", mock.Anything, "monthly-giveable").Return(monthly, nil)
		sched := scheduler_mocks.NewScheduler(t)
		sched.On("ScheduleAllocation", mock.Anything, &models.AllocationRequest{
			DefinitionId: "monthly-giveable",
			Cadence:      cadence.Monthly,
			RequestedAt:  now,
		}, 60*time.Second).Return(nil)

		h := allocations.NewAllocationsHandler(engine, sched)
		h.Now = func() time.Time { return now }

		rr := httptest.NewRecorder()
		h.TriggerAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/trigger",
			bytes.NewReader([]byte(`{"delaySeconds":60}`))), "monthly-giveable")

		assert.Equal(t, http.StatusAccepted, rr.Code)
		var got api.AllocationRequest
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "monthly-giveable", got.DefinitionId)
		assert.True(t, now.Equal(got.RequestedAt))
	})

	t.Run("Empty Body", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("Definition", mock.Anything, "monthly-giveable").Return(monthly, nil)
		sched := scheduler_mocks.NewScheduler(t)
		sched.On("ScheduleAllocation", mock.Anything, mock.Anything, time.Duration(0)).Return(nil)

		h := allocations.NewAllocationsHandler(engine, sched)

		rr := httptest.NewRecorder()
		h.TriggerAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/trigger", nil), "monthly-giveable")

		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("Delay Out Of Range", func(t *testing.T) {
		h := allocations.NewAllocationsHandler(mocks.NewEngine(t), scheduler_mocks.NewScheduler(t))

		rr := httptest.NewRecorder()
		h.TriggerAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/trigger",
			bytes.NewReader([]byte(`{"delaySeconds":901}`))), "monthly-giveable")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("No Queue Configured", func(t *testing.T) {
		h := allocations.NewAllocationsHandler(mocks.NewEngine(t), nil)

		rr := httptest.NewRecorder()
		h.TriggerAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/trigger", nil), "monthly-giveable")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("Queue Error", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.On("Definition", mock.Anything, "monthly-giveable").Return(monthly, nil)
		sched := scheduler_mocks.NewScheduler(t)
		sched.On("ScheduleAllocation", mock.Anything, mock.Anything, time.Duration(0)).Return(errors.New("sqs unavailable"))

		h := allocations.NewAllocationsHandler(engine, sched)

		rr := httptest.NewRecorder()
		h.TriggerAllocationDefinition(rr, httptest.NewRequest(http.MethodPost, "/allocations/definitions/monthly-giveable/trigger", nil), "monthly-giveable")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListAllocationRecords(t *testing.T) {
	engine := mocks.NewEngine(t)
	engine.On("ListRecords", mock.Anything, "monthly-giveable").Return([]models.AllocationRecord{
		{Id: "monthly-giveable#MONTHLY#2026-10", Fence: "monthly-giveable#MONTHLY#2026-10", DefinitionId: "monthly-giveable",
			Status: models.AllocationSuccess, ReceiverIds: []string{"alice"}},
		{Id: "f-1", Fence: "monthly-giveable#MONTHLY#2026-10", DefinitionId: "monthly-giveable",
			Status: models.AllocationFailed, Error: "wallet bob not found"},
	}, nil)

	h := allocations.NewAllocationsHandler(engine, nil)

	rr := httptest.NewRecorder()
	h.ListAllocationRecords(rr, httptest.NewRequest(http.MethodGet, "/allocations/definitions/monthly-giveable/records", nil), "monthly-giveable")

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []api.AllocationRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, api.AllocationRecordStatusFailed, got[1].Status)
	require.NotNil(t, got[1].Error)
	assert.Equal(t, []string{}, got[1].ReceiverIds)
}
