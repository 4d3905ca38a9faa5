package claims_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/kudos-ledger/pkg/api"
	workflow "github.com/chris/kudos-ledger/pkg/claims"
	"github.com/chris/kudos-ledger/pkg/handlers/claims"
	"github.com/chris/kudos-ledger/pkg/handlers/claims/mocks"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingClaim(id uuid.UUID) *models.Claim {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	return &models.Claim{
		Id:            id.String(),
		SenderId:      "alice",
		RecognitionId: "rec-1",
		Receivers: []models.ClaimReceiver{
			{ReceiverId: "bob", Amount: 30},
			{ReceiverId: "carol", Amount: 20},
		},
		Status:    models.PENDING,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAwardRecognition(t *testing.T) {
	id := uuid.New()
	receivers := []models.ClaimReceiver{{ReceiverId: "bob", Amount: 30}, {ReceiverId: "carol", Amount: 20}}
	body, _ := json.Marshal(api.NewAward{
		SenderId:  "alice",
		Receivers: []api.AwardReceiver{{ReceiverId: "bob", Amount: 30}, {ReceiverId: "carol", Amount: 20}},
	})

	t.Run("Success", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Award", mock.Anything, "alice", receivers, "rec-1").Return(pendingClaim(id), nil)

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.AwardRecognition(rr, httptest.NewRequest(http.MethodPost, "/recognitions/rec-1/awards", bytes.NewReader(body)), "rec-1")

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.Claim
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, id, got.Id)
		assert.Equal(t, api.ClaimStatusPENDING, got.Status)
		assert.Len(t, got.Receivers, 2)
	})

	t.Run("Insufficient Giveable Balance", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Award", mock.Anything, "alice", receivers, "rec-1").
			Return(nil, &storage.InsufficientBalanceError{UserID: "alice", Class: models.GIVEABLE, Available: 10, Requested: 50})

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.AwardRecognition(rr, httptest.NewRequest(http.MethodPost, "/recognitions/rec-1/awards", bytes.NewReader(body)), "rec-1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Self Award", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Award", mock.Anything, "alice", receivers, "rec-1").
			Return(nil, fmt.Errorf("%w: sender cannot award themselves", workflow.ErrInvalidClaim))

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.AwardRecognition(rr, httptest.NewRequest(http.MethodPost, "/recognitions/rec-1/awards", bytes.NewReader(body)), "rec-1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestApproveClaim(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		approved := pendingClaim(id)
		approved.Status = models.APPROVED

		wf := mocks.NewWorkflow(t)
		wf.On("Approve", mock.Anything, id.String()).Return(approved, nil)

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.ApproveClaim(rr, httptest.NewRequest(http.MethodPost, "/claims/"+id.String()+"/approve", nil), id)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Claim
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, api.ClaimStatusAPPROVED, got.Status)
	})

	t.Run("Already Decided", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Approve", mock.Anything, id.String()).
			Return(nil, &storage.InvalidClaimStateError{ClaimID: id.String(), Status: models.REJECTED})

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.ApproveClaim(rr, httptest.NewRequest(http.MethodPost, "/claims/"+id.String()+"/approve", nil), id)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Unknown Claim", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Approve", mock.Anything, id.String()).Return(nil, fmt.Errorf("claim %s: %w", id, storage.ErrNotFound))

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.ApproveClaim(rr, httptest.NewRequest(http.MethodPost, "/claims/"+id.String()+"/approve", nil), id)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRejectClaim(t *testing.T) {
	id := uuid.New()
	rejected := pendingClaim(id)
	rejected.Status = models.REJECTED

	wf := mocks.NewWorkflow(t)
	wf.On("Reject", mock.Anything, id.String()).Return(rejected, nil)

	h := claims.NewClaimsHandler(wf)

	rr := httptest.NewRecorder()
	h.RejectClaim(rr, httptest.NewRequest(http.MethodPost, "/claims/"+id.String()+"/reject", nil), id)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got api.Claim
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, api.ClaimStatusREJECTED, got.Status)
}

func TestGetClaim(t *testing.T) {
	id := uuid.New()

	wf := mocks.NewWorkflow(t)
	wf.On("Get", mock.Anything, id.String()).Return(pendingClaim(id), nil)

	h := claims.NewClaimsHandler(wf)

	rr := httptest.NewRecorder()
	h.GetClaim(rr, httptest.NewRequest(http.MethodGet, "/claims/"+id.String(), nil), id)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListClaims(t *testing.T) {
	id := uuid.New()
	status := api.ClaimStatusPENDING
	limit := 5

	t.Run("Success", func(t *testing.T) {
		wf := mocks.NewWorkflow(t)
		wf.On("Filter", mock.Anything, workflow.Filter{Status: models.PENDING, Limit: 5}).Return(&workflow.PagedClaims{
			Claims: []workflow.ClaimView{{
				Claim:  *pendingClaim(id),
				Sender: workflow.Participant{UserId: "alice", Name: "Alice"},
				Receivers: []workflow.ReceiverView{
					{Participant: workflow.Participant{UserId: "bob", Name: "Bob"}, Amount: 30},
					{Participant: workflow.Participant{UserId: "carol"}, Amount: 20},
				},
			}},
			Page:  1,
			Limit: 5,
			Total: 1,
		}, nil)

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.ListClaims(rr, httptest.NewRequest(http.MethodGet, "/claims?status=PENDING&limit=5", nil),
			api.ListClaimsParams{Status: &status, Limit: &limit})

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.ClaimPage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Total)
		assert.Equal(t, 5, got.Limit)
		require.Len(t, got.Items, 1)
		require.NotNil(t, got.Items[0].Sender)
		assert.Equal(t, "Alice", *got.Items[0].Sender.Name)
		require.NotNil(t, got.Items[0].Receivers[0].Name)
		assert.Equal(t, "Bob", *got.Items[0].Receivers[0].Name)
		assert.Nil(t, got.Items[0].Receivers[1].Name)
	})

	t.Run("Invalid Order", func(t *testing.T) {
		order := api.ListClaimsParamsOrder("sideways")

		wf := mocks.NewWorkflow(t)
		wf.On("Filter", mock.Anything, workflow.Filter{Order: "sideways"}).
			Return(nil, fmt.Errorf("%w: order %q", workflow.ErrInvalidFilter, "sideways"))

		h := claims.NewClaimsHandler(wf)

		rr := httptest.NewRecorder()
		h.ListClaims(rr, httptest.NewRequest(http.MethodGet, "/claims?order=sideways", nil),
			api.ListClaimsParams{Order: &order})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
