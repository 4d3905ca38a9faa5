package wallets_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/kudos-ledger/pkg/api"
	"github.com/chris/kudos-ledger/pkg/handlers/wallets"
	"github.com/chris/kudos-ledger/pkg/handlers/wallets/mocks"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
	storage_mocks "github.com/chris/kudos-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := storage_mocks.NewWalletStore(t)
		store.On("CreateWallet", mock.Anything, "user-c").Return(&models.Wallet{UserId: "user-c", Version: 1}, nil)

		h := wallets.NewWalletsHandler(store, nil)

		body, _ := json.Marshal(api.NewWallet{UserId: "user-c"})
		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.CreateWallet(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.Wallet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "user-c", got.UserId)
		assert.Equal(t, int64(0), got.EarnedBalance)
		assert.Equal(t, int64(0), got.GiveableBalance)
	})

	t.Run("Already Exists", func(t *testing.T) {
		store := storage_mocks.NewWalletStore(t)
		store.On("CreateWallet", mock.Anything, "user-c").Return(nil, storage.ErrWalletExists)

		h := wallets.NewWalletsHandler(store, nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader([]byte(`{"userId":"user-c"}`)))
		rr := httptest.NewRecorder()

		h.CreateWallet(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Missing User", func(t *testing.T) {
		h := wallets.NewWalletsHandler(storage_mocks.NewWalletStore(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader([]byte(`{"userId":" "}`)))
		rr := httptest.NewRecorder()

		h.CreateWallet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		h := wallets.NewWalletsHandler(storage_mocks.NewWalletStore(t), nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets", bytes.NewReader([]byte(`{`)))
		rr := httptest.NewRecorder()

		h.CreateWallet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListWallets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := storage_mocks.NewWalletStore(t)
		store.On("ListWallets", mock.Anything).Return([]models.Wallet{
			{UserId: "alice", GiveableBalance: 100},
			{UserId: "bob", EarnedBalance: 30},
		}, nil)

		h := wallets.NewWalletsHandler(store, nil)

		req := httptest.NewRequest(http.MethodGet, "/wallets", nil)
		rr := httptest.NewRecorder()

		h.ListWallets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []api.Wallet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "alice", got[0].UserId)
		assert.Equal(t, int64(30), got[1].EarnedBalance)
	})

	t.Run("Store Error", func(t *testing.T) {
		store := storage_mocks.NewWalletStore(t)
		store.On("ListWallets", mock.Anything).Return(nil, errors.New("scan failed"))

		h := wallets.NewWalletsHandler(store, nil)

		rr := httptest.NewRecorder()
		h.ListWallets(rr, httptest.NewRequest(http.MethodGet, "/wallets", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := storage_mocks.NewWalletStore(t)
		store.On("GetWallet", mock.Anything, "user-c").Return(&models.Wallet{UserId: "user-c", EarnedBalance: 100, GiveableBalance: 50, Version: 2}, nil)

		h := wallets.NewWalletsHandler(store, nil)

		rr := httptest.NewRecorder()
		h.GetWallet(rr, httptest.NewRequest(http.MethodGet, "/wallets/user-c", nil), "user-c")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Wallet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(100), got.EarnedBalance)
		assert.Equal(t, int64(50), got.GiveableBalance)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("Not Found", func(t *testing.T) {
		store := storage_mocks.NewWalletStore(t)
		store.On("GetWallet", mock.Anything, "ghost").Return(nil, fmt.Errorf("wallet ghost: %w", storage.ErrNotFound))

		h := wallets.NewWalletsHandler(store, nil)

		rr := httptest.NewRecorder()
		h.GetWallet(rr, httptest.NewRequest(http.MethodGet, "/wallets/ghost", nil), "ghost")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChargeOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ledger := mocks.NewLedger(t)
		ledger.On("ChargeOrder", mock.Anything, "bob", "order-1", int64(25)).Return(int64(5), nil)

		h := wallets.NewWalletsHandler(storage_mocks.NewWalletStore(t), ledger)

		body, _ := json.Marshal(api.NewOrder{OrderId: "order-1", Amount: 25})
		rr := httptest.NewRecorder()
		h.ChargeOrder(rr, httptest.NewRequest(http.MethodPost, "/wallets/bob/orders", bytes.NewReader(body)), "bob")

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.OrderCharge
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, api.OrderCharge{UserId: "bob", OrderId: "order-1", Amount: 25, EarnedBalance: 5}, got)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		ledger := mocks.NewLedger(t)
		ledger.On("ChargeOrder", mock.Anything, "bob", "order-2", int64(500)).
			Return(int64(0), &storage.InsufficientBalanceError{UserID: "bob", Class: models.EARNED, Available: 5, Requested: 500})

		h := wallets.NewWalletsHandler(storage_mocks.NewWalletStore(t), ledger)

		body, _ := json.Marshal(api.NewOrder{OrderId: "order-2", Amount: 500})
		rr := httptest.NewRecorder()
		h.ChargeOrder(rr, httptest.NewRequest(http.MethodPost, "/wallets/bob/orders", bytes.NewReader(body)), "bob")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "available 5")
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		h := wallets.NewWalletsHandler(storage_mocks.NewWalletStore(t), mocks.NewLedger(t))

		body, _ := json.Marshal(api.NewOrder{OrderId: "order-3", Amount: 0})
		rr := httptest.NewRecorder()
		h.ChargeOrder(rr, httptest.NewRequest(http.MethodPost, "/wallets/bob/orders", bytes.NewReader(body)), "bob")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
