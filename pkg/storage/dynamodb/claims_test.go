package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
	"github.com/chris/kudos-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetClaim(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		claimAV, _ := attributevalue.MarshalMap(models.Claim{
			Id:        "c1",
			SenderId:  "alice",
			Receivers: []models.ClaimReceiver{{ReceiverId: "bob", Amount: 10}},
			Status:    models.PENDING,
		})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: claimAV}, nil).Once()

		claim, err := store.GetClaim(context.Background(), "c1")

		require.NoError(t, err)
		assert.Equal(t, "alice", claim.SenderId)
		assert.Equal(t, int64(10), claim.TotalAmount())
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		claim, err := store.GetClaim(context.Background(), "c1")

		assert.Nil(t, claim)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListClaims(t *testing.T) {
	claimAV, _ := attributevalue.MarshalMap(models.Claim{Id: "c1", SenderId: "alice", Status: models.PENDING})

	t.Run("By Sender", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return *in.IndexName == senderIDCreatedAtIndex && in.FilterExpression != nil
		}), mock.Anything).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{claimAV}}, nil).Once()

		claims, err := store.ListClaims(context.Background(), storage.ClaimQuery{SenderID: "alice", Status: models.PENDING})

		require.NoError(t, err)
		assert.Len(t, claims, 1)
		mockClient.AssertExpectations(t)
	})

	t.Run("By Status", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return *in.IndexName == statusCreatedAtIndex
		}), mock.Anything).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{claimAV}}, nil).Once()

		claims, err := store.ListClaims(context.Background(), storage.ClaimQuery{Status: models.PENDING})

		require.NoError(t, err)
		assert.Len(t, claims, 1)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unfiltered Scans", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("Scan", mock.Anything, mock.Anything, mock.Anything).
			Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{claimAV}}, nil).Once()

		claims, err := store.ListClaims(context.Background(), storage.ClaimQuery{})

		require.NoError(t, err)
		assert.Len(t, claims, 1)
		mockClient.AssertExpectations(t)
	})
}
