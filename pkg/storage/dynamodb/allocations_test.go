package dynamodb

import (
	"context"
	"errors"
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

func TestGetSuccessfulAllocation(t *testing.T) {
	const fence = "monthly-giveable#MONTHLY#2024-05"

	t.Run("Success Record", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		recordAV, _ := attributevalue.MarshalMap(models.AllocationRecord{Id: fence, Fence: fence, Status: models.AllocationSuccess})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: recordAV}, nil).Once()

		record, err := store.GetSuccessfulAllocation(context.Background(), fence)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, fence, record.Fence)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Record", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		record, err := store.GetSuccessfulAllocation(context.Background(), fence)

		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("dynamodb error")).Once()

		record, err := store.GetSuccessfulAllocation(context.Background(), fence)

		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "failed to get allocation record from DynamoDB")
	})
}

func TestPutAllocationRecord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.TableName == "allocation_records"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		err := store.PutAllocationRecord(context.Background(), &models.AllocationRecord{Id: "r1", Status: models.AllocationFailed})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := newTestStore(mockClient)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.PutAllocationRecord(context.Background(), &models.AllocationRecord{Id: "r1"})

		assert.ErrorIs(t, err, storage.ErrAllocationConflict)
	})
}

func TestListAllocationDefinitions(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := newTestStore(mockClient)

	defAV, _ := attributevalue.MarshalMap(models.AllocationDefinition{Id: "monthly-giveable", Amount: 100, Active: true})
	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.FilterExpression != nil && *in.FilterExpression == "active = :active"
	}), mock.Anything).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{defAV}}, nil).Once()

	defs, err := store.ListAllocationDefinitions(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, int64(100), defs[0].Amount)
	mockClient.AssertExpectations(t)
}
