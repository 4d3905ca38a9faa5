package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
)

const definitionIDAllocationDateIndex = "definition_id-allocation_date-index"

// GetSuccessfulAllocation looks up the success record stored under a fence.
// Success records use the fence as their primary key.
func (s *Store) GetSuccessfulAllocation(ctx context.Context, fence string) (*models.AllocationRecord, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.AllocationRecordsTableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: fence}},
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation record from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var record models.AllocationRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allocation record: %w", err)
	}
	if record.Status != models.AllocationSuccess {
		return nil, nil
	}

	return &record, nil
}

// PutAllocationRecord writes a record outside any unit of work.
func (s *Store) PutAllocationRecord(ctx context.Context, record *models.AllocationRecord) error {
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal allocation record: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.AllocationRecordsTableName),
		Item:                recordAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("allocation record %s: %w", record.Id, storage.ErrAllocationConflict)
		}
		return fmt.Errorf("failed to put allocation record in DynamoDB: %w", err)
	}

	return nil
}

// ListAllocationRecords retrieves a definition's records, newest first.
func (s *Store) ListAllocationRecords(ctx context.Context, definitionID string) ([]models.AllocationRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AllocationRecordsTableName),
		IndexName:              aws.String(definitionIDAllocationDateIndex),
		KeyConditionExpression: aws.String("definition_id = :definition_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":definition_id": &types.AttributeValueMemberS{Value: definitionID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	items, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation records: %w", err)
	}

	var records []models.AllocationRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allocation records: %w", err)
	}

	return records, nil
}
