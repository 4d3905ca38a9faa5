package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/kudos-ledger/pkg/models"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// GetAllocationDefinition retrieves an allocation definition by ID.
func (s *Store) GetAllocationDefinition(ctx context.Context, id string) (*models.AllocationDefinition, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.AllocationDefinitionsTableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation definition from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("allocation definition %s: %w", id, storage.ErrNotFound)
	}

	var def models.AllocationDefinition
	if err := attributevalue.UnmarshalMap(result.Item, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allocation definition: %w", err)
	}

	return &def, nil
}

// PutAllocationDefinition creates or replaces an allocation definition.
func (s *Store) PutAllocationDefinition(ctx context.Context, def *models.AllocationDefinition) error {
	defAV, err := attributevalue.MarshalMap(def)
	if err != nil {
		return fmt.Errorf("failed to marshal allocation definition: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.AllocationDefinitionsTableName),
		Item:      defAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put allocation definition in DynamoDB: %w", err)
	}

	return nil
}

// ListAllocationDefinitions scans the definitions table.
func (s *Store) ListAllocationDefinitions(ctx context.Context, activeOnly bool) ([]models.AllocationDefinition, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.AllocationDefinitionsTableName),
	}
	if activeOnly {
		input.FilterExpression = aws.String("active = :active")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	items, err := s.scanAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan allocation definitions table: %w", err)
	}

	var defs []models.AllocationDefinition
	if err := attributevalue.UnmarshalListOfMaps(items, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allocation definitions: %w", err)
	}

	return defs, nil
}
