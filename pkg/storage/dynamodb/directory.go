package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/kudos-ledger/pkg/models"
)

// FindUser reads a profile from the users table owned by the user subsystem.
func (s *Store) FindUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.UsersTableName),
		Key:       map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(result.Item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &profile, nil
}

// RecognitionExists checks the recognitions table for an id.
func (s *Store) RecognitionExists(ctx context.Context, recognitionID string) (bool, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(s.RecognitionsTableName),
		Key:                  map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: recognitionID}},
		ProjectionExpression: aws.String("id"),
	})
	if err != nil {
		return false, fmt.Errorf("failed to get recognition from DynamoDB: %w", err)
	}

	return result.Item != nil, nil
}
