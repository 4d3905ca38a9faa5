package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/kudos-ledger/pkg/models"
)

const (
	userIDTimestampIndex = "user_id-timestamp-index"
	claimIDIndex         = "claim_id-index"
)

// ListTransactionsByUserID retrieves a user's ledger entries, newest first.
func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(userIDTimestampIndex),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	items, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by user ID: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return transactions, nil
}

// ListTransactionsByClaimID retrieves the ledger entries referencing a claim, oldest first.
func (s *Store) ListTransactionsByClaimID(ctx context.Context, claimID string) ([]models.Transaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TransactionsTableName),
		IndexName:              aws.String(claimIDIndex),
		KeyConditionExpression: aws.String("claim_id = :claim_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
	}

	items, err := s.queryAll(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by claim ID: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})

	return transactions, nil
}
