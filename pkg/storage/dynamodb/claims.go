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

const (
	statusCreatedAtIndex   = "status-created_at-index"
	senderIDCreatedAtIndex = "sender_id-created_at-index"
)

// GetClaim retrieves a single claim from DynamoDB by its ID.
func (s *Store) GetClaim(ctx context.Context, claimID string) (*models.Claim, error) {
	return s.getClaim(ctx, claimID, false)
}

func (s *Store) getClaim(ctx context.Context, claimID string, consistent bool) (*models.Claim, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.ClaimsTableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: claimID}},
		ConsistentRead: aws.Bool(consistent),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("claim %s: %w", claimID, storage.ErrNotFound)
	}

	var claim models.Claim
	if err := attributevalue.UnmarshalMap(result.Item, &claim); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claim: %w", err)
	}

	return &claim, nil
}

// ListClaims retrieves the claims matching a query. A sender filter uses the
// sender index, a status filter alone uses the status index, and no filter scans.
func (s *Store) ListClaims(ctx context.Context, query storage.ClaimQuery) ([]models.Claim, error) {
	var (
		items []map[string]types.AttributeValue
		err   error
	)

	switch {
	case query.SenderID != "":
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.ClaimsTableName),
			IndexName:              aws.String(senderIDCreatedAtIndex),
			KeyConditionExpression: aws.String("sender_id = :sender_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sender_id": &types.AttributeValueMemberS{Value: query.SenderID},
			},
		}
		if query.Status != "" {
			input.FilterExpression = aws.String("#status = :status")
			input.ExpressionAttributeNames = map[string]string{"#status": "status"}
			input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(query.Status)}
		}
		items, err = s.queryAll(ctx, input)
	case query.Status != "":
		items, err = s.queryAll(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.ClaimsTableName),
			IndexName:              aws.String(statusCreatedAtIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(query.Status)},
			},
		})
	default:
		items, err = s.scanAll(ctx, &dynamodb.ScanInput{TableName: aws.String(s.ClaimsTableName)})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	var claims []models.Claim
	if err := attributevalue.UnmarshalListOfMaps(items, &claims); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	return claims, nil
}
