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

// CreateWallet provisions a zero-balance wallet record in DynamoDB.
func (s *Store) CreateWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	now := s.now()
	wallet := &models.Wallet{UserId: userID, Version: 1, CreatedAt: now, UpdatedAt: now}

	walletAV, err := attributevalue.MarshalMap(wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.WalletsTableName),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"), // Prevent overwriting existing wallets.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("wallet for user ID %s: %w", userID, storage.ErrWalletExists)
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return wallet, nil
}

// GetWallet retrieves a user's wallet from DynamoDB by their user ID.
func (s *Store) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	return s.getWallet(ctx, userID, false)
}

func (s *Store) getWallet(ctx context.Context, userID string, consistent bool) (*models.Wallet, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.WalletsTableName),
		Key:            map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		ConsistentRead: aws.Bool(consistent),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("wallet for user ID %s: %w", userID, storage.ErrNotFound)
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	return &wallet, nil
}

// ListWallets retrieves all wallets from DynamoDB.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	items, err := s.scanAll(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.WalletsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets table: %w", err)
	}

	var wallets []models.Wallet
	if err := attributevalue.UnmarshalListOfMaps(items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}

	return wallets, nil
}
