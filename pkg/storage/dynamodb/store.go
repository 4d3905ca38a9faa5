package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/kudos-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables holds the table names used by the store.
type Tables struct {
	Wallets               string
	Transactions          string
	Claims                string
	AllocationRecords     string
	AllocationDefinitions string
	Users                 string
	Recognitions          string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                         DynamoDBAPI
	WalletsTableName               string
	TransactionsTableName          string
	ClaimsTableName                string
	AllocationRecordsTableName     string
	AllocationDefinitionsTableName string
	UsersTableName                 string
	RecognitionsTableName          string

	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client:                         client,
		WalletsTableName:               tables.Wallets,
		TransactionsTableName:          tables.Transactions,
		ClaimsTableName:                tables.Claims,
		AllocationRecordsTableName:     tables.AllocationRecords,
		AllocationDefinitionsTableName: tables.AllocationDefinitions,
		UsersTableName:                 tables.Users,
		RecognitionsTableName:          tables.Recognitions,
		Now:                            time.Now,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
