package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client this store uses.
// Declared here so tests can substitute a mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables carries the table names the store operates on.
type Tables struct {
	Matches       string
	Conversations string
	Wallets       string
	Ledger        string
	PushRecords   string
	DatePlans     string
	Messages      string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables Tables
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{Client: client, Tables: tables}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// conditionalCheckFailed reports whether err is a conditional write losing
// its condition, either directly or inside a cancelled transaction.
func conditionalCheckFailed(err error) bool {
	var condFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condFailed) {
		return true
	}
	var txCancelled *types.TransactionCanceledException
	if errors.As(err, &txCancelled) {
		for _, reason := range txCancelled.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

// cancellationCodes returns the per-operation cancellation codes of a
// cancelled transaction, or nil if err is not a cancellation.
func cancellationCodes(err error) []string {
	var txCancelled *types.TransactionCanceledException
	if !errors.As(err, &txCancelled) {
		return nil
	}
	codes := make([]string, len(txCancelled.CancellationReasons))
	for i, reason := range txCancelled.CancellationReasons {
		if reason.Code != nil {
			codes[i] = *reason.Code
		}
	}
	return codes
}
