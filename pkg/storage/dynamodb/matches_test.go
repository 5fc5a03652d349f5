package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTerminateMatch(t *testing.T) {
	t.Run("Deletes Both Rows In One Transaction", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			convDelete := input.TransactItems[0].Delete
			matchDelete := input.TransactItems[1].Delete
			return convDelete != nil && *convDelete.TableName == "conversations" &&
				*convDelete.ConditionExpression == "attribute_exists(active_at)" &&
				matchDelete != nil && *matchDelete.TableName == "matches"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		deleted, err := store.TerminateMatch(context.Background(), "match1", true)

		assert.NoError(t, err)
		assert.True(t, deleted)
		mockClient.AssertExpectations(t)
	})

	t.Run("Never-Active Observation Guards Against Activation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return *input.TransactItems[0].Delete.ConditionExpression == "attribute_not_exists(active_at)"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		deleted, err := store.TerminateMatch(context.Background(), "match1", false)

		assert.NoError(t, err)
		assert.True(t, deleted)
		mockClient.AssertExpectations(t)
	})

	t.Run("Stale Observation Reports False", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		})

		deleted, err := store.TerminateMatch(context.Background(), "match1", false)

		assert.NoError(t, err)
		assert.False(t, deleted)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transact failed"))

		_, err := store.TerminateMatch(context.Background(), "match1", true)

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}
