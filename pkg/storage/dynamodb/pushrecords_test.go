package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInsertPushRecord(t *testing.T) {
	now := time.Now().UTC()

	t.Run("First Insert", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		inserted, err := store.InsertPushRecord(context.Background(), "match1", "day5", now)

		assert.NoError(t, err)
		assert.True(t, inserted)
		mockClient.AssertExpectations(t)
	})

	t.Run("Milestone Already Sent", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		inserted, err := store.InsertPushRecord(context.Background(), "match1", "day5", now)

		assert.NoError(t, err)
		assert.False(t, inserted)
		mockClient.AssertExpectations(t)
	})
}
