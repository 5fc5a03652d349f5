package dynamodb

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureConversation(t *testing.T) {
	match := &models.Match{MatchID: "match1", UserA: "user1", UserB: "user2"}

	t.Run("Creates Row", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		conv, err := store.EnsureConversation(context.Background(), match)

		assert.NoError(t, err)
		assert.Equal(t, "match1", conv.MatchID)
		assert.Equal(t, models.StatusNone, conv.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Row Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		now := time.Now().UTC()
		existing := models.Conversation{MatchID: "match1", UserA: "user1", UserB: "user2", ConsentedAAt: &now, Status: models.StatusConsentPending}
		existingAV, _ := attributevalue.MarshalMap(existing)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: existingAV}, nil)

		conv, err := store.EnsureConversation(context.Background(), match)

		assert.NoError(t, err)
		assert.NotNil(t, conv.ConsentedAAt)
		assert.Equal(t, models.StatusConsentPending, conv.Status)
		mockClient.AssertExpectations(t)
	})
}

func TestRecordConsent(t *testing.T) {
	now := time.Now().UTC()
	pending := models.Conversation{MatchID: "match1", UserA: "user1", UserB: "user2", Status: models.StatusConsentPending}
	pendingAV, _ := attributevalue.MarshalMap(pending)

	t.Run("Records First Consent", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		updated := pending
		updated.ConsentedAAt = &now
		updated.TierA = models.TierSerious
		updatedAV, _ := attributevalue.MarshalMap(updated)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: pendingAV}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{Attributes: updatedAV}, nil)

		conv, err := store.RecordConsent(context.Background(), "match1", "user1", models.TierSerious, now)

		assert.NoError(t, err)
		assert.NotNil(t, conv.ConsentedAAt)
		assert.Equal(t, models.TierSerious, conv.TierA)
		mockClient.AssertExpectations(t)
	})

	t.Run("Re-Consent Keeps Timestamp And Tier Snapshot", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		consented := pending
		consented.ConsentedAAt = &now
		consented.TierA = models.TierSerious
		consentedAV, _ := attributevalue.MarshalMap(consented)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: consentedAV}, nil)
		// Both the timestamp and the tier snapshot are first-write-wins.
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return strings.Contains(*input.UpdateExpression, "consented_a_at = if_not_exists(consented_a_at") &&
				strings.Contains(*input.UpdateExpression, "tier_a = if_not_exists(tier_a")
		})).Return(&dynamodb.UpdateItemOutput{Attributes: consentedAV}, nil)

		conv, err := store.RecordConsent(context.Background(), "match1", "user1", models.TierCommitted, now.Add(time.Hour))

		assert.NoError(t, err)
		assert.Equal(t, models.TierSerious, conv.TierA)
		mockClient.AssertExpectations(t)
	})

	t.Run("Settled State Is A NoOp", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		active := pending
		active.ConsentedAAt = &now
		active.ConsentedBAt = &now
		active.ActiveAt = &now
		active.Status = models.StatusActive
		activeAV, _ := attributevalue.MarshalMap(active)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: activeAV}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: activeAV}, nil)

		conv, err := store.RecordConsent(context.Background(), "match1", "user1", models.TierCommitted, now)

		assert.NoError(t, err)
		assert.True(t, conv.IsActive())
		// The settled snapshot is untouched.
		assert.Equal(t, models.Tier(""), conv.TierA)
		mockClient.AssertExpectations(t)
	})
}

func TestActivate(t *testing.T) {
	now := time.Now().UTC()

	t.Run("First Writer Wins", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		activated, err := store.Activate(context.Background(), "match1", now, now.Add(7*24*time.Hour))

		assert.NoError(t, err)
		assert.True(t, activated)
		mockClient.AssertExpectations(t)
	})

	t.Run("Second Writer Loses Quietly", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		activated, err := store.Activate(context.Background(), "match1", now, now.Add(7*24*time.Hour))

		assert.NoError(t, err)
		assert.False(t, activated)
		mockClient.AssertExpectations(t)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("update failed"))

		_, err := store.Activate(context.Background(), "match1", now, now.Add(7*24*time.Hour))

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestStartDecisionTimer(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.StartDecisionTimer(context.Background(), "match1", "user2", now, now.Add(24*time.Hour))

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Started Is A NoOp", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.StartDecisionTimer(context.Background(), "match1", "user2", now, now.Add(24*time.Hour))

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestExpireConversation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Expires", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		expired, err := store.ExpireConversation(context.Background(), "match1", now)

		assert.NoError(t, err)
		assert.True(t, expired)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Eligible", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		expired, err := store.ExpireConversation(context.Background(), "match1", now)

		assert.NoError(t, err)
		assert.False(t, expired)
		mockClient.AssertExpectations(t)
	})
}

func TestForceReopen(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Reopens Terminal Conversation", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		terminal := models.Conversation{
			MatchID: "match1", UserA: "user1", UserB: "user2",
			ActiveAt: &now, TerminalState: models.TerminalExpired, TerminalAt: &now,
			Status: models.StatusTerminal,
		}
		terminalAV, _ := attributevalue.MarshalMap(terminal)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: terminalAV}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.ForceReopen(context.Background(), "match1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Terminal Is A NoOp", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		open := models.Conversation{MatchID: "match1", UserA: "user1", UserB: "user2", Status: models.StatusConsentPending}
		openAV, _ := attributevalue.MarshalMap(open)

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: openAV}, nil)

		err := store.ForceReopen(context.Background(), "match1")

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})
}

func TestCountActiveConversations(t *testing.T) {
	t.Run("Counts Both Sides And Excludes The Match", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		asA := models.Conversation{MatchID: "match2", UserA: "user1", UserB: "user3", Status: models.StatusActive}
		asAAV, _ := attributevalue.MarshalMap(asA)
		excluded := models.Conversation{MatchID: "match1", UserA: "user1", UserB: "user2", Status: models.StatusActive}
		excludedAV, _ := attributevalue.MarshalMap(excluded)
		asB := models.Conversation{MatchID: "match3", UserA: "user4", UserB: "user1", Status: models.StatusActive}
		asBAV, _ := attributevalue.MarshalMap(asB)

		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{asAAV, excludedAV},
		}, nil)
		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{asBAV},
		}, nil)

		count, err := store.CountActiveConversations(context.Background(), "user1", "match1")

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		mockClient.AssertExpectations(t)
	})
}

func TestListActiveConversations(t *testing.T) {
	t.Run("Follows Pagination", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		first := models.Conversation{MatchID: "match1", UserA: "user1", UserB: "user2", Status: models.StatusActive}
		firstAV, _ := attributevalue.MarshalMap(first)
		second := models.Conversation{MatchID: "match2", UserA: "user3", UserB: "user4", Status: models.StatusActive}
		secondAV, _ := attributevalue.MarshalMap(second)

		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{
			Items:            []map[string]types.AttributeValue{firstAV},
			LastEvaluatedKey: map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: "match1"}},
		}, nil)
		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{secondAV},
		}, nil)

		conversations, err := store.ListActiveConversations(context.Background())

		assert.NoError(t, err)
		assert.Len(t, conversations, 2)
		mockClient.AssertExpectations(t)
	})
}

func TestArchiveForUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		archived := models.Conversation{
			MatchID: "match1", UserA: "user1", UserB: "user2",
			ActiveAt: &now, ArchivedBy: []string{"user1"}, Status: models.StatusActive,
		}
		archivedAV, _ := attributevalue.MarshalMap(archived)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{Attributes: archivedAV}, nil)

		conv, err := store.ArchiveForUser(context.Background(), "match1", "user1")

		assert.NoError(t, err)
		assert.Contains(t, conv.ArchivedBy, "user1")
		assert.True(t, conv.IsActive())
		mockClient.AssertExpectations(t)
	})
}
