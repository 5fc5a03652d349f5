package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
)

const (
	userAMatchGSI = "user_a-index"
	userBMatchGSI = "user_b-index"
)

// GetMatch retrieves a match by its ID. A missing row is
// storage.ErrMatchNotFound; visibility rules (participant, block) are
// applied by callers with the same error.
func (s *Store) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Matches),
		Key:       map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get match from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrMatchNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(result.Item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// ListMatchesByUser retrieves every match the user participates in, from
// both side indexes.
func (s *Store) ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	for _, index := range []struct {
		name string
		key  string
	}{
		{userAMatchGSI, "user_a"},
		{userBMatchGSI, "user_b"},
	} {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Matches),
			IndexName:              aws.String(index.name),
			KeyConditionExpression: aws.String(fmt.Sprintf("%s = :user", index.key)),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user": &types.AttributeValueMemberS{Value: userID},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query matches: %w", err)
		}

		var page []models.Match
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
		}
		matches = append(matches, page...)
	}

	return matches, nil
}

// TerminateMatch deletes the conversation and match rows in one
// transaction. The legacy escrow remnants live on the match item and die
// with it. The conversation delete is conditioned on the activation state
// the caller observed, so a credit decision based on that observation
// cannot be invalidated by a consent activating the conversation in
// between. Reports false when the observation went stale; terminating an
// already-terminated match succeeds quietly, which keeps retries safe.
func (s *Store) TerminateMatch(ctx context.Context, matchID string, observedActive bool) (bool, error) {
	convCondition := "attribute_not_exists(active_at)"
	if observedActive {
		convCondition = "attribute_exists(active_at)"
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Remove the conversation, only if its
				// activation state still matches what the caller saw.
				Delete: &types.Delete{
					TableName:           aws.String(s.Tables.Conversations),
					Key:                 map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
					ConditionExpression: aws.String(convCondition),
				},
			},
			{
				// Operation 2: Remove the match and its escrow remnants.
				Delete: &types.Delete{
					TableName: aws.String(s.Tables.Matches),
					Key:       map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if codes := cancellationCodes(err); len(codes) > 0 && codes[0] == "ConditionalCheckFailed" {
			return false, nil
		}
		return false, fmt.Errorf("failed to execute match termination transaction: %w", err)
	}

	return true, nil
}
