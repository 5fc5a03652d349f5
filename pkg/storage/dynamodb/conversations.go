package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

const (
	statusGSI            = "status-index"
	userAConversationGSI = "user_a-index"
	userBConversationGSI = "user_b-index"
)

// EnsureConversation lazily creates the conversation row for a match.
func (s *Store) EnsureConversation(ctx context.Context, match *models.Match) (*models.Conversation, error) {
	conv := &models.Conversation{
		MatchID: match.MatchID,
		UserA:   match.UserA,
		UserB:   match.UserB,
		Status:  models.StatusNone,
	}
	convAV, err := attributevalue.MarshalMap(conv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversation: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Conversations),
		Item:                convAV,
		ConditionExpression: aws.String("attribute_not_exists(match_id)"),
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return s.GetConversation(ctx, match.MatchID)
		}
		return nil, fmt.Errorf("failed to create conversation in DynamoDB: %w", err)
	}

	return conv, nil
}

// GetConversation retrieves the conversation for a match, or nil if no row
// exists yet.
func (s *Store) GetConversation(ctx context.Context, matchID string) (*models.Conversation, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Conversations),
		Key:       map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var conv models.Conversation
	if err := attributevalue.UnmarshalMap(result.Item, &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conv, nil
}

// RecordConsent idempotently records one side's consent and tier snapshot.
// The if_not_exists guards keep the original timestamp and tier snapshot on
// re-consent; the condition makes the whole call a no-op once the
// conversation is ACTIVE or TERMINAL, so a late retry can never disturb a
// settled state.
func (s *Store) RecordConsent(ctx context.Context, matchID, userID string, tier models.Tier, at time.Time) (*models.Conversation, error) {
	conv, err := s.GetConversation(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, fmt.Errorf("conversation for match %s not found", matchID)
	}

	consentAttr, tierAttr := "consented_a_at", "tier_a"
	if conv.UserB == userID {
		consentAttr, tierAttr = "consented_b_at", "tier_b"
	}

	atAV, err := attributevalue.Marshal(at)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal consent timestamp: %w", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Conversations),
		Key:       map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
		UpdateExpression: aws.String(fmt.Sprintf(
			"SET %s = if_not_exists(%s, :at), %s = if_not_exists(%s, :tier), #status = :pending",
			consentAttr, consentAttr, tierAttr, tierAttr)),
		ConditionExpression: aws.String("attribute_not_exists(active_at) AND attribute_not_exists(terminal_state)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at":      atAV,
			":tier":    &types.AttributeValueMemberS{Value: string(tier)},
			":pending": &types.AttributeValueMemberS{Value: string(models.StatusConsentPending)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			// Already ACTIVE or TERMINAL; nothing to record.
			return s.GetConversation(ctx, matchID)
		}
		return nil, fmt.Errorf("failed to record consent: %w", err)
	}

	var updated models.Conversation
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &updated, nil
}

// Activate transitions the conversation to ACTIVE. First writer wins:
// active_at and expires_at are set exactly once and never overwritten.
func (s *Store) Activate(ctx context.Context, matchID string, at, expiresAt time.Time) (bool, error) {
	atAV, err := attributevalue.Marshal(at)
	if err != nil {
		return false, fmt.Errorf("failed to marshal activation timestamp: %w", err)
	}
	expiresAV, err := attributevalue.Marshal(expiresAt)
	if err != nil {
		return false, fmt.Errorf("failed to marshal expiry timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.Tables.Conversations),
		Key:              map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
		UpdateExpression: aws.String("SET active_at = :at, expires_at = :expires, #status = :active"),
		ConditionExpression: aws.String(
			"attribute_exists(consented_a_at) AND attribute_exists(consented_b_at) " +
				"AND attribute_not_exists(active_at) AND attribute_not_exists(terminal_state)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at":      atAV,
			":expires": expiresAV,
			":active":  &types.AttributeValueMemberS{Value: string(models.StatusActive)},
		},
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			// Another writer activated first, or the conversation closed.
			return false, nil
		}
		return false, fmt.Errorf("failed to activate conversation: %w", err)
	}

	return true, nil
}

// StartDecisionTimer sets the one-shot decision timer. The timer starts at
// most once per match; later calls and calls on ACTIVE/TERMINAL matches
// are no-ops.
func (s *Store) StartDecisionTimer(ctx context.Context, matchID, userID string, at, expiresAt time.Time) error {
	atAV, err := attributevalue.Marshal(at)
	if err != nil {
		return fmt.Errorf("failed to marshal decision timestamp: %w", err)
	}
	expiresAV, err := attributevalue.Marshal(expiresAt)
	if err != nil {
		return fmt.Errorf("failed to marshal decision expiry: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.Tables.Conversations),
		Key:              map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
		UpdateExpression: aws.String("SET decision_user_id = :user, decision_started_at = :at, decision_expires_at = :expires"),
		ConditionExpression: aws.String(
			"attribute_not_exists(decision_started_at) AND attribute_not_exists(active_at) AND attribute_not_exists(terminal_state)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user":    &types.AttributeValueMemberS{Value: userID},
			":at":      atAV,
			":expires": expiresAV,
		},
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return nil
		}
		return fmt.Errorf("failed to start decision timer: %w", err)
	}

	return nil
}

// ExpireConversation transitions an ACTIVE conversation whose countdown has
// passed into TERMINAL("expired"). The condition re-checks eligibility so
// overlapping sweep runs expire a match once.
func (s *Store) ExpireConversation(ctx context.Context, matchID string, at time.Time) (bool, error) {
	atAV, err := attributevalue.Marshal(at)
	if err != nil {
		return false, fmt.Errorf("failed to marshal terminal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.Tables.Conversations),
		Key:              map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
		UpdateExpression: aws.String("SET terminal_state = :expired, terminal_at = :at, #status = :terminal"),
		ConditionExpression: aws.String(
			"attribute_exists(active_at) AND attribute_not_exists(terminal_state) AND expires_at <= :at"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expired":  &types.AttributeValueMemberS{Value: models.TerminalExpired},
			":at":       atAV,
			":terminal": &types.AttributeValueMemberS{Value: string(models.StatusTerminal)},
		},
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to expire conversation: %w", err)
	}

	return true, nil
}

// ForceReopen clears the terminal fields, the only sanctioned path out of
// TERMINAL. Reserved for support tooling.
func (s *Store) ForceReopen(ctx context.Context, matchID string) error {
	conv, err := s.GetConversation(ctx, matchID)
	if err != nil {
		return err
	}
	if conv == nil {
		return fmt.Errorf("conversation for match %s not found", matchID)
	}
	if !conv.IsTerminal() {
		return nil
	}

	// The conversation resumes whatever state the terminal tag interrupted.
	status := models.StatusConsentPending
	if conv.ActiveAt != nil {
		status = models.StatusActive
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Conversations),
		Key:                 map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
		UpdateExpression:    aws.String("REMOVE terminal_state, terminal_at SET #status = :status"),
		ConditionExpression: aws.String("attribute_exists(terminal_state)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			// A concurrent reopen already cleared it.
			return nil
		}
		return fmt.Errorf("failed to force-reopen conversation: %w", err)
	}

	return nil
}

// ArchiveForUser marks the thread archived for one participant and returns
// the conversation state as of the same atomic update.
func (s *Store) ArchiveForUser(ctx context.Context, matchID, userID string) (*models.Conversation, error) {
	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Conversations),
		Key:                 map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
		UpdateExpression:    aws.String("ADD archived_by :user"),
		ConditionExpression: aws.String("attribute_exists(match_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberSS{Value: []string{userID}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to archive conversation: %w", err)
	}

	var conv models.Conversation
	if err := attributevalue.UnmarshalMap(result.Attributes, &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conv, nil
}

// CountActiveConversations counts the user's currently-ACTIVE matches,
// excluding excludeMatchID.
func (s *Store) CountActiveConversations(ctx context.Context, userID, excludeMatchID string) (int, error) {
	count := 0
	for _, index := range []struct {
		name string
		key  string
	}{
		{userAConversationGSI, "user_a"},
		{userBConversationGSI, "user_b"},
	} {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Conversations),
			IndexName:              aws.String(index.name),
			KeyConditionExpression: aws.String(fmt.Sprintf("%s = :user", index.key)),
			FilterExpression:       aws.String("#status = :active"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user":   &types.AttributeValueMemberS{Value: userID},
				":active": &types.AttributeValueMemberS{Value: string(models.StatusActive)},
			},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to query active conversations: %w", err)
		}

		var convs []models.Conversation
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &convs); err != nil {
			return 0, fmt.Errorf("failed to unmarshal active conversations: %w", err)
		}
		for _, conv := range convs {
			if conv.MatchID != excludeMatchID {
				count++
			}
		}
	}

	return count, nil
}

// ListActiveConversations retrieves every ACTIVE conversation via the
// status GSI, for the countdown sweep.
func (s *Store) ListActiveConversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Conversations),
			IndexName:              aws.String(statusGSI),
			KeyConditionExpression: aws.String("#status = :active"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberS{Value: string(models.StatusActive)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query active conversations: %w", err)
		}

		var page []models.Conversation
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal active conversations: %w", err)
		}
		conversations = append(conversations, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return conversations, nil
}
