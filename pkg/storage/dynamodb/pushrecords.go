package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// InsertPushRecord inserts the (match, milestone) send-once marker. A
// conditional-check failure means the milestone was already sent — the
// caller must skip the send.
func (s *Store) InsertPushRecord(ctx context.Context, matchID, milestone string, at time.Time) (bool, error) {
	record := models.PushRecord{
		MatchID:   matchID,
		Milestone: milestone,
		SentAt:    at,
	}
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return false, fmt.Errorf("failed to marshal push record: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.PushRecords),
		Item:                recordAV,
		ConditionExpression: aws.String("attribute_not_exists(match_id) AND attribute_not_exists(milestone)"),
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert push record: %w", err)
	}

	return true, nil
}
