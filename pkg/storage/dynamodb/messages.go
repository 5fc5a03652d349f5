package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// ListMessages retrieves a match's messages in send order. The messages
// table is written by the external messaging system; this store only reads
// it.
func (s *Store) ListMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	var messages []models.Message
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Messages),
			KeyConditionExpression: aws.String("match_id = :match"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":match": &types.AttributeValueMemberS{Value: matchID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query messages: %w", err)
		}

		var page []models.Message
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
		}
		messages = append(messages, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return messages, nil
}
