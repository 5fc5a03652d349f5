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

// GetDatePlan retrieves the match's date plan, or nil if none exists.
func (s *Store) GetDatePlan(ctx context.Context, matchID string) (*models.DatePlan, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.DatePlans),
		Key:       map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: matchID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get date plan from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var plan models.DatePlan
	if err := attributevalue.UnmarshalMap(result.Item, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal date plan: %w", err)
	}
	return &plan, nil
}

// CreateDatePlanIfAbsent inserts a date plan only if the match has none.
func (s *Store) CreateDatePlanIfAbsent(ctx context.Context, plan *models.DatePlan) (bool, error) {
	planAV, err := attributevalue.MarshalMap(plan)
	if err != nil {
		return false, fmt.Errorf("failed to marshal date plan: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.DatePlans),
		Item:                planAV,
		ConditionExpression: aws.String("attribute_not_exists(match_id)"),
	})
	if err != nil {
		if conditionalCheckFailed(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create date plan: %w", err)
	}

	return true, nil
}
