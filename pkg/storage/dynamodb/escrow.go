package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// ReleaseEscrow migrates the user's legacy per-match escrow deposits into
// the wallet. Invoked opportunistically on every wallet-status read, not as
// a one-off startup migration.
//
// Each match is released by one TransactWriteItems: zero the escrow field
// (conditioned on it still holding the observed amount), credit the wallet,
// and append an ADJUST entry with a deterministic id. A concurrent status
// read racing on the same match loses the condition and skips — the same
// escrow can never be released twice.
func (s *Store) ReleaseEscrow(ctx context.Context, userID string) (int64, error) {
	matches, err := s.ListMatchesByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list matches for escrow release: %w", err)
	}

	var released int64
	for _, match := range matches {
		amount := match.EscrowFor(userID)
		if amount <= 0 {
			continue
		}

		if _, err := s.EnsureWallet(ctx, userID); err != nil {
			return released, fmt.Errorf("failed to ensure wallet for escrow release: %w", err)
		}

		escrowAttr := "escrow_cents_a"
		if match.UserB == userID {
			escrowAttr = "escrow_cents_b"
		}

		entry := models.LedgerEntry{
			EntryID:     escrowEntryID(match.MatchID, userID),
			UserID:      userID,
			MatchID:     match.MatchID,
			Action:      models.ADJUST,
			AmountCents: amount,
			Meta:        map[string]string{"reason": "legacy_escrow_release"},
			Timestamp:   time.Now().UTC(),
		}
		entryAV, err := attributevalue.MarshalMap(entry)
		if err != nil {
			return released, fmt.Errorf("failed to marshal escrow entry: %w", err)
		}

		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					// Operation 1: Zero the escrow field, only if untouched.
					Update: &types.Update{
						TableName:           aws.String(s.Tables.Matches),
						Key:                 map[string]types.AttributeValue{"match_id": &types.AttributeValueMemberS{Value: match.MatchID}},
						UpdateExpression:    aws.String(fmt.Sprintf("SET %s = :zero", escrowAttr)),
						ConditionExpression: aws.String(fmt.Sprintf("%s = :amount", escrowAttr)),
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":zero":   &types.AttributeValueMemberN{Value: "0"},
							":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
						},
					},
				},
				{
					// Operation 2: Credit the wallet.
					Update: &types.Update{
						TableName:           aws.String(s.Tables.Wallets),
						Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
						UpdateExpression:    aws.String("SET balance_cents = balance_cents + :amount, version = version + :inc"),
						ConditionExpression: aws.String("attribute_exists(user_id)"),
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
							":inc":    &types.AttributeValueMemberN{Value: "1"},
						},
					},
				},
				{
					// Operation 3: Append the ADJUST entry, once per match escrow.
					Put: &types.Put{
						TableName:           aws.String(s.Tables.Ledger),
						Item:                entryAV,
						ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
					},
				},
			},
		}

		if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
			if conditionalCheckFailed(err) {
				// A concurrent status read released this match first.
				slog.Debug("escrow already released", "match_id", match.MatchID, "user_id", userID)
				continue
			}
			return released, fmt.Errorf("failed to release escrow for match %s: %w", match.MatchID, err)
		}

		released += amount
	}

	return released, nil
}
