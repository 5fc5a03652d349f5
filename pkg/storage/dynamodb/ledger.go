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
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
	"github.com/google/uuid"
)

const userLedgerGSI = "user_id-index"

// Deterministic entry ids double as idempotency guards: the insert's
// attribute_not_exists condition is the dedupe check.
func purchaseEntryID(transactionID string) string {
	return "purchase#" + transactionID
}

// legacyPurchaseEntryID is the id scheme an earlier client generation used
// for store receipts. Claims must honor both or old purchases double-credit.
func legacyPurchaseEntryID(transactionID string) string {
	return "iap#" + transactionID
}

func spendEntryID(userID, matchID, reason string) string {
	return "spend#" + userID + "#" + matchID + "#" + reason
}

func escrowEntryID(matchID, userID string) string {
	return "escrow#" + matchID + "#" + userID
}

// Purchase credits the wallet for a store purchase, idempotent on the
// transaction id. The entry insert and the wallet credit are one atomic
// transaction.
func (s *Store) Purchase(ctx context.Context, userID, transactionID, productID string, amountCents int64) (bool, error) {
	// The transaction id may already be recorded under either id scheme.
	for _, entryID := range []string{purchaseEntryID(transactionID), legacyPurchaseEntryID(transactionID)} {
		exists, err := s.ledgerEntryExists(ctx, entryID)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}

	if _, err := s.EnsureWallet(ctx, userID); err != nil {
		return false, fmt.Errorf("failed to ensure wallet for purchase: %w", err)
	}

	entry := models.LedgerEntry{
		EntryID:     purchaseEntryID(transactionID),
		UserID:      userID,
		Action:      models.PURCHASE,
		AmountCents: amountCents,
		Meta: map[string]string{
			"transaction_id": transactionID,
			"product_id":     productID,
		},
		Timestamp: time.Now().UTC(),
	}
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return false, fmt.Errorf("failed to marshal purchase entry: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Append the PURCHASE entry, once.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Ledger),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
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
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amountCents)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if codes := cancellationCodes(err); len(codes) > 0 && codes[0] == "ConditionalCheckFailed" {
			// A concurrent claim for the same transaction id won.
			return true, nil
		}
		return false, fmt.Errorf("failed to execute purchase transaction: %w", err)
	}

	return false, nil
}

// Spend debits the wallet, idempotent on (userID, matchID, reason). The
// SPEND entry and the conditional debit are one transaction: an entry is
// never written without a successful debit, so the wallet balance always
// equals the sum of the user's signed entries.
func (s *Store) Spend(ctx context.Context, userID, matchID, reason string, amountCents int64, meta map[string]string) (bool, error) {
	entryMeta := map[string]string{"reason": reason}
	for k, v := range meta {
		entryMeta[k] = v
	}

	entry := models.LedgerEntry{
		EntryID:     spendEntryID(userID, matchID, reason),
		UserID:      userID,
		MatchID:     matchID,
		Action:      models.SPEND,
		AmountCents: amountCents,
		Meta:        entryMeta,
		Timestamp:   time.Now().UTC(),
	}
	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return false, fmt.Errorf("failed to marshal spend entry: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Append the SPEND entry, at most once per tuple.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Ledger),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
			{
				// Operation 2: Debit the wallet, only if covered.
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Wallets),
					Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
					UpdateExpression:    aws.String("SET balance_cents = balance_cents - :amount, version = version + :inc"),
					ConditionExpression: aws.String("balance_cents >= :amount"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amountCents)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		codes := cancellationCodes(err)
		if len(codes) == 2 {
			if codes[0] == "ConditionalCheckFailed" {
				// The tuple was already spent; idempotent no-op.
				return false, nil
			}
			if codes[1] == "ConditionalCheckFailed" {
				return false, storage.ErrInsufficientBalance
			}
		}
		return false, fmt.Errorf("failed to execute spend transaction: %w", err)
	}

	return true, nil
}

// Refund credits amountCents back to the wallet for a match. The caller
// guarantees at-most-once invocation per real-world event.
func (s *Store) Refund(ctx context.Context, userID, matchID, reason string, amountCents int64) error {
	entry := models.LedgerEntry{
		EntryID:     "refund#" + uuid.New().String(),
		UserID:      userID,
		MatchID:     matchID,
		Action:      models.REFUND,
		AmountCents: amountCents,
		Meta:        map[string]string{"reason": reason},
		Timestamp:   time.Now().UTC(),
	}
	return s.appendCredit(ctx, entry)
}

// Adjust applies a support correction. The caller guarantees at-most-once
// invocation per reason tag.
func (s *Store) Adjust(ctx context.Context, userID, reason string, amountCents int64) error {
	entry := models.LedgerEntry{
		EntryID:     "adjust#" + uuid.New().String(),
		UserID:      userID,
		Action:      models.ADJUST,
		AmountCents: amountCents,
		Meta:        map[string]string{"reason": reason},
		Timestamp:   time.Now().UTC(),
	}
	return s.appendCredit(ctx, entry)
}

// appendCredit atomically appends a crediting entry and applies it to the
// wallet balance.
func (s *Store) appendCredit(ctx context.Context, entry models.LedgerEntry) error {
	if _, err := s.EnsureWallet(ctx, entry.UserID); err != nil {
		return fmt.Errorf("failed to ensure wallet for %s: %w", entry.Action, err)
	}

	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal %s entry: %w", entry.Action, err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Ledger),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Wallets),
					Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: entry.UserID}},
					UpdateExpression:    aws.String("SET balance_cents = balance_cents + :amount, version = version + :inc"),
					ConditionExpression: aws.String("attribute_exists(user_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.AmountCents)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return fmt.Errorf("failed to execute %s transaction: %w", entry.Action, err)
	}

	return nil
}

// ledgerEntryExists checks for a ledger entry by its deterministic id.
func (s *Store) ledgerEntryExists(ctx context.Context, entryID string) (bool, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Ledger),
		Key:       map[string]types.AttributeValue{"entry_id": &types.AttributeValueMemberS{Value: entryID}},
	})
	if err != nil {
		return false, fmt.Errorf("failed to get ledger entry from DynamoDB: %w", err)
	}
	return result.Item != nil, nil
}

// ListLedgerEntries retrieves a user's most recent ledger entries.
func (s *Store) ListLedgerEntries(ctx context.Context, userID string, limit int32) ([]models.LedgerEntry, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Ledger),
		IndexName:              aws.String(userLedgerGSI),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	var entries []models.LedgerEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	return entries, nil
}
