package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications"
	dydbstore "github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage/dynamodb"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/sweeper"
	"github.com/joho/godotenv"
)

var sweepRunner *sweeper.Sweeper

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	pushQueueURL := os.Getenv("SQS_PUSH_QUEUE_URL")
	if pushQueueURL == "" {
		log.Fatal("SQS_PUSH_QUEUE_URL environment variable not set")
	}
	notifier := notifications.NewSQSNotifier(sqsClient, pushQueueURL)

	store := dydbstore.New(dbClient, dydbstore.Tables{
		Matches:       os.Getenv("DYNAMODB_MATCHES_TABLE_NAME"),
		Conversations: os.Getenv("DYNAMODB_CONVERSATIONS_TABLE_NAME"),
		Wallets:       os.Getenv("DYNAMODB_WALLETS_TABLE_NAME"),
		Ledger:        os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
		PushRecords:   os.Getenv("DYNAMODB_PUSH_RECORDS_TABLE_NAME"),
		DatePlans:     os.Getenv("DYNAMODB_DATE_PLANS_TABLE_NAME"),
		Messages:      os.Getenv("DYNAMODB_MESSAGES_TABLE_NAME"),
	})

	sweepRunner = sweeper.New(store, notifier)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting countdown sweep...")

	report := sweepRunner.Sweep(ctx)

	log.Printf("Sweep finished: expired=%d pushes=%d errors=%d", report.Expired, report.Pushes, len(report.Errors))
	for _, sweepErr := range report.Errors {
		log.Printf("ERROR: %s", sweepErr)
	}

	if len(report.Errors) > 0 && report.Expired == 0 && report.Pushes == 0 {
		// Nothing succeeded; let the scheduler surface the failure.
		return fmt.Errorf("sweep failed: %s", report.Errors[0])
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
