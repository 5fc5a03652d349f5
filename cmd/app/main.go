package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/conversation"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/handlers/admin"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/handlers/consent"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/handlers/credits"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/handlers/matches"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/handlers/sweep"
	appmiddleware "github.com/ethanserbantes/wifey-dating-app-sub004/pkg/middleware"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications"
	dydbstore "github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage/dynamodb"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/sweeper"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := tablesFromEnv()

	// SQS client for the push-notification queue.
	var notifier notifications.Notifier = &notifications.NoOpNotifier{}
	if pushQueueURL := os.Getenv("SQS_PUSH_QUEUE_URL"); pushQueueURL != "" {
		notifier = notifications.NewSQSNotifier(sqs.NewFromConfig(cfg), pushQueueURL)
	} else {
		log.Println("SQS_PUSH_QUEUE_URL not set, push notifications disabled")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, tables)

	gate := conversation.NewGate(store, tierLimitsFromEnv())
	terminator := conversation.NewTerminator(store, notifier)
	sweepRunner := sweeper.New(store, notifier)

	consentHandler := consent.NewConsentHandler(gate)
	matchesHandler := matches.NewMatchesHandler(terminator)
	creditsHandler := credits.NewCreditsHandler(store, models.DefaultProductCatalog())
	sweepHandler := sweep.NewSweepHandler(sweepRunner, requireEnv("SWEEP_SECRET"))
	adminHandler := admin.NewAdminHandler(store, store, requireEnv("ADMIN_SECRET"))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(appmiddleware.NewStructuredLogger(logger))

	router.Post("/consent/{matchId}", consentHandler.Consent)
	router.Post("/unmatch/{matchId}", matchesHandler.Unmatch)
	router.Post("/block/{matchId}", matchesHandler.Block)
	router.Post("/we-met/{matchId}", matchesHandler.WeMet)
	router.Get("/credits/status", creditsHandler.Status)
	router.Post("/credits/claim", creditsHandler.Claim)
	router.Get("/sweep", sweepHandler.Sweep)
	router.Post("/admin/reopen/{matchId}", adminHandler.Reopen)
	router.Post("/admin/refund", adminHandler.Refund)
	router.Post("/admin/adjust", adminHandler.Adjust)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func tablesFromEnv() dydbstore.Tables {
	tables := dydbstore.Tables{
		Matches:       requireEnv("DYNAMODB_MATCHES_TABLE_NAME"),
		Conversations: requireEnv("DYNAMODB_CONVERSATIONS_TABLE_NAME"),
		Wallets:       requireEnv("DYNAMODB_WALLETS_TABLE_NAME"),
		Ledger:        requireEnv("DYNAMODB_LEDGER_TABLE_NAME"),
		PushRecords:   requireEnv("DYNAMODB_PUSH_RECORDS_TABLE_NAME"),
		DatePlans:     requireEnv("DYNAMODB_DATE_PLANS_TABLE_NAME"),
		Messages:      requireEnv("DYNAMODB_MESSAGES_TABLE_NAME"),
	}
	return tables
}

func requireEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		log.Fatalf("%s environment variable not set", name)
	}
	return value
}

// tierLimitsFromEnv reads TIER_LIMITS ("serious=1,committed=3") or falls
// back to the product defaults.
func tierLimitsFromEnv() models.TierLimits {
	raw := os.Getenv("TIER_LIMITS")
	if raw == "" {
		return models.DefaultTierLimits()
	}
	limits, err := models.ParseTierLimits(raw)
	if err != nil {
		log.Fatalf("invalid TIER_LIMITS: %v", err)
	}
	return limits
}
