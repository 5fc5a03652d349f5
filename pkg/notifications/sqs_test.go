package notifications_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSQSNotifier(t *testing.T) {
	notification := notifications.Notification{
		UserID:  "user1",
		Title:   "2 hours left",
		Body:    "Your chat closes in 2 hours. Make a plan!",
		Type:    "countdown",
		MatchID: "match1",
	}

	t.Run("Enqueues The Notification", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := notifications.NewSQSNotifier(mockClient, "https://sqs.test/queue")

		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(input *sqs.SendMessageInput) bool {
			if *input.QueueUrl != "https://sqs.test/queue" {
				return false
			}
			var sent notifications.Notification
			if err := json.Unmarshal([]byte(*input.MessageBody), &sent); err != nil {
				return false
			}
			return sent == notification
		})).Return(&sqs.SendMessageOutput{}, nil)

		err := notifier.Notify(context.Background(), notification)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Send Fails", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := notifications.NewSQSNotifier(mockClient, "https://sqs.test/queue")

		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("queue unavailable"))

		err := notifier.Notify(context.Background(), notification)

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}
