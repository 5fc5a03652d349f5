package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications"
	notifmocks "github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications/mocks"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage/mocks"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/sweeper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeConv(matchID string, expiresIn time.Duration, now time.Time) models.Conversation {
	activeAt := now.Add(expiresIn - 7*24*time.Hour)
	expiresAt := now.Add(expiresIn)
	return models.Conversation{
		MatchID: matchID, UserA: "user1", UserB: "user2",
		ActiveAt: &activeAt, ExpiresAt: &expiresAt,
		Status: models.StatusActive,
	}
}

func newSweeper(store *mocks.Storage, notifier *notifmocks.Notifier, now time.Time) *sweeper.Sweeper {
	s := sweeper.New(store, notifier)
	s.Now = func() time.Time { return now }
	return s
}

func TestSweep(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Expires A Conversation Past Its Deadline", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", -time.Minute, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, nil)
		mockStorage.On("ExpireConversation", mock.Anything, "match1", now).Return(true, nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 1, report.Expired)
		assert.Equal(t, 0, report.Pushes)
		assert.Empty(t, report.Errors)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Sends Only The Most Urgent Milestone", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		// 90 minutes left: inside every threshold, only 2h_before fires.
		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", 90*time.Minute, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, nil)
		mockStorage.On("InsertPushRecord", mock.Anything, "match1", "2h_before", now).Return(true, nil)
		mockNotifier.On("Notify", mock.Anything, mock.Anything).Twice().Return(nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 1, report.Pushes)
		assert.Empty(t, report.Errors)
		mockStorage.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Milestone Thresholds", func(t *testing.T) {
		cases := []struct {
			remaining time.Duration
			milestone string
		}{
			{time.Hour, "2h_before"},
			{20 * time.Hour, "day7_morning"},
			{30 * time.Hour, "day5"},
			{60 * time.Hour, "48h"},
		}
		for _, tc := range cases {
			mockStorage := new(mocks.Storage)
			mockNotifier := new(notifmocks.Notifier)
			s := newSweeper(mockStorage, mockNotifier, now)

			mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
				activeConv("match1", tc.remaining, now),
			}, nil)
			mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, nil)
			mockStorage.On("InsertPushRecord", mock.Anything, "match1", tc.milestone, now).Return(true, nil)
			mockNotifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

			report := s.Sweep(context.Background())

			assert.Equal(t, 1, report.Pushes, "remaining %s", tc.remaining)
			mockStorage.AssertExpectations(t)
		}
	})

	t.Run("Outside Every Threshold Sends Nothing", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", 6*24*time.Hour, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 0, report.Pushes)
		mockStorage.AssertNotCalled(t, "InsertPushRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Second Run Sends No Duplicate Push", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", 90*time.Minute, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, nil)
		// The dedupe record from the previous run is still there.
		mockStorage.On("InsertPushRecord", mock.Anything, "match1", "2h_before", now).Return(false, nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 0, report.Pushes)
		assert.Empty(t, report.Errors)
		mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Date Plan Suspends Expiry And Pushes", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		plan := &models.DatePlan{MatchID: "match1", PlannedAt: now.Add(48 * time.Hour)}
		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", -time.Hour, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(plan, nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 0, report.Expired)
		assert.Equal(t, 0, report.Pushes)
		mockStorage.AssertNotCalled(t, "ExpireConversation", mock.Anything, mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("One Failing Match Does Not Stop The Run", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", -time.Minute, now),
			activeConv("match2", -time.Minute, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, errors.New("read failed"))
		mockStorage.On("GetDatePlan", mock.Anything, "match2").Return(nil, nil)
		mockStorage.On("ExpireConversation", mock.Anything, "match2", now).Return(true, nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 1, report.Expired)
		assert.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "match1")
		mockStorage.AssertExpectations(t)
	})

	t.Run("Push Delivery Failure Is Recorded Not Retried", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		mockStorage.On("ListActiveConversations", mock.Anything).Return([]models.Conversation{
			activeConv("match1", 90*time.Minute, now),
		}, nil)
		mockStorage.On("GetDatePlan", mock.Anything, "match1").Return(nil, nil)
		mockStorage.On("InsertPushRecord", mock.Anything, "match1", "2h_before", now).Return(true, nil)
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notifications.Notification) bool {
			return n.UserID == "user1"
		})).Return(errors.New("queue unavailable"))
		mockNotifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notifications.Notification) bool {
			return n.UserID == "user2"
		})).Return(nil)

		report := s.Sweep(context.Background())

		assert.Equal(t, 1, report.Pushes)
		assert.Len(t, report.Errors, 1)
		mockStorage.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Listing Fails", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockNotifier := new(notifmocks.Notifier)
		s := newSweeper(mockStorage, mockNotifier, now)

		mockStorage.On("ListActiveConversations", mock.Anything).Return(nil, errors.New("query failed"))

		report := s.Sweep(context.Background())

		assert.Len(t, report.Errors, 1)
		mockStorage.AssertExpectations(t)
	})
}
