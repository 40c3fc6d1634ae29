package app

import (
	"context"
	"errors"
	"testing"

	"stockpulse/internal/domain"
	mock_repository "stockpulse/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_subscriptionAppHandler_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("cleans input and stores an active subscriber", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
		handler := NewSubscriptionApp(subscriberRepository)

		expected := domain.Subscriber{
			Email:   "jane@example.com",
			Symbols: []string{"AAPL", "MSFT"},
			Active:  true,
			Preferences: domain.SubscriberPreferences{
				Frequency:    "daily",
				DeliveryTime: "08:00",
			},
		}
		subscriberRepository.EXPECT().Upsert(gomock.Any(), expected).Return(nil)

		subscriber, err := handler.Subscribe(ctx, "  Jane@Example.COM ", []string{"aapl", " msft", "AAPL", "  "})
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(expected, *subscriber))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tenPlusOne := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
		cases := []struct {
			name    string
			email   string
			symbols []string
			field   string
			message string
		}{
			{"missing email", "", []string{"AAPL"}, "email", "Invalid email address"},
			{"malformed email", "jane@example", []string{"AAPL"}, "email", "Invalid email address"},
			{"no symbols", "jane@example.com", []string{}, "stocks", "Please select 1-10 stocks"},
			{"too many symbols", "jane@example.com", tenPlusOne, "stocks", "Please select 1-10 stocks"},
			{"only blank symbols", "jane@example.com", []string{" ", ""}, "stocks", "Please select 1-10 stocks"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				handler := NewSubscriptionApp(mock_repository.NewMockSubscriberRepository(ctrl))

				_, err := handler.Subscribe(ctx, tc.email, tc.symbols)
				var validationErr domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, tc.field, validationErr.Field)
				require.Equal(t, tc.message, validationErr.Message)
			})
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
		handler := NewSubscriptionApp(subscriberRepository)

		storeErr := errors.New("duplicate key")
		subscriberRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(storeErr)

		_, err := handler.Subscribe(ctx, "jane@example.com", []string{"AAPL"})
		require.ErrorIs(t, err, storeErr)
	})
}

func Test_subscriptionAppHandler_Unsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates normalized email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
		handler := NewSubscriptionApp(subscriberRepository)

		subscriberRepository.EXPECT().SetActive(gomock.Any(), "jane@example.com", false).Return(nil)

		err := handler.Unsubscribe(ctx, " JANE@example.com")
		require.NoError(t, err)
	})

	t.Run("email is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewSubscriptionApp(mock_repository.NewMockSubscriberRepository(ctrl))

		err := handler.Unsubscribe(ctx, "  ")
		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "Email is required", validationErr.Message)
	})
}
