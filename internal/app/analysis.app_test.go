package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockpulse/internal/domain"
	mock_l1_service "stockpulse/internal/service/l1/mocks"
	mock_l2_service "stockpulse/internal/service/l2/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_analysisAppHandler_Analyze(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	newApp := func(t *testing.T) (analysisAppHandler, *mock_l1_service.MockSignalService, *mock_l2_service.MockDecisionService) {
		ctrl := gomock.NewController(t)
		signalService := mock_l1_service.NewMockSignalService(ctrl)
		decisionService := mock_l2_service.NewMockDecisionService(ctrl)
		handler := NewAnalysisApp(signalService, decisionService).(analysisAppHandler)
		handler.Now = func() time.Time { return now }
		return handler, signalService, decisionService
	}

	t.Run("normalizes symbol and returns full analysis", func(t *testing.T) {
		handler, signalService, decisionService := newApp(t)
		signals := signalsFor("NVDA", 1.5)
		signalService.EXPECT().GetSignals(gomock.Any(), "NVDA").Return(signals, nil)
		decisionService.EXPECT().Decide(gomock.Any(), *signals).Return(holdVerdict("NVDA"))

		analysis, err := handler.Analyze(ctx, "  nvda ")
		require.NoError(t, err)

		expected := &domain.Analysis{
			Symbol:     "NVDA",
			Timestamp:  now,
			StockData:  signals.Quote,
			Indicators: signals.Indicators,
			News:       []domain.NewsItem{},
			Verdict:    holdVerdict("NVDA"),
		}
		require.Equal(t, "", cmp.Diff(expected, analysis))
	})

	t.Run("empty symbol is a validation error", func(t *testing.T) {
		handler, _, _ := newApp(t)
		_, err := handler.Analyze(ctx, "   ")

		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "symbol", validationErr.Field)
		require.Equal(t, "Stock symbol is required", validationErr.Message)
	})

	t.Run("missing quote is surfaced", func(t *testing.T) {
		handler, signalService, _ := newApp(t)
		signalService.EXPECT().GetSignals(gomock.Any(), "ZZZZ").
			Return(nil, errors.Join(domain.ErrQuoteUnavailable, errors.New("empty response")))

		_, err := handler.Analyze(ctx, "zzzz")
		require.ErrorIs(t, err, domain.ErrQuoteUnavailable)
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})
}
