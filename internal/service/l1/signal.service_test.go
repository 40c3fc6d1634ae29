package l1_service

import (
	"context"
	"errors"
	"fmt"
	"stockpulse/internal/domain"
	mock_repository "stockpulse/internal/repository/mocks"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func Test_signalServiceHandler_GetSignals(t *testing.T) {
	quote := &domain.Quote{Symbol: "AAPL", Price: 190, ChangePercent: 1.2}

	t.Run("all signals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		marketData.EXPECT().GetQuote(gomock.Any(), "AAPL").Return(quote, nil)
		marketData.EXPECT().GetIndicators(gomock.Any(), "AAPL").Return(domain.TechnicalIndicatorSet{
			RSI: float64Ptr(55),
		}, nil)
		newsRepository.EXPECT().GetNews(gomock.Any(), "AAPL").Return([]domain.NewsItem{{Title: "a"}})

		handler := NewSignalService(marketData, newsRepository, nil, time.Second)
		signals, err := handler.GetSignals(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(&domain.SignalSet{
			Symbol:     "AAPL",
			Quote:      *quote,
			Indicators: domain.TechnicalIndicatorSet{RSI: float64Ptr(55)},
			News:       []domain.NewsItem{{Title: "a"}},
		}, signals))
	})

	t.Run("missing indicators and news do not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		marketData.EXPECT().GetQuote(gomock.Any(), "AAPL").Return(quote, nil)
		marketData.EXPECT().GetIndicators(gomock.Any(), "AAPL").Return(domain.TechnicalIndicatorSet{}, fmt.Errorf("boom"))
		newsRepository.EXPECT().GetNews(gomock.Any(), "AAPL").Return(nil)

		handler := NewSignalService(marketData, newsRepository, nil, time.Second)
		signals, err := handler.GetSignals(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, domain.TechnicalIndicatorSet{}, signals.Indicators)
		require.NotNil(t, signals.News)
		require.Empty(t, signals.News)
	})

	t.Run("news capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		marketData.EXPECT().GetQuote(gomock.Any(), "AAPL").Return(quote, nil)
		marketData.EXPECT().GetIndicators(gomock.Any(), "AAPL").Return(domain.TechnicalIndicatorSet{}, nil)
		newsRepository.EXPECT().GetNews(gomock.Any(), "AAPL").Return(make([]domain.NewsItem, 8))

		handler := NewSignalService(marketData, newsRepository, nil, time.Second)
		signals, err := handler.GetSignals(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Len(t, signals.News, domain.MaxNewsItems)
	})

	t.Run("quote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		marketData.EXPECT().GetQuote(gomock.Any(), "NOPE").Return(nil, errors.New("timeout"))
		marketData.EXPECT().GetIndicators(gomock.Any(), "NOPE").Return(domain.TechnicalIndicatorSet{}, nil)
		newsRepository.EXPECT().GetNews(gomock.Any(), "NOPE").Return(nil)

		handler := NewSignalService(marketData, newsRepository, nil, time.Second)
		_, err := handler.GetSignals(context.Background(), "NOPE")
		require.ErrorIs(t, err, domain.ErrQuoteUnavailable)
	})

	t.Run("slow quote times out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		marketData.EXPECT().GetQuote(gomock.Any(), "SLOW").DoAndReturn(func(ctx context.Context, symbol string) (*domain.Quote, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
		marketData.EXPECT().GetIndicators(gomock.Any(), "SLOW").Return(domain.TechnicalIndicatorSet{}, nil)
		newsRepository.EXPECT().GetNews(gomock.Any(), "SLOW").Return(nil)

		handler := NewSignalService(marketData, newsRepository, nil, 10*time.Millisecond)
		_, err := handler.GetSignals(context.Background(), "SLOW")
		require.ErrorIs(t, err, domain.ErrQuoteUnavailable)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
