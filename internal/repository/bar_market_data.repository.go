package repository

import (
	"context"
	"errors"
	"fmt"
	"stockpulse/internal/calculator"
	"stockpulse/internal/domain"
	"time"
)

// BarRepository returns daily candles, oldest first.
type BarRepository interface {
	GetDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]domain.Bar, error)
}

// lookback covers MACD(12,26,9) with room for weekends and holidays
const barLookbackDays = 120

type barMarketDataRepositoryHandler struct {
	BarRepository BarRepository
	Now           func() time.Time
}

// NewBarMarketDataRepository derives quotes and indicators from a daily bar
// history instead of a provider that serves them directly.
func NewBarMarketDataRepository(barRepository BarRepository) MarketDataRepository {
	return barMarketDataRepositoryHandler{
		BarRepository: barRepository,
		Now:           time.Now,
	}
}

func (h barMarketDataRepositoryHandler) bars(ctx context.Context, symbol string) ([]domain.Bar, error) {
	end := h.Now().UTC()
	start := end.AddDate(0, 0, -barLookbackDays)
	bars, err := h.BarRepository.GetDailyBars(ctx, symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return bars, nil
}

func (h barMarketDataRepositoryHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	bars, err := h.bars(ctx, symbol)
	if err != nil {
		return nil, err
	}
	quote, err := calculator.QuoteFromBars(symbol, bars)
	if err != nil {
		return nil, errors.Join(domain.ErrQuoteUnavailable, err)
	}
	return quote, nil
}

func (h barMarketDataRepositoryHandler) GetIndicators(ctx context.Context, symbol string) (domain.TechnicalIndicatorSet, error) {
	bars, err := h.bars(ctx, symbol)
	if err != nil {
		return domain.TechnicalIndicatorSet{}, err
	}
	return calculator.IndicatorsFromBars(bars), nil
}
