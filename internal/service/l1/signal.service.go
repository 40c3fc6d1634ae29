package l1_service

import (
	"context"
	"errors"
	"fmt"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/internal/metrics"
	"stockpulse/internal/repository"
	"sync"
	"time"
)

// SignalService gathers everything the decision engine needs for a symbol.
type SignalService interface {
	// GetSignals fails only when no usable quote is available. Missing
	// indicators or news come back as absent values.
	GetSignals(ctx context.Context, symbol string) (*domain.SignalSet, error)
}

type signalServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	NewsRepository       repository.NewsRepository
	Metrics              *metrics.Recorder
	CallTimeout          time.Duration
}

func NewSignalService(
	marketDataRepository repository.MarketDataRepository,
	newsRepository repository.NewsRepository,
	recorder *metrics.Recorder,
	callTimeout time.Duration,
) SignalService {
	return signalServiceHandler{
		MarketDataRepository: marketDataRepository,
		NewsRepository:       newsRepository,
		Metrics:              recorder,
		CallTimeout:          callTimeout,
	}
}

func (h signalServiceHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.CallTimeout)
}

func (h signalServiceHandler) GetSignals(ctx context.Context, symbol string) (*domain.SignalSet, error) {
	log := logger.FromContext(ctx)

	var (
		wg         sync.WaitGroup
		quote      *domain.Quote
		quoteErr   error
		indicators domain.TechnicalIndicatorSet
		news       []domain.NewsItem
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		callCtx, cancel := h.withTimeout(ctx)
		defer cancel()
		quote, quoteErr = h.MarketDataRepository.GetQuote(callCtx, symbol)
	}()
	go func() {
		defer wg.Done()
		callCtx, cancel := h.withTimeout(ctx)
		defer cancel()
		out, err := h.MarketDataRepository.GetIndicators(callCtx, symbol)
		if err != nil {
			h.Metrics.RecordUpstreamFailure("indicators")
			log.Warnf("indicators unavailable for %s: %s", symbol, err.Error())
			return
		}
		indicators = out
	}()
	go func() {
		defer wg.Done()
		callCtx, cancel := h.withTimeout(ctx)
		defer cancel()
		news = h.NewsRepository.GetNews(callCtx, symbol)
	}()
	wg.Wait()

	if quoteErr != nil || quote == nil {
		h.Metrics.RecordUpstreamFailure("quote")
		if quoteErr == nil {
			quoteErr = errors.New("no quote returned")
		}
		if errors.Is(quoteErr, domain.ErrQuoteUnavailable) {
			return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, quoteErr)
		}
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, errors.Join(domain.ErrQuoteUnavailable, quoteErr))
	}

	if news == nil {
		news = []domain.NewsItem{}
	}
	if len(news) > domain.MaxNewsItems {
		news = news[:domain.MaxNewsItems]
	}

	return &domain.SignalSet{
		Symbol:     symbol,
		Quote:      *quote,
		Indicators: indicators,
		News:       news,
	}, nil
}
