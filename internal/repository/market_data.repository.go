package repository

import (
	"context"
	"fmt"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/pkg/alphavantage"
	"strings"

	"github.com/shopspring/decimal"
)

// MarketDataRepository supplies the quote and technical readings for a
// symbol. Indicator readings fail independently; a failed reading is left
// nil rather than failing the whole set.
type MarketDataRepository interface {
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	GetIndicators(ctx context.Context, symbol string) (domain.TechnicalIndicatorSet, error)
}

type alphaVantageRepositoryHandler struct {
	Client alphavantage.Client
}

func NewAlphaVantageRepository(client alphavantage.Client) MarketDataRepository {
	return alphaVantageRepositoryHandler{
		Client: client,
	}
}

func (h alphaVantageRepositoryHandler) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	raw, err := h.Client.GetGlobalQuote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("no global quote for %s: %w", symbol, domain.ErrQuoteUnavailable)
	}

	quote, err := quoteFromAlphaVantage(symbol, *raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote for %s: %w", symbol, err)
	}
	return quote, nil
}

func (h alphaVantageRepositoryHandler) GetIndicators(ctx context.Context, symbol string) (domain.TechnicalIndicatorSet, error) {
	log := logger.FromContext(ctx)
	out := domain.TechnicalIndicatorSet{}

	rsi, err := h.Client.GetLatestRSI(ctx, symbol)
	if err != nil {
		log.Warnf("failed to get rsi for %s: %s", symbol, err.Error())
	} else if v, err := parseOptional(rsi.RSI); err != nil {
		log.Warnf("failed to parse rsi for %s: %s", symbol, err.Error())
	} else {
		out.RSI = v
	}

	macd, err := h.Client.GetLatestMACD(ctx, symbol)
	if err != nil {
		log.Warnf("failed to get macd for %s: %s", symbol, err.Error())
		return out, nil
	}
	m, err := parseOptional(macd.MACD)
	if err != nil {
		log.Warnf("failed to parse macd for %s: %s", symbol, err.Error())
		return out, nil
	}
	out.MACD = m
	// signal and hist ride along with the line; a bad value there only
	// drops that reading
	out.MACDSignal, _ = parseOptional(macd.Signal)
	out.MACDHist, _ = parseOptional(macd.Hist)

	return out, nil
}

func quoteFromAlphaVantage(symbol string, raw alphavantage.GlobalQuote) (*domain.Quote, error) {
	fields := map[string]string{
		"price":          raw.Price,
		"change":         raw.Change,
		"change percent": strings.TrimSuffix(strings.TrimSpace(raw.ChangePercent), "%"),
		"previous close": raw.PreviousClose,
		"open":           raw.Open,
		"high":           raw.High,
		"low":            raw.Low,
		"volume":         raw.Volume,
	}
	parsed := map[string]decimal.Decimal{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			parsed[name] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
		parsed[name] = d
	}

	return &domain.Quote{
		Symbol:        symbol,
		Price:         parsed["price"].InexactFloat64(),
		Change:        parsed["change"].InexactFloat64(),
		ChangePercent: parsed["change percent"].InexactFloat64(),
		Volume:        parsed["volume"].IntPart(),
		Open:          parsed["open"].InexactFloat64(),
		High:          parsed["high"].InexactFloat64(),
		Low:           parsed["low"].InexactFloat64(),
		PreviousClose: parsed["previous close"].InexactFloat64(),
	}, nil
}

func parseOptional(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	f := d.InexactFloat64()
	return &f, nil
}
