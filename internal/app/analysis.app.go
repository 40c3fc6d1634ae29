package app

import (
	"context"
	"strings"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	l1_service "stockpulse/internal/service/l1"
	l2_service "stockpulse/internal/service/l2"
)

// AnalysisApp answers a one-off analysis request for a single symbol.
type AnalysisApp interface {
	Analyze(ctx context.Context, symbol string) (*domain.Analysis, error)
}

type analysisAppHandler struct {
	SignalService   l1_service.SignalService
	DecisionService l2_service.DecisionService
	Now             func() time.Time
}

func NewAnalysisApp(
	signalService l1_service.SignalService,
	decisionService l2_service.DecisionService,
) AnalysisApp {
	return analysisAppHandler{
		SignalService:   signalService,
		DecisionService: decisionService,
		Now:             time.Now,
	}
}

func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (h analysisAppHandler) Analyze(ctx context.Context, symbol string) (*domain.Analysis, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, domain.NewValidationError("symbol", "Stock symbol is required")
	}

	ctx, log := logger.With(ctx, "symbol", symbol)

	signals, err := h.SignalService.GetSignals(ctx, symbol)
	if err != nil {
		log.Warnf("analysis aborted: %s", err.Error())
		return nil, err
	}

	verdict := h.DecisionService.Decide(ctx, *signals)

	return &domain.Analysis{
		Symbol:     symbol,
		Timestamp:  h.Now().UTC(),
		StockData:  signals.Quote,
		Indicators: signals.Indicators,
		News:       signals.News,
		Verdict:    verdict,
	}, nil
}
