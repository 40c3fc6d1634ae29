package l2_service

import (
	"context"
	"fmt"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/internal/metrics"
	"time"
)

const defaultInferenceTimeout = 30 * time.Second

// Decider turns one symbol's signals into a verdict. Implementations may
// fail; DecisionService is the layer that guarantees an answer.
type Decider interface {
	Decide(ctx context.Context, signals domain.SignalSet) (*domain.Verdict, error)
}

// DecisionService always produces a fully populated verdict.
type DecisionService interface {
	Decide(ctx context.Context, signals domain.SignalSet) domain.Verdict
}

type decisionServiceHandler struct {
	Primary  Decider
	Fallback ruleDecider
	Metrics  *metrics.Recorder
	Timeout  time.Duration
}

// NewDecisionService tries primary once, bounded by timeout, and falls back
// to the rule-based decider on any failure. A nil primary means rules only.
func NewDecisionService(primary Decider, recorder *metrics.Recorder, timeout time.Duration) DecisionService {
	if timeout <= 0 {
		timeout = defaultInferenceTimeout
	}
	return decisionServiceHandler{
		Primary:  primary,
		Fallback: ruleDecider{},
		Metrics:  recorder,
		Timeout:  timeout,
	}
}

func (h decisionServiceHandler) Decide(ctx context.Context, signals domain.SignalSet) domain.Verdict {
	log := logger.FromContext(ctx)
	start := time.Now()

	if h.Primary != nil {
		verdict, err := h.decidePrimary(ctx, signals)
		if err == nil && verdict != nil {
			h.Metrics.RecordVerdict(metrics.PathAI, time.Since(start))
			return *verdict
		}
		if err != nil {
			h.Metrics.RecordUpstreamFailure("inference")
			log.Warnf("ai decision failed for %s, using rules: %s", signals.Symbol, err.Error())
		}
	}

	verdict := h.Fallback.Evaluate(signals)
	h.Metrics.RecordVerdict(metrics.PathRules, time.Since(start))
	return verdict
}

type primaryResult struct {
	verdict *domain.Verdict
	err     error
}

// decidePrimary returns once the deadline passes even if the primary
// decider ignores its context.
func (h decisionServiceHandler) decidePrimary(ctx context.Context, signals domain.SignalSet) (*domain.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	resultCh := make(chan primaryResult, 1)
	go func() {
		verdict, err := h.Primary.Decide(ctx, signals)
		resultCh <- primaryResult{verdict: verdict, err: err}
	}()

	select {
	case r := <-resultCh:
		return r.verdict, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, ctx.Err())
	}
}
