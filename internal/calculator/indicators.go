package calculator

import (
	"fmt"
	"sort"
	"stockpulse/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	RSIPeriod        = 14
	MACDFastPeriod   = 12
	MACDSlowPeriod   = 26
	MACDSignalPeriod = 9
)

// RSI computes Wilder's relative strength index over closes, oldest first,
// and returns the latest reading.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("invalid rsi period %d", period)
	}
	if len(closes) <= period {
		return 0, fmt.Errorf("need more than %d closes for rsi, got %d", period, len(closes))
	}

	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains = append(gains, diff)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -diff)
		}
	}

	avgGain, err := stats.Mean(gains[:period])
	if err != nil {
		return 0, fmt.Errorf("failed to seed average gain: %w", err)
	}
	avgLoss, err := stats.Mean(losses[:period])
	if err != nil {
		return 0, fmt.Errorf("failed to seed average loss: %w", err)
	}

	p := float64(period)
	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*(p-1) + gains[i]) / p
		avgLoss = (avgLoss*(p-1) + losses[i]) / p
	}

	if avgLoss == 0 {
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}

// EMA returns the exponential moving average series seeded with the simple
// average of the first period values. out[0] lines up with values[period-1].
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("invalid ema period %d", period)
	}
	if len(values) < period {
		return nil, fmt.Errorf("need at least %d values for ema, got %d", period, len(values))
	}

	seed, err := stats.Mean(values[:period])
	if err != nil {
		return nil, err
	}

	k := 2 / (float64(period) + 1)
	out := make([]float64, 0, len(values)-period+1)
	out = append(out, seed)
	for _, v := range values[period:] {
		prev := out[len(out)-1]
		out = append(out, v*k+prev*(1-k))
	}
	return out, nil
}

type MACDResult struct {
	MACD   float64
	Signal float64
	Hist   float64
}

// MACD returns the latest MACD line, signal line and histogram.
func MACD(closes []float64, fast, slow, signal int) (*MACDResult, error) {
	if fast >= slow {
		return nil, fmt.Errorf("fast period %d must be shorter than slow period %d", fast, slow)
	}
	if len(closes) < slow+signal-1 {
		return nil, fmt.Errorf("need at least %d closes for macd, got %d", slow+signal-1, len(closes))
	}

	fastEma, err := EMA(closes, fast)
	if err != nil {
		return nil, fmt.Errorf("failed to compute fast ema: %w", err)
	}
	slowEma, err := EMA(closes, slow)
	if err != nil {
		return nil, fmt.Errorf("failed to compute slow ema: %w", err)
	}

	// align fast to slow; both end on the last close
	offset := len(fastEma) - len(slowEma)
	line := make([]float64, len(slowEma))
	for i := range slowEma {
		line[i] = fastEma[i+offset] - slowEma[i]
	}

	signalLine, err := EMA(line, signal)
	if err != nil {
		return nil, fmt.Errorf("failed to compute signal line: %w", err)
	}

	m := line[len(line)-1]
	s := signalLine[len(signalLine)-1]
	return &MACDResult{
		MACD:   m,
		Signal: s,
		Hist:   m - s,
	}, nil
}

// IndicatorsFromBars computes whatever indicators the bar history allows.
// Readings that need more history than available are left nil.
func IndicatorsFromBars(bars []domain.Bar) domain.TechnicalIndicatorSet {
	closes := closesOf(bars)
	out := domain.TechnicalIndicatorSet{}

	if rsi, err := RSI(closes, RSIPeriod); err == nil {
		out.RSI = &rsi
	}
	if macd, err := MACD(closes, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod); err == nil {
		out.MACD = &macd.MACD
		out.MACDSignal = &macd.Signal
		out.MACDHist = &macd.Hist
	}

	return out
}

// QuoteFromBars builds a quote from the latest bar, using the bar before it
// as the previous close.
func QuoteFromBars(symbol string, bars []domain.Bar) (*domain.Quote, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("need at least 2 bars to build quote for %s, got %d", symbol, len(bars))
	}
	sorted := sortedBars(bars)

	last := sorted[len(sorted)-1]
	prev := sorted[len(sorted)-2]
	if prev.Close <= 0 {
		return nil, fmt.Errorf("invalid previous close %f for %s", prev.Close, symbol)
	}

	closeD := decimal.NewFromFloat(last.Close)
	prevD := decimal.NewFromFloat(prev.Close)
	change := closeD.Sub(prevD)
	changePercent := change.Div(prevD).Mul(decimal.NewFromInt(100)).Round(4)

	return &domain.Quote{
		Symbol:        symbol,
		Price:         last.Close,
		Change:        change.Round(4).InexactFloat64(),
		ChangePercent: changePercent.InexactFloat64(),
		Volume:        last.Volume,
		Open:          last.Open,
		High:          last.High,
		Low:           last.Low,
		PreviousClose: prev.Close,
	}, nil
}

func sortedBars(bars []domain.Bar) []domain.Bar {
	out := make([]domain.Bar, len(bars))
	copy(out, bars)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func closesOf(bars []domain.Bar) []float64 {
	sorted := sortedBars(bars)
	closes := make([]float64, len(sorted))
	for i, b := range sorted {
		closes[i] = b.Close
	}
	return closes
}
