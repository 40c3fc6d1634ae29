package l2_service

import (
	"context"
	"fmt"
	"math"
	"stockpulse/internal/domain"
	"strings"
)

const (
	sentimentThreshold     = 2.0
	rsiOversold            = 30.0
	rsiOverbought          = 70.0
	thresholdConfidence    = 75.0
	neutralConfidence      = 60.0
	predictionConfidence   = 55.0
	predictionMultiplier   = 1.5
	technicalBaseScore     = 50.0
	technicalVoteWeight    = 15.0
	recommendationBase     = 5.0
	recommendationVoteStep = 1.5
)

type ruleDecider struct{}

// NewRuleDecider returns the deterministic decider. It depends only on the
// quote's change percent and the rsi/macd readings.
func NewRuleDecider() Decider {
	return ruleDecider{}
}

func (d ruleDecider) Decide(ctx context.Context, signals domain.SignalSet) (*domain.Verdict, error) {
	v := d.Evaluate(signals)
	return &v, nil
}

type voteTally map[domain.TradeSignal]int

// winner returns the signal with the strictly highest count, checked in
// preference order so earlier signals win ties.
func (t voteTally) winner() domain.TradeSignal {
	best := domain.SignalPreference[0]
	for _, s := range domain.SignalPreference[1:] {
		if t[s] > t[best] {
			best = s
		}
	}
	return best
}

func rsiVote(rsi *float64) domain.TradeSignal {
	switch {
	case rsi == nil:
		return domain.SignalHold
	case *rsi < rsiOversold:
		return domain.SignalBuy
	case *rsi > rsiOverbought:
		return domain.SignalSell
	}
	return domain.SignalHold
}

func macdVote(macd *float64) domain.TradeSignal {
	switch {
	case macd == nil:
		return domain.SignalHold
	case *macd > 0:
		return domain.SignalBuy
	case *macd < 0:
		return domain.SignalSell
	}
	return domain.SignalHold
}

func priceVote(changePercent float64) domain.TradeSignal {
	switch {
	case changePercent > 0:
		return domain.SignalBuy
	case changePercent < 0:
		return domain.SignalSell
	}
	return domain.SignalHold
}

func sentimentFor(changePercent float64) domain.Sentiment {
	switch {
	case changePercent > sentimentThreshold:
		return domain.Sentiment{Label: domain.SentimentBullish, Confidence: thresholdConfidence}
	case changePercent < -sentimentThreshold:
		return domain.Sentiment{Label: domain.SentimentBearish, Confidence: thresholdConfidence}
	}
	return domain.Sentiment{Label: domain.SentimentNeutral, Confidence: neutralConfidence}
}

func ratingFor(t voteTally) domain.Rating {
	switch {
	case t[domain.SignalBuy] == 3:
		return domain.RatingStrongBuy
	case t[domain.SignalBuy] == 2:
		return domain.RatingBuy
	case t[domain.SignalSell] == 3:
		return domain.RatingStrongSell
	case t[domain.SignalSell] == 2:
		return domain.RatingSell
	}
	return domain.RatingHold
}

func directionFor(changePercent float64) domain.Direction {
	switch {
	case changePercent > 0:
		return domain.DirectionUp
	case changePercent < 0:
		return domain.DirectionDown
	}
	return domain.DirectionNeutral
}

func formatReading(v *float64, precision int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", precision, *v)
}

// Evaluate is the rule-based verdict. Identical inputs always produce an
// identical verdict.
func (d ruleDecider) Evaluate(signals domain.SignalSet) domain.Verdict {
	cp := signals.Quote.ChangePercent
	ind := signals.Indicators

	rsiSignal := rsiVote(ind.RSI)
	macdSignal := macdVote(ind.MACD)

	tally := voteTally{}
	tally[rsiSignal]++
	tally[macdSignal]++
	tally[priceVote(cp)]++

	net := float64(tally[domain.SignalBuy] - tally[domain.SignalSell])
	sentiment := sentimentFor(cp)
	overall := tally.winner()

	return domain.Verdict{
		Sentiment: sentiment,
		Technical: domain.Technical{
			RSISignal:  rsiSignal,
			MACDSignal: macdSignal,
			Overall:    overall,
			Score:      technicalBaseScore + net*technicalVoteWeight,
		},
		Prediction: domain.Prediction{
			Direction:  directionFor(cp),
			Percent:    math.Abs(cp) * predictionMultiplier,
			Confidence: predictionConfidence,
		},
		Recommendation: domain.Recommendation{
			Rating: ratingFor(tally),
			Score:  recommendationBase + net*recommendationVoteStep,
			Reasoning: fmt.Sprintf("Based on RSI (%s) and MACD (%s) signals",
				formatReading(ind.RSI, 1),
				formatReading(ind.MACD, 2),
			),
		},
		Risk: domain.RiskMedium,
		Summary: fmt.Sprintf("%s shows %s sentiment with %s technical signals.",
			signals.Symbol,
			strings.ToLower(string(sentiment.Label)),
			strings.ToLower(string(overall)),
		),
	}
}
