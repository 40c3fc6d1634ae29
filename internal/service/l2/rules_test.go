package l2_service

import (
	"context"
	"stockpulse/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func signalsWith(changePercent float64, rsi, macd *float64) domain.SignalSet {
	return domain.SignalSet{
		Symbol: "AAPL",
		Quote: domain.Quote{
			Symbol:        "AAPL",
			Price:         100,
			ChangePercent: changePercent,
		},
		Indicators: domain.TechnicalIndicatorSet{
			RSI:  rsi,
			MACD: macd,
		},
	}
}

func Test_ruleDecider_Evaluate(t *testing.T) {
	d := ruleDecider{}

	t.Run("all votes buy", func(t *testing.T) {
		v := d.Evaluate(signalsWith(3.0, float64Ptr(25), float64Ptr(1.2)))

		require.Equal(t, "", cmp.Diff(domain.Verdict{
			Sentiment: domain.Sentiment{Label: domain.SentimentBullish, Confidence: 75},
			Technical: domain.Technical{
				RSISignal:  domain.SignalBuy,
				MACDSignal: domain.SignalBuy,
				Overall:    domain.SignalBuy,
				Score:      95,
			},
			Prediction: domain.Prediction{
				Direction:  domain.DirectionUp,
				Percent:    4.5,
				Confidence: 55,
			},
			Recommendation: domain.Recommendation{
				Rating:    domain.RatingStrongBuy,
				Score:     9.5,
				Reasoning: "Based on RSI (25.0) and MACD (1.20) signals",
			},
			Risk:    domain.RiskMedium,
			Summary: "AAPL shows bullish sentiment with buy technical signals.",
		}, v))
	})

	t.Run("no indicators small drop", func(t *testing.T) {
		v := d.Evaluate(signalsWith(-0.5, nil, nil))

		require.Equal(t, domain.SignalHold, v.Technical.RSISignal)
		require.Equal(t, domain.SignalHold, v.Technical.MACDSignal)
		require.Equal(t, domain.SignalHold, v.Technical.Overall)
		require.Equal(t, 35.0, v.Technical.Score)
		require.Equal(t, domain.RatingHold, v.Recommendation.Rating)
		require.Equal(t, 3.5, v.Recommendation.Score)
		require.Equal(t, domain.SentimentNeutral, v.Sentiment.Label)
		require.Equal(t, 60.0, v.Sentiment.Confidence)
		require.Equal(t, domain.DirectionDown, v.Prediction.Direction)
		require.Equal(t, "Based on RSI (N/A) and MACD (N/A) signals", v.Recommendation.Reasoning)
	})

	t.Run("one one one split prefers buy", func(t *testing.T) {
		// rsi sell, macd buy, price flat
		v := d.Evaluate(signalsWith(0, float64Ptr(80), float64Ptr(0.4)))

		require.Equal(t, domain.SignalSell, v.Technical.RSISignal)
		require.Equal(t, domain.SignalBuy, v.Technical.MACDSignal)
		require.Equal(t, domain.SignalBuy, v.Technical.Overall)
		require.Equal(t, 50.0, v.Technical.Score)
		require.Equal(t, domain.RatingHold, v.Recommendation.Rating)
		require.Equal(t, domain.DirectionNeutral, v.Prediction.Direction)
		require.Equal(t, 0.0, v.Prediction.Percent)
	})

	t.Run("buy sell tie prefers buy over sell", func(t *testing.T) {
		// rsi hold, macd sell, price up
		v := d.Evaluate(signalsWith(1, float64Ptr(50), float64Ptr(-1)))
		require.Equal(t, domain.SignalBuy, v.Technical.Overall)
	})

	t.Run("strong sell", func(t *testing.T) {
		v := d.Evaluate(signalsWith(-4, float64Ptr(75), float64Ptr(-2)))

		require.Equal(t, domain.SentimentBearish, v.Sentiment.Label)
		require.Equal(t, domain.SignalSell, v.Technical.Overall)
		require.Equal(t, 5.0, v.Technical.Score)
		require.Equal(t, domain.RatingStrongSell, v.Recommendation.Rating)
		require.Equal(t, 0.5, v.Recommendation.Score)
		require.Equal(t, 6.0, v.Prediction.Percent)
	})

	t.Run("two sells", func(t *testing.T) {
		v := d.Evaluate(signalsWith(-1, float64Ptr(50), float64Ptr(-2)))
		require.Equal(t, domain.RatingSell, v.Recommendation.Rating)
		require.Equal(t, domain.SignalSell, v.Technical.Overall)
	})

	t.Run("zero readings are not absent", func(t *testing.T) {
		v := d.Evaluate(signalsWith(0, float64Ptr(0), float64Ptr(0)))
		require.Equal(t, domain.SignalBuy, v.Technical.RSISignal)
		require.Equal(t, domain.SignalHold, v.Technical.MACDSignal)
		require.Equal(t, "Based on RSI (0.0) and MACD (0.00) signals", v.Recommendation.Reasoning)
	})

	t.Run("indicators absent leaves hold in the majority", func(t *testing.T) {
		// two hold votes from the missing readings outvote the price vote
		for _, cp := range []float64{-7, -0.01, 0, 0.01, 12} {
			v := d.Evaluate(signalsWith(cp, nil, nil))
			require.Equal(t, domain.SignalHold, v.Technical.Overall, "change %f", cp)
			require.Equal(t, domain.RatingHold, v.Recommendation.Rating, "change %f", cp)
		}
	})

	t.Run("change percent at the sentiment threshold is neutral", func(t *testing.T) {
		for _, cp := range []float64{2, -2} {
			v := d.Evaluate(signalsWith(cp, float64Ptr(50), float64Ptr(0)))
			require.Equal(t, domain.Sentiment{Label: domain.SentimentNeutral, Confidence: 60}, v.Sentiment, "change %f", cp)
		}
		require.Equal(t, domain.SentimentBullish, d.Evaluate(signalsWith(2.01, nil, nil)).Sentiment.Label)
		require.Equal(t, domain.SentimentBearish, d.Evaluate(signalsWith(-2.01, nil, nil)).Sentiment.Label)
	})

	t.Run("rsi at the band edges holds", func(t *testing.T) {
		for _, rsi := range []float64{30, 70} {
			v := d.Evaluate(signalsWith(0, float64Ptr(rsi), nil))
			require.Equal(t, domain.SignalHold, v.Technical.RSISignal, "rsi %f", rsi)
		}
		require.Equal(t, domain.SignalBuy, d.Evaluate(signalsWith(0, float64Ptr(29.9), nil)).Technical.RSISignal)
		require.Equal(t, domain.SignalSell, d.Evaluate(signalsWith(0, float64Ptr(70.1), nil)).Technical.RSISignal)
	})

	t.Run("deterministic and always valid", func(t *testing.T) {
		rsis := []*float64{nil, float64Ptr(0), float64Ptr(29.9), float64Ptr(30), float64Ptr(70), float64Ptr(70.1), float64Ptr(100)}
		macds := []*float64{nil, float64Ptr(-3), float64Ptr(0), float64Ptr(3)}
		changes := []float64{-50, -2.01, -2, -0.3, 0, 0.3, 2, 2.01, 50}

		for _, rsi := range rsis {
			for _, macd := range macds {
				for _, cp := range changes {
					in := signalsWith(cp, rsi, macd)
					first := d.Evaluate(in)
					require.NoError(t, first.Validate())
					require.Equal(t, "", cmp.Diff(first, d.Evaluate(in)))

					decided, err := d.Decide(context.Background(), in)
					require.NoError(t, err)
					require.Equal(t, "", cmp.Diff(first, *decided))
				}
			}
		}
	})
}

func Test_voteTally_winner(t *testing.T) {
	cases := []struct {
		name     string
		tally    voteTally
		expected domain.TradeSignal
	}{
		{"empty", voteTally{}, domain.SignalBuy},
		{"hold majority", voteTally{domain.SignalHold: 2, domain.SignalSell: 1}, domain.SignalHold},
		{"sell over hold on tie", voteTally{domain.SignalHold: 1, domain.SignalSell: 1}, domain.SignalSell},
		{"sell majority", voteTally{domain.SignalSell: 2, domain.SignalBuy: 1}, domain.SignalSell},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, c.tally.winner())
		})
	}
}
