package l2_service

import (
	"context"
	"errors"
	"stockpulse/internal/domain"
	mock_repository "stockpulse/internal/repository/mocks"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validVerdictJson = `{
	"sentiment": {"label": "Bullish", "confidence": 80},
	"technical": {"rsi_signal": "HOLD", "macd_signal": "BUY", "overall": "BUY", "score": 72},
	"prediction": {"direction": "up", "percent": 3.1, "confidence": 65},
	"recommendation": {"rating": "BUY", "score": 7.5, "reasoning": "Momentum is improving"},
	"risk": "Medium",
	"summary": "AAPL looks constructive."
}`

func Test_renderPrompt(t *testing.T) {
	t.Run("absent readings and no news", func(t *testing.T) {
		prompt, err := renderPrompt(domain.SignalSet{
			Symbol: "AAPL",
			Quote: domain.Quote{
				Symbol:        "AAPL",
				Price:         190.5,
				Change:        -1.25,
				ChangePercent: -0.65,
				Volume:        41623000,
				Low:           188,
				High:          191.05,
			},
			Indicators: domain.TechnicalIndicatorSet{RSI: float64Ptr(48.2)},
		})
		require.NoError(t, err)

		require.Contains(t, prompt, "## Stock Data for AAPL")
		require.Contains(t, prompt, "- Current Price: $190.50")
		require.Contains(t, prompt, "- Change: $-1.25 (-0.65%)")
		require.Contains(t, prompt, "- Volume: 41,623,000")
		require.Contains(t, prompt, "- Day Range: $188.00 - $191.05")
		require.Contains(t, prompt, "- RSI (14-day): 48.2")
		require.Contains(t, prompt, "- MACD: N/A")
		require.Contains(t, prompt, "- MACD Histogram: N/A")
		require.Contains(t, prompt, "No recent news available")
	})

	t.Run("headlines capped at five", func(t *testing.T) {
		news := []domain.NewsItem{}
		for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
			news = append(news, domain.NewsItem{Title: title, SourceName: "Reuters"})
		}
		prompt, err := renderPrompt(domain.SignalSet{Symbol: "AAPL", News: news})
		require.NoError(t, err)

		require.Contains(t, prompt, "- a (Reuters)\n")
		require.Contains(t, prompt, "- e (Reuters)\n")
		require.NotContains(t, prompt, "- f (Reuters)")
		require.NotContains(t, prompt, "No recent news available")
	})
}

func Test_parseVerdict(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		v, err := parseVerdict(validVerdictJson)
		require.NoError(t, err)
		require.Equal(t, domain.RatingBuy, v.Recommendation.Rating)
		require.Equal(t, 7.5, v.Recommendation.Score)
	})

	t.Run("surrounded by commentary", func(t *testing.T) {
		text := "Sure! Here is my analysis {not json} of the stock:\n```json\n" + validVerdictJson + "\n```\nLet me know {if} you need more."
		v, err := parseVerdict(text)
		require.NoError(t, err)
		require.Equal(t, domain.SentimentBullish, v.Sentiment.Label)
		require.Equal(t, "AAPL looks constructive.", v.Summary)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := parseVerdict("I cannot help with that.")
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("truncated object", func(t *testing.T) {
		_, err := parseVerdict(validVerdictJson[:len(validVerdictJson)/2])
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("out of domain label", func(t *testing.T) {
		_, err := parseVerdict(strings.Replace(validVerdictJson, `"Bullish"`, `"Euphoric"`, 1))
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("out of range confidence", func(t *testing.T) {
		_, err := parseVerdict(strings.Replace(validVerdictJson, `"confidence": 80`, `"confidence": 180`, 1))
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := parseVerdict(`{"sentiment": {"label": "Bullish", "confidence": 80}}`)
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("missing number keys", func(t *testing.T) {
		_, err := parseVerdict(`{
			"sentiment": {"label": "Bullish"},
			"technical": {"rsi_signal": "HOLD", "macd_signal": "BUY", "overall": "BUY"},
			"prediction": {"direction": "up"},
			"recommendation": {"rating": "BUY", "reasoning": "Momentum is improving"},
			"risk": "Medium",
			"summary": "AAPL looks constructive."
		}`)
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("one missing number key", func(t *testing.T) {
		_, err := parseVerdict(strings.Replace(validVerdictJson, `, "percent": 3.1`, "", 1))
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("explicit zeros are accepted", func(t *testing.T) {
		v, err := parseVerdict(strings.Replace(validVerdictJson, `"percent": 3.1`, `"percent": 0`, 1))
		require.NoError(t, err)
		require.Equal(t, 0.0, v.Prediction.Percent)
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := parseVerdict(strings.Replace(validVerdictJson, `"score": 72`, `"score": "high"`, 1))
		require.ErrorIs(t, err, domain.ErrMalformedResponse)
	})
}

func Test_aiDecider_Decide(t *testing.T) {
	t.Run("inference error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inference := mock_repository.NewMockInferenceRepository(ctrl)
		inference.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("", errors.New("503"))

		_, err := NewAIDecider(inference).Decide(context.Background(), signalsWith(1, nil, nil))
		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inference := mock_repository.NewMockInferenceRepository(ctrl)
		inference.EXPECT().Infer(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, prompt string) (string, error) {
			require.Contains(t, prompt, "## Stock Data for AAPL")
			return validVerdictJson, nil
		})

		v, err := NewAIDecider(inference).Decide(context.Background(), signalsWith(1, nil, nil))
		require.NoError(t, err)
		require.Equal(t, domain.SignalBuy, v.Technical.Overall)
	})
}
