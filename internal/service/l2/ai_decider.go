package l2_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"stockpulse/internal/domain"
	"stockpulse/internal/repository"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type aiDecider struct {
	InferenceRepository repository.InferenceRepository
}

// NewAIDecider asks the inference service for a verdict. It makes a single
// attempt and fails on any error or unusable output.
func NewAIDecider(inferenceRepository repository.InferenceRepository) Decider {
	return aiDecider{
		InferenceRepository: inferenceRepository,
	}
}

func (d aiDecider) Decide(ctx context.Context, signals domain.SignalSet) (*domain.Verdict, error) {
	prompt, err := renderPrompt(signals)
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt: %w", err)
	}

	text, err := d.InferenceRepository.Infer(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	return parseVerdict(text)
}

var promptTemplate = template.Must(template.New("prompt").Parse(
	`You are a professional stock analyst. Analyze the following stock data and provide insights.

## Stock Data for {{.Symbol}}
- Current Price: ${{.Price}}
- Change: ${{.Change}} ({{.ChangePercent}}%)
- Volume: {{.Volume}}
- Day Range: ${{.Low}} - ${{.High}}

## Technical Indicators
- RSI (14-day): {{.RSI}}
- MACD: {{.MACD}}
- MACD Signal: {{.MACDSignal}}
- MACD Histogram: {{.MACDHist}}

## Recent News Headlines
{{if .Headlines}}{{range .Headlines}}- {{.}}
{{end}}{{else}}No recent news available
{{end}}
Based on this data, provide:
1. **Sentiment Analysis**: Classify as Bullish, Bearish, or Neutral with confidence percentage (0-100)
2. **Technical Analysis**: Interpret RSI and MACD signals (BUY/SELL/HOLD) with a score (0-100)
3. **7-Day Price Prediction**: Predict direction (up/down/neutral) and approximate percentage change
4. **Final Recommendation**: STRONG_BUY, BUY, HOLD, SELL, or STRONG_SELL with a score (0-10) and reasoning
5. **Risk Level**: Low, Medium, or High

Format your response as JSON with these exact keys:
{
    "sentiment": {"label": "Bullish/Bearish/Neutral", "confidence": 75},
    "technical": {"rsi_signal": "BUY/SELL/HOLD", "macd_signal": "BUY/SELL/HOLD", "overall": "BUY/SELL/HOLD", "score": 72},
    "prediction": {"direction": "up/down/neutral", "percent": 5.2, "confidence": 70},
    "recommendation": {"rating": "STRONG_BUY/BUY/HOLD/SELL/STRONG_SELL", "score": 8.5, "reasoning": "Brief explanation"},
    "risk": "Low/Medium/High",
    "summary": "2-3 sentence executive summary"
}
`))

type promptData struct {
	Symbol        string
	Price         string
	Change        string
	ChangePercent string
	Volume        string
	Low           string
	High          string
	RSI           string
	MACD          string
	MACDSignal    string
	MACDHist      string
	Headlines     []string
}

var numberPrinter = message.NewPrinter(language.English)

func optionalReading(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func renderPrompt(signals domain.SignalSet) (string, error) {
	q := signals.Quote
	ind := signals.Indicators

	headlines := []string{}
	for i, n := range signals.News {
		if i == domain.MaxNewsItems {
			break
		}
		headlines = append(headlines, fmt.Sprintf("%s (%s)", n.Title, n.SourceName))
	}

	data := promptData{
		Symbol:        signals.Symbol,
		Price:         fmt.Sprintf("%.2f", q.Price),
		Change:        fmt.Sprintf("%.2f", q.Change),
		ChangePercent: fmt.Sprintf("%g", q.ChangePercent),
		Volume:        numberPrinter.Sprintf("%d", q.Volume),
		Low:           fmt.Sprintf("%.2f", q.Low),
		High:          fmt.Sprintf("%.2f", q.High),
		RSI:           optionalReading(ind.RSI),
		MACD:          optionalReading(ind.MACD),
		MACDSignal:    optionalReading(ind.MACDSignal),
		MACDHist:      optionalReading(ind.MACDHist),
		Headlines:     headlines,
	}

	buf := bytes.Buffer{}
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// verdictReply mirrors domain.Verdict with pointer numbers so a missing key
// is rejected instead of decoding to zero.
type verdictReply struct {
	Sentiment struct {
		Label      domain.SentimentLabel `json:"label" validate:"required,oneof=Bullish Bearish Neutral"`
		Confidence *float64              `json:"confidence" validate:"required,gte=0,lte=100"`
	} `json:"sentiment"`
	Technical struct {
		RSISignal  domain.TradeSignal `json:"rsi_signal" validate:"required,oneof=BUY SELL HOLD"`
		MACDSignal domain.TradeSignal `json:"macd_signal" validate:"required,oneof=BUY SELL HOLD"`
		Overall    domain.TradeSignal `json:"overall" validate:"required,oneof=BUY SELL HOLD"`
		Score      *float64           `json:"score" validate:"required,gte=0,lte=100"`
	} `json:"technical"`
	Prediction struct {
		Direction  domain.Direction `json:"direction" validate:"required,oneof=up down neutral"`
		Percent    *float64         `json:"percent" validate:"required,gte=0"`
		Confidence *float64         `json:"confidence" validate:"required,gte=0,lte=100"`
	} `json:"prediction"`
	Recommendation struct {
		Rating    domain.Rating `json:"rating" validate:"required,oneof=STRONG_BUY BUY HOLD SELL STRONG_SELL"`
		Score     *float64      `json:"score" validate:"required,gte=0,lte=10"`
		Reasoning string        `json:"reasoning" validate:"required"`
	} `json:"recommendation"`
	Risk    domain.RiskLevel `json:"risk" validate:"required,oneof=Low Medium High"`
	Summary string           `json:"summary" validate:"required"`
}

var replyValidator = validator.New()

func (r verdictReply) toVerdict() domain.Verdict {
	return domain.Verdict{
		Sentiment: domain.Sentiment{
			Label:      r.Sentiment.Label,
			Confidence: *r.Sentiment.Confidence,
		},
		Technical: domain.Technical{
			RSISignal:  r.Technical.RSISignal,
			MACDSignal: r.Technical.MACDSignal,
			Overall:    r.Technical.Overall,
			Score:      *r.Technical.Score,
		},
		Prediction: domain.Prediction{
			Direction:  r.Prediction.Direction,
			Percent:    *r.Prediction.Percent,
			Confidence: *r.Prediction.Confidence,
		},
		Recommendation: domain.Recommendation{
			Rating:    r.Recommendation.Rating,
			Score:     *r.Recommendation.Score,
			Reasoning: r.Recommendation.Reasoning,
		},
		Risk:    r.Risk,
		Summary: r.Summary,
	}
}

// parseVerdict finds the first JSON object in text that decodes into a
// complete verdict. Leading and trailing commentary is ignored.
func parseVerdict(text string) (*domain.Verdict, error) {
	var lastErr error
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		raw := json.RawMessage{}
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}

		reply := verdictReply{}
		if err := json.Unmarshal(raw, &reply); err != nil {
			lastErr = err
			continue
		}
		if err := replyValidator.Struct(reply); err != nil {
			lastErr = err
			continue
		}
		v := reply.toVerdict()
		if err := v.Validate(); err != nil {
			lastErr = err
			continue
		}
		return &v, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, lastErr)
	}
	return nil, fmt.Errorf("%w: no json object in response", domain.ErrMalformedResponse)
}
