package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type SentimentLabel string

const (
	SentimentBullish SentimentLabel = "Bullish"
	SentimentBearish SentimentLabel = "Bearish"
	SentimentNeutral SentimentLabel = "Neutral"
)

type TradeSignal string

const (
	SignalBuy  TradeSignal = "BUY"
	SignalSell TradeSignal = "SELL"
	SignalHold TradeSignal = "HOLD"
)

// SignalPreference is the order used to break ties between equally
// counted votes.
var SignalPreference = []TradeSignal{SignalBuy, SignalSell, SignalHold}

type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

type Rating string

const (
	RatingStrongBuy  Rating = "STRONG_BUY"
	RatingBuy        Rating = "BUY"
	RatingHold       Rating = "HOLD"
	RatingSell       Rating = "SELL"
	RatingStrongSell Rating = "STRONG_SELL"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Verdict is the structured recommendation for one symbol. Every field
// is always populated.
type Verdict struct {
	Sentiment      Sentiment      `json:"sentiment"`
	Technical      Technical      `json:"technical"`
	Prediction     Prediction     `json:"prediction"`
	Recommendation Recommendation `json:"recommendation"`
	Risk           RiskLevel      `json:"risk" validate:"oneof=Low Medium High"`
	Summary        string         `json:"summary" validate:"required"`
}

type Sentiment struct {
	Label      SentimentLabel `json:"label" validate:"oneof=Bullish Bearish Neutral"`
	Confidence float64        `json:"confidence" validate:"gte=0,lte=100"`
}

type Technical struct {
	RSISignal  TradeSignal `json:"rsi_signal" validate:"oneof=BUY SELL HOLD"`
	MACDSignal TradeSignal `json:"macd_signal" validate:"oneof=BUY SELL HOLD"`
	Overall    TradeSignal `json:"overall" validate:"oneof=BUY SELL HOLD"`
	Score      float64     `json:"score" validate:"gte=0,lte=100"`
}

type Prediction struct {
	Direction  Direction `json:"direction" validate:"oneof=up down neutral"`
	Percent    float64   `json:"percent" validate:"gte=0"`
	Confidence float64   `json:"confidence" validate:"gte=0,lte=100"`
}

type Recommendation struct {
	Rating    Rating  `json:"rating" validate:"oneof=STRONG_BUY BUY HOLD SELL STRONG_SELL"`
	Score     float64 `json:"score" validate:"gte=0,lte=10"`
	Reasoning string  `json:"reasoning" validate:"required"`
}

var verdictValidator = validator.New()

// Validate reports the first field that falls outside its declared domain.
func (v Verdict) Validate() error {
	if err := verdictValidator.Struct(v); err != nil {
		return fmt.Errorf("invalid verdict: %w", err)
	}
	return nil
}
