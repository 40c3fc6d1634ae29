package domain

import "time"

// Analysis is the full answer to a single-symbol analysis request.
type Analysis struct {
	Symbol     string                `json:"symbol"`
	Timestamp  time.Time             `json:"timestamp"`
	StockData  Quote                 `json:"stock_data"`
	Indicators TechnicalIndicatorSet `json:"indicators"`
	News       []NewsItem            `json:"news"`
	Verdict    Verdict               `json:"analysis"`
}
