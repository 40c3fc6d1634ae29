package domain

import "time"

// MaxNewsItems bounds the headlines carried per symbol.
const MaxNewsItems = 5

// Quote is a point-in-time price/volume snapshot for a symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	PreviousClose float64 `json:"previous_close"`
}

// TechnicalIndicatorSet holds the latest indicator readings. A nil
// field means the source could not provide it, which is not the same
// as a zero reading.
type TechnicalIndicatorSet struct {
	RSI        *float64 `json:"rsi"`
	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	MACDHist   *float64 `json:"macd_hist"`
}

type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceName  string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// SignalSet is everything gathered for one symbol before a decision is made.
type SignalSet struct {
	Symbol     string
	Quote      Quote
	Indicators TechnicalIndicatorSet
	News       []NewsItem
}

// Bar is one daily OHLCV candle.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
