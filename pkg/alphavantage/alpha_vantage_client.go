package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
)

const DefaultBaseURL = "https://www.alphavantage.co"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
}

func NewClient(httpClient *http.Client, apiKey, baseURL string) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Client{
		HttpClient: httpClient,
		ApiKey:     apiKey,
		BaseURL:    baseURL,
	}
}

// GlobalQuote mirrors the GLOBAL_QUOTE payload. All values arrive as strings.
type GlobalQuote struct {
	Symbol           string `json:"01. symbol"`
	Open             string `json:"02. open"`
	High             string `json:"03. high"`
	Low              string `json:"04. low"`
	Price            string `json:"05. price"`
	Volume           string `json:"06. volume"`
	LatestTradingDay string `json:"07. latest trading day"`
	PreviousClose    string `json:"08. previous close"`
	Change           string `json:"09. change"`
	ChangePercent    string `json:"10. change percent"`
}

type globalQuoteResponse struct {
	GlobalQuote GlobalQuote `json:"Global Quote"`
}

type RSIValue struct {
	RSI string `json:"RSI"`
}

type rsiResponse struct {
	Values map[string]RSIValue `json:"Technical Analysis: RSI"`
}

type MACDValue struct {
	MACD   string `json:"MACD"`
	Signal string `json:"MACD_Signal"`
	Hist   string `json:"MACD_Hist"`
}

type macdResponse struct {
	Values map[string]MACDValue `json:"Technical Analysis: MACD"`
}

// apiMessage covers the fields Alpha Vantage uses to report errors and
// throttling on a 200 response.
type apiMessage struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

func (m apiMessage) err() error {
	if m.ErrorMessage != "" {
		return fmt.Errorf("alpha vantage error: %s", m.ErrorMessage)
	}
	if m.Note != "" {
		return fmt.Errorf("alpha vantage throttled: %s", m.Note)
	}
	if m.Information != "" {
		return fmt.Errorf("alpha vantage rejected request: %s", m.Information)
	}
	return nil
}

// GetGlobalQuote returns nil without error when the symbol is unknown,
// which Alpha Vantage reports as an empty object.
func (c Client) GetGlobalQuote(ctx context.Context, symbol string) (*GlobalQuote, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)

	out := globalQuoteResponse{}
	if err := c.get(ctx, params, &out); err != nil {
		return nil, fmt.Errorf("failed to get global quote for %s: %w", symbol, err)
	}
	if out.GlobalQuote == (GlobalQuote{}) {
		return nil, nil
	}

	return &out.GlobalQuote, nil
}

// GetLatestRSI returns the most recent daily 14 period RSI reading.
func (c Client) GetLatestRSI(ctx context.Context, symbol string) (*RSIValue, error) {
	params := url.Values{}
	params.Set("function", "RSI")
	params.Set("symbol", symbol)
	params.Set("interval", "daily")
	params.Set("time_period", "14")
	params.Set("series_type", "close")

	out := rsiResponse{}
	if err := c.get(ctx, params, &out); err != nil {
		return nil, fmt.Errorf("failed to get rsi for %s: %w", symbol, err)
	}

	date, ok := latestKey(out.Values)
	if !ok {
		return nil, fmt.Errorf("no rsi values returned for %s", symbol)
	}
	v := out.Values[date]
	return &v, nil
}

// GetLatestMACD returns the most recent daily MACD reading.
func (c Client) GetLatestMACD(ctx context.Context, symbol string) (*MACDValue, error) {
	params := url.Values{}
	params.Set("function", "MACD")
	params.Set("symbol", symbol)
	params.Set("interval", "daily")
	params.Set("series_type", "close")

	out := macdResponse{}
	if err := c.get(ctx, params, &out); err != nil {
		return nil, fmt.Errorf("failed to get macd for %s: %w", symbol, err)
	}

	date, ok := latestKey(out.Values)
	if !ok {
		return nil, fmt.Errorf("no macd values returned for %s", symbol)
	}
	v := out.Values[date]
	return &v, nil
}

// keys are YYYY-MM-DD, so lexical order is date order
func latestKey[T any](m map[string]T) (string, bool) {
	if len(m) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[len(keys)-1], true
}

func (c Client) get(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("apikey", c.ApiKey)
	u := fmt.Sprintf("%s/query?%s", c.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	msg := apiMessage{}
	if err := json.Unmarshal(responseBytes, &msg); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := msg.err(); err != nil {
		return err
	}

	if err := json.Unmarshal(responseBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
