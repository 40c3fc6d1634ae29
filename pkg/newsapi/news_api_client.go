package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://newsapi.org"

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

type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

type Article struct {
	Source      Source    `json:"source"`
	Author      *string   `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type EverythingRequest struct {
	Query    string
	From     time.Time
	SortBy   string
	PageSize int
}

type everythingResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// Everything queries /v2/everything.
func (c Client) Everything(ctx context.Context, in EverythingRequest) ([]Article, error) {
	params := url.Values{}
	params.Set("q", in.Query)
	if !in.From.IsZero() {
		params.Set("from", in.From.Format(time.DateOnly))
	}
	if in.SortBy != "" {
		params.Set("sortBy", in.SortBy)
	}
	if in.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(in.PageSize))
	}
	params.Set("apiKey", c.ApiKey)

	u := fmt.Sprintf("%s/v2/everything?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	out := everythingResponse{}
	if err := json.Unmarshal(responseBytes, &out); err != nil {
		return nil, fmt.Errorf("received status code %d and failed to decode body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK || out.Status == "error" {
		return nil, fmt.Errorf("failed with status code %d: %s %s", response.StatusCode, out.Code, out.Message)
	}

	return out.Articles, nil
}
