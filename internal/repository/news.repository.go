package repository

import (
	"context"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/pkg/newsapi"
	"time"
)

// NewsRepository returns recent headlines for a symbol. It never fails; an
// unavailable source yields no headlines.
type NewsRepository interface {
	GetNews(ctx context.Context, symbol string) []domain.NewsItem
}

const newsWindow = 7 * 24 * time.Hour

// company names search much better than tickers
var companyNames = map[string]string{
	"AAPL":  "Apple",
	"GOOGL": "Google OR Alphabet",
	"MSFT":  "Microsoft",
	"AMZN":  "Amazon",
	"TSLA":  "Tesla",
	"NVDA":  "NVIDIA",
	"META":  "Meta OR Facebook",
}

type newsRepositoryHandler struct {
	Client newsapi.Client
	Now    func() time.Time
}

func NewNewsRepository(client newsapi.Client) NewsRepository {
	return newsRepositoryHandler{
		Client: client,
		Now:    time.Now,
	}
}

func newsQuery(symbol string) string {
	if q, ok := companyNames[symbol]; ok {
		return q
	}
	return symbol
}

func (h newsRepositoryHandler) GetNews(ctx context.Context, symbol string) []domain.NewsItem {
	if h.Client.ApiKey == "" {
		return []domain.NewsItem{}
	}

	articles, err := h.Client.Everything(ctx, newsapi.EverythingRequest{
		Query:    newsQuery(symbol),
		From:     h.Now().Add(-newsWindow),
		SortBy:   "relevancy",
		PageSize: domain.MaxNewsItems,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to fetch news for %s: %s", symbol, err.Error())
		return []domain.NewsItem{}
	}

	out := make([]domain.NewsItem, 0, domain.MaxNewsItems)
	for _, a := range articles {
		if len(out) == domain.MaxNewsItems {
			break
		}
		out = append(out, domain.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			SourceName:  a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}

	return out
}
