package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"stockpulse/api"
	"stockpulse/internal/app"
	"stockpulse/internal/metrics"
	"stockpulse/internal/repository"
	"stockpulse/internal/service"
	l1_service "stockpulse/internal/service/l1"
	l2_service "stockpulse/internal/service/l2"
	"stockpulse/internal/util"
	"stockpulse/pkg/alphavantage"
	"stockpulse/pkg/newsapi"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
)

func CloseDependencies(handler *api.ApiHandler) {
	for _, c := range handler.Closers {
		if err := c(); err != nil {
			log.Printf("failed to close dependency: %v", err)
		}
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	ctx := context.Background()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	recorder := metrics.New(prometheus.DefaultRegisterer)
	httpClient := &http.Client{Timeout: secrets.Digest.CallTimeout()}

	marketDataRepository, err := newMarketDataRepository(*secrets, httpClient)
	if err != nil {
		return nil, err
	}
	newsRepository := repository.NewNewsRepository(
		newsapi.NewClient(httpClient, secrets.NewsApi.ApiKey, secrets.NewsApi.BaseURL),
	)
	primaryDecider, err := newPrimaryDecider(ctx, *secrets)
	if err != nil {
		return nil, err
	}
	emailRepository, err := newEmailRepository(ctx, *secrets)
	if err != nil {
		return nil, err
	}
	subscriberRepository := repository.NewSubscriberRepository(dbConn)

	signalService := l1_service.NewSignalService(
		marketDataRepository,
		newsRepository,
		recorder,
		secrets.Digest.CallTimeout(),
	)
	decisionService := l2_service.NewDecisionService(primaryDecider, recorder, secrets.Digest.CallTimeout())
	emailService := service.NewEmailService(emailRepository, secrets.Digest.ApiBaseURL)

	digestApp := app.NewDigestApp(
		subscriberRepository,
		signalService,
		decisionService,
		emailService,
		recorder,
		app.DigestConfig{
			Workers:                 secrets.Digest.Workers,
			MaxSymbolsPerSubscriber: secrets.Digest.MaxSymbolsPerSubscriber,
		},
	)

	apiHandler := &api.ApiHandler{
		AnalysisApp:     app.NewAnalysisApp(signalService, decisionService),
		SubscriptionApp: app.NewSubscriptionApp(subscriberRepository),
		DigestApp:       digestApp,
		Closers:         []func() error{dbConn.Close},
	}

	return apiHandler, nil
}

func newMarketDataRepository(secrets util.Secrets, httpClient *http.Client) (repository.MarketDataRepository, error) {
	switch strings.ToLower(secrets.MarketData.Provider) {
	case "alphavantage":
		client := alphavantage.NewClient(httpClient, secrets.AlphaVantage.ApiKey, secrets.AlphaVantage.BaseURL)
		return repository.NewAlphaVantageRepository(client), nil
	case "alpaca":
		alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
		return repository.NewBarMarketDataRepository(alpacaRepository), nil
	case "yahoo":
		return repository.NewBarMarketDataRepository(repository.NewYahooRepository()), nil
	}
	return nil, fmt.Errorf("unknown market data provider %q", secrets.MarketData.Provider)
}

// newPrimaryDecider returns nil when no model is configured, leaving the
// rule-based decider as the only path.
func newPrimaryDecider(ctx context.Context, secrets util.Secrets) (l2_service.Decider, error) {
	var (
		inferenceRepository repository.InferenceRepository
		err                 error
	)
	switch strings.ToLower(secrets.Inference.Provider) {
	case "gpt":
		if secrets.ChatGPT.ApiKey == "" {
			return nil, nil
		}
		inferenceRepository, err = repository.NewGptRepository(secrets.ChatGPT.ApiKey, secrets.ChatGPT.Model)
	case "gemini":
		if secrets.Gemini.ApiKey == "" {
			return nil, nil
		}
		inferenceRepository, err = repository.NewGeminiRepository(ctx, secrets.Gemini.ApiKey, secrets.Gemini.Model)
	case "none", "rules":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown inference provider %q", secrets.Inference.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create inference repository: %w", err)
	}
	return l2_service.NewAIDecider(inferenceRepository), nil
}

func newEmailRepository(ctx context.Context, secrets util.Secrets) (repository.EmailRepository, error) {
	switch strings.ToLower(secrets.Email.Provider) {
	case "ses":
		emailRepository, err := repository.NewSesEmailRepository(ctx, secrets.SES.Region, secrets.SES.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
		return emailRepository, nil
	case "smtp":
		return repository.NewSmtpEmailRepository(repository.SmtpConfig{
			Host:      secrets.SMTP.Host,
			Port:      secrets.SMTP.Port,
			Username:  secrets.SMTP.Username,
			Password:  secrets.SMTP.Password,
			FromEmail: secrets.SMTP.FromEmail,
		}), nil
	case "log":
		return repository.NewLogEmailRepository(), nil
	}
	return nil, fmt.Errorf("unknown email provider %q", secrets.Email.Provider)
}
