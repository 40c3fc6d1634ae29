package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/internal/repository"
)

const (
	MinSubscribedSymbols = 1
	MaxSubscribedSymbols = 10
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SubscriptionApp manages the subscriber list that feeds the digest.
type SubscriptionApp interface {
	Subscribe(ctx context.Context, email string, symbols []string) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}

type subscriptionAppHandler struct {
	SubscriberRepository repository.SubscriberRepository
}

func NewSubscriptionApp(subscriberRepository repository.SubscriberRepository) SubscriptionApp {
	return subscriptionAppHandler{
		SubscriberRepository: subscriberRepository,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cleanSymbols upper-cases, drops blanks and removes repeats while
// keeping first-seen order.
func cleanSymbols(symbols []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range symbols {
		s = NormalizeSymbol(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (h subscriptionAppHandler) Subscribe(ctx context.Context, email string, symbols []string) (*domain.Subscriber, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, domain.NewValidationError("email", "Invalid email address")
	}
	if len(symbols) < MinSubscribedSymbols || len(symbols) > MaxSubscribedSymbols {
		return nil, domain.NewValidationError("stocks", fmt.Sprintf("Please select %d-%d stocks", MinSubscribedSymbols, MaxSubscribedSymbols))
	}

	cleaned := cleanSymbols(symbols)
	if len(cleaned) == 0 {
		return nil, domain.NewValidationError("stocks", fmt.Sprintf("Please select %d-%d stocks", MinSubscribedSymbols, MaxSubscribedSymbols))
	}

	subscriber := domain.Subscriber{
		Email:   email,
		Symbols: cleaned,
		Active:  true,
		Preferences: domain.SubscriberPreferences{
			Frequency:    domain.DefaultFrequency,
			DeliveryTime: domain.DefaultDeliveryTime,
		},
	}

	if err := h.SubscriberRepository.Upsert(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("failed to subscribe %s: %w", email, err)
	}

	logger.FromContext(ctx).Infow("subscribed", "email", email, "symbols", cleaned)
	return &subscriber, nil
}

func (h subscriptionAppHandler) Unsubscribe(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domain.NewValidationError("email", "Email is required")
	}

	if err := h.SubscriberRepository.SetActive(ctx, email, false); err != nil {
		return fmt.Errorf("failed to unsubscribe %s: %w", email, err)
	}

	logger.FromContext(ctx).Infow("unsubscribed", "email", email)
	return nil
}
