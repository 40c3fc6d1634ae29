package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/repository"
)

// EmailService is responsible for the business logic around digest emails.
// It handles template rendering and formatting but does NOT analyse
// symbols; the verdicts are passed in as a prepared bundle.
type EmailService interface {
	// SendDigestEmail renders the bundle and hands it to the email
	// repository for delivery to bundle.Email.
	SendDigestEmail(ctx context.Context, bundle domain.DigestBundle) error

	// GenerateDigestEmail returns the subject and HTML body for a bundle.
	// Used by SendDigestEmail and on its own for previews.
	GenerateDigestEmail(bundle domain.DigestBundle) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
	ApiBaseURL      string
}

var digestTemplate = template.Must(template.New("digest").Parse(digestEmailTemplate))

func NewEmailService(
	emailRepository repository.EmailRepository,
	apiBaseURL string,
) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
		ApiBaseURL:      strings.TrimRight(apiBaseURL, "/"),
	}
}

func (h *emailServiceHandler) SendDigestEmail(ctx context.Context, bundle domain.DigestBundle) error {
	subject, body, err := h.GenerateDigestEmail(bundle)
	if err != nil {
		return err
	}

	err = h.EmailRepository.SendEmail(ctx, bundle.Email, subject, body)
	if err != nil {
		return fmt.Errorf("failed to send digest to %s: %w", bundle.Email, err)
	}

	return nil
}

// digestCard is the per-symbol view model; colours and signs are
// resolved here so the template stays free of logic.
type digestCard struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	ChangeSign    string
	ChangeColor   string
	ForecastArrow string
	ForecastColor string
	RatingLabel   string
	RatingColor   string
	Verdict       domain.Verdict
}

type digestView struct {
	LongDate       string
	ShortDate      string
	Year           int
	Cards          []digestCard
	UnsubscribeURL string
}

func DigestSubject(date time.Time) string {
	return fmt.Sprintf("📈 StockPulse AI Daily Report - %s", date.Format("January 02, 2006"))
}

func (h *emailServiceHandler) GenerateDigestEmail(bundle domain.DigestBundle) (string, string, error) {
	if len(bundle.Entries) == 0 {
		return "", "", fmt.Errorf("digest for %s has no entries", bundle.Email)
	}

	date := bundle.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	view := digestView{
		LongDate:       date.Format("Monday, January 02, 2006"),
		ShortDate:      date.Format("Jan 02, 2006"),
		Year:           date.Year(),
		UnsubscribeURL: h.unsubscribeURL(bundle.Email),
	}
	for _, entry := range bundle.Entries {
		view.Cards = append(view.Cards, newDigestCard(entry))
	}

	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, view); err != nil {
		return "", "", fmt.Errorf("failed to render digest for %s: %w", bundle.Email, err)
	}

	return DigestSubject(date), buf.String(), nil
}

func (h *emailServiceHandler) unsubscribeURL(email string) string {
	return fmt.Sprintf("%s/unsubscribe?email=%s", h.ApiBaseURL, url.QueryEscape(email))
}

func newDigestCard(entry domain.DigestEntry) digestCard {
	card := digestCard{
		Symbol:        entry.Symbol,
		Price:         entry.Quote.Price,
		Change:        entry.Quote.Change,
		ChangePercent: entry.Quote.ChangePercent,
		ChangeColor:   "#ef4444",
		ForecastArrow: "↓",
		ForecastColor: "#ef4444",
		RatingLabel:   strings.ReplaceAll(string(entry.Verdict.Recommendation.Rating), "_", " "),
		RatingColor:   ratingColor(entry.Verdict.Recommendation.Rating),
		Verdict:       entry.Verdict,
	}
	if entry.Quote.Change >= 0 {
		card.ChangeSign = "+"
		card.ChangeColor = "#10b981"
	}
	if entry.Verdict.Prediction.Direction == domain.DirectionUp {
		card.ForecastArrow = "↑"
		card.ForecastColor = "#10b981"
	}
	return card
}

func ratingColor(r domain.Rating) string {
	switch r {
	case domain.RatingStrongBuy:
		return "#10b981"
	case domain.RatingBuy:
		return "#34d399"
	case domain.RatingSell:
		return "#f87171"
	case domain.RatingStrongSell:
		return "#ef4444"
	default:
		return "#f59e0b"
	}
}
