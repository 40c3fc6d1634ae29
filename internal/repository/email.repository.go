package repository

import (
	"context"
	"stockpulse/internal/logger"
)

// EmailRepository is responsible for sending emails.
// It only sends pre-rendered HTML; template rendering is handled by
// EmailService.
type EmailRepository interface {
	SendEmail(ctx context.Context, to string, subject string, body string) error
}

type logEmailRepositoryHandler struct{}

// NewLogEmailRepository logs instead of delivering. Used for local runs.
func NewLogEmailRepository() EmailRepository {
	return logEmailRepositoryHandler{}
}

func (h logEmailRepositoryHandler) SendEmail(ctx context.Context, to string, subject string, body string) error {
	logger.FromContext(ctx).Infow("email not sent, log provider configured",
		"to", to,
		"subject", subject,
		"bytes", len(body),
	)
	return nil
}
