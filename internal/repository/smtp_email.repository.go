package repository

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"
)

type SmtpConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

type smtpEmailRepositoryHandler struct {
	cfg SmtpConfig
}

func NewSmtpEmailRepository(cfg SmtpConfig) EmailRepository {
	return smtpEmailRepositoryHandler{cfg: cfg}
}

func smtpMessage(from, to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

func (h smtpEmailRepositoryHandler) SendEmail(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dialer := gomail.NewDialer(h.cfg.Host, h.cfg.Port, h.cfg.Username, h.cfg.Password)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(smtpMessage(h.cfg.FromEmail, to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email to %s via smtp: %w", to, err)
	}
	return nil
}
