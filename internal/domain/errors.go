package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable covers failed or timed out calls to signal,
	// inference and delivery providers.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse means inference output did not match the
	// expected verdict shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrQuoteUnavailable means no usable quote exists for the symbol.
	ErrQuoteUnavailable = fmt.Errorf("quote %w", ErrUpstreamUnavailable)
)

// ValidationError is caller input that is rejected before reaching the
// decision engine.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}
