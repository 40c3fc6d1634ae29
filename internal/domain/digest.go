package domain

import (
	"time"

	"github.com/google/uuid"
)

// DigestEntry is one analysed symbol inside a subscriber's digest.
type DigestEntry struct {
	Symbol  string
	Quote   Quote
	Verdict Verdict
}

// DigestBundle is built fresh per run and discarded after delivery.
type DigestBundle struct {
	Email   string
	Date    time.Time
	Entries []DigestEntry
}

type DigestStatus string

const (
	DigestStatusSent    DigestStatus = "sent"
	DigestStatusSkipped DigestStatus = "skipped"
	DigestStatusFailed  DigestStatus = "error"
)

// DigestOutcome is what happened to a single subscriber during a run.
type DigestOutcome struct {
	Email   string
	Status  DigestStatus
	Symbols int
	Err     error
}

// RunReport summarises one digest fan-out.
type RunReport struct {
	RunID           uuid.UUID `json:"runID"`
	SubscribersSeen int       `json:"subscribers"`
	Sent            int       `json:"emailsSent"`
	Skipped         int       `json:"skipped"`
	Errors          int       `json:"errors"`
}

// Record folds a subscriber outcome into the report. Not safe for
// concurrent use; a single routine owns the report.
func (r *RunReport) Record(o DigestOutcome) {
	r.SubscribersSeen++
	switch o.Status {
	case DigestStatusSent:
		r.Sent++
	case DigestStatusFailed:
		r.Errors++
	default:
		r.Skipped++
	}
}
