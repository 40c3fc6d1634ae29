package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	PathAI    = "ai"
	PathRules = "rules"
)

// Recorder collects engine and digest metrics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	verdicts         *prometheus.CounterVec
	emails           *prometheus.CounterVec
	upstreamFailures *prometheus.CounterVec
	decisionLatency  *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		verdicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_verdicts_total",
				Help: "Verdicts produced, by decision path",
			},
			[]string{"path"},
		),
		emails: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_digest_emails_total",
				Help: "Digest subscribers processed, by outcome",
			},
			[]string{"outcome"},
		),
		upstreamFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_upstream_failures_total",
				Help: "Failed calls to external dependencies",
			},
			[]string{"dependency"},
		),
		decisionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockpulse_decision_duration_seconds",
				Help:    "Time to produce a verdict",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}
}

func (r *Recorder) RecordVerdict(path string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.verdicts.WithLabelValues(path).Inc()
	r.decisionLatency.WithLabelValues(path).Observe(elapsed.Seconds())
}

func (r *Recorder) RecordDigestOutcome(outcome string) {
	if r == nil {
		return
	}
	r.emails.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordUpstreamFailure(dependency string) {
	if r == nil {
		return
	}
	r.upstreamFailures.WithLabelValues(dependency).Inc()
}
