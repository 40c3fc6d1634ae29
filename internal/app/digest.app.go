package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/internal/metrics"
	"stockpulse/internal/repository"
	"stockpulse/internal/service"
	l1_service "stockpulse/internal/service/l1"
	l2_service "stockpulse/internal/service/l2"

	"github.com/google/uuid"
)

const (
	defaultDigestWorkers    = 10
	defaultMaxDigestSymbols = 5
)

// DigestApp orchestrates the daily digest. It coordinates between
// multiple services to:
// 1. Load active subscribers
// 2. Analyse each subscriber's symbols through the decision engine
// 3. Send one digest email per subscriber via EmailService
type DigestApp interface {
	// SendDailyDigest only fails when the subscriber list cannot be read.
	SendDailyDigest(ctx context.Context) (*domain.RunReport, error)
	RunDigest(ctx context.Context, subscribers []domain.Subscriber) domain.RunReport
}

type DigestConfig struct {
	Workers                 int
	MaxSymbolsPerSubscriber int
}

type digestAppHandler struct {
	SubscriberRepository repository.SubscriberRepository
	SignalService        l1_service.SignalService
	DecisionService      l2_service.DecisionService
	EmailService         service.EmailService
	Metrics              *metrics.Recorder
	Config               DigestConfig
	Now                  func() time.Time
}

func NewDigestApp(
	subscriberRepository repository.SubscriberRepository,
	signalService l1_service.SignalService,
	decisionService l2_service.DecisionService,
	emailService service.EmailService,
	recorder *metrics.Recorder,
	config DigestConfig,
) DigestApp {
	if config.Workers <= 0 {
		config.Workers = defaultDigestWorkers
	}
	if config.MaxSymbolsPerSubscriber <= 0 {
		config.MaxSymbolsPerSubscriber = defaultMaxDigestSymbols
	}
	return &digestAppHandler{
		SubscriberRepository: subscriberRepository,
		SignalService:        signalService,
		DecisionService:      decisionService,
		EmailService:         emailService,
		Metrics:              recorder,
		Config:               config,
		Now:                  time.Now,
	}
}

func (h *digestAppHandler) SendDailyDigest(ctx context.Context) (*domain.RunReport, error) {
	subscribers, err := h.SubscriberRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active subscribers: %w", err)
	}

	report := h.RunDigest(ctx, subscribers)
	return &report, nil
}

func (h *digestAppHandler) RunDigest(ctx context.Context, subscribers []domain.Subscriber) domain.RunReport {
	report := domain.RunReport{RunID: uuid.New()}
	ctx, log := logger.With(ctx, "runID", report.RunID.String())
	start := time.Now()

	log.Infof("starting digest run for %d subscribers", len(subscribers))

	memo := newEntryMemo(h.analyseSymbol)
	date := h.Now().UTC()

	inputCh := make(chan domain.Subscriber, len(subscribers))
	for _, s := range subscribers {
		inputCh <- s
	}
	close(inputCh)

	outcomeCh := make(chan domain.DigestOutcome, len(subscribers))

	var wg sync.WaitGroup
	for i := 0; i < h.Config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case subscriber, ok := <-inputCh:
					if !ok {
						return
					}
					outcomeCh <- h.processSubscriber(ctx, subscriber, memo, date)
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	// the report has a single owner; workers only hand back outcomes
	for outcome := range outcomeCh {
		report.Record(outcome)
		h.Metrics.RecordDigestOutcome(string(outcome.Status))
	}

	log.Infow("digest run complete",
		"subscribers", report.SubscribersSeen,
		"sent", report.Sent,
		"skipped", report.Skipped,
		"errors", report.Errors,
		"elapsed", time.Since(start).String(),
	)

	return report
}

func (h *digestAppHandler) processSubscriber(
	ctx context.Context,
	subscriber domain.Subscriber,
	memo *entryMemo,
	date time.Time,
) domain.DigestOutcome {
	outcome := domain.DigestOutcome{
		Email:  subscriber.Email,
		Status: domain.DigestStatusSkipped,
	}
	if subscriber.Email == "" || len(subscriber.Symbols) == 0 {
		return outcome
	}

	log := logger.FromContext(ctx).With("email", subscriber.Email)

	symbols := subscriber.Symbols
	if len(symbols) > h.Config.MaxSymbolsPerSubscriber {
		symbols = symbols[:h.Config.MaxSymbolsPerSubscriber]
	}

	results := make([]*domain.DigestEntry, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			entry, err := memo.get(ctx, symbol)
			if err != nil {
				log.Warnw("skipping symbol", "symbol", symbol, "error", err.Error())
				return
			}
			results[i] = entry
		}(i, symbol)
	}
	wg.Wait()

	bundle := domain.DigestBundle{
		Email: subscriber.Email,
		Date:  date,
	}
	for _, entry := range results {
		if entry != nil {
			bundle.Entries = append(bundle.Entries, *entry)
		}
	}
	outcome.Symbols = len(bundle.Entries)

	if len(bundle.Entries) == 0 {
		log.Infof("no usable data for any of %d symbols, skipping delivery", len(symbols))
		return outcome
	}

	if err := h.EmailService.SendDigestEmail(ctx, bundle); err != nil {
		log.Errorf("failed to deliver digest: %s", err.Error())
		outcome.Status = domain.DigestStatusFailed
		outcome.Err = err
		return outcome
	}

	outcome.Status = domain.DigestStatusSent
	return outcome
}

func (h *digestAppHandler) analyseSymbol(ctx context.Context, symbol string) (*domain.DigestEntry, error) {
	signals, err := h.SignalService.GetSignals(ctx, symbol)
	if err != nil {
		return nil, err
	}

	verdict := h.DecisionService.Decide(ctx, *signals)
	return &domain.DigestEntry{
		Symbol:  symbol,
		Quote:   signals.Quote,
		Verdict: verdict,
	}, nil
}

// entryMemo shares one analysis per symbol across a run. Failures are
// kept too, so a broken symbol is tried once per run.
type entryMemo struct {
	mu      sync.Mutex
	entries map[string]*memoEntry
	fetch   func(ctx context.Context, symbol string) (*domain.DigestEntry, error)
}

type memoEntry struct {
	once  sync.Once
	entry *domain.DigestEntry
	err   error
}

func newEntryMemo(fetch func(ctx context.Context, symbol string) (*domain.DigestEntry, error)) *entryMemo {
	return &entryMemo{
		entries: map[string]*memoEntry{},
		fetch:   fetch,
	}
}

func (m *entryMemo) get(ctx context.Context, symbol string) (*domain.DigestEntry, error) {
	m.mu.Lock()
	e, ok := m.entries[symbol]
	if !ok {
		e = &memoEntry{}
		m.entries[symbol] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		e.entry, e.err = m.fetch(ctx, symbol)
	})
	return e.entry, e.err
}
