package l2_service

import (
	"context"
	"errors"
	"stockpulse/internal/domain"
	"stockpulse/internal/metrics"
	mock_repository "stockpulse/internal/repository/mocks"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type failingDecider struct{}

func (failingDecider) Decide(ctx context.Context, signals domain.SignalSet) (*domain.Verdict, error) {
	return nil, errors.New("unavailable")
}

// blockingDecider never answers on its own.
type blockingDecider struct {
	ignoreContext bool
}

func (d blockingDecider) Decide(ctx context.Context, signals domain.SignalSet) (*domain.Verdict, error) {
	if d.ignoreContext {
		time.Sleep(time.Minute)
		return nil, nil
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func Test_decisionServiceHandler_Decide(t *testing.T) {
	signals := signalsWith(3.0, float64Ptr(25), float64Ptr(1.2))
	rules := ruleDecider{}.Evaluate(signals)

	t.Run("uses primary when it succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inference := mock_repository.NewMockInferenceRepository(ctrl)
		inference.EXPECT().Infer(gomock.Any(), gomock.Any()).Return(validVerdictJson, nil)

		service := NewDecisionService(NewAIDecider(inference), metrics.New(prometheus.NewRegistry()), 0)
		v := service.Decide(context.Background(), signals)
		require.Equal(t, "AAPL looks constructive.", v.Summary)
	})

	t.Run("falls back on malformed output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inference := mock_repository.NewMockInferenceRepository(ctrl)
		inference.EXPECT().Infer(gomock.Any(), gomock.Any()).Return("no idea", nil).Times(1)

		service := NewDecisionService(NewAIDecider(inference), nil, 0)
		v := service.Decide(context.Background(), signals)
		require.Equal(t, "", cmp.Diff(rules, v))
	})

	t.Run("falls back on out of domain output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inference := mock_repository.NewMockInferenceRepository(ctrl)
		inference.EXPECT().Infer(gomock.Any(), gomock.Any()).Return(`{"risk": "Extreme", "summary": "x"}`, nil)

		service := NewDecisionService(NewAIDecider(inference), nil, 0)
		require.Equal(t, "", cmp.Diff(rules, service.Decide(context.Background(), signals)))
	})

	t.Run("falls back on error", func(t *testing.T) {
		service := NewDecisionService(failingDecider{}, nil, 0)
		require.Equal(t, "", cmp.Diff(rules, service.Decide(context.Background(), signals)))
	})

	t.Run("falls back when primary exceeds its timeout", func(t *testing.T) {
		service := NewDecisionService(blockingDecider{}, nil, 50*time.Millisecond)

		start := time.Now()
		v := service.Decide(context.Background(), signals)
		require.Less(t, time.Since(start), 2*time.Second)
		require.Equal(t, "", cmp.Diff(rules, v))
	})

	t.Run("falls back when primary ignores cancellation", func(t *testing.T) {
		service := NewDecisionService(blockingDecider{ignoreContext: true}, nil, 50*time.Millisecond)

		start := time.Now()
		v := service.Decide(context.Background(), signals)
		require.Less(t, time.Since(start), 2*time.Second)
		require.Equal(t, "", cmp.Diff(rules, v))
	})

	t.Run("rules only without primary", func(t *testing.T) {
		service := NewDecisionService(nil, nil, 0)
		v := service.Decide(context.Background(), signals)
		require.Equal(t, "", cmp.Diff(rules, v))
		require.NoError(t, v.Validate())
	})
}
