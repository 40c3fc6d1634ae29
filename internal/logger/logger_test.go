package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		lg := zap.New(core).Sugar()

		ctx := NewContext(context.Background(), lg)
		FromContext(ctx).Infow("hello", "symbol", "AAPL")

		require.Equal(t, 1, logs.Len())
		require.Equal(t, "AAPL", logs.All()[0].ContextMap()["symbol"])
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.NotNil(t, FromContext(nil))
	})

	t.Run("with carries fields", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := NewContext(context.Background(), zap.New(core).Sugar())

		ctx, _ = With(ctx, "runID", "abc")
		FromContext(ctx).Info("started")

		require.Equal(t, "abc", logs.All()[0].ContextMap()["runID"])
	})
}
