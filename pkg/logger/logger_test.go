package logger_test

import (
	"context"
	"shortener/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup_Environments(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(context.Background()))
}

func TestWithFields_FollowsTheCallChain(t *testing.T) {
	ctx, logs := observed(zapcore.DebugLevel)

	ctx = logger.WithFields(ctx, zap.String("request_id", "req-1"))
	jobCtx := logger.WithFields(ctx, zap.String("key", "link:sho.rt:abc"), zap.Int64("job_id", 12))

	logger.Info(ctx, "redirect served")
	logger.Warn(jobCtx, "invalidation retried")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, map[string]interface{}{"request_id": "req-1"}, entries[0].ContextMap())
	require.Equal(t, map[string]interface{}{
		"request_id": "req-1",
		"key":        "link:sho.rt:abc",
		"job_id":     int64(12),
	}, entries[1].ContextMap())
}

func TestLevels(t *testing.T) {
	ctx, logs := observed(zapcore.InfoLevel)

	logger.Debug(ctx, "cache miss")
	logger.Info(ctx, "cache filled")
	logger.Warn(ctx, "cache unavailable")
	logger.Error(ctx, "invalidation failed")

	require.Zero(t, logs.FilterMessage("cache miss").Len())
	require.Equal(t, zapcore.InfoLevel, logs.FilterMessage("cache filled").All()[0].Level)
	require.Equal(t, zapcore.WarnLevel, logs.FilterMessage("cache unavailable").All()[0].Level)
	require.Equal(t, zapcore.ErrorLevel, logs.FilterMessage("invalidation failed").All()[0].Level)
	require.False(t, logger.IsDebug(ctx))
}

func TestGet_ContextLoggerWins(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	custom := zap.NewNop()

	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
	require.NotSame(t, custom, logger.Get(context.Background()))
	require.NotPanics(t, logger.Sync)
}
