package worker

import (
	"context"
	"fmt"
	"shortener/internal/resolver"
	"shortener/pkg/cache"
	"shortener/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const invalidateTimeout = 30 * time.Second

// InvalidateWorker deletes cache keys of a committed mutation: keys whose
// invalidation failed right away, and keys deleted a second time once the
// recheck delay has passed. A failing backend returns the error so River
// retries the job with backoff until MaxAttempts is reached.
type InvalidateWorker struct {
	river.WorkerDefaults[resolver.InvalidateJobArgs]

	cache *cache.Cache
}

// NewInvalidateWorker creates a worker deleting keys from c.
func NewInvalidateWorker(c *cache.Cache) *InvalidateWorker {
	return &InvalidateWorker{cache: c}
}

func (w *InvalidateWorker) Timeout(*river.Job[resolver.InvalidateJobArgs]) time.Duration {
	return invalidateTimeout
}

func (w *InvalidateWorker) Work(ctx context.Context, job *river.Job[resolver.InvalidateJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("job", job.ID), zap.Int("attempt", job.Attempt))
	if len(job.Args.Keys) == 0 {
		return nil
	}

	if err := w.cache.RemoveKeys(ctx, job.Args.Keys...); err != nil {
		logger.Warn(ctx, "retrying cache invalidation", zap.Strings("keys", job.Args.Keys), zap.Error(err))

		return fmt.Errorf("could not invalidate cache keys: %w", err)
	}

	logger.Info(ctx, "cache keys invalidated", zap.Strings("keys", job.Args.Keys))

	return nil
}
