package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure a Cache.
type Options struct {
	// MeterProvider receives hit, miss and invalidation instruments. Nil
	// disables metrics.
	MeterProvider metric.MeterProvider
}

// Cache is the process-wide resolution cache handle. It is created once at
// start-up, passed to whoever needs it and closed at shutdown.
type Cache struct {
	backend Backend
	metrics *instruments
}

// New wraps backend into a Cache.
func New(backend Backend, opts Options) (*Cache, error) {
	ins, err := newInstruments(opts.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &Cache{
		backend: backend,
		metrics: ins,
	}, nil
}

// Close closes the underlying backend.
func (c *Cache) Close() error {
	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("could not close cache backend: %w", err)
	}

	return nil
}

// Get decodes the JSON value stored under key into dst. It reports false
// with a nil error on a miss.
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	start := time.Now()
	raw, err := c.backend.Get(ctx, key)
	c.metrics.observe(ctx, "get", start, err)
	if errors.Is(err, ErrMiss) {
		c.metrics.miss(ctx)

		return false, nil
	}
	if err != nil {
		return false, serrors.Wrap(serrors.ErrUnavailable, err, "could not get cache key %q", key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("could not decode cache key %q: %w", key, err)
	}
	c.metrics.hit(ctx)

	return true, nil
}

// Set JSON-encodes value and stores it under key with no expiry. Entries
// live until an invalidation helper removes them.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode cache key %q: %w", key, err)
	}

	start := time.Now()
	err = c.backend.Set(ctx, key, raw)
	c.metrics.observe(ctx, "set", start, err)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not set cache key %q", key)
	}

	return nil
}

// RemoveLink invalidates every scope the link may be cached under. link
// must describe the row as it was before the mutation.
func (c *Cache) RemoveLink(ctx context.Context, link *domain.Link) error {
	if link == nil {
		return nil
	}

	return c.remove(ctx, KindLink, KeysOf(link, LinkIndexes))
}

// RemoveDomain invalidates the cached custom domain.
func (c *Cache) RemoveDomain(ctx context.Context, d *domain.Domain) error {
	if d == nil {
		return nil
	}

	return c.remove(ctx, KindDomain, KeysOf(d, DomainIndexes))
}

// RemoveHost invalidates the cached host mapping.
func (c *Cache) RemoveHost(ctx context.Context, host *domain.Host) error {
	if host == nil {
		return nil
	}

	return c.remove(ctx, KindHost, KeysOf(host, HostIndexes))
}

// RemoveUser invalidates the user under both its email and its API key.
// Both deletions are always attempted; any failure is returned.
func (c *Cache) RemoveUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return nil
	}

	return c.remove(ctx, KindUser, KeysOf(user, UserIndexes))
}

// RemoveStats invalidates the aggregated statistics of a link.
func (c *Cache) RemoveStats(ctx context.Context, linkID domain.LinkID) error {
	if linkID == 0 {
		return nil
	}

	return c.remove(ctx, KindStats, []string{StatsKey(linkID)})
}

// RemoveKeys deletes raw keys, e.g. keys recorded by a failed invalidation.
func (c *Cache) RemoveKeys(ctx context.Context, keys ...string) error {
	return c.remove(ctx, "", keys)
}

// remove deletes keys concurrently. Every deletion runs to completion
// regardless of the others; the returned error combines all failures.
func (c *Cache) remove(ctx context.Context, kind Kind, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	errs := make([]error, len(keys))
	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			errs[i] = c.del(ctx, key)

			return errs[i]
		})
	}
	if g.Wait() == nil {
		c.metrics.invalidated(ctx, kind, len(keys))

		return nil
	}

	err := multierr.Combine(errs...)
	logger.Warn(ctx, "cache invalidation failed",
		zap.Strings("keys", keys),
		zap.String("kind", string(kind)),
		zap.Error(err))

	return err
}

func (c *Cache) del(ctx context.Context, key string) error {
	start := time.Now()
	err := c.backend.Del(ctx, key)
	c.metrics.observe(ctx, "del", start, err)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not delete cache key %q", key)
	}

	return nil
}
