package resolver

import (
	"context"
	"fmt"
	"shortener/internal/config"
	"shortener/pkg/cache"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	defaultVisitTimeout     = 5 * time.Second
	defaultMaxPendingVisits = 1024
	defaultLinkLength       = 6
)

// Options configure the resolver. These settings are typically derived from
// application configuration.
type Options struct {
	// DefaultDomain is the host serving links that belong to no custom domain.
	DefaultDomain string
	// MaxAttempts is how many times a failed invalidation is retried by the worker.
	MaxAttempts int
	// BcryptCost is the cost used when hashing new passwords.
	BcryptCost int
	// VisitTimeout bounds a visit recorded in the background.
	VisitTimeout time.Duration
	// MaxPendingVisits caps the visits being recorded in the background;
	// visits beyond it are dropped.
	MaxPendingVisits int
	// RecheckDelay is how long after a successful invalidation the same keys
	// are deleted once more, evicting values a concurrent read loaded from
	// the previous state. Zero disables the second delete.
	RecheckDelay time.Duration
	// LinkLength is the length of generated link addresses.
	LinkLength int
	// DisallowRegistration rejects new signups.
	DisallowRegistration bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultDomain: cfg.Site.DefaultDomain,
		MaxAttempts:   cfg.Worker.MaxAttempts,
		BcryptCost:    bcrypt.DefaultCost,
		VisitTimeout:  cfg.Site.VisitTimeout,

		MaxPendingVisits:     cfg.Site.MaxPendingVisits,
		RecheckDelay:         cfg.Worker.RecheckDelay,
		LinkLength:           cfg.Site.LinkLength,
		DisallowRegistration: cfg.Site.DisallowRegistration,
	}
}

// resolver is the concrete implementation of the Resolver interface.
type resolver struct {
	options Options
	storage storage.Storage
	cache   *cache.Cache
	// group collapses concurrent misses of the same key into one store read.
	group singleflight.Group
	// visits runs the visits being recorded in the background.
	visits errgroup.Group
}

// New creates a Resolver reading through c and writing to st.
func New(st storage.Storage, c *cache.Cache, options Options) Resolver {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	if options.VisitTimeout == 0 {
		options.VisitTimeout = defaultVisitTimeout
	}
	if options.MaxPendingVisits <= 0 {
		options.MaxPendingVisits = defaultMaxPendingVisits
	}
	if options.LinkLength <= 0 {
		options.LinkLength = defaultLinkLength
	}

	r := &resolver{
		options: options,
		storage: st,
		cache:   c,
	}
	r.visits.SetLimit(options.MaxPendingVisits)

	return r
}

func (r *resolver) Wait() {
	_ = r.visits.Wait()
}

// readThrough serves key from the cache, loading and populating it on a
// miss. A nil result from load is returned as is and not cached. Cache
// failures are logged; the store stays the source of truth.
func readThrough[T any](ctx context.Context,
	r *resolver,
	key string,
	load func(ctx context.Context) (*T, error)) (*T, error) {
	var cached T
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn(ctx, "could not read from cache", zap.String("key", key), zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		res, err := load(ctx)
		if err != nil || res == nil {
			return res, err
		}

		if err := r.cache.Set(ctx, key, res); err != nil {
			logger.Warn(ctx, "could not populate cache", zap.String("key", key), zap.Error(err))
		}

		return res, nil
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	res, _ := v.(*T)
	if res == nil {
		return nil, nil
	}
	// callers sharing a flight must not share the value
	out := *res

	return &out, nil
}

// invalidate removes the cache entries of every given entity. Entities are
// *domain.Link, *domain.Domain, *domain.Host, *domain.User or a
// domain.LinkID for link statistics. Keys the cache refused are handed to
// the retry worker and the combined error is returned; removed keys are
// scheduled for a second delete after RecheckDelay.
func (r *resolver) invalidate(ctx context.Context, entities ...any) error {
	var (
		errs            error
		failed, removed []string
	)
	for _, e := range entities {
		var err error
		switch v := e.(type) {
		case *domain.Link:
			err = r.cache.RemoveLink(ctx, v)
		case *domain.Domain:
			err = r.cache.RemoveDomain(ctx, v)
		case *domain.Host:
			err = r.cache.RemoveHost(ctx, v)
		case *domain.User:
			err = r.cache.RemoveUser(ctx, v)
		case domain.LinkID:
			err = r.cache.RemoveStats(ctx, v)
		default:
			panic(fmt.Sprintf("resolver: cannot invalidate %T", e))
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			failed = append(failed, keysOf(e)...)
		} else {
			removed = append(removed, keysOf(e)...)
		}
	}

	r.scheduleRecheck(ctx, removed)
	if errs == nil {
		return nil
	}

	r.scheduleRetry(ctx, failed)

	return fmt.Errorf("could not invalidate cache: %w", errs)
}

func keysOf(entity any) []string {
	if id, ok := entity.(domain.LinkID); ok {
		return []string{cache.StatsKey(id)}
	}

	return cache.Keys(entity)
}

// scheduleRetry enqueues a job deleting keys as soon as a worker is free.
// The mutation is already committed, so the request context being
// cancelled must not drop the job.
func (r *resolver) scheduleRetry(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if _, err := r.storage.AddJob(ctx, NewInvalidateJobArgs(keys, r.options.MaxAttempts), nil); err != nil {
		logger.Error(ctx, "could not schedule cache invalidation retry",
			zap.Strings("keys", keys),
			zap.Error(err))

		return
	}

	logger.Info(ctx, "scheduled cache invalidation retry", zap.Strings("keys", keys))
}

// scheduleRecheck enqueues a delayed delete of keys. A read that missed
// before the mutation committed may still populate a key with the previous
// state after it was removed; the second delete evicts it.
func (r *resolver) scheduleRecheck(ctx context.Context, keys []string) {
	if len(keys) == 0 || r.options.RecheckDelay <= 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)
	opts := &river.InsertOpts{ScheduledAt: time.Now().Add(r.options.RecheckDelay)}
	if _, err := r.storage.AddJob(ctx, NewInvalidateJobArgs(keys, r.options.MaxAttempts), opts); err != nil {
		logger.Warn(ctx, "could not schedule cache recheck", zap.Strings("keys", keys), zap.Error(err))
	}
}
