// Package redis implements cache.Backend on top of a pooled go-redis client.
package redis

import (
	"context"
	"errors"
	"fmt"
	"shortener/pkg/cache"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Options defines the connection parameters of the Redis backend.
type Options struct {
	// URL is a redis:// or rediss:// connection URL. When set it takes
	// precedence over Addr, Password and DB.
	URL string
	// Addr is the host:port of the Redis server.
	Addr string
	// Password used for AUTH, empty for none.
	Password string
	// DB is the logical database number.
	DB int
	// PoolSize is the maximum number of socket connections.
	PoolSize int
	// MinIdleConns is the minimum number of idle connections kept open.
	MinIdleConns int
	// MaxIdleConns is the maximum number of idle connections.
	MaxIdleConns int
	// DialTimeout bounds establishing new connections.
	DialTimeout time.Duration
	// ReadTimeout bounds socket reads.
	ReadTimeout time.Duration
	// WriteTimeout bounds socket writes.
	WriteTimeout time.Duration
}

func (o Options) clientOptions() (*goredis.Options, error) {
	opts := &goredis.Options{
		Addr:     o.Addr,
		Password: o.Password,
		DB:       o.DB,
	}
	if o.URL != "" {
		parsed, err := goredis.ParseURL(o.URL)
		if err != nil {
			return nil, fmt.Errorf("could not parse redis url: %w", err)
		}
		opts = parsed
	}

	if o.PoolSize > 0 {
		opts.PoolSize = o.PoolSize
	}
	if o.MinIdleConns > 0 {
		opts.MinIdleConns = o.MinIdleConns
	}
	if o.MaxIdleConns > 0 {
		opts.MaxIdleConns = o.MaxIdleConns
	}
	if o.DialTimeout > 0 {
		opts.DialTimeout = o.DialTimeout
	}
	if o.ReadTimeout > 0 {
		opts.ReadTimeout = o.ReadTimeout
	}
	if o.WriteTimeout > 0 {
		opts.WriteTimeout = o.WriteTimeout
	}

	return opts, nil
}

// Redis is a cache.Backend backed by a single pooled client shared by all
// goroutines.
type Redis struct {
	Client *goredis.Client
}

var _ cache.Backend = (*Redis)(nil)

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, options Options) (*Redis, error) {
	opts, err := options.clientOptions()
	if err != nil {
		return nil, err
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, cache.ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("could not get %q from redis: %w", key, err)
	}

	return val, nil
}

// Set stores value without expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("could not set %q in redis: %w", key, err)
	}

	return nil
}

// Del removes key; DEL on a missing key replies 0 and is not an error.
func (r *Redis) Del(ctx context.Context, key string) error {
	if err := r.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("could not delete %q from redis: %w", key, err)
	}

	return nil
}

// Close closes the connection pool.
func (r *Redis) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
