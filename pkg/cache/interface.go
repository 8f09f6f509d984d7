// Package cache implements the resolution cache that sits in front of the
// relational store: deterministic key derivation for links, domains, hosts,
// stats and users, JSON read-through helpers and the invalidation helpers
// that every mutation path must call.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Backend.Get when the key does not exist.
var ErrMiss = errors.New("cache miss")

// Backend is the key/value store behind the cache. Implementations must be
// safe for concurrent use; a single instance is shared by the whole
// process. Del on a missing key must succeed.
type Backend interface {
	// Get returns the stored value or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key without expiry.
	Set(ctx context.Context, key string, value []byte) error
	// Del removes key. Removing a missing key is not an error.
	Del(ctx context.Context, key string) error
	// Close releases the connection pool.
	Close() error
}
