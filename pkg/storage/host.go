package storage

import (
	"context"
	"shortener/pkg/domain"
)

// HostStorage defines lookups and mutations of host mappings.
type HostStorage interface {
	// HostByAddress finds a host mapping by the raw host string.
	HostByAddress(ctx context.Context, address string) (*domain.Host, error)
	// StoreHost inserts a host mapping or replaces the one with the same address.
	StoreHost(ctx context.Context, h domain.Host) (*domain.Host, error)
	// DeleteHost removes a host mapping and returns it, or nil when missing.
	DeleteHost(ctx context.Context, address string) (*domain.Host, error)
}
