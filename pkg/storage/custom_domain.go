package storage

import (
	"context"
	"shortener/pkg/domain"
)

// DomainUpdates lists the optional fields of a domain update.
type DomainUpdates struct {
	// Homepage, when provided, replaces the homepage; an empty string clears it.
	Homepage *string
}

// DeletedDomain is everything a domain deletion touched: the domain row,
// the links that lived on it and the hosts that pointed to it. All of them
// are returned as they were before the deletion.
type DeletedDomain struct {
	Domain domain.Domain
	Links  []domain.Link
	Hosts  []domain.Host
}

// DomainStorage defines lookups and mutations of custom domains.
type DomainStorage interface {
	// DomainByAddress finds a domain by its hostname.
	DomainByAddress(ctx context.Context, address string) (*domain.Domain, error)
	// DomainByID finds a domain by its ID.
	DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
	// DomainsByUserID lists the domains owned by userID, oldest first.
	DomainsByUserID(ctx context.Context, userID domain.UserID) ([]domain.Domain, error)
	// StoreDomain inserts a new domain.
	StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// UpdateDomain applies updates to a domain owned by userID. It returns
	// nil when no such domain exists.
	UpdateDomain(ctx context.Context,
		userID domain.UserID,
		id domain.DomainID,
		updates DomainUpdates) (*Change[domain.Domain], error)
	// DeleteDomain removes a domain owned by userID together with its links
	// and unmaps its hosts. It returns nil when the domain did not exist.
	DeleteDomain(ctx context.Context, userID domain.UserID, id domain.DomainID) (*DeletedDomain, error)
}
