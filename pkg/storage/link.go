package storage

import (
	"context"
	"shortener/pkg/domain"
)

// LinkUpdates lists the optional fields of a link update. Only non-nil
// fields are written.
type LinkUpdates struct {
	Address     *string
	Target      *string
	Description *string
}

// Change is a row as it was locked before an update and as the update left
// it, both read inside the same transaction.
type Change[T any] struct {
	Before T
	After  T
}

// LinkStorage defines lookups and mutations of short links and their
// visit statistics. Lookups return nil without error when nothing matches.
type LinkStorage interface {
	// LinkByAddress finds a link by address inside a domain scope. A zero
	// domainID selects the default domain; a zero userID does not filter on
	// the owner.
	LinkByAddress(ctx context.Context,
		address string,
		domainID domain.DomainID,
		userID domain.UserID) (*domain.Link, error)
	// LinkByID finds a link by its ID.
	LinkByID(ctx context.Context, id domain.LinkID) (*domain.Link, error)
	// StoreLink inserts a new link.
	StoreLink(ctx context.Context, l domain.Link) (*domain.Link, error)
	// UpdateLink applies updates to a link owned by userID. It returns nil
	// when no such link exists.
	UpdateLink(ctx context.Context,
		userID domain.UserID,
		id domain.LinkID,
		updates LinkUpdates) (*Change[domain.Link], error)
	// DeleteLink deletes a link owned by userID and returns the row as it was
	// before deletion, or nil when it did not exist.
	DeleteLink(ctx context.Context, userID domain.UserID, id domain.LinkID) (*domain.Link, error)
	// RecordVisit stores a visit and increments the link's visit counter
	// atomically.
	RecordVisit(ctx context.Context, id domain.LinkID) error
	// StatsByLinkID aggregates the visits of a link.
	StatsByLinkID(ctx context.Context, id domain.LinkID) (*domain.Stats, error)
}
