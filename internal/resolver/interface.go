// Package resolver is the caller side of the resolution cache. Reads go
// through the cache and fall back to the relational store; every mutation
// writes the store first and then invalidates the cache entries of the
// state it replaced.
package resolver

import (
	"context"
	"shortener/pkg/domain"
	"shortener/pkg/storage"
)

//go:generate mockgen -package mockresolver -source=interface.go -destination=mock/mockresolver.go *
type Resolver interface {
	Link(ctx context.Context, address string, domainID domain.DomainID, userID domain.UserID) (*domain.Link, error)
	Domain(ctx context.Context, address string) (*domain.Domain, error)
	Host(ctx context.Context, address string) (*domain.Host, error)
	User(ctx context.Context, emailOrKey string) (*domain.User, error)
	Stats(ctx context.Context, userID domain.UserID, linkID domain.LinkID) (*domain.Stats, error)

	Redirect(ctx context.Context, host, address string) (*domain.Link, error)
	RecordVisit(ctx context.Context, link *domain.Link) error

	CreateLink(ctx context.Context, userID domain.UserID, in NewLink) (*domain.Link, error)
	UpdateLink(ctx context.Context,
		userID domain.UserID,
		id domain.LinkID,
		updates storage.LinkUpdates) (*domain.Link, error)
	DeleteLink(ctx context.Context, userID domain.UserID, id domain.LinkID) error

	Domains(ctx context.Context, userID domain.UserID) ([]domain.Domain, error)
	AddDomain(ctx context.Context, userID domain.UserID, address, homepage string) (*domain.Domain, error)
	UpdateDomain(ctx context.Context,
		userID domain.UserID,
		id domain.DomainID,
		updates storage.DomainUpdates) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, userID domain.UserID, id domain.DomainID) error

	AddHost(ctx context.Context, userID domain.UserID, address string, domainID domain.DomainID) (*domain.Host, error)
	DeleteHost(ctx context.Context, userID domain.UserID, address string) error

	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	ChangeEmail(ctx context.Context, userID domain.UserID, password, email string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID domain.UserID, current, password string) error
	RegenerateAPIKey(ctx context.Context, userID domain.UserID) (*domain.User, error)
	DeleteUser(ctx context.Context, userID domain.UserID, password string) error

	// Wait blocks until visits recorded in the background are flushed.
	Wait()
}
