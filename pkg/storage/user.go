package storage

import (
	"context"
	"shortener/pkg/domain"
)

// UserUpdates lists the optional fields of a user update.
type UserUpdates struct {
	Email    *string
	APIKey   *string
	Password *string
}

// DeletedUser is everything a user deletion touched, as it was before.
type DeletedUser struct {
	User    domain.User
	Links   []domain.Link
	Domains []domain.Domain
}

// UserStorage defines lookups and mutations of user accounts.
type UserStorage interface {
	// UserByEmailOrAPIKey finds a user whose email or API key equals emailOrKey.
	UserByEmailOrAPIKey(ctx context.Context, emailOrKey string) (*domain.User, error)
	// UserByID finds a user by ID.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// StoreUser inserts a new account.
	StoreUser(ctx context.Context, u domain.User) (*domain.User, error)
	// UpdateUser applies updates to a user. It returns nil when the user
	// does not exist.
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*Change[domain.User], error)
	// DeleteUser removes a user with their links and releases their domains.
	// It returns nil when the user did not exist.
	DeleteUser(ctx context.Context, id domain.UserID) (*DeletedUser, error)
}
