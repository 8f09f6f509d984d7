package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Signup creates an unverified account. Entries left under the email by a
// previous account are cleared.
func (r *resolver) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	if r.options.DisallowRegistration {
		return nil, serrors.With(serrors.ErrForbidden, "registration is not allowed")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}
	if len(password) < minPasswordLength {
		return nil, serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	u, err := r.storage.StoreUser(ctx, domain.User{
		Email:    strings.ToLower(addr.Address),
		Password: string(hash),
	})
	if errors.Is(err, serrors.ErrConflict) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "email is already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not sign up: %w", err)
	}

	if err := r.invalidate(ctx, u); err != nil {
		return u, err
	}

	return u, nil
}

// Login checks the credentials of a user resolved by email.
func (r *resolver) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := r.User(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, serrors.ErrNotFound) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	// the user cache is shared by email and API key lookups
	if !strings.EqualFold(u.Email, email) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	if err := checkPassword(u, password); err != nil {
		return nil, err
	}
	if u.Banned {
		return nil, serrors.With(serrors.ErrForbidden, "user is banned")
	}

	return u, nil
}

// ChangeEmail sets a new email after checking the current password. The
// user is invalidated under its previous email and API key.
func (r *resolver) ChangeEmail(ctx context.Context,
	userID domain.UserID,
	password, email string) (*domain.User, error) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}
	email = strings.ToLower(addr.Address)

	u, err := r.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := checkPassword(u, password); err != nil {
		return nil, err
	}

	return r.updateUser(ctx, userID, storage.UserUpdates{Email: &email})
}

// ChangePassword replaces the password after checking the current one.
func (r *resolver) ChangePassword(ctx context.Context, userID domain.UserID, current, password string) error {
	if len(password) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}

	u, err := r.userByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := checkPassword(u, current); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.options.BcryptCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	hashed := string(hash)

	_, err = r.updateUser(ctx, userID, storage.UserUpdates{Password: &hashed})

	return err
}

// RegenerateAPIKey issues a new API key; the previous one stops resolving.
func (r *resolver) RegenerateAPIKey(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	key := strings.ReplaceAll(uuid.NewString(), "-", "")

	return r.updateUser(ctx, userID, storage.UserUpdates{APIKey: &key})
}

// DeleteUser removes an account after checking its password. The user,
// their links with statistics, and the domains they released are
// invalidated.
func (r *resolver) DeleteUser(ctx context.Context, userID domain.UserID, password string) error {
	before, err := r.userByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := checkPassword(before, password); err != nil {
		return err
	}

	deleted, err := r.storage.DeleteUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	entities := make([]any, 0, 1+2*len(deleted.Links)+len(deleted.Domains))
	entities = append(entities, &deleted.User)
	for i := range deleted.Links {
		entities = append(entities, &deleted.Links[i], deleted.Links[i].ID)
	}
	for i := range deleted.Domains {
		entities = append(entities, &deleted.Domains[i])
	}

	return r.invalidate(ctx, entities...)
}

func (r *resolver) userByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, err := r.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return u, nil
}

func (r *resolver) updateUser(ctx context.Context,
	userID domain.UserID,
	updates storage.UserUpdates) (*domain.User, error) {
	change, err := r.storage.UpdateUser(ctx, userID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if change == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	if err := r.invalidate(ctx, &change.Before); err != nil {
		return &change.After, err
	}

	return &change.After, nil
}

func checkPassword(u *domain.User, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "invalid email or password")
	}

	return nil
}
