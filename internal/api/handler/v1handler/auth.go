package v1handler

import (
	"context"
	"shortener/internal/api/specs/v1specs"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
)

// DomainUserToV1Specs converts the public part of an account.
func DomainUserToV1Specs(in *domain.User) *v1specs.User {
	return &v1specs.User{
		ID:        int64(in.ID),
		Email:     in.Email,
		Verified:  in.Verified,
		CreatedAt: in.CreatedAt,
	}
}

// Login exchanges credentials for a bearer token.
func (h Handler) Login(ctx context.Context, req *v1specs.LoginRequest) (*v1specs.Token, error) {
	if req.Email == "" || req.Password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}

	user, err := h.deps.Resolver.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	token, expiresAt, err := h.deps.SecHandler.Issue(user)
	if err != nil {
		return nil, err
	}

	return &v1specs.Token{Token: token, ExpiresAt: expiresAt}, nil
}

// Signup registers a new account.
func (h Handler) Signup(ctx context.Context, req *v1specs.SignupRequest) (*v1specs.User, error) {
	user, err := h.deps.Resolver.Signup(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(user), nil
}

func (h Handler) ChangeEmail(ctx context.Context, req *v1specs.ChangeEmailRequest) (*v1specs.User, error) {
	user, err := h.deps.Resolver.ChangeEmail(ctx, GetUserFromContext(ctx).ID, req.Password, req.Email)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(user), nil
}

func (h Handler) ChangePassword(ctx context.Context, req *v1specs.ChangePasswordRequest) error {
	return h.deps.Resolver.ChangePassword(ctx, //nolint: wrapcheck
		GetUserFromContext(ctx).ID,
		req.CurrentPassword,
		req.NewPassword)
}

func (h Handler) RegenerateAPIKey(ctx context.Context) (*v1specs.APIKey, error) {
	user, err := h.deps.Resolver.RegenerateAPIKey(ctx, GetUserFromContext(ctx).ID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.APIKey{Apikey: user.APIKey}, nil
}
