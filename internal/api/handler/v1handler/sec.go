package v1handler

import (
	"context"
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"fmt"
	"shortener/internal/api/specs/v1specs"
	"shortener/internal/config"
	"shortener/internal/resolver"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// UserKey is the context key under which the authenticated user is stored.
const UserKey CtxKey = "User"

// APIKeyHeader carries an API key as an alternative to a bearer token.
const APIKeyHeader = "X-API-Key"

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// SecHandlerOptions configure token verification and issuing.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying bearer tokens.
	PublicKey string
	// PrivateKey is the PEM encoded RSA key signing issued tokens. Without
	// it the login endpoint is disabled.
	PrivateKey string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey:  cfg.JWT.PublicKey,
		PrivateKey: cfg.JWT.PrivateKey,
		TTL:        cfg.JWT.TTL,
	}
}

// SecHandler authenticates requests. Bearer tokens are RS256 JWTs whose
// subject is the user's email; API keys are looked up directly. Either way
// the user is resolved through the user cache.
type SecHandler struct {
	publicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey
	ttl        time.Duration
	users      resolver.Resolver
}

func NewSecHandler(opts *SecHandlerOptions, users resolver.Resolver) (*SecHandler, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	var privateKey *rsa.PrivateKey
	if opts.PrivateKey != "" {
		privateKey, err = jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &SecHandler{
		publicKey:  publicKey,
		privateKey: privateKey,
		ttl:        ttl,
		users:      users,
	}, nil
}

// HandleBearerAuth verifies the token and stores its user in the returned context.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	user, err := s.resolve(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	// the user cache answers emails and API keys alike
	if !strings.EqualFold(user.Email, claims.Subject) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}

	return context.WithValue(ctx, UserKey, user), nil
}

// HandleAPIKeyAuth looks up the owner of the key and stores it in the returned context.
func (s *SecHandler) HandleAPIKeyAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	t v1specs.APIKeyAuth) (context.Context, error) {
	user, err := s.resolve(ctx, t.APIKey)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(user.APIKey), []byte(t.APIKey)) != 1 {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid API key")
	}

	return context.WithValue(ctx, UserKey, user), nil
}

func (s *SecHandler) resolve(ctx context.Context, emailOrKey string) (*domain.User, error) {
	user, err := s.users.User(ctx, emailOrKey)
	if errors.Is(err, serrors.ErrNotFound) {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
	}
	if err != nil {
		return nil, err
	}
	if user.Banned {
		return nil, serrors.With(serrors.ErrForbidden, "user is banned")
	}

	return user, nil
}

// Issue signs a token for user valid for the configured TTL.
func (s *SecHandler) Issue(user *domain.User) (string, time.Time, error) {
	if s.privateKey == nil {
		return "", time.Time{}, serrors.With(serrors.ErrInternal, "token signing is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, expiresAt, nil
}

// GetUserFromContext returns the authenticated user, or nil.
func GetUserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)

	return user
}
