package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"shortener/pkg/domain"
	"testing"
	"time"

	"shortener/internal/api/handler/v1handler"
	"shortener/internal/api/specs/v1specs"
	mockresolver "shortener/internal/resolver/mock"
	"shortener/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/golang-jwt/jwt/v5"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded keys.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(pubPEM), string(privPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM, privPEM string) (*v1handler.SecHandler, *mockresolver.MockResolver) {
	t.Helper()
	res := mockresolver.NewMockResolver(gomock.NewController(t))
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{
		PublicKey:  pubPEM,
		PrivateKey: privPEM,
		TTL:        time.Hour,
	}, res)
	require.NoError(t, err, "NewSecHandler failed")

	return sh, res
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a key"}, nil)
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, "")
	user := &domain.User{ID: 7, Email: "a@b.com"}
	res.EXPECT().User(gomock.Any(), "a@b.com").Return(user, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, "a@b.com", now, now.Add(1*time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: tkn})
	require.NoError(t, err)

	got := v1handler.GetUserFromContext(ctx)
	require.NotNil(t, got, "expected user in context")
	require.Equal(t, domain.UserID(7), got.ID)
}

func TestHandleBearerAuth_SubjectMatchedAPIKey(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, "")
	// the subject is somebody's API key, not their email
	res.EXPECT().User(gomock.Any(), "k1").Return(&domain.User{ID: 7, Email: "a@b.com", APIKey: "k1"}, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, "k1", now, now.Add(time.Hour))
	_, err := sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: tkn})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM, _ := genRSAKeys(t)
	sh, _ := newSecHandlerForTest(t, pubPEM, "")

	privOther, _, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, "a@b.com", now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: tkn})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ExpiredToken(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	sh, _ := newSecHandlerForTest(t, pubPEM, "")

	now := time.Now()
	tkn := signJWTRS256(t, priv, "a@b.com", now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: tkn})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_UnknownUser(t *testing.T) {
	priv, pubPEM, _ := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, "")
	res.EXPECT().User(gomock.Any(), "gone@b.com").Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	now := time.Now()
	tkn := signJWTRS256(t, priv, "gone@b.com", now, now.Add(time.Hour))
	_, err := sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: tkn})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM, _ := genRSAKeys(t)
	sh, _ := newSecHandlerForTest(t, pubPEM, "")

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "a@b.com",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: signed})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleAPIKeyAuth(t *testing.T) {
	_, pubPEM, _ := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, "")
	user := &domain.User{ID: 7, Email: "a@b.com", APIKey: "k1"}
	res.EXPECT().User(gomock.Any(), "k1").Return(user, nil)
	res.EXPECT().User(gomock.Any(), "a@b.com").Return(user, nil)

	ctx, err := sh.HandleAPIKeyAuth(context.Background(), v1specs.DeleteLinkOperation, v1specs.APIKeyAuth{APIKey: "k1"})
	require.NoError(t, err)
	require.Equal(t, user, v1handler.GetUserFromContext(ctx))

	// an email is not an API key
	_, err = sh.HandleAPIKeyAuth(context.Background(), v1specs.DeleteLinkOperation, v1specs.APIKeyAuth{APIKey: "a@b.com"})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleAPIKeyAuth_BannedUser(t *testing.T) {
	_, pubPEM, _ := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, "")
	res.EXPECT().User(gomock.Any(), "k1").Return(&domain.User{ID: 7, APIKey: "k1", Banned: true}, nil)

	_, err := sh.HandleAPIKeyAuth(context.Background(), v1specs.DeleteLinkOperation, v1specs.APIKeyAuth{APIKey: "k1"})
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestHandleAPIKeyAuth_KeyMismatch(t *testing.T) {
	_, pubPEM, _ := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, "")
	// a lookup that answers with a different account
	res.EXPECT().User(gomock.Any(), "k1").Return(&domain.User{ID: 7, Email: "a@b.com", APIKey: "k10"}, nil)

	_, err := sh.HandleAPIKeyAuth(context.Background(), v1specs.DeleteLinkOperation, v1specs.APIKeyAuth{APIKey: "k1"})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestIssue_RoundTrip(t *testing.T) {
	_, pubPEM, privPEM := genRSAKeys(t)
	sh, res := newSecHandlerForTest(t, pubPEM, privPEM)
	user := &domain.User{ID: 7, Email: "a@b.com"}
	res.EXPECT().User(gomock.Any(), "a@b.com").Return(user, nil)

	tkn, expiresAt, err := sh.Issue(user)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	ctx, err := sh.HandleBearerAuth(context.Background(), v1specs.GetLinkStatsOperation, v1specs.BearerAuth{Token: tkn})
	require.NoError(t, err)
	require.Equal(t, user, v1handler.GetUserFromContext(ctx))
}

func TestIssue_WithoutPrivateKey(t *testing.T) {
	_, pubPEM, _ := genRSAKeys(t)
	sh, _ := newSecHandlerForTest(t, pubPEM, "")

	_, _, err := sh.Issue(&domain.User{ID: 7, Email: "a@b.com"})
	require.ErrorIs(t, err, serrors.ErrInternal)
}
