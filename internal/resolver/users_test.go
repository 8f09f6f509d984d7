package resolver_test

import (
	"context"
	"regexp"
	"shortener/internal/resolver"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:       7,
		Email:    "a@b.com",
		APIKey:   "k1",
		Password: hashPassword(t, "correct horse"),
	}
}

func TestResolver_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testUser(t)

	env.storage.EXPECT().UserByEmailOrAPIKey(gomock.Any(), "a@b.com").Return(user, nil)
	env.storage.EXPECT().UserByEmailOrAPIKey(gomock.Any(), "k1").Return(user, nil)
	env.storage.EXPECT().UserByEmailOrAPIKey(gomock.Any(), "nobody@b.com").Return(nil, nil)

	got, err := env.r.Login(ctx, "A@B.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.True(t, env.backend.has("u-a@b.com"))

	_, err = env.r.Login(ctx, "a@b.com", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	// an API key is not a login
	_, err = env.r.Login(ctx, "k1", "correct horse")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = env.r.Login(ctx, "nobody@b.com", "correct horse")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestResolver_Login_Banned(t *testing.T) {
	env := newTestEnv(t)
	user := testUser(t)
	user.Banned = true

	env.storage.EXPECT().UserByEmailOrAPIKey(gomock.Any(), "a@b.com").Return(user, nil)

	_, err := env.r.Login(context.Background(), "a@b.com", "correct horse")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestResolver_ChangeEmail_InvalidatesBothIdentifiers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testUser(t)
	env.backend.put(t, "u-a@b.com")
	env.backend.put(t, "u-k1")

	email := "new@b.com"
	env.storage.EXPECT().UserByID(gomock.Any(), domain.UserID(7)).Return(user, nil).Times(2)
	env.storage.EXPECT().UpdateUser(gomock.Any(), domain.UserID(7), storage.UserUpdates{Email: &email}).
		Return(&storage.Change[domain.User]{Before: *user, After: domain.User{ID: 7, Email: email, APIKey: "k1"}}, nil)

	_, err := env.r.ChangeEmail(ctx, 7, "wrong", "new@b.com")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.True(t, env.backend.has("u-a@b.com"))

	got, err := env.r.ChangeEmail(ctx, 7, "correct horse", "New@b.com")
	require.NoError(t, err)
	require.Equal(t, email, got.Email)
	require.False(t, env.backend.has("u-a@b.com"))
	require.False(t, env.backend.has("u-k1"))

	_, err = env.r.ChangeEmail(ctx, 7, "correct horse", "not an email")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResolver_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testUser(t)
	env.backend.put(t, "u-a@b.com")

	env.storage.EXPECT().UserByID(gomock.Any(), domain.UserID(7)).Return(user, nil)
	env.storage.EXPECT().UpdateUser(gomock.Any(), domain.UserID(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, updates storage.UserUpdates) (*storage.Change[domain.User], error) {
			require.NotNil(t, updates.Password)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*updates.Password), []byte("battery staple")))

			after := *user
			after.Password = *updates.Password

			return &storage.Change[domain.User]{Before: *user, After: after}, nil
		})

	require.ErrorIs(t, env.r.ChangePassword(ctx, 7, "correct horse", "short"), serrors.ErrBadRequest)
	require.NoError(t, env.r.ChangePassword(ctx, 7, "correct horse", "battery staple"))
	require.False(t, env.backend.has("u-a@b.com"))
}

func TestResolver_RegenerateAPIKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testUser(t)
	env.backend.put(t, "u-k1")

	env.storage.EXPECT().UpdateUser(gomock.Any(), domain.UserID(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, updates storage.UserUpdates) (*storage.Change[domain.User], error) {
			require.NotNil(t, updates.APIKey)

			after := *user
			after.APIKey = *updates.APIKey

			return &storage.Change[domain.User]{Before: *user, After: after}, nil
		})

	got, err := env.r.RegenerateAPIKey(ctx, 7)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), got.APIKey)
	require.False(t, env.backend.has("u-k1"))
}

func TestResolver_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testUser(t)
	for _, key := range []string{"u-a@b.com", "u-k1", "x--7", "x--", "s-3", "d-example.com"} {
		env.backend.put(t, key)
	}

	env.storage.EXPECT().UserByID(gomock.Any(), domain.UserID(7)).Return(user, nil).Times(2)
	env.storage.EXPECT().DeleteUser(gomock.Any(), domain.UserID(7)).Return(&storage.DeletedUser{
		User:    *user,
		Links:   []domain.Link{{ID: 3, Address: "x", UserID: 7}},
		Domains: []domain.Domain{{ID: 5, Address: "example.com", UserID: 7}},
	}, nil)

	require.ErrorIs(t, env.r.DeleteUser(ctx, 7, "wrong"), serrors.ErrUnauthorized)
	require.NoError(t, env.r.DeleteUser(ctx, 7, "correct horse"))
	require.Empty(t, env.backend.data)
}

func TestResolver_UserNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().UpdateUser(gomock.Any(), domain.UserID(7), gomock.Any()).Return(nil, nil)
	env.storage.EXPECT().UserByID(gomock.Any(), domain.UserID(7)).Return(nil, nil)

	_, err := env.r.RegenerateAPIKey(context.Background(), 7)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = env.r.ChangeEmail(context.Background(), 7, "correct horse", "c@d.com")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_Signup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.backend.put(t, "u-new@b.com")

	env.storage.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Equal(t, "new@b.com", u.Email)
			require.False(t, u.Verified)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("correct horse")))
			u.ID = 11

			return &u, nil
		})
	env.storage.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "duplicate"))

	u, err := env.r.Signup(ctx, "New@b.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, domain.UserID(11), u.ID)
	require.False(t, env.backend.has("u-new@b.com"))

	_, err = env.r.Signup(ctx, "new@b.com", "correct horse")
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = env.r.Signup(ctx, "not an email", "correct horse")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = env.r.Signup(ctx, "short@b.com", "short")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResolver_Signup_Disallowed(t *testing.T) {
	env := newTestEnv(t, func(o *resolver.Options) { o.DisallowRegistration = true })

	_, err := env.r.Signup(context.Background(), "new@b.com", "correct horse")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}
