package cache_test

import (
	"context"
	"errors"
	"shortener/pkg/cache"
	mockcache "shortener/pkg/cache/mock"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/metrics"
	"shortener/pkg/serrors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestCache(t *testing.T) (*mockcache.MockBackend, *cache.Cache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mockcache.NewMockBackend(ctrl)
	c, err := cache.New(backend, cache.Options{})
	require.NoError(t, err)

	return backend, c
}

func TestCache_RemoveNilIsNoop(t *testing.T) {
	// no expectations: any backend call fails the test
	_, c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.RemoveUser(ctx, nil))
	require.NoError(t, c.RemoveDomain(ctx, nil))
	require.NoError(t, c.RemoveHost(ctx, nil))
	require.NoError(t, c.RemoveLink(ctx, nil))
	require.NoError(t, c.RemoveStats(ctx, 0))
	require.NoError(t, c.RemoveKeys(ctx))
}

func TestCache_RemoveUser_DeletesBothKeys(t *testing.T) {
	backend, c := newTestCache(t)

	backend.EXPECT().Del(gomock.Any(), "u-a@b.com").Return(nil)
	backend.EXPECT().Del(gomock.Any(), "u-k1").Return(nil)

	require.NoError(t, c.RemoveUser(context.Background(), &domain.User{Email: "a@b.com", APIKey: "k1"}))
}

func TestCache_RemoveUser_PartialFailureAttemptsBoth(t *testing.T) {
	backend, c := newTestCache(t)
	boom := errors.New("connection reset")

	backend.EXPECT().Del(gomock.Any(), "u-a@b.com").Return(boom)
	backend.EXPECT().Del(gomock.Any(), "u-k1").Return(nil)

	err := c.RemoveUser(context.Background(), &domain.User{Email: "a@b.com", APIKey: "k1"})
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "u-a@b.com")
}

func TestCache_RemoveUser_BothFailuresReported(t *testing.T) {
	backend, c := newTestCache(t)
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	backend.EXPECT().Del(gomock.Any(), "u-a@b.com").Return(errA)
	backend.EXPECT().Del(gomock.Any(), "u-k1").Return(errB)

	err := c.RemoveUser(context.Background(), &domain.User{Email: "a@b.com", APIKey: "k1"})
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
}

func TestCache_RemoveDomainHostStats(t *testing.T) {
	backend, c := newTestCache(t)
	ctx := context.Background()

	backend.EXPECT().Del(gomock.Any(), "d-example.com").Return(nil)
	require.NoError(t, c.RemoveDomain(ctx, &domain.Domain{Address: "example.com"}))

	backend.EXPECT().Del(gomock.Any(), "h-www.example.com").Return(nil)
	require.NoError(t, c.RemoveHost(ctx, &domain.Host{Address: "www.example.com"}))

	backend.EXPECT().Del(gomock.Any(), "s-12").Return(nil)
	require.NoError(t, c.RemoveStats(ctx, 12))
}

func TestCache_RemoveLink_ClearsEveryScope(t *testing.T) {
	backend, c := newTestCache(t)

	backend.EXPECT().Del(gomock.Any(), "abc123-5-7").Return(nil)
	backend.EXPECT().Del(gomock.Any(), "abc123-5-").Return(nil)

	require.NoError(t, c.RemoveLink(context.Background(), &domain.Link{Address: "abc123", DomainID: 5, UserID: 7}))
}

func TestCache_RemoveHost_PropagatesBackendError(t *testing.T) {
	backend, c := newTestCache(t)
	down := errors.New("dial tcp: connection refused")

	backend.EXPECT().Del(gomock.Any(), "h-www.example.com").Return(down)

	err := c.RemoveHost(context.Background(), &domain.Host{Address: "www.example.com"})
	require.ErrorIs(t, err, down)
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(err))
}

func TestCache_GetSet(t *testing.T) {
	backend, c := newTestCache(t)
	ctx := context.Background()

	backend.EXPECT().Set(gomock.Any(), "d-example.com", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value []byte) error {
			require.JSONEq(t, `{"id":1,"address":"example.com","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
				string(value))

			return nil
		})
	require.NoError(t, c.Set(ctx, "d-example.com", &domain.Domain{ID: 1, Address: "example.com"}))

	backend.EXPECT().Get(gomock.Any(), "d-example.com").Return([]byte(`{"id":1,"address":"example.com"}`), nil)
	var d domain.Domain
	found, err := c.Get(ctx, "d-example.com", &d)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, domain.DomainID(1), d.ID)

	backend.EXPECT().Get(gomock.Any(), "d-missing.com").Return(nil, cache.ErrMiss)
	found, err = c.Get(ctx, "d-missing.com", &d)
	require.NoError(t, err)
	require.False(t, found)

	backend.EXPECT().Get(gomock.Any(), "d-broken.com").Return([]byte(`{`), nil)
	_, err = c.Get(ctx, "d-broken.com", &d)
	require.Error(t, err)

	backend.EXPECT().Get(gomock.Any(), "d-down.com").Return(nil, errors.New("timeout"))
	_, err = c.Get(ctx, "d-down.com", &d)
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	backend.EXPECT().Set(gomock.Any(), "d-down.com", gomock.Any()).Return(errors.New("timeout"))
	require.ErrorIs(t, c.Set(ctx, "d-down.com", &d), serrors.ErrUnavailable)
}

func TestCache_Close(t *testing.T) {
	backend, c := newTestCache(t)

	backend.EXPECT().Close().Return(nil)
	require.NoError(t, c.Close())

	backend.EXPECT().Close().Return(errors.New("already closed"))
	require.Error(t, c.Close())
}

func TestCache_MetricsExported(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	backend := mockcache.NewMockBackend(ctrl)
	c, err := cache.New(backend, cache.Options{MeterProvider: mp})
	require.NoError(t, err)

	backend.EXPECT().Get(gomock.Any(), "u-k1").Return(nil, cache.ErrMiss)
	var u domain.User
	_, err = c.Get(context.Background(), "u-k1", &u)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "cache_misses") {
			found = true
		}
	}
	require.True(t, found, "cache misses counter should be exported")
}
