package resolver_test

import (
	"context"
	"errors"
	"shortener/internal/resolver"
	"shortener/pkg/cache"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_Link_ReadThrough(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	link := &domain.Link{ID: 1, Address: "abc123", DomainID: 5, Target: "https://example.org"}

	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc123", domain.DomainID(5), domain.UserID(0)).
		Return(link, nil).Times(1)

	got, err := env.r.Link(ctx, "abc123", 5, 0)
	require.NoError(t, err)
	require.Equal(t, link.Target, got.Target)
	require.True(t, env.backend.has("abc123-5-"))

	// served from the cache, the store is not consulted again
	got, err = env.r.Link(ctx, "abc123", 5, 0)
	require.NoError(t, err)
	require.Equal(t, link.ID, got.ID)
}

func TestResolver_Link_NotFoundIsNotCached(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.storage.EXPECT().LinkByAddress(gomock.Any(), "nope", domain.DomainID(0), domain.UserID(0)).
		Return(nil, nil).Times(2)

	for range 2 {
		_, err := env.r.Link(ctx, "nope", 0, 0)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	}
	require.False(t, env.backend.has("nope--"))
}

func TestResolver_Link_StoreError(t *testing.T) {
	env := newTestEnv(t)
	boom := errors.New("db down")

	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc", gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := env.r.Link(context.Background(), "abc", 0, 0)
	require.ErrorIs(t, err, boom)
}

func TestResolver_Link_ConcurrentMissesAreCollapsed(t *testing.T) {
	env := newTestEnv(t)
	release := make(chan struct{})
	var calls atomic.Int32

	env.storage.EXPECT().LinkByAddress(gomock.Any(), "hot", gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.DomainID, domain.UserID) (*domain.Link, error) {
			calls.Add(1)
			<-release

			return &domain.Link{ID: 9, Address: "hot", Target: "https://example.org"}, nil
		}).MinTimes(1)

	const n = 10
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			link, err := env.r.Link(context.Background(), "hot", 0, 0)
			if err != nil || link.ID != 9 {
				t.Errorf("unexpected result %v, %v", link, err)
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Less(t, calls.Load(), int32(n))
}

func TestResolver_User_EmptyIdentifier(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.r.User(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_Stats_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.storage.EXPECT().StatsByLinkID(gomock.Any(), domain.LinkID(3)).
		Return(&domain.Stats{LinkID: 3, UserID: 7, Total: 12}, nil)

	stats, err := env.r.Stats(ctx, 7, 3)
	require.NoError(t, err)
	require.EqualValues(t, 12, stats.Total)
	require.True(t, env.backend.has("s-3"))

	_, err = env.r.Stats(ctx, 8, 3)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_Redirect_ServesRepeatVisitsFromCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	link := &domain.Link{ID: 1, Address: "abc123", Target: "https://example.org", VisitCount: 41}

	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc123", domain.DomainID(0), domain.UserID(0)).
		Return(link, nil).Times(1)
	env.storage.EXPECT().RecordVisit(gomock.Any(), domain.LinkID(1)).Return(nil).Times(5)

	for range 5 {
		env.backend.put(t, "s-1")

		got, err := env.r.Redirect(ctx, "SHO.RT:443", "abc123")
		require.NoError(t, err)
		require.Equal(t, link.Target, got.Target)
		require.Zero(t, got.VisitCount)

		env.r.Wait()
		require.True(t, env.backend.has(cache.LinkKey("abc123", 0, 0)))
		require.False(t, env.backend.has("s-1"))
	}
}

func TestResolver_Redirect_DropsVisitsBeyondLimit(t *testing.T) {
	env := newTestEnv(t, func(o *resolver.Options) { o.MaxPendingVisits = 1 })
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc", domain.DomainID(0), domain.UserID(0)).
		Return(&domain.Link{ID: 1, Address: "abc", Target: "https://example.org"}, nil)
	env.storage.EXPECT().RecordVisit(gomock.Any(), domain.LinkID(1)).DoAndReturn(
		func(context.Context, domain.LinkID) error {
			close(started)
			<-release

			return nil
		}).Times(1)

	_, err := env.r.Redirect(ctx, defaultDomain, "abc")
	require.NoError(t, err)
	<-started

	// the only slot is taken, the second visit is dropped but still redirected
	got, err := env.r.Redirect(ctx, defaultDomain, "abc")
	require.NoError(t, err)
	require.Equal(t, "https://example.org", got.Target)

	close(release)
	env.r.Wait()
}

func TestResolver_Redirect_CustomDomain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.storage.EXPECT().DomainByAddress(gomock.Any(), "example.com").
		Return(&domain.Domain{ID: 5, Address: "example.com"}, nil)
	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc", domain.DomainID(5), domain.UserID(0)).
		Return(&domain.Link{ID: 2, Address: "abc", DomainID: 5, Target: "https://example.org"}, nil)
	env.storage.EXPECT().RecordVisit(gomock.Any(), domain.LinkID(2)).Return(nil)

	got, err := env.r.Redirect(ctx, "example.com", "abc")
	require.NoError(t, err)
	require.Equal(t, domain.DomainID(5), got.DomainID)
	env.r.Wait()
	require.True(t, env.backend.has("d-example.com"))
}

func TestResolver_Redirect_HostMapping(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.storage.EXPECT().DomainByAddress(gomock.Any(), "www.example.com").Return(nil, nil)
	env.storage.EXPECT().HostByAddress(gomock.Any(), "www.example.com").
		Return(&domain.Host{ID: 1, Address: "www.example.com", DomainID: 5}, nil)
	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc", domain.DomainID(5), domain.UserID(0)).
		Return(&domain.Link{ID: 2, Address: "abc", DomainID: 5, Target: "https://example.org"}, nil)
	env.storage.EXPECT().RecordVisit(gomock.Any(), domain.LinkID(2)).Return(nil)

	_, err := env.r.Redirect(ctx, "www.example.com", "abc")
	require.NoError(t, err)
	env.r.Wait()
	require.True(t, env.backend.has("h-www.example.com"))
}

func TestResolver_Redirect_BannedHost(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().DomainByAddress(gomock.Any(), "evil.example.com").Return(nil, nil)
	env.storage.EXPECT().HostByAddress(gomock.Any(), "evil.example.com").
		Return(&domain.Host{ID: 1, Address: "evil.example.com", DomainID: 5, Banned: true}, nil)

	_, err := env.r.Redirect(context.Background(), "evil.example.com", "abc")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestResolver_Redirect_UnknownHost(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().DomainByAddress(gomock.Any(), "unknown.example.com").Return(nil, nil)
	env.storage.EXPECT().HostByAddress(gomock.Any(), "unknown.example.com").Return(nil, nil)

	_, err := env.r.Redirect(context.Background(), "unknown.example.com", "abc")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_RecordVisit_InvalidatesStatsOnly(t *testing.T) {
	env := newTestEnv(t)
	link := &domain.Link{ID: 4, Address: "abc", DomainID: 5, UserID: 7}
	env.backend.put(t, "abc-5-7")
	env.backend.put(t, "abc-5-")
	env.backend.put(t, "s-4")

	env.storage.EXPECT().RecordVisit(gomock.Any(), domain.LinkID(4)).Return(nil)

	require.NoError(t, env.r.RecordVisit(context.Background(), link))
	require.True(t, env.backend.has("abc-5-7"))
	require.True(t, env.backend.has("abc-5-"))
	require.False(t, env.backend.has("s-4"))
	require.Equal(t, []string{"s-4"}, env.recheckedKeys())
}
