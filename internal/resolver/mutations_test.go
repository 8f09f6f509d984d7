package resolver_test

import (
	"context"
	"regexp"
	"shortener/internal/resolver"
	"shortener/internal/worker"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func linkChange(before domain.Link, edit func(*domain.Link)) *storage.Change[domain.Link] {
	after := before
	edit(&after)

	return &storage.Change[domain.Link]{Before: before, After: after}
}

func TestResolver_UpdateLink_InvalidatesBeforeState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	before := domain.Link{ID: 1, Address: "abc", DomainID: 5, UserID: 7, Target: "https://old.example.org"}
	env.backend.put(t, "abc-5-7")
	env.backend.put(t, "abc-5-")

	address := "xyz"
	env.storage.EXPECT().UpdateLink(gomock.Any(), domain.UserID(7), domain.LinkID(1), storage.LinkUpdates{Address: &address}).
		Return(linkChange(before, func(l *domain.Link) { l.Address = address }), nil)

	after, err := env.r.UpdateLink(ctx, 7, 1, storage.LinkUpdates{Address: &address})
	require.NoError(t, err)
	require.Equal(t, "xyz", after.Address)
	require.False(t, env.backend.has("abc-5-7"))
	require.False(t, env.backend.has("abc-5-"))
	require.ElementsMatch(t, []string{"abc-5-7", "abc-5-"}, env.recheckedKeys())
}

func TestResolver_UpdateLink_RecheckEvictsStaleRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	old := domain.Link{ID: 1, Address: "abc", DomainID: 5, UserID: 7, Target: "https://old.example.org"}
	loaded := make(chan struct{})
	release := make(chan struct{})

	// a redirect reads the row before the update commits and is slow to
	// populate the cache
	env.storage.EXPECT().LinkByAddress(gomock.Any(), "abc", domain.DomainID(5), domain.UserID(0)).DoAndReturn(
		func(context.Context, string, domain.DomainID, domain.UserID) (*domain.Link, error) {
			close(loaded)
			<-release
			l := old

			return &l, nil
		})
	target := "https://new.example.org"
	env.storage.EXPECT().UpdateLink(gomock.Any(), domain.UserID(7), domain.LinkID(1), gomock.Any()).
		Return(linkChange(old, func(l *domain.Link) { l.Target = target }), nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := env.r.Link(ctx, "abc", 5, 0); err != nil {
			t.Errorf("link: %v", err)
		}
	}()
	<-loaded

	_, err := env.r.UpdateLink(ctx, 7, 1, storage.LinkUpdates{Target: &target})
	require.NoError(t, err)
	close(release)
	<-done

	var stale domain.Link
	found, err := env.cache.Get(ctx, "abc-5-", &stale)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, old.Target, stale.Target)

	env.mu.Lock()
	require.Len(t, env.rechecks, 1)
	job := env.rechecks[0]
	env.mu.Unlock()
	require.WithinDuration(t, time.Now().Add(time.Minute), job.at, 5*time.Second)

	err = worker.NewInvalidateWorker(env.cache).Work(ctx, &river.Job[resolver.InvalidateJobArgs]{
		JobRow: &rivertype.JobRow{ID: 1, Attempt: 1},
		Args:   resolver.NewInvalidateJobArgs(job.keys, 3),
	})
	require.NoError(t, err)
	require.False(t, env.backend.has("abc-5-"))
}

func TestResolver_UpdateLink_OtherOwner(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().UpdateLink(gomock.Any(), domain.UserID(8), domain.LinkID(1), gomock.Any()).Return(nil, nil)

	_, err := env.r.UpdateLink(context.Background(), 8, 1, storage.LinkUpdates{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_UpdateLink_InvalidInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	target := "ftp://example.org"
	_, err := env.r.UpdateLink(ctx, 7, 1, storage.LinkUpdates{Target: &target})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	address := "a/b"
	_, err = env.r.UpdateLink(ctx, 7, 1, storage.LinkUpdates{Address: &address})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResolver_UpdateLink_InvalidationFailureSchedulesRetry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	before := domain.Link{ID: 1, Address: "abc", DomainID: 5, UserID: 7}
	env.backend.put(t, "abc-5-7")
	env.backend.put(t, "abc-5-")
	env.backend.failDel["abc-5-"] = true

	env.storage.EXPECT().UpdateLink(gomock.Any(), domain.UserID(7), domain.LinkID(1), gomock.Any()).
		Return(linkChange(before, func(*domain.Link) {}), nil)
	env.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(resolver.InvalidateJobArgs)
			require.True(t, ok)
			require.ElementsMatch(t, []string{"abc-5-7", "abc-5-"}, job.Keys)
			require.Equal(t, 3, job.InsertOpts().MaxAttempts)

			return true, nil
		})

	after, err := env.r.UpdateLink(ctx, 7, 1, storage.LinkUpdates{})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.NotNil(t, after)
	// the healthy key is still removed
	require.False(t, env.backend.has("abc-5-7"))
	require.Empty(t, env.recheckedKeys())
}

func TestResolver_CreateLink_GeneratesAddress(t *testing.T) {
	env := newTestEnv(t, func(o *resolver.Options) { o.LinkLength = 8 })
	ctx := context.Background()

	var tried []string
	env.storage.EXPECT().StoreLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l domain.Link) (*domain.Link, error) {
			tried = append(tried, l.Address)
			if len(tried) == 1 {
				return nil, serrors.With(serrors.ErrConflict, "taken")
			}
			l.ID = 9

			return &l, nil
		}).Times(2)

	link, err := env.r.CreateLink(ctx, 7, resolver.NewLink{Target: "https://example.org"})
	require.NoError(t, err)
	require.Equal(t, domain.LinkID(9), link.ID)
	require.Equal(t, domain.UserID(7), link.UserID)
	require.Len(t, tried, 2)
	require.Regexp(t, regexp.MustCompile(`^[a-zA-Z2-9]{8}$`), link.Address)
	require.NotEqual(t, tried[0], tried[1])
}

func TestResolver_CreateLink_CustomAddress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.backend.put(t, "docs-5-7")

	env.storage.EXPECT().DomainByID(gomock.Any(), domain.DomainID(5)).
		Return(&domain.Domain{ID: 5, Address: "example.com", UserID: 7}, nil).Times(3)
	env.storage.EXPECT().StoreLink(gomock.Any(), domain.Link{
		Address:     "docs",
		DomainID:    5,
		UserID:      7,
		Target:      "https://example.org/docs",
		Description: "manual",
	}).DoAndReturn(func(_ context.Context, l domain.Link) (*domain.Link, error) {
		l.ID = 3

		return &l, nil
	})
	env.storage.EXPECT().StoreLink(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "duplicate"))

	in := resolver.NewLink{Address: "docs", DomainID: 5, Target: "https://example.org/docs", Description: "manual"}
	link, err := env.r.CreateLink(ctx, 7, in)
	require.NoError(t, err)
	require.Equal(t, domain.LinkID(3), link.ID)
	require.False(t, env.backend.has("docs-5-7"))

	// a taken custom address is not retried
	_, err = env.r.CreateLink(ctx, 7, in)
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = env.r.CreateLink(ctx, 8, in)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolver_CreateLink_InvalidInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.r.CreateLink(ctx, 7, resolver.NewLink{Target: "not a url"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = env.r.CreateLink(ctx, 7, resolver.NewLink{Address: "a-b", Target: "https://example.org"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResolver_DeleteLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.backend.put(t, "abc--7")
	env.backend.put(t, "abc--")
	env.backend.put(t, "s-1")

	env.storage.EXPECT().DeleteLink(gomock.Any(), domain.UserID(7), domain.LinkID(1)).
		Return(&domain.Link{ID: 1, Address: "abc", UserID: 7}, nil)
	env.storage.EXPECT().DeleteLink(gomock.Any(), domain.UserID(7), domain.LinkID(2)).Return(nil, nil)

	require.NoError(t, env.r.DeleteLink(ctx, 7, 1))
	require.False(t, env.backend.has("abc--7"))
	require.False(t, env.backend.has("abc--"))
	require.False(t, env.backend.has("s-1"))

	require.ErrorIs(t, env.r.DeleteLink(ctx, 7, 2), serrors.ErrNotFound)
}

func TestResolver_AddDomain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.backend.put(t, "d-example.com")

	env.storage.EXPECT().StoreDomain(gomock.Any(), domain.Domain{Address: "example.com", UserID: 7}).
		Return(&domain.Domain{ID: 5, Address: "example.com", UserID: 7}, nil)

	d, err := env.r.AddDomain(ctx, 7, "Example.com", "")
	require.NoError(t, err)
	require.Equal(t, domain.DomainID(5), d.ID)
	require.False(t, env.backend.has("d-example.com"))

	_, err = env.r.AddDomain(ctx, 7, defaultDomain, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = env.r.AddDomain(ctx, 7, "localhost", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResolver_Domains(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().DomainsByUserID(gomock.Any(), domain.UserID(7)).
		Return([]domain.Domain{{ID: 5, Address: "example.com", UserID: 7}}, nil)

	domains, err := env.r.Domains(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	require.Empty(t, env.backend.data)
}

func TestResolver_UpdateDomain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.backend.put(t, "d-example.com")

	homepage := "https://home.example.com"
	before := domain.Domain{ID: 5, Address: "example.com", UserID: 7}
	after := before
	after.Homepage = homepage
	env.storage.EXPECT().UpdateDomain(gomock.Any(), domain.UserID(7), domain.DomainID(5),
		storage.DomainUpdates{Homepage: &homepage}).
		Return(&storage.Change[domain.Domain]{Before: before, After: after}, nil)
	env.storage.EXPECT().UpdateDomain(gomock.Any(), domain.UserID(8), domain.DomainID(5), gomock.Any()).
		Return(nil, nil)

	d, err := env.r.UpdateDomain(ctx, 7, 5, storage.DomainUpdates{Homepage: &homepage})
	require.NoError(t, err)
	require.Equal(t, homepage, d.Homepage)
	require.False(t, env.backend.has("d-example.com"))

	_, err = env.r.UpdateDomain(ctx, 8, 5, storage.DomainUpdates{Homepage: &homepage})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	bad := "javascript:alert(1)"
	_, err = env.r.UpdateDomain(ctx, 7, 5, storage.DomainUpdates{Homepage: &bad})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResolver_DeleteDomain_InvalidatesEverythingItServed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, key := range []string{"d-example.com", "a-5-7", "a-5-", "b-5-", "s-1", "s-2", "h-www.example.com"} {
		env.backend.put(t, key)
	}

	env.storage.EXPECT().DeleteDomain(gomock.Any(), domain.UserID(7), domain.DomainID(5)).
		Return(&storage.DeletedDomain{
			Domain: domain.Domain{ID: 5, Address: "example.com", UserID: 7},
			Links: []domain.Link{
				{ID: 1, Address: "a", DomainID: 5, UserID: 7},
				{ID: 2, Address: "b", DomainID: 5},
			},
			Hosts: []domain.Host{{ID: 1, Address: "www.example.com", DomainID: 5}},
		}, nil)

	require.NoError(t, env.r.DeleteDomain(ctx, 7, 5))
	require.Empty(t, env.backend.data)
}

func TestResolver_AddHost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.backend.put(t, "h-www.example.com")

	env.storage.EXPECT().DomainByID(gomock.Any(), domain.DomainID(5)).
		Return(&domain.Domain{ID: 5, Address: "example.com", UserID: 7}, nil)
	env.storage.EXPECT().HostByAddress(gomock.Any(), "www.example.com").Return(nil, nil)
	env.storage.EXPECT().StoreHost(gomock.Any(), domain.Host{Address: "www.example.com", DomainID: 5}).
		Return(&domain.Host{ID: 1, Address: "www.example.com", DomainID: 5}, nil)

	h, err := env.r.AddHost(ctx, 7, "www.example.com", 5)
	require.NoError(t, err)
	require.Equal(t, domain.HostID(1), h.ID)
	require.False(t, env.backend.has("h-www.example.com"))
}

func TestResolver_AddHost_BannedHostStaysBanned(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().DomainByID(gomock.Any(), domain.DomainID(5)).
		Return(&domain.Domain{ID: 5, Address: "example.com", UserID: 7}, nil)
	env.storage.EXPECT().HostByAddress(gomock.Any(), "evil.example.com").
		Return(&domain.Host{ID: 1, Address: "evil.example.com", Banned: true}, nil)

	_, err := env.r.AddHost(context.Background(), 7, "evil.example.com", 5)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestResolver_DeleteHost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	host := &domain.Host{ID: 1, Address: "www.example.com", DomainID: 5}
	env.backend.put(t, "h-www.example.com")

	env.storage.EXPECT().HostByAddress(gomock.Any(), "www.example.com").Return(host, nil).Times(2)
	env.storage.EXPECT().DomainByID(gomock.Any(), domain.DomainID(5)).
		Return(&domain.Domain{ID: 5, Address: "example.com", UserID: 7}, nil).Times(2)
	env.storage.EXPECT().DeleteHost(gomock.Any(), "www.example.com").Return(host, nil)

	require.ErrorIs(t, env.r.DeleteHost(ctx, 8, "www.example.com"), serrors.ErrNotFound)
	require.NoError(t, env.r.DeleteHost(ctx, 7, "www.example.com"))
	require.False(t, env.backend.has("h-www.example.com"))
}
