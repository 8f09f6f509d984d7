package resolver_test

import (
	"context"
	"errors"
	"shortener/internal/resolver"
	"shortener/pkg/cache"
	"shortener/pkg/logger"
	"sync"
	"testing"
	"time"

	mockstorage "shortener/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const defaultDomain = "sho.rt"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// memBackend is an in-memory cache.Backend. Deleting a key listed in
// failDel fails.
type memBackend struct {
	mu      sync.Mutex
	data    map[string][]byte
	failDel map[string]bool
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}, failDel: map[string]bool{}}
}

func (m *memBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}

	return v, nil
}

func (m *memBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value

	return nil
}

func (m *memBackend) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDel[key] {
		return errors.New("connection reset")
	}
	delete(m.data, key)

	return nil
}

func (m *memBackend) Close() error { return nil }

func (m *memBackend) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]

	return ok
}

func (m *memBackend) put(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, m.Set(context.Background(), key, []byte("{}")))
}

// recheck is a delayed second delete handed to the job queue.
type recheck struct {
	keys []string
	at   time.Time
}

type testEnv struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	backend *memBackend
	cache   *cache.Cache
	r       resolver.Resolver

	mu       sync.Mutex
	rechecks []recheck
}

// newTestEnv wires a resolver to a mocked store and an in-memory cache.
// Delayed second deletes are accepted and recorded; retries (jobs without
// insert options) must be expected by the test.
func newTestEnv(t *testing.T, configure ...func(*resolver.Options)) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	backend := newMemBackend()
	c, err := cache.New(backend, cache.Options{})
	require.NoError(t, err)

	opts := resolver.Options{
		DefaultDomain: defaultDomain,
		MaxAttempts:   3,
		BcryptCost:    bcrypt.MinCost,
		RecheckDelay:  time.Minute,
	}
	for _, fn := range configure {
		fn(&opts)
	}

	env := &testEnv{ctrl: ctrl, storage: st, backend: backend, cache: c, r: resolver.New(st, c, opts)}
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
		func(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
			job, ok := args.(resolver.InvalidateJobArgs)
			if !ok {
				t.Errorf("unexpected job %T", args)
			}
			env.mu.Lock()
			defer env.mu.Unlock()
			env.rechecks = append(env.rechecks, recheck{keys: job.Keys, at: opts.ScheduledAt})

			return true, nil
		}).AnyTimes()

	return env
}

// recheckedKeys flattens the keys of every recorded delayed delete.
func (e *testEnv) recheckedKeys() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var keys []string
	for _, r := range e.rechecks {
		keys = append(keys, r.keys...)
	}

	return keys
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}
