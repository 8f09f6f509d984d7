package redis_test

import (
	"context"
	"fmt"
	"shortener/pkg/cache"
	"shortener/pkg/cache/redis"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedisContainer(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379"},
		WaitingFor:   wait.ForListeningPort("6379"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("could not get container host: %w", err)
	}
	mappedPort, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return nil, "", fmt.Errorf("could not get mapped port: %w", err)
	}

	return container, fmt.Sprintf("%s:%d", host, mappedPort.Int()), nil
}

func setupTestRedis(t *testing.T) *redis.Redis {
	t.Helper()
	ctx := context.Background()

	container, addr, err := startRedisContainer(ctx)
	require.NoError(t, err)

	r, err := redis.New(ctx, redis.Options{
		Addr:         addr,
		PoolSize:     5,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = r.Close()
		_ = container.Terminate(ctx)
	})

	return r
}

func TestNew_Unreachable(t *testing.T) {
	_, err := redis.New(context.Background(), redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	require.Error(t, err)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := redis.New(context.Background(), redis.Options{URL: "http://not-redis"})
	require.Error(t, err)
}

func TestRedis_Backend(t *testing.T) {
	r := setupTestRedis(t)
	ctx := context.Background()

	_, err := r.Get(ctx, "d-missing.com")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, r.Set(ctx, "d-example.com", []byte(`{"id":1}`)))
	val, err := r.Get(ctx, "d-example.com")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1}`, string(val))

	// no expiry is set on entries
	ttl, err := r.Client.TTL(ctx, "d-example.com").Result()
	require.NoError(t, err)
	require.Equal(t, time.Duration(-1), ttl)

	require.NoError(t, r.Del(ctx, "d-example.com"))
	_, err = r.Get(ctx, "d-example.com")
	require.ErrorIs(t, err, cache.ErrMiss)

	// deleting a missing key is a no-op success
	require.NoError(t, r.Del(ctx, "d-example.com"))
}

func TestCache_InvalidationAgainstRedis(t *testing.T) {
	r := setupTestRedis(t)
	ctx := context.Background()

	c, err := cache.New(r, cache.Options{})
	require.NoError(t, err)

	user := &domain.User{ID: 1, Email: "a@b.com", APIKey: "k1"}
	require.NoError(t, c.Set(ctx, cache.UserKey(user.Email), user))
	require.NoError(t, c.Set(ctx, cache.UserKey(user.APIKey), user))

	var got domain.User
	found, err := c.Get(ctx, "u-k1", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "a@b.com", got.Email)

	require.NoError(t, c.RemoveUser(ctx, user))
	for _, key := range []string{"u-a@b.com", "u-k1"} {
		n, err := r.Client.Exists(ctx, key).Result()
		require.NoError(t, err)
		require.Zero(t, n, "key %s should be gone", key)
	}

	d := &domain.Domain{ID: 2, Address: "example.com"}
	require.NoError(t, c.Set(ctx, cache.DomainKey(d.Address), d))
	require.NoError(t, c.RemoveDomain(ctx, d))
	n, err := r.Client.Exists(ctx, "d-example.com").Result()
	require.NoError(t, err)
	require.Zero(t, n)

	link := &domain.Link{ID: 3, Address: "abc123", DomainID: 5, UserID: 7, Target: "https://example.org"}
	require.NoError(t, c.Set(ctx, "abc123-5-7", link))
	require.NoError(t, c.Set(ctx, "abc123-5-", link))
	require.NoError(t, c.RemoveLink(ctx, link))
	n, err = r.Client.Exists(ctx, "abc123-5-7", "abc123-5-").Result()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCache_BackendErrorPropagates(t *testing.T) {
	r := setupTestRedis(t)
	ctx := context.Background()

	c, err := cache.New(r, cache.Options{})
	require.NoError(t, err)
	require.NoError(t, r.Client.Close())

	err = c.RemoveHost(ctx, &domain.Host{Address: "www.example.com"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
