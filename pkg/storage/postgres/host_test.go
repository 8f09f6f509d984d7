package postgres_test

import (
	"context"
	"testing"

	"shortener/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Hosts(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	d, err := pg.StoreDomain(ctx, domain.Domain{Address: "example.com"})
	require.NoError(t, err)

	host, err := pg.StoreHost(ctx, domain.Host{Address: "www.example.com", DomainID: d.ID})
	require.NoError(t, err)
	require.Equal(t, d.ID, host.DomainID)
	require.False(t, host.Banned)

	// upsert keeps the row and replaces the mapping
	banned, err := pg.StoreHost(ctx, domain.Host{Address: "www.example.com", Banned: true})
	require.NoError(t, err)
	require.Equal(t, host.ID, banned.ID)
	require.True(t, banned.Banned)
	require.Zero(t, banned.DomainID)

	found, err := pg.HostByAddress(ctx, "www.example.com")
	require.NoError(t, err)
	require.True(t, found.Banned)

	deleted, err := pg.DeleteHost(ctx, "www.example.com")
	require.NoError(t, err)
	require.Equal(t, host.ID, deleted.ID)

	deleted, err = pg.DeleteHost(ctx, "www.example.com")
	require.NoError(t, err)
	require.Nil(t, deleted)

	found, err = pg.HostByAddress(ctx, "www.example.com")
	require.NoError(t, err)
	require.Nil(t, found)
}
