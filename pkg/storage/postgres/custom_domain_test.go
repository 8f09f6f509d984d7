package postgres_test

import (
	"context"
	"database/sql"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Domains(t *testing.T) {
	pg := setupTestDB(t)

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	userID := domain.UserID(insertUser(t, db, "owner@example.com", ""))

	d, err := pg.StoreDomain(ctx, domain.Domain{Address: "example.com", UserID: userID})
	require.NoError(t, err)
	require.NotZero(t, d.ID)
	require.Empty(t, d.Homepage)

	t.Run("duplicate address conflicts", func(t *testing.T) {
		_, err := pg.StoreDomain(ctx, domain.Domain{Address: "example.com"})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("lookups", func(t *testing.T) {
		byAddress, err := pg.DomainByAddress(ctx, "example.com")
		require.NoError(t, err)
		require.Equal(t, d.ID, byAddress.ID)

		byID, err := pg.DomainByID(ctx, d.ID)
		require.NoError(t, err)
		require.Equal(t, "example.com", byID.Address)

		missing, err := pg.DomainByAddress(ctx, "missing.example.com")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("list by owner", func(t *testing.T) {
		other, err := pg.StoreDomain(ctx, domain.Domain{Address: "other.example.com", UserID: userID})
		require.NoError(t, err)
		_, err = pg.StoreDomain(ctx, domain.Domain{Address: "unowned.example.com"})
		require.NoError(t, err)

		domains, err := pg.DomainsByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, domains, 2)
		require.Equal(t, d.ID, domains[0].ID)
		require.Equal(t, other.ID, domains[1].ID)

		domains, err = pg.DomainsByUserID(ctx, userID+1)
		require.NoError(t, err)
		require.Empty(t, domains)
	})

	t.Run("update homepage", func(t *testing.T) {
		homepage := "https://home.example.com"
		change, err := pg.UpdateDomain(ctx, userID, d.ID, storage.DomainUpdates{Homepage: &homepage})
		require.NoError(t, err)
		require.Empty(t, change.Before.Homepage)
		require.Equal(t, homepage, change.After.Homepage)

		missing, err := pg.UpdateDomain(ctx, userID, 424242, storage.DomainUpdates{Homepage: &homepage})
		require.NoError(t, err)
		require.Nil(t, missing)

		foreign, err := pg.UpdateDomain(ctx, userID+1, d.ID, storage.DomainUpdates{Homepage: &homepage})
		require.NoError(t, err)
		require.Nil(t, foreign)
	})

	t.Run("delete cascades to links and unmaps hosts", func(t *testing.T) {
		insertLink(t, db, "a", int64(d.ID), int64(userID), "https://a.example.org")
		insertLink(t, db, "b", int64(d.ID), 0, "https://b.example.org")
		_, err := pg.StoreHost(ctx, domain.Host{Address: "www.example.com", DomainID: d.ID})
		require.NoError(t, err)

		deleted, err := pg.DeleteDomain(ctx, userID+1, d.ID)
		require.NoError(t, err)
		require.Nil(t, deleted)

		deleted, err = pg.DeleteDomain(ctx, userID, d.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		require.Equal(t, d.ID, deleted.Domain.ID)
		require.Len(t, deleted.Links, 2)
		require.Len(t, deleted.Hosts, 1)
		require.Equal(t, d.ID, deleted.Hosts[0].DomainID)

		host, err := pg.HostByAddress(ctx, "www.example.com")
		require.NoError(t, err)
		require.Zero(t, host.DomainID)

		gone, err := pg.DomainByID(ctx, d.ID)
		require.NoError(t, err)
		require.Nil(t, gone)
	})
}
