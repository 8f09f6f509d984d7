package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func insertUser(t *testing.T, db *sql.DB, email, apikey string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO users(email, apikey, password) VALUES ($1, NULLIF($2, ''), 'hash') RETURNING id`,
		email, apikey).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertLink(t *testing.T, db *sql.DB, address string, domainID, userID int64, target string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO links(address, domain_id, user_id, target) VALUES ($1, NULLIF($2, 0), NULLIF($3, 0), $4) RETURNING id`,
		address, domainID, userID, target).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertVisit(t *testing.T, db *sql.DB, linkID int64, ago string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO visits(link_id, created_at) VALUES ($1, NOW() - $2::interval)`, linkID, ago)
	require.NoError(t, err)
}
