package postgres

import (
	"context"
	"fmt"
	"shortener/pkg/domain"
	"shortener/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

func (p *PgSQL) UserByEmailOrAPIKey(ctx context.Context, emailOrKey string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.Or(
			goqu.I("email").Eq(emailOrKey),
			goqu.I("apikey").Eq(emailOrKey),
		)).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreUser inserts u; a taken email is reported as a conflict.
func (p *PgSQL) StoreUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(u)

	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapErr(err, "could not insert user into pg")
	}

	return row.ToDomain(), nil
}

// UpdateUser locks the user row and applies updates, returning both
// versions of the row.
func (p *PgSQL) UpdateUser(ctx context.Context,
	id domain.UserID,
	updates storage.UserUpdates) (*storage.Change[domain.User], error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.APIKey != nil {
		rec["apikey"] = nullString(*updates.APIKey)
	}
	if updates.Password != nil {
		rec["password"] = *updates.Password
	}

	var change *storage.Change[domain.User]
	err := p.atomic(ctx, func(q *PgSQL) error {
		var before PgUser
		found, err := q.Builder.From(usersTable).
			Where(goqu.I("id").Eq(int64(id))).
			ForUpdate(goqu.Wait).
			Executor().ScanStructContext(ctx, &before)
		if err != nil {
			return fmt.Errorf("could not lock user in pg: %w", err)
		}
		if !found {
			return nil
		}

		var after PgUser
		if _, err := q.Builder.Update(usersTable).
			Set(rec).
			Where(goqu.I("id").Eq(int64(id))).
			Returning(&PgUser{}).
			Executor().ScanStructContext(ctx, &after); err != nil {
			return wrapErr(err, "could not update user in pg")
		}

		change = &storage.Change[domain.User]{Before: *before.ToDomain(), After: *after.ToDomain()}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// DeleteUser deletes the user's links, releases their domains and removes the
// user row in a single transaction. Domains are returned with their previous
// owner.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (*storage.DeletedUser, error) {
	var deleted *storage.DeletedUser
	err := p.atomic(ctx, func(q *PgSQL) error {
		var row PgUser
		found, err := q.Builder.From(usersTable).
			Where(goqu.I("id").Eq(int64(id))).
			ForUpdate(goqu.Wait).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return fmt.Errorf("could not lock user in pg: %w", err)
		}
		if !found {
			return nil
		}

		var links []PgLink
		if err := q.Builder.Delete(linksTable).
			Where(goqu.I("user_id").Eq(int64(id))).
			Returning(&PgLink{}).
			Executor().ScanStructsContext(ctx, &links); err != nil {
			return fmt.Errorf("could not delete user links in pg: %w", err)
		}

		var domains []PgDomain
		if err := q.Builder.Update(domainsTable).
			Set(goqu.Record{
				"user_id":    nil,
				"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(goqu.I("user_id").Eq(int64(id))).
			Returning(&PgDomain{}).
			Executor().ScanStructsContext(ctx, &domains); err != nil {
			return fmt.Errorf("could not release user domains in pg: %w", err)
		}

		if _, err := q.Builder.Delete(usersTable).
			Where(goqu.I("id").Eq(int64(id))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not delete user in pg: %w", err)
		}

		deleted = &storage.DeletedUser{
			User:    *row.ToDomain(),
			Links:   pgLinksToDomain(links),
			Domains: pgDomainsToDomain(domains),
		}
		for i := range deleted.Domains {
			deleted.Domains[i].UserID = id
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
