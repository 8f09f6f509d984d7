package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"shortener/pkg/domain"
	"shortener/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

func (p *PgSQL) DomainByAddress(ctx context.Context, address string) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("address").Eq(address)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain by address from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DomainsByUserID lists the domains owned by userID, oldest first.
func (p *PgSQL) DomainsByUserID(ctx context.Context, userID domain.UserID) ([]domain.Domain, error) {
	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Where(goqu.I("user_id").Eq(int64(userID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list domains from pg: %w", err)
	}

	return pgDomainsToDomain(rows), nil
}

func (p *PgSQL) StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	var row PgDomain
	row.FromDomain(d)

	if _, err := p.Builder.Insert(domainsTable).
		Rows(row).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapErr(err, "could not insert domain into pg")
	}

	return row.ToDomain(), nil
}

// UpdateDomain locks the domain owned by userID and applies updates,
// returning both versions of the row.
func (p *PgSQL) UpdateDomain(ctx context.Context,
	userID domain.UserID,
	id domain.DomainID,
	updates storage.DomainUpdates) (*storage.Change[domain.Domain], error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Homepage != nil {
		rec["homepage"] = nullString(*updates.Homepage)
	}

	var change *storage.Change[domain.Domain]
	err := p.atomic(ctx, func(q *PgSQL) error {
		var before PgDomain
		found, err := q.Builder.From(domainsTable).
			Where(
				goqu.I("id").Eq(int64(id)),
				goqu.I("user_id").Eq(int64(userID)),
			).
			ForUpdate(goqu.Wait).
			Executor().ScanStructContext(ctx, &before)
		if err != nil {
			return fmt.Errorf("could not lock domain in pg: %w", err)
		}
		if !found {
			return nil
		}

		var after PgDomain
		if _, err := q.Builder.Update(domainsTable).
			Set(rec).
			Where(goqu.I("id").Eq(int64(id))).
			Returning(&PgDomain{}).
			Executor().ScanStructContext(ctx, &after); err != nil {
			return wrapErr(err, "could not update domain in pg")
		}

		change = &storage.Change[domain.Domain]{Before: *before.ToDomain(), After: *after.ToDomain()}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// DeleteDomain removes the domain's links, unmaps its hosts and deletes the
// domain itself in a single transaction. Hosts are returned with their
// previous DomainID.
func (p *PgSQL) DeleteDomain(ctx context.Context,
	userID domain.UserID,
	id domain.DomainID) (*storage.DeletedDomain, error) {
	var deleted *storage.DeletedDomain
	err := p.atomic(ctx, func(q *PgSQL) error {
		var row PgDomain
		found, err := q.Builder.From(domainsTable).
			Where(
				goqu.I("id").Eq(int64(id)),
				goqu.I("user_id").Eq(int64(userID)),
			).
			ForUpdate(goqu.Wait).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return fmt.Errorf("could not lock domain in pg: %w", err)
		}
		if !found {
			return nil
		}

		var links []PgLink
		if err := q.Builder.Delete(linksTable).
			Where(goqu.I("domain_id").Eq(int64(id))).
			Returning(&PgLink{}).
			Executor().ScanStructsContext(ctx, &links); err != nil {
			return fmt.Errorf("could not delete domain links in pg: %w", err)
		}

		var hosts []PgHost
		if err := q.Builder.Update(hostsTable).
			Set(goqu.Record{
				"domain_id":  nil,
				"updated_at": goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(goqu.I("domain_id").Eq(int64(id))).
			Returning(&PgHost{}).
			Executor().ScanStructsContext(ctx, &hosts); err != nil {
			return fmt.Errorf("could not unmap domain hosts in pg: %w", err)
		}

		if _, err := q.Builder.Delete(domainsTable).
			Where(goqu.I("id").Eq(int64(id))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not delete domain in pg: %w", err)
		}

		deleted = &storage.DeletedDomain{
			Domain: *row.ToDomain(),
			Links:  pgLinksToDomain(links),
			Hosts:  pgHostsToDomain(hosts),
		}
		for i := range deleted.Hosts {
			deleted.Hosts[i].DomainID = id
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// atomic runs cb inside the current transaction, or inside a new one when
// p is not transactional.
func (p *PgSQL) atomic(ctx context.Context, cb func(q *PgSQL) error) error {
	if _, ok := p.DB.(*sql.DB); !ok {
		return cb(p)
	}

	return p.WithTx(ctx, func(s storage.AllStorage) error {
		return cb(s.(*PgSQL)) //nolint: forcetypeassert
	})
}
