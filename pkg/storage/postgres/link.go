package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"shortener/pkg/domain"
	"shortener/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

// statsDays bounds the daily breakdown returned with link statistics.
const statsDays = 30

func (p *PgSQL) LinkByAddress(ctx context.Context,
	address string,
	domainID domain.DomainID,
	userID domain.UserID) (*domain.Link, error) {
	w := []goqu.Expression{goqu.I("address").Eq(address)}
	if domainID == 0 {
		w = append(w, goqu.I("domain_id").IsNull())
	} else {
		w = append(w, goqu.I("domain_id").Eq(int64(domainID)))
	}
	if userID != 0 {
		w = append(w, goqu.I("user_id").Eq(int64(userID)))
	}

	var row PgLink
	found, err := p.Builder.From(linksTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch link by address from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LinkByID(ctx context.Context, id domain.LinkID) (*domain.Link, error) {
	var row PgLink
	found, err := p.Builder.From(linksTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch link by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreLink inserts l and returns the stored row.
func (p *PgSQL) StoreLink(ctx context.Context, l domain.Link) (*domain.Link, error) {
	var row PgLink
	row.FromDomain(l)

	if _, err := p.Builder.Insert(linksTable).
		Rows(row).
		Returning(&PgLink{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapErr(err, "could not insert link into pg")
	}

	return row.ToDomain(), nil
}

// UpdateLink locks the link owned by userID, sets the provided fields and
// updated_at, and returns both versions of the row.
func (p *PgSQL) UpdateLink(ctx context.Context,
	userID domain.UserID,
	id domain.LinkID,
	updates storage.LinkUpdates) (*storage.Change[domain.Link], error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Address != nil {
		rec["address"] = *updates.Address
	}
	if updates.Target != nil {
		rec["target"] = *updates.Target
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}

	var change *storage.Change[domain.Link]
	err := p.atomic(ctx, func(q *PgSQL) error {
		var before PgLink
		found, err := q.Builder.From(linksTable).
			Where(
				goqu.I("id").Eq(int64(id)),
				goqu.I("user_id").Eq(int64(userID)),
			).
			ForUpdate(goqu.Wait).
			Executor().ScanStructContext(ctx, &before)
		if err != nil {
			return fmt.Errorf("could not lock link in pg: %w", err)
		}
		if !found {
			return nil
		}

		var after PgLink
		if _, err := q.Builder.Update(linksTable).
			Set(rec).
			Where(goqu.I("id").Eq(int64(id))).
			Returning(&PgLink{}).
			Executor().ScanStructContext(ctx, &after); err != nil {
			return wrapErr(err, "could not update link in pg")
		}

		change = &storage.Change[domain.Link]{Before: *before.ToDomain(), After: *after.ToDomain()}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// DeleteLink deletes a link owned by userID, returning the deleted row.
func (p *PgSQL) DeleteLink(ctx context.Context, userID domain.UserID, id domain.LinkID) (*domain.Link, error) {
	var row PgLink
	found, err := p.Builder.Delete(linksTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("user_id").Eq(int64(userID)),
		).
		Returning(&PgLink{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete link in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RecordVisit inserts a visit row and bumps the link's counter in one
// transaction.
func (p *PgSQL) RecordVisit(ctx context.Context, id domain.LinkID) error {
	return p.atomic(ctx, func(q *PgSQL) error {
		if _, err := q.Builder.Insert(visitsTable).
			Rows(goqu.Record{"link_id": int64(id)}).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not insert visit in pg: %w", err)
		}

		if _, err := q.Builder.Update(linksTable).
			Set(goqu.Record{"visit_count": goqu.L("visit_count + 1")}).
			Where(goqu.I("id").Eq(int64(id))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not increment visit count in pg: %w", err)
		}

		return nil
	})
}

// StatsByLinkID returns the visit total, the last visit time and a daily
// breakdown of the last statsDays days. It returns nil for unknown links.
func (p *PgSQL) StatsByLinkID(ctx context.Context, id domain.LinkID) (*domain.Stats, error) {
	link, err := p.LinkByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}

	var lastVisit sql.NullTime
	if _, err := p.Builder.From(visitsTable).
		Select(goqu.MAX("created_at")).
		Where(goqu.I("link_id").Eq(int64(id))).
		Executor().ScanValContext(ctx, &lastVisit); err != nil {
		return nil, fmt.Errorf("could not fetch last visit from pg: %w", err)
	}

	var daily []struct {
		Day   time.Time `db:"day"`
		Count int64     `db:"count"`
	}
	since := time.Now().UTC().AddDate(0, 0, -statsDays)
	if err := p.Builder.From(visitsTable).
		Select(
			goqu.L("date_trunc('day', created_at)").As("day"),
			goqu.COUNT("*").As("count"),
		).
		Where(
			goqu.I("link_id").Eq(int64(id)),
			goqu.I("created_at").Gte(since),
		).
		GroupBy(goqu.I("day")).
		Order(goqu.I("day").Asc()).
		Executor().ScanStructsContext(ctx, &daily); err != nil {
		return nil, fmt.Errorf("could not fetch daily visits from pg: %w", err)
	}

	stats := &domain.Stats{
		LinkID:      id,
		UserID:      link.UserID,
		Total:       link.VisitCount,
		LastVisitAt: lastVisit.Time,
		Daily:       make([]domain.DailyVisits, 0, len(daily)),
	}
	for _, d := range daily {
		stats.Daily = append(stats.Daily, domain.DailyVisits{Day: d.Day, Count: d.Count})
	}

	return stats, nil
}
