package postgres

import (
	"context"
	"fmt"
	"shortener/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

func (p *PgSQL) HostByAddress(ctx context.Context, address string) (*domain.Host, error) {
	var row PgHost
	found, err := p.Builder.From(hostsTable).
		Where(goqu.I("address").Eq(address)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch host from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreHost inserts a host mapping, replacing the domain and banned flag of
// an existing mapping with the same address.
func (p *PgSQL) StoreHost(ctx context.Context, h domain.Host) (*domain.Host, error) {
	var row PgHost
	row.FromDomain(h)

	if _, err := p.Builder.Insert(hostsTable).
		Rows(row).
		OnConflict(exp.NewDoUpdateConflictExpression("address", goqu.Record{
			"domain_id":  goqu.L("EXCLUDED.domain_id"),
			"banned":     goqu.L("EXCLUDED.banned"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgHost{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, wrapErr(err, "could not upsert host into pg")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteHost(ctx context.Context, address string) (*domain.Host, error) {
	var row PgHost
	found, err := p.Builder.Delete(hostsTable).
		Where(goqu.I("address").Eq(address)).
		Returning(&PgHost{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete host from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
