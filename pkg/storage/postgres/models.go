package postgres

import (
	"database/sql"
	"shortener/pkg/domain"
	"time"
)

const (
	linksTable   = "links"
	domainsTable = "domains"
	hostsTable   = "hosts"
	usersTable   = "users"
	visitsTable  = "visits"
)

func nullID[T ~int64](id T) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id != 0}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type PgLink struct {
	ID       int64         `db:"id"        goqu:"skipinsert"`
	Address  string        `db:"address"`
	DomainID sql.NullInt64 `db:"domain_id"`
	UserID   sql.NullInt64 `db:"user_id"`

	Target      string         `db:"target"`
	Description sql.NullString `db:"description"`
	VisitCount  int64          `db:"visit_count" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLink) ToDomain() *domain.Link {
	return &domain.Link{
		ID:          domain.LinkID(p.ID),
		Address:     p.Address,
		DomainID:    domain.DomainID(p.DomainID.Int64),
		UserID:      domain.UserID(p.UserID.Int64),
		Target:      p.Target,
		Description: p.Description.String,
		VisitCount:  p.VisitCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgLink) FromDomain(l domain.Link) {
	*p = PgLink{
		ID:          int64(l.ID),
		Address:     l.Address,
		DomainID:    nullID(l.DomainID),
		UserID:      nullID(l.UserID),
		Target:      l.Target,
		Description: nullString(l.Description),
		VisitCount:  l.VisitCount,
		CreatedAt:   l.CreatedAt,
	}
}

type PgDomain struct {
	ID       int64          `db:"id"       goqu:"skipinsert"`
	Address  string         `db:"address"`
	Homepage sql.NullString `db:"homepage"`
	UserID   sql.NullInt64  `db:"user_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	return &domain.Domain{
		ID:        domain.DomainID(p.ID),
		Address:   p.Address,
		Homepage:  p.Homepage.String,
		UserID:    domain.UserID(p.UserID.Int64),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgDomain) FromDomain(d domain.Domain) {
	*p = PgDomain{
		ID:        int64(d.ID),
		Address:   d.Address,
		Homepage:  nullString(d.Homepage),
		UserID:    nullID(d.UserID),
		CreatedAt: d.CreatedAt,
	}
}

type PgHost struct {
	ID       int64         `db:"id"        goqu:"skipinsert"`
	Address  string        `db:"address"`
	DomainID sql.NullInt64 `db:"domain_id"`
	Banned   bool          `db:"banned"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgHost) ToDomain() *domain.Host {
	return &domain.Host{
		ID:        domain.HostID(p.ID),
		Address:   p.Address,
		DomainID:  domain.DomainID(p.DomainID.Int64),
		Banned:    p.Banned,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgHost) FromDomain(h domain.Host) {
	*p = PgHost{
		ID:        int64(h.ID),
		Address:   h.Address,
		DomainID:  nullID(h.DomainID),
		Banned:    h.Banned,
		CreatedAt: h.CreatedAt,
	}
}

type PgUser struct {
	ID       int64          `db:"id"       goqu:"skipinsert"`
	Email    string         `db:"email"`
	APIKey   sql.NullString `db:"apikey"`
	Password string         `db:"password"`
	Verified bool           `db:"verified"`
	Banned   bool           `db:"banned"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(p.ID),
		Email:     p.Email,
		APIKey:    p.APIKey.String,
		Password:  p.Password,
		Verified:  p.Verified,
		Banned:    p.Banned,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:        int64(u.ID),
		Email:     u.Email,
		APIKey:    nullString(u.APIKey),
		Password:  u.Password,
		Verified:  u.Verified,
		Banned:    u.Banned,
		CreatedAt: u.CreatedAt,
	}
}

func pgLinksToDomain(rows []PgLink) []domain.Link {
	out := make([]domain.Link, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgHostsToDomain(rows []PgHost) []domain.Host {
	out := make([]domain.Host, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgDomainsToDomain(rows []PgDomain) []domain.Domain {
	out := make([]domain.Domain, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
