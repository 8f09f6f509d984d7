package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"shortener/pkg/cache"
	"shortener/pkg/domain"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"
	"strings"

	"go.uber.org/zap"
)

// Link resolves a short address inside the (domain, user) scope. The
// cached link does not carry a visit count; counts are served by Stats so
// that visits leave the link entries alone.
func (r *resolver) Link(ctx context.Context,
	address string,
	domainID domain.DomainID,
	userID domain.UserID) (*domain.Link, error) {
	link, err := readThrough(ctx, r, cache.LinkKey(address, domainID, userID),
		func(ctx context.Context) (*domain.Link, error) {
			l, err := r.storage.LinkByAddress(ctx, address, domainID, userID)
			if l != nil {
				l.VisitCount = 0
			}

			return l, err
		})
	if err != nil {
		return nil, fmt.Errorf("could not resolve link: %w", err)
	}
	if link == nil {
		return nil, serrors.With(serrors.ErrNotFound, "link not found")
	}

	return link, nil
}

func (r *resolver) Domain(ctx context.Context, address string) (*domain.Domain, error) {
	address = normalizeHost(address)
	d, err := readThrough(ctx, r, cache.DomainKey(address), func(ctx context.Context) (*domain.Domain, error) {
		return r.storage.DomainByAddress(ctx, address)
	})
	if err != nil {
		return nil, fmt.Errorf("could not resolve domain: %w", err)
	}
	if d == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}

	return d, nil
}

func (r *resolver) Host(ctx context.Context, address string) (*domain.Host, error) {
	address = normalizeHost(address)
	h, err := readThrough(ctx, r, cache.HostKey(address), func(ctx context.Context) (*domain.Host, error) {
		return r.storage.HostByAddress(ctx, address)
	})
	if err != nil {
		return nil, fmt.Errorf("could not resolve host: %w", err)
	}
	if h == nil {
		return nil, serrors.With(serrors.ErrNotFound, "host not found")
	}

	return h, nil
}

// User resolves an account by email or API key.
func (r *resolver) User(ctx context.Context, emailOrKey string) (*domain.User, error) {
	if emailOrKey == "" {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	u, err := readThrough(ctx, r, cache.UserKey(emailOrKey), func(ctx context.Context) (*domain.User, error) {
		return r.storage.UserByEmailOrAPIKey(ctx, emailOrKey)
	})
	if err != nil {
		return nil, fmt.Errorf("could not resolve user: %w", err)
	}
	if u == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return u, nil
}

// Stats returns the statistics of a link owned by userID.
func (r *resolver) Stats(ctx context.Context, userID domain.UserID, linkID domain.LinkID) (*domain.Stats, error) {
	stats, err := readThrough(ctx, r, cache.StatsKey(linkID), func(ctx context.Context) (*domain.Stats, error) {
		return r.storage.StatsByLinkID(ctx, linkID)
	})
	if err != nil {
		return nil, fmt.Errorf("could not resolve stats: %w", err)
	}
	if stats == nil || stats.UserID != userID {
		return nil, serrors.With(serrors.ErrNotFound, "link not found")
	}

	return stats, nil
}

// Redirect resolves the link a visitor of host/address is sent to and
// records the visit in the background. When MaxPendingVisits visits are
// already in flight the visit is dropped.
func (r *resolver) Redirect(ctx context.Context, host, address string) (*domain.Link, error) {
	if address == "" {
		return nil, serrors.With(serrors.ErrNotFound, "link not found")
	}

	domainID, err := r.domainOf(ctx, host)
	if err != nil {
		return nil, err
	}

	link, err := r.Link(ctx, address, domainID, 0)
	if err != nil {
		return nil, err
	}

	visited := *link
	if !r.visits.TryGo(func() error {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.options.VisitTimeout)
		defer cancel()

		if err := r.RecordVisit(ctx, &visited); err != nil {
			logger.Warn(ctx, "could not record visit", zap.Int64("link", int64(visited.ID)), zap.Error(err))
		}

		return nil
	}) {
		logger.Warn(ctx, "too many pending visits, dropping one", zap.Int64("link", int64(visited.ID)))
	}

	return link, nil
}

// domainOf maps a request host to the domain scope its links live in.
func (r *resolver) domainOf(ctx context.Context, host string) (domain.DomainID, error) {
	host = normalizeHost(host)
	if host == "" || host == normalizeHost(r.options.DefaultDomain) {
		return 0, nil
	}

	d, err := r.Domain(ctx, host)
	if err == nil {
		return d.ID, nil
	}
	if !errors.Is(err, serrors.ErrNotFound) {
		return 0, err
	}

	h, err := r.Host(ctx, host)
	if err != nil {
		return 0, err
	}
	if h.Banned {
		return 0, serrors.With(serrors.ErrForbidden, "host is banned")
	}
	if h.DomainID == 0 {
		return 0, serrors.With(serrors.ErrNotFound, "host is not mapped to a domain")
	}

	return h.DomainID, nil
}

// RecordVisit counts a visit of link and invalidates its statistics.
func (r *resolver) RecordVisit(ctx context.Context, link *domain.Link) error {
	if err := r.storage.RecordVisit(ctx, link.ID); err != nil {
		return fmt.Errorf("could not record visit: %w", err)
	}

	return r.invalidate(ctx, link.ID)
}

// normalizeHost lowercases host and strips a port, if any.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return host
}
