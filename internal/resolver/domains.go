package resolver

import (
	"context"
	"fmt"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	"strings"
)

// AddDomain registers a custom domain for userID. A stale entry left under
// the same address is cleared.
func (r *resolver) AddDomain(ctx context.Context,
	userID domain.UserID,
	address, homepage string) (*domain.Domain, error) {
	address = normalizeHost(address)
	if err := r.validateHost(address); err != nil {
		return nil, err
	}
	if homepage != "" {
		if err := validateTarget(homepage); err != nil {
			return nil, err
		}
	}

	d, err := r.storage.StoreDomain(ctx, domain.Domain{
		Address:  address,
		Homepage: homepage,
		UserID:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not add domain: %w", err)
	}

	if err := r.invalidate(ctx, d); err != nil {
		return d, err
	}

	return d, nil
}

// Domains lists the custom domains owned by userID. Listings are not
// cached.
func (r *resolver) Domains(ctx context.Context, userID domain.UserID) ([]domain.Domain, error) {
	domains, err := r.storage.DomainsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list domains: %w", err)
	}

	return domains, nil
}

func (r *resolver) UpdateDomain(ctx context.Context,
	userID domain.UserID,
	id domain.DomainID,
	updates storage.DomainUpdates) (*domain.Domain, error) {
	if updates.Homepage != nil && *updates.Homepage != "" {
		if err := validateTarget(*updates.Homepage); err != nil {
			return nil, err
		}
	}

	change, err := r.storage.UpdateDomain(ctx, userID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update domain: %w", err)
	}
	if change == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}

	if err := r.invalidate(ctx, &change.Before); err != nil {
		return &change.After, err
	}

	return &change.After, nil
}

// DeleteDomain removes a domain owned by userID. Its links, their
// statistics and every host mapped to it are invalidated as well.
func (r *resolver) DeleteDomain(ctx context.Context, userID domain.UserID, id domain.DomainID) error {
	deleted, err := r.storage.DeleteDomain(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete domain: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "domain not found")
	}

	entities := make([]any, 0, 1+2*len(deleted.Links)+len(deleted.Hosts))
	entities = append(entities, &deleted.Domain)
	for i := range deleted.Links {
		entities = append(entities, &deleted.Links[i], deleted.Links[i].ID)
	}
	for i := range deleted.Hosts {
		entities = append(entities, &deleted.Hosts[i])
	}

	return r.invalidate(ctx, entities...)
}

// AddHost maps address to a domain owned by userID, replacing any previous
// mapping of the same host.
func (r *resolver) AddHost(ctx context.Context,
	userID domain.UserID,
	address string,
	domainID domain.DomainID) (*domain.Host, error) {
	address = normalizeHost(address)
	if err := r.validateHost(address); err != nil {
		return nil, err
	}

	d, err := r.storage.DomainByID(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if d == nil || d.UserID != userID {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}

	before, err := r.storage.HostByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("could not get host: %w", err)
	}
	if before != nil && before.Banned {
		return nil, serrors.With(serrors.ErrForbidden, "host is banned")
	}

	h, err := r.storage.StoreHost(ctx, domain.Host{Address: address, DomainID: domainID})
	if err != nil {
		return nil, fmt.Errorf("could not add host: %w", err)
	}

	if err := r.invalidate(ctx, h); err != nil {
		return h, err
	}

	return h, nil
}

// DeleteHost removes a host mapping pointing to a domain owned by userID.
func (r *resolver) DeleteHost(ctx context.Context, userID domain.UserID, address string) error {
	address = normalizeHost(address)
	h, err := r.storage.HostByAddress(ctx, address)
	if err != nil {
		return fmt.Errorf("could not get host: %w", err)
	}
	if h == nil || h.DomainID == 0 {
		return serrors.With(serrors.ErrNotFound, "host not found")
	}

	d, err := r.storage.DomainByID(ctx, h.DomainID)
	if err != nil {
		return fmt.Errorf("could not get domain: %w", err)
	}
	if d == nil || d.UserID != userID {
		return serrors.With(serrors.ErrNotFound, "host not found")
	}

	deleted, err := r.storage.DeleteHost(ctx, address)
	if err != nil {
		return fmt.Errorf("could not delete host: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "host not found")
	}

	return r.invalidate(ctx, deleted)
}

func (r *resolver) validateHost(address string) error {
	if address == "" || strings.ContainsAny(address, "/?#@ ") || !strings.Contains(address, ".") {
		return serrors.With(serrors.ErrBadRequest, "invalid host %q", address)
	}
	if address == normalizeHost(r.options.DefaultDomain) {
		return serrors.With(serrors.ErrBadRequest, "%q is the default domain", address)
	}

	return nil
}
