package v1handler

import (
	"context"
	"shortener/internal/api/specs/v1specs"
	"shortener/pkg/domain"
	"shortener/pkg/storage"
)

func DomainDomainToV1Specs(in *domain.Domain) *v1specs.Domain {
	return &v1specs.Domain{
		ID:        int64(in.ID),
		Address:   in.Address,
		Homepage:  optString(in.Homepage),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func DomainHostToV1Specs(in *domain.Host) *v1specs.Host {
	return &v1specs.Host{
		ID:        int64(in.ID),
		Address:   in.Address,
		DomainID:  optInt64(int64(in.DomainID)),
		Banned:    in.Banned,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// ListDomains returns the custom domains of the caller.
func (h Handler) ListDomains(ctx context.Context) (*v1specs.DomainList, error) {
	domains, err := h.deps.Resolver.Domains(ctx, GetUserFromContext(ctx).ID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items := make([]v1specs.Domain, 0, len(domains))
	for i := range domains {
		items = append(items, *DomainDomainToV1Specs(&domains[i]))
	}

	return &v1specs.DomainList{Items: items}, nil
}

func (h Handler) AddDomain(ctx context.Context, req *v1specs.AddDomainRequest) (*v1specs.Domain, error) {
	d, err := h.deps.Resolver.AddDomain(ctx, GetUserFromContext(ctx).ID, req.Address, req.Homepage.Or(""))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainDomainToV1Specs(d), nil
}

func (h Handler) UpdateDomain(ctx context.Context,
	req *v1specs.UpdateDomainRequest,
	params v1specs.UpdateDomainParams) (*v1specs.Domain, error) {
	d, err := h.deps.Resolver.UpdateDomain(ctx,
		GetUserFromContext(ctx).ID,
		domain.DomainID(params.ID),
		storage.DomainUpdates{Homepage: stringPtr(req.Homepage)})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainDomainToV1Specs(d), nil
}

func (h Handler) DeleteDomain(ctx context.Context, params v1specs.DeleteDomainParams) error {
	return h.deps.Resolver.DeleteDomain(ctx, GetUserFromContext(ctx).ID, domain.DomainID(params.ID)) //nolint: wrapcheck
}

func (h Handler) AddHost(ctx context.Context, req *v1specs.AddHostRequest) (*v1specs.Host, error) {
	host, err := h.deps.Resolver.AddHost(ctx,
		GetUserFromContext(ctx).ID,
		req.Address,
		domain.DomainID(req.DomainID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainHostToV1Specs(host), nil
}

func (h Handler) DeleteHost(ctx context.Context, params v1specs.DeleteHostParams) error {
	return h.deps.Resolver.DeleteHost(ctx, GetUserFromContext(ctx).ID, params.Address) //nolint: wrapcheck
}
