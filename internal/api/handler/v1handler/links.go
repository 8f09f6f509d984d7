package v1handler

import (
	"context"
	"shortener/internal/api/specs/v1specs"
	"shortener/internal/resolver"
	"shortener/pkg/domain"
	"shortener/pkg/storage"
)

// DomainLinkToV1Specs converts a link for its owner.
func DomainLinkToV1Specs(in *domain.Link) *v1specs.Link {
	return &v1specs.Link{
		ID:          int64(in.ID),
		Address:     in.Address,
		DomainID:    optInt64(int64(in.DomainID)),
		Target:      in.Target,
		Description: optString(in.Description),
		VisitCount:  in.VisitCount,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

// DomainStatsToV1Specs converts the visit statistics of a link.
func DomainStatsToV1Specs(in *domain.Stats) *v1specs.Stats {
	out := &v1specs.Stats{
		LinkID: int64(in.LinkID),
		Total:  in.Total,
		Daily:  make([]v1specs.DailyVisits, 0, len(in.Daily)),
	}
	if !in.LastVisitAt.IsZero() {
		out.LastVisitAt = v1specs.NewOptDateTime(in.LastVisitAt)
	}
	for _, d := range in.Daily {
		out.Daily = append(out.Daily, v1specs.DailyVisits{Day: d.Day, Count: d.Count})
	}

	return out
}

// CreateLink shortens a target, on a generated address unless one is given.
func (h Handler) CreateLink(ctx context.Context, req *v1specs.CreateLinkRequest) (*v1specs.Link, error) {
	link, err := h.deps.Resolver.CreateLink(ctx, GetUserFromContext(ctx).ID, resolver.NewLink{
		Address:     req.Address.Or(""),
		DomainID:    domain.DomainID(req.DomainID.Or(0)),
		Target:      req.Target,
		Description: req.Description.Or(""),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainLinkToV1Specs(link), nil
}

func (h Handler) UpdateLink(ctx context.Context,
	req *v1specs.UpdateLinkRequest,
	params v1specs.UpdateLinkParams) (*v1specs.Link, error) {
	link, err := h.deps.Resolver.UpdateLink(ctx,
		GetUserFromContext(ctx).ID,
		domain.LinkID(params.ID),
		storage.LinkUpdates{
			Address:     stringPtr(req.Address),
			Target:      stringPtr(req.Target),
			Description: stringPtr(req.Description),
		})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainLinkToV1Specs(link), nil
}

func (h Handler) DeleteLink(ctx context.Context, params v1specs.DeleteLinkParams) error {
	return h.deps.Resolver.DeleteLink(ctx, GetUserFromContext(ctx).ID, domain.LinkID(params.ID)) //nolint: wrapcheck
}

func (h Handler) GetLinkStats(ctx context.Context, params v1specs.GetLinkStatsParams) (*v1specs.Stats, error) {
	stats, err := h.deps.Resolver.Stats(ctx, GetUserFromContext(ctx).ID, domain.LinkID(params.ID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainStatsToV1Specs(stats), nil
}
