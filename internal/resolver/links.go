package resolver

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"shortener/pkg/domain"
	"shortener/pkg/serrors"
	"shortener/pkg/storage"
	"strings"
)

// NewLink describes a link to create. An empty Address asks for a
// generated one; a zero DomainID puts the link on the default domain.
type NewLink struct {
	Address     string
	DomainID    domain.DomainID
	Target      string
	Description string
}

// generatedAddressAttempts bounds retries when a generated address is taken.
const generatedAddressAttempts = 3

// CreateLink stores a link owned by userID. Entries a previous link left
// under the same scopes are cleared.
func (r *resolver) CreateLink(ctx context.Context, userID domain.UserID, in NewLink) (*domain.Link, error) {
	if err := validateTarget(in.Target); err != nil {
		return nil, err
	}
	custom := in.Address != ""
	if custom {
		if err := validateAddress(in.Address); err != nil {
			return nil, err
		}
	}
	if in.DomainID != 0 {
		d, err := r.storage.DomainByID(ctx, in.DomainID)
		if err != nil {
			return nil, fmt.Errorf("could not get domain: %w", err)
		}
		if d == nil || d.UserID != userID {
			return nil, serrors.With(serrors.ErrNotFound, "domain not found")
		}
	}

	link := domain.Link{
		Address:     in.Address,
		DomainID:    in.DomainID,
		UserID:      userID,
		Target:      in.Target,
		Description: in.Description,
	}

	var (
		stored *domain.Link
		err    error
	)
	for range generatedAddressAttempts {
		if !custom {
			if link.Address, err = generateAddress(r.options.LinkLength); err != nil {
				return nil, err
			}
		}

		stored, err = r.storage.StoreLink(ctx, link)
		if custom || !errors.Is(err, serrors.ErrConflict) {
			break
		}
	}
	if errors.Is(err, serrors.ErrConflict) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "link address %q is taken", link.Address)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create link: %w", err)
	}

	if err := r.invalidate(ctx, stored); err != nil {
		return stored, err
	}

	return stored, nil
}

// UpdateLink changes a link owned by userID. The cache entries of the link
// as it was locked before the update are invalidated.
func (r *resolver) UpdateLink(ctx context.Context,
	userID domain.UserID,
	id domain.LinkID,
	updates storage.LinkUpdates) (*domain.Link, error) {
	if updates.Address != nil {
		if err := validateAddress(*updates.Address); err != nil {
			return nil, err
		}
	}
	if updates.Target != nil {
		if err := validateTarget(*updates.Target); err != nil {
			return nil, err
		}
	}

	change, err := r.storage.UpdateLink(ctx, userID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update link: %w", err)
	}
	if change == nil {
		return nil, serrors.With(serrors.ErrNotFound, "link not found")
	}

	if err := r.invalidate(ctx, &change.Before); err != nil {
		return &change.After, err
	}

	return &change.After, nil
}

// DeleteLink removes a link owned by userID along with its cached scopes
// and statistics.
func (r *resolver) DeleteLink(ctx context.Context, userID domain.UserID, id domain.LinkID) error {
	deleted, err := r.storage.DeleteLink(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete link: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "link not found")
	}

	return r.invalidate(ctx, deleted, deleted.ID)
}

// addressAlphabet leaves out characters that are easily confused.
const addressAlphabet = "abcdefghkmnpqrstuvwxyzABCDEFGHKLMNPQRSTUVWXYZ23456789"

// generateAddress draws n characters of addressAlphabet uniformly.
func generateAddress(n int) (string, error) {
	limit := big.NewInt(int64(len(addressAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("could not generate link address: %w", err)
		}
		out[i] = addressAlphabet[idx.Int64()]
	}

	return string(out), nil
}

func validateAddress(address string) error {
	if address == "" || strings.ContainsAny(address, "/?#- ") {
		return serrors.With(serrors.ErrBadRequest, "invalid link address %q", address)
	}

	return nil
}

func validateTarget(target string) error {
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid target URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return serrors.With(serrors.ErrBadRequest, "target URL must be absolute http(s)")
	}

	return nil
}
