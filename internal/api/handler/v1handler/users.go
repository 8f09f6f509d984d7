package v1handler

import (
	"context"
	"shortener/internal/api/specs/v1specs"
)

// DeleteUser removes the caller's account with all their links.
func (h Handler) DeleteUser(ctx context.Context, req *v1specs.DeleteUserRequest) error {
	return h.deps.Resolver.DeleteUser(ctx, GetUserFromContext(ctx).ID, req.Password) //nolint: wrapcheck
}
