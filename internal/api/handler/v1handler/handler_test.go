package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"shortener/internal/api/handler/v1handler"
	"testing"

	"shortener/internal/api/specs/v1specs"
	"shortener/pkg/cache"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid target %q", "ftp://x")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, `invalid target "ftp://x"`, res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "invalid token")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// the cause is not exposed
	require.Equal(t, "invalid token", res.Response.Message)
}

func TestNewError_UnavailableHidesCause(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.Wrap(serrors.ErrUnavailable, cache.ErrMiss, "could not invalidate abc--7")
	res := h.NewError(ctx, fmt.Errorf("update link: %w", err))
	require.Equal(t, 503, res.StatusCode)
	require.Equal(t, serrors.ErrUnavailable.Error(), res.Response.Code)
	require.Equal(t, "service temporarily unavailable", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.With(serrors.ErrInternal, "secret detail"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Conflict(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrConflict))
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "resource already exists", res.Response.Message)
}

func TestNewError_SecurityErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	op := ogenerrors.OperationContext{Name: v1specs.DeleteLinkOperation, ID: "deleteLink"}

	res := h.NewError(context.Background(), &ogenerrors.SecurityError{
		OperationContext: op,
		Err:              ogenerrors.ErrSecurityRequirementIsNotSatisfied,
	})
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, "missing credentials", res.Response.Message)

	// kinds raised by the security handler survive
	res = h.NewError(context.Background(), &ogenerrors.SecurityError{
		OperationContext: op,
		Security:         "APIKeyAuth",
		Err:              serrors.With(serrors.ErrForbidden, "user is banned"),
	})
	require.Equal(t, 403, res.StatusCode)
	require.Equal(t, "user is banned", res.Response.Message)

	res = h.NewError(context.Background(), &ogenerrors.SecurityError{
		OperationContext: op,
		Security:         "BearerAuth",
		Err:              errors.New("malformed"),
	})
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, "invalid credentials", res.Response.Message)
}

func TestNewError_DecodeErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	op := ogenerrors.OperationContext{Name: v1specs.UpdateLinkOperation, ID: "updateLink"}

	res := h.NewError(context.Background(), &ogenerrors.DecodeRequestError{OperationContext: op, Err: errors.New("eof")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "invalid request body", res.Response.Message)

	res = h.NewError(context.Background(), &ogenerrors.DecodeParamsError{OperationContext: op, Err: errors.New("nan")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "invalid path parameter", res.Response.Message)
}

func TestHandleError_WritesErrorBody(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	w := httptest.NewRecorder()

	h.HandleError(context.Background(), w, httptest.NewRequest(http.MethodGet, "/", nil),
		serrors.With(serrors.ErrConflict, "link address %q is taken", "abc"))
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body v1specs.Error
	require.NoError(t, body.UnmarshalJSON(w.Body.Bytes()))
	require.Equal(t, serrors.ErrConflict.Error(), body.Code)
	require.Equal(t, `link address "abc" is taken`, body.Message)
}
