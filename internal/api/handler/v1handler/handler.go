package v1handler

import (
	"context"
	"net/http"
	"shortener/internal/api/specs/v1specs"
	"shortener/internal/resolver"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Resolver   resolver.Resolver
	SecHandler *SecHandler
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

var statusByKind = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrInternal:     http.StatusInternalServerError,
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrConflict:     "resource already exists",
	serrors.ErrUnavailable:  "service temporarily unavailable",
	serrors.ErrInternal:     "internal error",
}

// NewError maps err onto a status code and a client-safe message. Messages
// of internal and unavailable errors are never exposed.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	err = fromServerError(err)

	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		kind = serrors.ErrInternal
		status = http.StatusInternalServerError
	}

	message := defaultMessages[kind]
	var se *serrors.Error
	if kind != serrors.ErrInternal && kind != serrors.ErrUnavailable &&
		errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// fromServerError gives the errors the generated server raises before an
// operation runs an error kind.
func fromServerError(err error) error {
	var (
		secErr    *ogenerrors.SecurityError
		reqErr    *ogenerrors.DecodeRequestError
		paramsErr *ogenerrors.DecodeParamsError
	)
	switch {
	case errors.As(err, &secErr):
		if errors.Is(secErr.Err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return serrors.With(serrors.ErrUnauthorized, "missing credentials")
		}
		if serrors.KindOf(secErr.Err) != nil {
			return secErr.Err
		}

		return serrors.Wrap(serrors.ErrUnauthorized, secErr.Err, "invalid credentials")
	case errors.As(err, &reqErr):
		return serrors.Wrap(serrors.ErrBadRequest, reqErr.Err, "invalid request body")
	case errors.As(err, &paramsErr):
		return serrors.Wrap(serrors.ErrBadRequest, paramsErr.Err, "invalid path parameter")
	}

	return err
}

// HandleError writes err as an Error body. It is the error handler of the
// generated server and of the redirect routes.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, err)

	e := &jx.Encoder{}
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if _, err := e.WriteTo(w); err != nil {
		logger.Warn(ctx, "could not write error response", zap.Error(err))
	}
}

func optString(s string) v1specs.OptString {
	if s == "" {
		return v1specs.OptString{}
	}

	return v1specs.NewOptString(s)
}

func optInt64(v int64) v1specs.OptInt64 {
	if v == 0 {
		return v1specs.OptInt64{}
	}

	return v1specs.NewOptInt64(v)
}

func stringPtr(o v1specs.OptString) *string {
	if v, ok := o.Get(); ok {
		return &v
	}

	return nil
}
