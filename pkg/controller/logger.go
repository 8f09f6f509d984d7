package controller

import (
	"context"
	"net"
	"net/http"
	"shortener/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-Id"

// accessRecorder captures the status and body size written downstream.
type accessRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *accessRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *accessRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

// GetClientIP returns the first valid address of X-Forwarded-For, then
// X-Real-IP, then the host of RemoteAddr.
func GetClientIP(r *http.Request) string {
	for _, candidate := range strings.Split(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := net.ParseIP(strings.TrimSpace(candidate)); ip != nil {
			return ip.String()
		}
	}

	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// CtxKey is the type of context keys set by this package.
type CtxKey string

// RequestIDKey is the context key of the current request id.
const RequestIDKey CtxKey = "RequestID"

// RequestIDFromContext returns the request id set by WithLogger, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// credentialKind names the credential a request presents without exposing it.
func credentialKind(r *http.Request) string {
	switch {
	case r.Header.Get("X-API-Key") != "":
		return "apikey"
	case strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "):
		return "bearer"
	default:
		return "none"
	}
}

// WithLogger tags the request context with a request id and a scoped logger,
// echoes the id back to the client and writes one access log line per request.
// Redirects are logged at debug level since they dominate traffic.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String("request_id", requestID))

		start := time.Now()
		rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		fields := []zap.Field{
			zap.Int("status_code", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("host", r.Host),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("credentials", credentialKind(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		}
		if location := rec.Header().Get("Location"); location != "" {
			fields = append(fields, zap.String("location", location))
		}

		switch {
		case rec.status >= http.StatusInternalServerError:
			logger.Error(ctx, "Access log", fields...)
		case rec.status >= http.StatusMultipleChoices && rec.status < http.StatusBadRequest:
			logger.Debug(ctx, "Access log", fields...)
		default:
			logger.Info(ctx, "Access log", fields...)
		}
	})
}
