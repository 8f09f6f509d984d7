package controller_test

import (
	"net/http"
	"net/http/httptest"
	"shortener/pkg/controller"
	"shortener/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "first forwarded hop", forwarded: "203.0.113.7, 10.0.0.2", remoteAddr: "10.0.0.2:1", want: "203.0.113.7"},
		{name: "skips garbage forwarded hops", forwarded: "unknown, 198.51.100.4", remoteAddr: "10.0.0.2:1", want: "198.51.100.4"},
		{name: "ipv6 forwarded", forwarded: "2001:db8::1", remoteAddr: "10.0.0.2:1", want: "2001:db8::1"},
		{name: "real ip", realIP: "198.51.100.9", remoteAddr: "10.0.0.2:1", want: "198.51.100.9"},
		{name: "invalid real ip falls back", realIP: "proxy", remoteAddr: "10.0.0.3:4431", want: "10.0.0.3"},
		{name: "remote addr", remoteAddr: "192.0.2.10:55000", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.11", want: "192.0.2.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/abc", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// serveObserved runs req through WithLogger with an observed logger in its context.
func serveObserved(t *testing.T, next http.Handler, req *http.Request) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	return rec, logs
}

func TestWithLogger_RequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("kept from the client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/links/7", nil)
		req.Header.Set(controller.RequestIDHeader, "req-42")

		rec, logs := serveObserved(t, next, req)
		require.Equal(t, "req-42", seen)
		require.Equal(t, "req-42", rec.Header().Get(controller.RequestIDHeader))
		require.Equal(t, 1, logs.Len())
		require.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("generated when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/links/7", nil)

		rec, _ := serveObserved(t, next, req)
		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get(controller.RequestIDHeader))
	})
}

func TestWithLogger_AccessLog(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/links/9/stats", nil)
	req.Host = "sho.rt"
	req.Header.Set("X-API-Key", "secret-key")

	rec, logs := serveObserved(t, next, req)
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.EqualValues(t, http.StatusOK, fields["status_code"])
	require.EqualValues(t, len(`{"code":"NOT_FOUND"}`), fields["bytes"])
	require.Equal(t, "sho.rt", fields["host"])
	require.Equal(t, "/api/v1/links/9/stats", fields["path"])
	require.Equal(t, "apikey", fields["credentials"])
	for _, v := range fields {
		require.NotEqual(t, "secret-key", v, "credentials must never be logged")
	}
}

func TestWithLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		auth   string
		level  zapcore.Level
		creds  string
	}{
		{name: "redirect", status: http.StatusFound, level: zapcore.DebugLevel, creds: "none"},
		{name: "client error", status: http.StatusUnauthorized, auth: "Bearer abc", level: zapcore.InfoLevel, creds: "bearer"},
		{name: "server error", status: http.StatusServiceUnavailable, auth: "Basic Zm9vOmJhcg==", level: zapcore.ErrorLevel, creds: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "https://example.com/landing")
				}
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/abc", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}

			_, logs := serveObserved(t, next, req)
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			require.Equal(t, tt.level, entry.Level)
			require.Equal(t, tt.creds, entry.ContextMap()["credentials"])
			if tt.status == http.StatusFound {
				require.Equal(t, "https://example.com/landing", entry.ContextMap()["location"])
			}
		})
	}
}
