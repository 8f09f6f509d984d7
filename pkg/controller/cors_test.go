package controller_test

import (
	"net/http"
	"net/http/httptest"
	"shortener/pkg/controller"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func splitHeader(v string) []string {
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func TestWithCORS_PreflightForManagementAPI(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/links/3", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "X-API-Key")
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, splitHeader(rec.Header().Get("Access-Control-Allow-Methods")), http.MethodDelete)
	require.Contains(t, splitHeader(rec.Header().Get("Access-Control-Allow-Methods")), http.MethodPatch)
	require.Contains(t, splitHeader(rec.Header().Get("Access-Control-Allow-Headers")), "X-API-Key")
	require.Contains(t, splitHeader(rec.Header().Get("Access-Control-Allow-Headers")), "Authorization")
}

func TestWithCORS_RedirectPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://example.com/landing", http.StatusFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/abc", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://example.com/landing", rec.Header().Get("Location"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
