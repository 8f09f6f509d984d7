package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shortener/internal/api"
	"shortener/internal/api/handler/v1handler"
	mockresolver "shortener/internal/resolver/mock"
	"shortener/pkg/domain"
	"shortener/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestHandler(t *testing.T) (http.Handler, *mockresolver.MockResolver) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	res := mockresolver.NewMockResolver(gomock.NewController(t))
	handler, err := api.NewHandler(api.Deps{Resolver: res}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
		MetricsPath: "/metrics",
	})
	require.NoError(t, err)

	return handler, res
}

func TestNewHandler_Routes(t *testing.T) {
	handler, res := newTestHandler(t)
	res.EXPECT().Redirect(gomock.Any(), "sho.rt", "abc123").
		Return(&domain.Link{ID: 1, Address: "abc123", Target: "https://example.org"}, nil)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "redirect", path: "http://sho.rt/abc123", status: http.StatusFound},
		{name: "metrics", path: "/metrics", status: http.StatusOK},
		{name: "specs", path: "/specs/v1.yaml", status: http.StatusOK},
		{name: "docs", path: "/v1/docs/", status: http.StatusOK},
		{name: "pprof", path: "/debug/pprof/goroutine", status: http.StatusOK},
		{name: "api without credentials", path: "/api/v1/domains", status: http.StatusUnauthorized},
		{name: "unknown api path", path: "/api/v1/nope", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestNewHandler_CORSPreflight(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/links/1", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestNewHandler_InvalidKey(t *testing.T) {
	_, err := api.NewHandler(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
	})
	require.Error(t, err)
}

func TestNewHandler_BodyLimit(t *testing.T) {
	handler, _ := newTestHandler(t)

	body := `{"email":"a@b.com","password":"` + strings.Repeat("x", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
