package controller_test

import (
	"net/http"
	"net/http/httptest"
	"shortener/pkg/controller"
	"shortener/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})
	handler, err := controller.WithMetrics(next, mp)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/abc", nil))
	require.Equal(t, http.StatusFound, rec.Code)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "http_server_duration") {
			found = true
		}
	}
	require.True(t, found, "expected http_server_duration histogram to be exported")
}
