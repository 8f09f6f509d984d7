package config_test

import (
	"os"
	"path/filepath"
	"shortener/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "shortener", cfg.Database.DatabaseName)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 168*time.Hour, cfg.JWT.TTL)
	require.Equal(t, 10, cfg.Worker.MaxAttempts)
	require.Equal(t, 5*time.Second, cfg.Worker.RecheckDelay)
	require.Equal(t, 6, cfg.Site.LinkLength)
	require.Equal(t, 1024, cfg.Site.MaxPendingVisits)
	require.False(t, cfg.Site.DisallowRegistration)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := writeConfig(t, `
redis:
  url: redis://cache:6379/2
site:
  defaultDomain: sho.rt
jwt:
  publicKey: from-file
`)
	t.Setenv("JWT_PUBLIC_KEY", "from-env")
	t.Setenv("WORKER_MAX_WORKERS", "3")
	t.Setenv("SITE_DISALLOW_REGISTRATION", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	require.Equal(t, "sho.rt", cfg.Site.DefaultDomain)
	require.Equal(t, "from-env", cfg.JWT.PublicKey)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
	require.True(t, cfg.Site.DisallowRegistration)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
