package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, time.Hour, cfg.Classification.CacheTTL)
	require.Equal(t, 10*time.Second, cfg.Providers.UpstreamTimeout)
	require.False(t, cfg.Classification.Valkey.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
classification:
  cacheTtl: 30m
  valkey:
    enabled: true
    addr: "valkey:6379"
providers:
  pollenBaseUrl: "http://pollen:8282"
  upstreamTimeout: 5s
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 30*time.Minute, cfg.Classification.CacheTTL)
	require.True(t, cfg.Classification.Valkey.Enabled)
	require.Equal(t, "http://pollen:8282", cfg.Providers.PollenBaseURL)
	require.Equal(t, 5*time.Second, cfg.Providers.UpstreamTimeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
providers:
  predictorBaseUrl: "http://from-file:8000"
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PREDICTOR_BASE_URL", "http://from-env:8000")
	t.Setenv("VALKEY_ADDR", "override:6379")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://from-env:8000", cfg.Providers.PredictorBaseURL)
	require.Equal(t, "override:6379", cfg.Classification.Valkey.Addr)
	require.True(t, cfg.Classification.Valkey.Enabled)
	require.Equal(t, 3*time.Second, cfg.Providers.UpstreamTimeout)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ""
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "http.address")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not: valid"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Providers.UpstreamTimeout = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Classification.CacheTTL = -time.Second
	require.Error(t, cfg.Validate())
}
