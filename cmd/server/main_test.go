package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azure-identities/identities-api/internal/server"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := newRootCmd()

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "Production", cfg.Server.Environment.Name())
	assert.True(t, cfg.Server.Environment.IsProduction())
	assert.Equal(t, server.DefaultAddr, cfg.Server.HTTP.Addr)
	assert.Equal(t, server.DefaultHTTPSAddr, cfg.Server.HTTP.HTTPSAddr)
	assert.Empty(t, cfg.Server.HTTP.CertFile)
	assert.Empty(t, cfg.Server.HTTP.KeyFile)
	assert.True(t, cfg.Server.HTTP.HTTPSRedirect)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("IDENTITIES_ENVIRONMENT", "Development")
	t.Setenv("IDENTITIES_HTTP_ADDR", ":8080")
	t.Setenv("IDENTITIES_HTTP_HTTPS_ADDR", ":8443")
	t.Setenv("IDENTITIES_HTTP_CERT_FILE", "test-cert.pem")
	t.Setenv("IDENTITIES_HTTP_KEY_FILE", "test-key.pem")
	t.Setenv("IDENTITIES_HTTP_REDIRECT_HOST", "identities.example.com")
	t.Setenv("IDENTITIES_HTTP_HTTPS_REDIRECT", "false")
	t.Setenv("IDENTITIES_LOG_LEVEL", "debug")

	cfg, err := loadConfig(newRootCmd())
	require.NoError(t, err)

	assert.True(t, cfg.Server.Environment.IsDevelopment())
	assert.Equal(t, ":8080", cfg.Server.HTTP.Addr)
	assert.Equal(t, ":8443", cfg.Server.HTTP.HTTPSAddr)
	assert.Equal(t, "test-cert.pem", cfg.Server.HTTP.CertFile)
	assert.Equal(t, "test-key.pem", cfg.Server.HTTP.KeyFile)
	assert.Equal(t, "identities.example.com", cfg.Server.HTTP.RedirectHost)
	assert.False(t, cfg.Server.HTTP.HTTPSRedirect)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("IDENTITIES_ENVIRONMENT", "Staging")
	t.Setenv("IDENTITIES_HTTP_ADDR", ":8080")

	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("environment", "Development"))
	require.NoError(t, cmd.Flags().Set("bind", "127.0.0.1:9090"))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "Development", cfg.Server.Environment.Name())
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTP.Addr)
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	dummyConfig := `
environment: Staging
log_level: warn
http:
  addr: 0.0.0.0:5000
  https_addr: 0.0.0.0:5001
  cert_file: test-cert.pem
  key_file: test-key.pem
  redirect_host: identities.example.com
`
	configFile := filepath.Join(dir, "identities.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(dummyConfig), 0644))

	cmd := newRootCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", configFile))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)

	assert.True(t, cfg.Server.Environment.IsStaging())
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.HTTP.Addr)
	assert.Equal(t, "0.0.0.0:5001", cfg.Server.HTTP.HTTPSAddr)
	assert.Equal(t, "test-cert.pem", cfg.Server.HTTP.CertFile)
	assert.Equal(t, "test-key.pem", cfg.Server.HTTP.KeyFile)
	assert.Equal(t, "identities.example.com", cfg.Server.HTTP.RedirectHost)
	assert.True(t, cfg.Server.HTTP.HTTPSRedirect)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadConfigJSONInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	dummyConfig := `{"environment": "Development", "http": {"addr": "localhost:38080"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(dummyConfig), 0644))

	cfg, err := loadConfig(newRootCmd())
	require.NoError(t, err)

	assert.True(t, cfg.Server.Environment.IsDevelopment())
	assert.Equal(t, "localhost:38080", cfg.Server.HTTP.Addr)
	assert.Equal(t, server.DefaultHTTPSAddr, cfg.Server.HTTP.HTTPSAddr)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("bad-log-level", func(t *testing.T) {
		t.Setenv("IDENTITIES_LOG_LEVEL", "chatty")
		_, err := loadConfig(newRootCmd())
		assert.ErrorContains(t, err, "log level")
	})

	t.Run("cert-without-key", func(t *testing.T) {
		cmd := newRootCmd()
		require.NoError(t, cmd.Flags().Set("cert", "cert.pem"))
		_, err := loadConfig(cmd)
		assert.ErrorIs(t, err, server.ErrIncompleteTLS)
	})

	t.Run("missing-config-file", func(t *testing.T) {
		cmd := newRootCmd()
		require.NoError(t, cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")))
		_, err := loadConfig(cmd)
		assert.NoError(t, err)
	})

	t.Run("malformed-config-file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"environment": `), 0644))
		cmd := newRootCmd()
		require.NoError(t, cmd.PersistentFlags().Set("config", path))
		_, err := loadConfig(cmd)
		assert.ErrorContains(t, err, "config read")
	})
}
