package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, []string{"*"}, cfg.Server.CORS.AllowedOrigins)
	require.Equal(t, 100, cfg.Server.RateLimit.Requests)
	require.Equal(t, time.Minute, cfg.Server.RateLimit.Window)

	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, 168*time.Hour, cfg.Auth.JWT.TTL)
	require.Equal(t, "demo@bank.com", cfg.Auth.Demo.Email)
	require.NotEmpty(t, cfg.Auth.Demo.PasswordHash)
	require.True(t, cfg.Monitoring.Prometheus.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	contents := []byte(`
server:
  port: 9100
  log_level: debug
  cors:
    allowed_origins:
      - https://app.example.com
auth:
  jwt:
    secret: file-secret
    access_token_ttl: 2h
database:
  driver: postgres
  postgres:
    host: db.internal
    port: 5432
    database: ews
    username: svc
    password: hunter2
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), contents, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORS.AllowedOrigins)
	require.Equal(t, "file-secret", cfg.Auth.JWT.Secret)
	require.Equal(t, 2*time.Hour, cfg.Auth.JWT.TTL)

	dbOpts := cfg.DatabaseOptions()
	require.Equal(t, "postgres", dbOpts.Driver)
	require.Equal(t, "db.internal", dbOpts.Host)
	require.Equal(t, "ews", dbOpts.Name)
	require.Equal(t, "svc", dbOpts.User)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("EWS_SERVER_PORT", "9200")
	t.Setenv("EWS_AUTH_JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 9200, cfg.Server.Port)
	require.Equal(t, "env-secret", cfg.Auth.JWT.Secret)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsMissingSecret(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Error(t, cfg.Validate())

	cfg.Auth.JWT.Secret = "s"
	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())
}
