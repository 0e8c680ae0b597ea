package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 0, cfg.Server.RateLimit)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "inventory", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.CORS.AllowOrigins)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  mode: release
  rate_limit: 120
database:
  driver: sqlite
  path: /tmp/inventory.db
cors:
  allow_origins: ["https://inventory.example"]
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 120, cfg.Server.RateLimit)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/inventory.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://inventory.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
database:
  host: db.internal
`)
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestLoadFileRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: mysql\n")

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", SSLMode: "require"}

	assert.Equal(t, "host=h port=1 user=u password=p dbname=inv sslmode=require", d.GetDSN("inv"))
}
