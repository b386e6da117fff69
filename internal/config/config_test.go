package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.Equal(t, defaultRedisURL, cfg.RedisURL)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Contains(t, cfg.DSN, "@tcp(127.0.0.1:3306)/shortspace")
	assert.True(t, cfg.IsDev())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: production
base_url: https://sho.rt/
redis_url: redis://cache:6379/1
jwt_secret: s3cret
database:
  host: db.internal
  name: shortspace_prod
allowed_origins:
  - https://app.sho.rt
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "https://sho.rt", cfg.BaseURL) // trailing slash trimmed
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Contains(t, cfg.DSN, "@tcp(db.internal:3306)/shortspace_prod")
	assert.Equal(t, []string{"https://app.sho.rt"}, cfg.AllowedOrigins)
}

func TestLoadExplicitDSNWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
dsn: "user:pw@tcp(10.0.0.1:3306)/custom?parseTime=True"
database:
  host: ignored.example
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(10.0.0.1:3306)/custom?parseTime=True", cfg.DSN)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not an int"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
