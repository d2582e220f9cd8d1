package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Empty(t, cfg.Seed.Files)
	assert.True(t, cfg.Snapshot.Enabled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trakhound.yaml")
	content := `
server:
  port: 6000
log:
  level: debug
  pretty: true
seed:
  files:
    - a.yaml
    - b.json
snapshot:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, []string{"a.yaml", "b.json"}, cfg.Seed.Files)
	assert.False(t, cfg.Snapshot.Enabled)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TRAKHOUND_SERVER_PORT", "7000")
	t.Setenv("TRAKHOUND_LOG_LEVEL", "warn")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	v := New()
	v.Set("server.port", 0)
	_, err := Load(v, "")
	assert.ErrorContains(t, err, "server.port")

	v = New()
	v.Set("log.level", "loud")
	_, err = Load(v, "")
	assert.ErrorContains(t, err, "log.level")
}
