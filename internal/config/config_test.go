package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 20*time.Second, cfg.POITimeout)
	assert.Equal(t, "https://overpass-api.de/api/interpreter", cfg.OverpassURL)
	assert.Len(t, cfg.InvidiousInstances, 3)
	assert.Empty(t, cfg.DBSource)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=127.0.0.1:9000\n" +
		"GEOCODE_TIMEOUT=3s\n" +
		"USER_AGENT=TestAgent/2.0\n" +
		"ACCOUNTS_FILE=/tmp/accounts.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, "TestAgent/2.0", cfg.UserAgent)
	assert.Equal(t, "/tmp/accounts.json", cfg.AccountsFile)
	assert.Equal(t, 20*time.Second, cfg.POITimeout)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("LOG_LEVEL=info\n"), 0o644))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}
