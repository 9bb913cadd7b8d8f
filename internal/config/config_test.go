package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "application.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Addr)
	assert.Equal(t, "./data/finanzas.json", cfg.Storage.Path)
	assert.True(t, cfg.Frontend.Enabled)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	yaml := "addr: \":9090\"\nstorage:\n  path: /var/lib/finanzas/state.json\nfrontend:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/var/lib/finanzas/state.json", cfg.Storage.Path)
	assert.False(t, cfg.Frontend.Enabled)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))
	t.Setenv("FINANZAS_ADDR", ":7070")
	t.Setenv("FINANZAS_STORAGE_PATH", "/tmp/state.json")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.Path)
}
