package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ctrl+alt+p", cfg.Hotkey.Combo)
	assert.Equal(t, "title", cfg.List.Sort)
	assert.True(t, cfg.Notify.Balloon)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[hotkey]
combo = "win+shift+f9"

[list]
sort = "os"

[notify]
balloon = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "win+shift+f9", cfg.Hotkey.Combo)
	assert.Equal(t, "os", cfg.List.Sort)
	assert.False(t, cfg.Notify.Balloon)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nsort = \"os\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "os", cfg.List.Sort)
	assert.Equal(t, DefaultCombo, cfg.Hotkey.Combo)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[hotkey\ncombo ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadCombo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[hotkey]\ncombo = \"q\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
