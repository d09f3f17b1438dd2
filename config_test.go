package main

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
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, `
export_directory: ~/exports
corner_hit_box: 3
selection_margin: 2
io_radius: 0
node_color: "#ffffff"
start_editable: false
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "exports"), cfg.ExportDirectory)
	assert.Equal(t, 3, cfg.CornerHitBox)
	assert.Equal(t, 2, cfg.SelectionMargin)
	assert.Equal(t, 0, cfg.IORadius)
	assert.Equal(t, "#ffffff", cfg.NodeColor)
	assert.False(t, cfg.StartEditable)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "corner_hit_box: 3\n")
	t.Setenv("WIREBENCH_CORNER_HIT_BOX", "5")
	t.Setenv("WIREBENCH_START_EDITABLE", "false")
	t.Setenv("WIREBENCH_LOG_FILE", "/tmp/wirebench.log")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.CornerHitBox)
	assert.False(t, cfg.StartEditable)
	assert.Equal(t, "/tmp/wirebench.log", cfg.LogFile)
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WIREBENCH_IO_RADIUS", "big")

	_, err := loadConfig("")
	assert.ErrorContains(t, err, "WIREBENCH_IO_RADIUS")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "corner_hit_box: [1, 2\n")

	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadConfigClampsNegatives(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "corner_hit_box: -4\nselection_margin: -1\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.CornerHitBox)
	assert.Zero(t, cfg.SelectionMargin)
}

func TestGetExportPath(t *testing.T) {
	cfg := defaultConfig()
	path, err := cfg.GetExportPath("a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", path)

	cfg.ExportDirectory = filepath.Join(t.TempDir(), "nested", "dir")
	path, err = cfg.GetExportPath("a.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.ExportDirectory, "a.png"), path)
	assert.DirExists(t, cfg.ExportDirectory)
}
