package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gocalc/executor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write config")
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, executor.Radians, mode)
	assert.False(t, cfg.GroupDigits)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "angle_mode: degrees\ngroup_digits: true\ncolor: never\nprompt: \"calc> \"\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, executor.Degrees, mode)
	assert.True(t, cfg.GroupDigits)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "calc> ", cfg.Prompt)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "group_digits: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "radians", cfg.AngleMode)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.GroupDigits)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad angle mode", "angle_mode: gradians\n"},
		{"bad color", "color: sometimes\n"},
		{"bad yaml", "angle_mode: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
