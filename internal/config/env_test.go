package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	// Arrange
	t.Setenv("CS2ED_EDITOR_STATE_PATH", "/opt/editor_state.json")
	t.Setenv("CS2ED_EDITOR_CONFIG_PATH", "/cfg/cs2_video.txt")
	t.Setenv("CS2ED_STEAM_SCAN_DISABLED", "true")
	t.Setenv("CS2ED_LOG_PATH", "/tmp/editor.log")
	t.Setenv("CS2ED_CONFIG", "/etc/editor.json")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/opt/editor_state.json", cfg.Editor.StatePath)
	assert.Equal(t, "/cfg/cs2_video.txt", cfg.Editor.ConfigPath)
	assert.True(t, cfg.Steam.ScanDisabled)
	assert.Equal(t, "/tmp/editor.log", cfg.Log.Path)
	assert.Equal(t, "/etc/editor.json", cfg.JSONFilePath)
}

func TestParseEnv_UnprefixedVariablesAreIgnored(t *testing.T) {
	// Generic names such as CONFIG belong to other processes and must not
	// leak into the editor config.
	t.Setenv("CONFIG", "/etc/someone-elses.json")
	t.Setenv("EDITOR_CONFIG_PATH", "/cfg/not-ours.txt")
	t.Setenv("CS2ED_CONFIG", "")
	t.Setenv("CS2ED_EDITOR_CONFIG_PATH", "")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.Editor.ConfigPath)
}

func TestParseEnv_EmptyEnvironmentIsZeroConfig(t *testing.T) {
	for _, name := range []string{"CS2ED_EDITOR_STATE_PATH", "CS2ED_EDITOR_CONFIG_PATH", "CS2ED_STEAM_SCAN_DISABLED", "CS2ED_STEAM_EXTRA_ROOT", "CS2ED_LOG_PATH", "CS2ED_CONFIG"} {
		t.Setenv(name, "")
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("CS2ED_STEAM_SCAN_DISABLED", "definitely")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
