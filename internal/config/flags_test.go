package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_AllFlagsSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg := parseFlags(fs, []string{
		"-f", "/cfg/cs2_video.txt",
		"-state", "/opt/editor_state.json",
		"-no-steam-scan",
		"-steam-root", "/mnt/games/Steam",
		"-log", "/tmp/editor.log",
		"-c", "/etc/editor.json",
	})

	assert.Equal(t, "/cfg/cs2_video.txt", cfg.Editor.ConfigPath)
	assert.Equal(t, "/opt/editor_state.json", cfg.Editor.StatePath)
	assert.True(t, cfg.Steam.ScanDisabled)
	assert.Equal(t, "/mnt/games/Steam", cfg.Steam.ExtraRoot)
	assert.Equal(t, "/tmp/editor.log", cfg.Log.Path)
	assert.Equal(t, "/etc/editor.json", cfg.JSONFilePath)
}

func TestParseFlags_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg := parseFlags(fs, nil)

	assert.Empty(t, cfg.Editor.ConfigPath)
	assert.Empty(t, cfg.Editor.StatePath)
	assert.False(t, cfg.Steam.ScanDisabled)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	cfg := parseFlags(fs, []string{"-config", "/etc/editor.json"})

	assert.Equal(t, "/etc/editor.json", cfg.JSONFilePath)
}
