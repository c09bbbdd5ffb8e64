// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable the editor reads,
// e.g. CS2ED_EDITOR_CONFIG_PATH or CS2ED_STEAM_SCAN_DISABLED.
const EnvPrefix = "CS2ED_"

// StructuredConfig is the top-level configuration container for the editor.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Editor holds the editor's own settings: sidecar path and the
	// config file to open at startup.
	Editor Editor `envPrefix:"EDITOR_"`

	// Steam holds Steam library scan settings.
	Steam Steam `envPrefix:"STEAM_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CS2ED_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Editor groups settings of the editor session itself.
type Editor struct {
	// StatePath overrides the location of the editor_state.json sidecar.
	// Empty means "next to the executable".
	// Env: CS2ED_EDITOR_STATE_PATH
	StatePath string `env:"STATE_PATH"`

	// ConfigPath is a video config file to open at startup. When set it
	// takes precedence over the remembered last path.
	// Env: CS2ED_EDITOR_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`
}

// Steam groups Steam library scan settings.
type Steam struct {
	// ScanDisabled turns the startup userdata scan off entirely.
	// Env: CS2ED_STEAM_SCAN_DISABLED
	ScanDisabled bool `env:"SCAN_DISABLED"`

	// ExtraRoot is an additional Steam install directory to probe besides
	// the standard locations (useful for secondary libraries).
	// Env: CS2ED_STEAM_EXTRA_ROOT
	ExtraRoot string `env:"EXTRA_ROOT"`
}

// Log groups logging settings.
type Log struct {
	// Path is the log file location. Empty means a "logs" file next to
	// the executable.
	// Env: CS2ED_LOG_PATH
	Path string `env:"PATH"`
}

// GetEditorConfig loads, merges, and validates the editor configuration
// from all available sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetEditorConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
