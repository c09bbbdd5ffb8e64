package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when configured
// paths do not exist.
var (
	// ErrConfigPathNotFound indicates the -f / EDITOR_CONFIG_PATH file
	// does not exist.
	ErrConfigPathNotFound = errors.New("configured video config path does not exist")
	// ErrSteamRootNotFound indicates the extra Steam root is not a
	// directory.
	ErrSteamRootNotFound = errors.New("configured steam root is not a directory")
)
