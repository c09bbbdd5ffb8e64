// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// validate checks that the final merged [StructuredConfig] satisfies the
// editor's startup invariants.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Editor.ConfigPath != "" {
		if _, err := os.Stat(cfg.Editor.ConfigPath); err != nil {
			return ErrConfigPathNotFound
		}
	}

	if cfg.Steam.ExtraRoot != "" {
		if fi, err := os.Stat(cfg.Steam.ExtraRoot); err != nil || !fi.IsDir() {
			return ErrSteamRootNotFound
		}
	}

	return nil
}
