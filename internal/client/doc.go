// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive editor application runtime.
//
// It resolves which config file to open first (explicit config, then the
// remembered last path) and hands control to the terminal UI for the rest
// of the session.
package client
