// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrNilServices is returned when the app is constructed without services.
	ErrNilServices = errors.New("client: services must not be nil")
	// ErrNilTUI is returned when the app is constructed without a UI.
	ErrNilTUI = errors.New("client: tui must not be nil")
)
