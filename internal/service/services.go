// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the editor's application services: document
// load/save orchestration over the keyvalues codec and the Steam library
// scan. The TUI talks to these interfaces only.
package service

import (
	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/internal/state"
	"github.com/MKhiriev/cs2-video-editor/internal/steam"
)

// EditorServices aggregates every service the editor runtime needs.
type EditorServices struct {
	Documents DocumentService
	Steam     SteamScanService
}

// NewEditorServices wires the service layer over the given state store and
// Steam scanner.
func NewEditorServices(stateStore state.Store, scanner *steam.Scanner, log *logger.Logger) *EditorServices {
	return &EditorServices{
		Documents: NewDocumentService(stateStore, log),
		Steam:     NewSteamScanService(scanner),
	}
}
