// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the editor: a page
// router over the config picker and the settings form, plus the shared
// overlays (errors, confirmations, build info).
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/internal/service"
	"github.com/MKhiriev/cs2-video-editor/models"
)

type TUI struct {
	services  *service.EditorServices
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(services *service.EditorServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, log: log}
}

// Run starts the interactive session and blocks until the user quits.
// initialPath, when non-empty, is auto-loaded so the session opens straight
// on the settings form.
func (t *TUI) Run(ctx context.Context, initialPath string) error {
	pages := map[string]tea.Model{
		pagePicker: newPickerModel(ctx, t.services),
		pageEditor: newEditorModel(ctx, t.services, initialPath),
	}

	start := pagePicker
	if initialPath != "" {
		start = pageEditor
	}

	root := NewRootModel(pages, start, t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	return err
}
