package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
	"github.com/MKhiriev/cs2-video-editor/internal/service"
)

func cmdLoadDocument(ctx context.Context, docs service.DocumentService, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := docs.Load(ctx, path)
		return docLoadedMsg{doc: doc, path: path, err: err}
	}
}

func cmdSaveDocument(ctx context.Context, docs service.DocumentService, doc *keyvalues.Document, path string) tea.Cmd {
	return func() tea.Msg {
		return docSavedMsg{path: path, err: docs.Save(ctx, doc, path)}
	}
}

func cmdScanSteam(steam service.SteamScanService) tea.Cmd {
	return func() tea.Msg {
		return steamUsersMsg{users: steam.Users()}
	}
}

func cmdClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
