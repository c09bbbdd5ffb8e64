package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
	"github.com/MKhiriev/cs2-video-editor/models"
)

// NavigateTo switches the root router to another page, optionally
// delivering a payload message to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type docLoadedMsg struct {
	doc  *keyvalues.Document
	path string
	err  error
}

type docSavedMsg struct {
	path string
	err  error
}

type steamUsersMsg struct {
	users []models.SteamUser
}

type copiedMsg struct{}

type clearStatusMsg struct{}
