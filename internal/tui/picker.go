package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cs2-video-editor/internal/service"
	"github.com/MKhiriev/cs2-video-editor/models"
)

// pickerModel is the "Load config" page: Steam-detected configs on top, a
// manual path input below.
type pickerModel struct {
	ctx      context.Context
	services *service.EditorServices

	users    []models.SteamUser
	idx      int
	scanning bool

	manual      textinput.Model
	manualFocus bool

	loading bool
}

func newPickerModel(ctx context.Context, services *service.EditorServices) pickerModel {
	manual := textinput.New()
	manual.Placeholder = "/path/to/cs2_video.txt"
	manual.Width = 60

	return pickerModel{
		ctx:      ctx,
		services: services,
		scanning: true,
		manual:   manual,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return cmdScanSteam(m.services.Steam)
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case steamUsersMsg:
		m.scanning = false
		m.users = msg.users
		if m.idx >= len(m.users) {
			m.idx = 0
		}
		// No detected configs: type a path instead.
		if len(m.users) == 0 {
			return m.focusManual()
		}
		return m, nil

	case docLoadedMsg:
		// Root switches to the editor on success; a failure lands back
		// here with the overlay already shown.
		m.loading = false
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}

	if m.manualFocus {
		return m.updateManual(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.users)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		return m.focusManual()
	case key.Matches(keyMsg, keys.rescan):
		m.scanning = true
		return m, cmdScanSteam(m.services.Steam)
	case key.Matches(keyMsg, keys.enter):
		if len(m.users) == 0 {
			return m.focusManual()
		}
		m.loading = true
		return m, cmdLoadDocument(m.ctx, m.services.Documents, m.users[m.idx].ConfigPath)
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageEditor} }
	}
	return m, nil
}

func (m pickerModel) updateManual(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.manualFocus = false
		m.manual.Blur()
		return m, nil
	case keyMsg.String() == "enter":
		path := m.manual.Value()
		if path == "" {
			return m, nil
		}
		m.loading = true
		return m, cmdLoadDocument(m.ctx, m.services.Documents, path)
	}

	var cmd tea.Cmd
	m.manual, cmd = m.manual.Update(keyMsg)
	return m, cmd
}

func (m pickerModel) focusManual() (tea.Model, tea.Cmd) {
	m.manualFocus = true
	return m, m.manual.Focus()
}

func (m pickerModel) View() string {
	out := titleStyle.Render("Load config") + "\n\n"

	switch {
	case m.scanning:
		out += "Scanning Steam libraries...\n"
	case len(m.users) == 0:
		out += helpStyle.Render("No Steam users with a CS2 video config found.") + "\n"
	default:
		out += "Steam users:\n"
		for i, u := range m.users {
			cursor := "  "
			line := u.Title() + "  " + pathStyle.Render(u.ConfigPath)
			if i == m.idx && !m.manualFocus {
				cursor = cursorStyle.Render("> ")
			}
			out += cursor + line + "\n"
		}
	}

	out += "\nPath: " + m.manual.View() + "\n\n"

	if m.loading {
		out += statusStyle.Render("Loading...") + "\n"
	}

	out += helpStyle.Render("enter load  tab path input  ctrl+r rescan  esc back  v about  ctrl+c quit")
	return appStyle.Render(out)
}
