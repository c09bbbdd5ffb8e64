package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cs2-video-editor/models"
)

const (
	pagePicker = "picker"
	pageEditor = "editor"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) surfaces errors from any page in a dismissible overlay
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	overlayErr    string
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case r.overlayErr != "":
			// Any error overlay swallows input until dismissed.
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.overlayErr = ""
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.isPickerPage() && !r.currentCapturesInput():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// A successful load always lands on the editor page; a failed one
	// surfaces here so the current page (and document) stay untouched.
	// Either way the picker observes the result, its in-flight load flag
	// must not survive a load that already finished.
	if loaded, ok := msg.(docLoadedMsg); ok {
		if picker, exists := r.pages[pagePicker]; exists {
			updated, _ := picker.Update(msg)
			r.pages[pagePicker] = updated
			if r.isPickerPage() {
				r.current = updated
			}
		}
		if loaded.err != nil {
			r.overlayErr = loaded.err.Error()
			return r, nil
		}
		r.current = r.pages[pageEditor]
	}

	if saved, ok := msg.(docSavedMsg); ok && saved.err != nil {
		r.overlayErr = saved.err.Error()
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.syncCurrentPage(updated)
	return r, cmd
}

// syncCurrentPage stores the updated model back into the page registry so
// navigation round trips preserve page state.
func (r RootModel) syncCurrentPage(updated tea.Model) {
	switch updated.(type) {
	case pickerModel:
		r.pages[pagePicker] = updated
	case editorModel:
		r.pages[pageEditor] = updated
	}
}

func (r RootModel) View() string {
	if r.overlayErr != "" {
		return renderErrorOverlay(r.overlayErr)
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return appStyle.Render(titleStyle.Render("CS2 Video Config Editor"))
	}
	return r.current.View()
}

func (r RootModel) isPickerPage() bool {
	_, ok := r.current.(pickerModel)
	return ok
}

// currentCapturesInput reports whether the active page is consuming raw
// text input, in which case single-letter hotkeys must pass through.
func (r RootModel) currentCapturesInput() bool {
	if p, ok := r.current.(pickerModel); ok {
		return p.manualFocus
	}
	return false
}
