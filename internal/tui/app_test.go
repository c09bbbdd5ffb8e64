package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/internal/service"
	"github.com/MKhiriev/cs2-video-editor/models"
)

func newTestRoot(t *testing.T) RootModel {
	t.Helper()

	services := service.NewEditorServices(mustStore(t), nil, logger.Nop())
	ctx := context.Background()
	pages := map[string]tea.Model{
		pagePicker: newPickerModel(ctx, services),
		pageEditor: newEditorModel(ctx, services, ""),
	}
	return NewRootModel(pages, pagePicker, models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc1234"))
}

func TestRootModel_QuitIsGlobal(t *testing.T) {
	r := newTestRoot(t)

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_LoadFailureShowsOverlayAndKeepsPage(t *testing.T) {
	r := newTestRoot(t)

	updated, _ := r.Update(docLoadedMsg{err: errors.New("open /nope: no such file")})
	r = updated.(RootModel)

	assert.Contains(t, r.View(), "no such file")
	assert.True(t, r.isPickerPage(), "failed load must not leave the picker")

	// The overlay swallows everything except its dismiss keys.
	updated, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	r = updated.(RootModel)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, r.overlayErr)

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r = updated.(RootModel)
	assert.Empty(t, r.overlayErr)
}

func TestRootModel_LoadSuccessSwitchesToEditor(t *testing.T) {
	r := newTestRoot(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cs2_video.txt")
	require.NoError(t, os.WriteFile(cfgPath, []byte(sampleConfig), 0o644))

	services := service.NewEditorServices(mustStore(t), nil, logger.Nop())
	doc, err := services.Documents.Load(context.Background(), cfgPath)
	require.NoError(t, err)

	updated, _ := r.Update(docLoadedMsg{doc: doc, path: cfgPath})
	r = updated.(RootModel)

	assert.False(t, r.isPickerPage())
	assert.Contains(t, r.View(), cfgPath)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	r := newTestRoot(t)

	updated, _ := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	r = updated.(RootModel)
	assert.Contains(t, r.View(), "1.2.3")

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyEscape})
	r = updated.(RootModel)
	assert.NotContains(t, r.View(), "1.2.3")
}

func TestRootModel_BuildInfoIgnoredWhileTypingPath(t *testing.T) {
	r := newTestRoot(t)

	// Focus the manual path input, then type 'v': it must land in the
	// input instead of toggling the about window.
	updated, _ := r.Update(tea.KeyMsg{Type: tea.KeyTab})
	r = updated.(RootModel)
	require.True(t, r.currentCapturesInput())

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	r = updated.(RootModel)

	assert.False(t, r.showBuildInfo)
	picker := r.current.(pickerModel)
	assert.Equal(t, "v", picker.manual.Value())
}

func TestRootModel_PickerRetryAfterFailedLoad(t *testing.T) {
	r := newTestRoot(t)

	users := []models.SteamUser{{ID: "1001", PersonaName: "alice", ConfigPath: "/gone/cs2_video.txt"}}
	updated, _ := r.Update(steamUsersMsg{users: users})
	r = updated.(RootModel)

	// Dispatch a load, fail it, dismiss the overlay.
	updated, cmd := r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r = updated.(RootModel)
	require.NotNil(t, cmd)

	updated, _ = r.Update(docLoadedMsg{err: errors.New("open /gone/cs2_video.txt: no such file")})
	r = updated.(RootModel)
	require.NotEmpty(t, r.overlayErr)

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r = updated.(RootModel)
	require.Empty(t, r.overlayErr)

	// The picker must accept another attempt.
	updated, cmd = r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r = updated.(RootModel)
	assert.NotNil(t, cmd, "picker must issue a new load after a failed one")
	assert.True(t, r.current.(pickerModel).loading)
}

func TestRootModel_PickerLoadsAgainAfterSuccess(t *testing.T) {
	r := newTestRoot(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cs2_video.txt")
	require.NoError(t, os.WriteFile(cfgPath, []byte(sampleConfig), 0o644))

	users := []models.SteamUser{{ID: "1001", PersonaName: "alice", ConfigPath: cfgPath}}
	updated, _ := r.Update(steamUsersMsg{users: users})
	r = updated.(RootModel)

	// Load succeeds and lands on the editor.
	updated, cmd := r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r = updated.(RootModel)
	require.NotNil(t, cmd)

	updated, _ = r.Update(cmd())
	r = updated.(RootModel)
	require.False(t, r.isPickerPage())

	// Back to the picker for a second file.
	updated, _ = r.Update(NavigateTo{Page: pagePicker})
	r = updated.(RootModel)
	require.True(t, r.isPickerPage())

	updated, _ = r.Update(steamUsersMsg{users: users})
	r = updated.(RootModel)

	updated, cmd = r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r = updated.(RootModel)
	assert.NotNil(t, cmd, "picker must issue a second load after a successful one")
	assert.True(t, r.current.(pickerModel).loading)
}

func TestRootModel_NavigateToUnknownPageIsNoop(t *testing.T) {
	r := newTestRoot(t)

	updated, cmd := r.Update(NavigateTo{Page: "settings"})
	r = updated.(RootModel)

	assert.Nil(t, cmd)
	assert.True(t, r.isPickerPage())
}

func TestPicker_ScanResultsAndSelection(t *testing.T) {
	services := service.NewEditorServices(mustStore(t), nil, logger.Nop())
	m := newPickerModel(context.Background(), services)

	users := []models.SteamUser{
		{ID: "1001", PersonaName: "alice", ConfigPath: "/tmp/a/cs2_video.txt"},
		{ID: "1002", PersonaName: "bob", ConfigPath: "/tmp/b/cs2_video.txt"},
	}
	updated, _ := m.Update(steamUsersMsg{users: users})
	m = updated.(pickerModel)

	assert.False(t, m.scanning)
	assert.Contains(t, m.View(), "alice (1001)")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(pickerModel)
	assert.Equal(t, 1, m.idx)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(pickerModel)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)
}

func TestPicker_EmptyScanFocusesManualInput(t *testing.T) {
	services := service.NewEditorServices(mustStore(t), nil, logger.Nop())
	m := newPickerModel(context.Background(), services)

	updated, _ := m.Update(steamUsersMsg{users: nil})
	m = updated.(pickerModel)

	assert.True(t, m.manualFocus)
	assert.Contains(t, m.View(), "No Steam users")
}

func TestPicker_ManualPathLoad(t *testing.T) {
	services := service.NewEditorServices(mustStore(t), nil, logger.Nop())
	m := newPickerModel(context.Background(), services)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(pickerModel)
	require.True(t, m.manualFocus)

	m.manual.SetValue("/etc/cs2_video.txt")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(pickerModel)

	assert.True(t, m.loading)
	require.NotNil(t, cmd)
}

func TestPicker_ManualEnterWithEmptyPathDoesNothing(t *testing.T) {
	services := service.NewEditorServices(mustStore(t), nil, logger.Nop())
	m := newPickerModel(context.Background(), services)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(pickerModel)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(pickerModel)

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
}
