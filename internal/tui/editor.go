// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
	"github.com/MKhiriev/cs2-video-editor/internal/schema"
	"github.com/MKhiriev/cs2-video-editor/internal/service"
)

const statusLifetime = 3 * time.Second

// formRow is one schema field plus its uncommitted widget value. Widget
// values live here, not in the document: "Save config" commits them, "Reset
// Unsaved" throws them away.
type formRow struct {
	field   schema.Field
	boolVal bool
	intVal  int
	enumIdx int
	input   textinput.Model
}

// editorModel is the settings form page.
type editorModel struct {
	ctx      context.Context
	services *service.EditorServices

	doc         *keyvalues.Document
	path        string
	initialPath string

	rows       []formRow
	cursor     int
	editingInt bool

	status        string
	confirmReload bool
	saving        bool
}

func newEditorModel(ctx context.Context, services *service.EditorServices, initialPath string) editorModel {
	fields := schema.Fields()
	rows := make([]formRow, len(fields))
	for i, f := range fields {
		rows[i] = formRow{field: f}
		if f.Kind == schema.Int {
			input := textinput.New()
			input.CharLimit = 5
			input.Width = 6
			rows[i].input = input
		}
	}

	return editorModel{
		ctx:         ctx,
		services:    services,
		initialPath: initialPath,
		rows:        rows,
	}
}

func (m editorModel) Init() tea.Cmd {
	if m.doc == nil && m.initialPath != "" {
		return cmdLoadDocument(m.ctx, m.services.Documents, m.initialPath)
	}
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case docLoadedMsg:
		if msg.err != nil {
			// Root already surfaced the error; keep the current document.
			return m, nil
		}
		m.doc = msg.doc
		m.path = msg.path
		m.confirmReload = false
		m.populate()
		m.status = "Loaded " + msg.path
		return m, cmdClearStatusAfter(statusLifetime)

	case docSavedMsg:
		m.saving = false
		if msg.err != nil {
			return m, nil
		}
		m.status = "Saved " + msg.path
		return m, cmdClearStatusAfter(statusLifetime)

	case copiedMsg:
		m.status = "Path copied to clipboard"
		return m, cmdClearStatusAfter(statusLifetime)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmReload {
		return m.updateConfirmReload(keyMsg)
	}
	if m.editingInt {
		return m.updateIntEditing(keyMsg)
	}
	return m.updateBrowsing(keyMsg)
}

// updateConfirmReload handles the discard-unsaved confirmation overlay.
func (m editorModel) updateConfirmReload(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmReload = false
		return m, cmdLoadDocument(m.ctx, m.services.Documents, m.path)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirmReload = false
	}
	return m, nil
}

// updateIntEditing routes keys into the focused numeric input.
func (m editorModel) updateIntEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := &m.rows[m.cursor]
	switch keyMsg.String() {
	case "enter":
		if n, err := strconv.Atoi(row.input.Value()); err == nil {
			row.intVal = row.field.Clamp(n)
		}
		row.input.SetValue(strconv.Itoa(row.intVal))
		row.input.Blur()
		m.editingInt = false
		return m, nil
	case "esc":
		row.input.SetValue(strconv.Itoa(row.intVal))
		row.input.Blur()
		m.editingInt = false
		return m, nil
	}

	var cmd tea.Cmd
	row.input, cmd = row.input.Update(keyMsg)
	return m, cmd
}

func (m editorModel) updateBrowsing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.load):
		return m, func() tea.Msg { return NavigateTo{Page: pagePicker} }

	case key.Matches(keyMsg, keys.save):
		if m.doc == nil {
			return m, nil
		}
		m.commit()
		m.saving = true
		return m, cmdSaveDocument(m.ctx, m.services.Documents, m.doc, m.path)

	case key.Matches(keyMsg, keys.reload):
		if m.doc == nil {
			return m, nil
		}
		if m.dirty() {
			m.confirmReload = true
			return m, nil
		}
		return m, cmdLoadDocument(m.ctx, m.services.Documents, m.path)

	case key.Matches(keyMsg, keys.reset):
		if m.doc == nil {
			return m, nil
		}
		m.populate()
		m.status = "Unsaved changes discarded"
		return m, cmdClearStatusAfter(statusLifetime)

	case key.Matches(keyMsg, keys.copy):
		if m.path == "" {
			return m, nil
		}
		path := m.path
		return m, func() tea.Msg {
			if err := clipboard.WriteAll(path); err != nil {
				return clearStatusMsg{}
			}
			return copiedMsg{}
		}

	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, keys.left):
		m.adjust(-1)

	case key.Matches(keyMsg, keys.right):
		m.adjust(+1)

	case key.Matches(keyMsg, keys.enter):
		if m.doc == nil {
			return m, nil
		}
		row := &m.rows[m.cursor]
		switch row.field.Kind {
		case schema.Bool:
			row.boolVal = !row.boolVal
		case schema.Enum:
			row.enumIdx = (row.enumIdx + 1) % len(row.field.Options)
		case schema.Int:
			m.editingInt = true
			return m, row.input.Focus()
		}
	}
	return m, nil
}

// adjust nudges the focused row by delta: toggles bools, cycles enums,
// steps ints within bounds.
func (m *editorModel) adjust(delta int) {
	if m.doc == nil {
		return
	}
	row := &m.rows[m.cursor]
	switch row.field.Kind {
	case schema.Bool:
		row.boolVal = !row.boolVal
	case schema.Enum:
		n := len(row.field.Options)
		row.enumIdx = (row.enumIdx + delta + n) % n
	case schema.Int:
		step := row.field.Step
		if step == 0 {
			step = 1
		}
		row.intVal = row.field.Clamp(row.intVal + delta*step)
		row.input.SetValue(strconv.Itoa(row.intVal))
	}
}

// populate fills widget values from the loaded document, discarding any
// uncommitted edits.
func (m *editorModel) populate() {
	for i := range m.rows {
		row := &m.rows[i]
		switch row.field.Kind {
		case schema.Bool:
			row.boolVal = row.field.Bool(m.doc)
		case schema.Int:
			row.intVal = row.field.Int(m.doc)
			row.input.SetValue(strconv.Itoa(row.intVal))
		case schema.Enum:
			row.enumIdx = row.field.OptionIndex(m.doc)
		}
	}
	m.editingInt = false
}

// commit writes widget values back into the document. Untouched fields
// keep their original bytes: the codec ignores same-value writes. A key
// absent from the file is only added when the user actually changed its
// widget.
func (m *editorModel) commit() {
	for i := range m.rows {
		row := &m.rows[i]
		if !row.field.Editable() {
			continue
		}
		if !m.doc.Has(row.field.Key) && !m.rowChanged(*row) {
			continue
		}
		switch row.field.Kind {
		case schema.Bool:
			row.field.SetBool(m.doc, row.boolVal)
		case schema.Int:
			row.field.SetInt(m.doc, row.intVal)
		case schema.Enum:
			row.field.SetOption(m.doc, row.enumIdx)
		}
	}
}

// rowChanged reports whether a widget value differs from the document.
func (m editorModel) rowChanged(row formRow) bool {
	switch row.field.Kind {
	case schema.Bool:
		return row.boolVal != row.field.Bool(m.doc)
	case schema.Int:
		return row.intVal != row.field.Int(m.doc)
	case schema.Enum:
		return row.enumIdx != row.field.OptionIndex(m.doc)
	}
	return false
}

// dirty reports whether any widget value differs from the document.
func (m editorModel) dirty() bool {
	if m.doc == nil {
		return false
	}
	for _, row := range m.rows {
		if !row.field.Editable() {
			continue
		}
		if m.rowChanged(row) {
			return true
		}
	}
	return false
}

// passthroughCount counts keys the schema does not know; they ride along
// untouched.
func (m editorModel) passthroughCount() int {
	if m.doc == nil {
		return 0
	}
	count := 0
	for _, k := range m.doc.Keys() {
		if !schema.Known(k) {
			count++
		}
	}
	return count
}

func (m editorModel) View() string {
	if m.confirmReload {
		return renderConfirmReload(m.path)
	}

	out := titleStyle.Render("CS2 Video Config Editor") + "\n"
	if m.doc == nil {
		out += pathStyle.Render("<no file loaded>") + "\n\n"
		out += "Press " + statusStyle.Render("ctrl+l") + " to load a config.\n"
		return appStyle.Render(out)
	}

	header := m.path
	if m.dirty() {
		header += " " + dirtyStyle.Render("*unsaved*")
	}
	out += pathStyle.Render(header) + "\n\n"

	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		out += cursor + fmt.Sprintf("%-28s", row.field.Label) + " " + m.renderValue(row) + "\n"
	}

	out += "\n" + helpStyle.Render(fmt.Sprintf("%d unrecognized keys preserved verbatim", m.passthroughCount())) + "\n"
	if m.saving {
		out += statusStyle.Render("Saving...") + "\n"
	}
	if m.status != "" {
		out += statusStyle.Render(m.status) + "\n"
	}
	out += helpStyle.Render("ctrl+l load  ctrl+s save  ctrl+r reload from disk  ctrl+u reset unsaved  c copy path  ctrl+c quit")
	return appStyle.Render(out)
}

func (m editorModel) renderValue(row formRow) string {
	switch row.field.Kind {
	case schema.Bool:
		if row.boolVal {
			return "[x]"
		}
		return "[ ]"
	case schema.Int:
		if m.editingInt && m.rows[m.cursor].field.Key == row.field.Key {
			return row.input.View()
		}
		return strconv.Itoa(row.intVal)
	case schema.Enum:
		return "< " + row.field.Options[row.enumIdx].Label + " >"
	case schema.Meta:
		return metaStyle.Render(row.field.Raw(m.doc))
	}
	return ""
}
