package tui

func renderConfirmReload(path string) string {
	content := "Discard unsaved changes and reload \"" + path + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
