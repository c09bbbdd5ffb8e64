package tui

import "github.com/MKhiriev/cs2-video-editor/models"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	content := titleStyle.Render("CS2 Video Config Editor") + "\n\n" +
		"Version: " + info.BuildVersion() + "\n" +
		"Date:    " + info.BuildDate() + "\n" +
		"Commit:  " + info.BuildCommit() + "\n\n" +
		helpStyle.Render("esc close")
	return overlayBoxStyle.Render(content)
}
