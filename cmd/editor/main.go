package main

import (
	"fmt"

	"github.com/MKhiriev/cs2-video-editor/internal/client"
	"github.com/MKhiriev/cs2-video-editor/internal/config"
	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/internal/service"
	"github.com/MKhiriev/cs2-video-editor/internal/state"
	"github.com/MKhiriev/cs2-video-editor/internal/steam"
	"github.com/MKhiriev/cs2-video-editor/internal/tui"
	"github.com/MKhiriev/cs2-video-editor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetEditorConfig()
	if err != nil {
		fmt.Println("error getting configs:", err)
		return
	}

	log := logger.NewEditorLogger("cs2-video-editor", cfg.Log.Path)

	statePath := cfg.Editor.StatePath
	if statePath == "" {
		statePath = state.DefaultPath()
	}
	stateStore, err := state.NewFileStore(statePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create editor state store")
	}

	var scanner *steam.Scanner
	switch {
	case cfg.Steam.ScanDisabled:
		// leave nil, the picker shows the manual input only
	case cfg.Steam.ExtraRoot != "":
		scanner = steam.NewScannerWithExtraRoot(cfg.Steam.ExtraRoot, log)
	default:
		scanner = steam.NewScanner(log)
	}

	services := service.NewEditorServices(stateStore, scanner, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, buildInfo, log)

	var app client.Client
	app, err = client.NewApp(services, ui, cfg.Editor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init editor app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("editor run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
