package client

import (
	"context"
	"os"

	"github.com/MKhiriev/cs2-video-editor/internal/config"
	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/internal/service"
	"github.com/MKhiriev/cs2-video-editor/internal/tui"
)

var _ Client = (*App)(nil)

// App ties services, configuration, and the terminal UI into one session.
type App struct {
	services *service.EditorServices
	tui      *tui.TUI
	cfg      config.Editor
	log      *logger.Logger
}

func NewApp(services *service.EditorServices, ui *tui.TUI, cfg config.Editor, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if ui == nil {
		return nil, ErrNilTUI
	}
	return &App{services: services, tui: ui, cfg: cfg, log: log}, nil
}

// Run resolves the startup config file and blocks inside the UI until the
// user quits.
func (a *App) Run() error {
	ctx := context.Background()

	initial := a.initialPath(ctx)
	if initial != "" {
		a.log.Debug().Str("func", "Run").Str("path", initial).Msg("opening config at startup")
	}

	return a.tui.Run(ctx, initial)
}

// initialPath picks the file to open on start: an explicitly configured
// config wins over the remembered last path. A remembered path that no
// longer exists falls through to the picker.
func (a *App) initialPath(ctx context.Context) string {
	if a.cfg.ConfigPath != "" {
		return a.cfg.ConfigPath
	}

	last := a.services.Documents.LastPath(ctx)
	if last == "" {
		return ""
	}
	if _, err := os.Stat(last); err != nil {
		a.log.Warn().Str("func", "initialPath").Str("path", last).Msg("remembered config is gone, starting on the picker")
		return ""
	}
	return last
}
