package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
	"github.com/MKhiriev/cs2-video-editor/models"
)

// DocumentService owns the video config document lifecycle: reading a file
// into a [keyvalues.Document], writing one back out, and remembering the
// last successfully used path.
type DocumentService interface {
	// Load reads and parses the config at path and remembers the path.
	// On failure the caller's current document is untouched.
	Load(ctx context.Context, path string) (*keyvalues.Document, error)
	// Save serializes doc and writes it to path atomically, then
	// remembers the path. A failed save leaves the previous file intact.
	Save(ctx context.Context, doc *keyvalues.Document, path string) error
	// LastPath returns the remembered config path, "" when none exists.
	LastPath(ctx context.Context) string
}

// SteamScanService discovers CS2 video configs in local Steam installs.
type SteamScanService interface {
	// Users returns every Steam account with a config on disk.
	Users() []models.SteamUser
}
