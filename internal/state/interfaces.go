package state

//go:generate mockgen -source=interfaces.go -destination=../mock/editor_state_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/cs2-video-editor/models"
)

// Store persists the editor state between runs.
type Store interface {
	// Load reads the persisted state. A missing sidecar file is not an
	// error: it yields the zero state.
	Load(ctx context.Context) (models.EditorState, error)
	// Save writes the state atomically.
	Save(ctx context.Context, st models.EditorState) error
}
