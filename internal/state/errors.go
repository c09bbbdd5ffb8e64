package state

import "errors"

// ErrEmptyPath is returned when a store is constructed without a sidecar
// file path.
var ErrEmptyPath = errors.New("editor state path is empty")
