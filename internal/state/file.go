// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state persists the editor's between-run state (the last opened
// config path) as a small JSON sidecar file next to the executable.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/models"
)

const sidecarName = "editor_state.json"

// fileStore is the default [Store] implementation backed by one JSON file.
type fileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore constructs a file-backed [Store] at path.
func NewFileStore(path string, log *logger.Logger) (Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &fileStore{path: path, log: log}, nil
}

// DefaultPath returns the sidecar location next to the running executable,
// falling back to the working directory when the executable path is
// unavailable.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return sidecarName
	}
	return filepath.Join(filepath.Dir(execPath), sidecarName)
}

func (s *fileStore) Load(_ context.Context) (models.EditorState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.EditorState{}, nil
		}
		return models.EditorState{}, fmt.Errorf("read editor state: %w", err)
	}

	var st models.EditorState
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt sidecar is not worth failing startup over: start
		// fresh and let the next save rewrite it.
		s.log.Warn().Err(err).Str("path", s.path).Msg("corrupt editor state, starting fresh")
		return models.EditorState{}, nil
	}
	return st, nil
}

func (s *fileStore) Save(_ context.Context, st models.EditorState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal editor state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), sidecarName+".*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace editor state: %w", err)
	}

	s.log.Debug().Str("path", s.path).Str("last_path", st.LastPath).Msg("editor state saved")
	return nil
}
