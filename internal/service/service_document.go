// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/internal/state"
	"github.com/MKhiriev/cs2-video-editor/models"
)

type documentService struct {
	stateStore state.Store
	log        *logger.Logger
}

// NewDocumentService constructs the default [DocumentService].
func NewDocumentService(stateStore state.Store, log *logger.Logger) DocumentService {
	return &documentService{stateStore: stateStore, log: log}
}

func (s *documentService) Load(ctx context.Context, path string) (*keyvalues.Document, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	// Parsing cannot fail: whatever is in the file is preserved.
	doc := keyvalues.Parse(string(data))
	s.log.Info().Str("path", path).Int("lines", doc.Len()).Msg("config loaded")

	s.rememberPath(ctx, path)
	return doc, nil
}

func (s *documentService) Save(ctx context.Context, doc *keyvalues.Document, path string) error {
	if doc == nil {
		return ErrNilDocument
	}
	if path == "" {
		return ErrEmptyPath
	}

	if err := writeFileAtomic(path, []byte(doc.Serialize())); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	s.log.Info().Str("path", path).Msg("config saved")

	s.rememberPath(ctx, path)
	return nil
}

func (s *documentService) LastPath(ctx context.Context) string {
	st, err := s.stateStore.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("load editor state")
		return ""
	}
	return st.LastPath
}

// rememberPath persists the last used path. A failed state save must not
// fail the load or save it rides on, so it is only logged.
func (s *documentService) rememberPath(ctx context.Context, path string) {
	if err := s.stateStore.Save(ctx, models.EditorState{LastPath: path}); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("save editor state")
	}
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so a failed write never leaves a truncated config.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
