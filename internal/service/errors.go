package service

import "errors"

var (
	// ErrEmptyPath is returned when a load or save is requested without a
	// target file path.
	ErrEmptyPath = errors.New("config file path is empty")
	// ErrNilDocument is returned when Save is called without a document.
	ErrNilDocument = errors.New("no document to save")
)
