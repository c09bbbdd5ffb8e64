package models

// EditorState is the small record the editor remembers between runs.
//
// It is read once at process start and rewritten after every successful
// load or save of a video config file.
type EditorState struct {
	// LastPath is the absolute path of the most recently opened config
	// file. Empty when no file has ever been loaded.
	LastPath string `json:"last_path"`
}

// HasLastPath reports whether a remembered path exists.
func (s EditorState) HasLastPath() bool {
	return s.LastPath != ""
}
