package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewEditorLogger_NotNil verifies that NewEditorLogger returns a non-nil *Logger.
func TestNewEditorLogger_NotNil(t *testing.T) {
	l := NewEditorLogger("test", filepath.Join(t.TempDir(), "logs"))
	require.NotNil(t, l)
}

// TestNewEditorLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewEditorLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewEditorLogger("test-role", filepath.Join(t.TempDir(), "logs"))
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewEditorLogger_ContainsTimestamp verifies that log entries contain a
// timestamp field.
func TestNewEditorLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewEditorLogger("ts-role", filepath.Join(t.TempDir(), "logs"))
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewEditorLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewEditorLogger_CallerFieldName(t *testing.T) {
	NewEditorLogger("caller-role", filepath.Join(t.TempDir(), "logs"))
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewEditorLogger_WritesToFile verifies that entries land in the given
// log file.
func TestNewEditorLogger_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs")
	l := NewEditorLogger("file-role", logPath)

	l.Info().Msg("to file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

// TestNop_DiscardsOutput verifies that the Nop logger produces nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())
}

// TestGetChildLogger_InheritsFields verifies that a child logger keeps the
// parent's fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewEditorLogger("parent-role", filepath.Join(t.TempDir(), "logs"))
	child := l.GetChildLogger()
	child.Logger = child.Output(&buf)

	child.Info().Msg("child entry")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}
