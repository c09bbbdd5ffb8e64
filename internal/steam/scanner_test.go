package steam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeUser lays out one Steam user under root with an optional persona
// name and CS2 config.
func writeUser(t *testing.T, root, uid, persona string, withConfig bool) {
	t.Helper()

	userDir := filepath.Join(root, "userdata", uid)
	if withConfig {
		cfgDir := filepath.Join(userDir, "730", "local", "cfg")
		require.NoError(t, os.MkdirAll(cfgDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "cs2_video.txt"),
			[]byte("\"video.cfg\"\n{\n}\n"), 0o644))
	} else {
		require.NoError(t, os.MkdirAll(userDir, 0o755))
	}

	if persona != "" {
		vdfDir := filepath.Join(userDir, "config")
		require.NoError(t, os.MkdirAll(vdfDir, 0o755))
		vdf := "\"UserLocalConfigStore\"\n{\n\t\"friends\"\n\t{\n\t\t\"PersonaName\"\t\t\"" + persona + "\"\n\t}\n}\n"
		require.NoError(t, os.WriteFile(filepath.Join(vdfDir, "localconfig.vdf"), []byte(vdf), 0o644))
	}
}

func TestScanner_FindsUsersWithConfigs(t *testing.T) {
	// Arrange
	root := t.TempDir()
	writeUser(t, root, "111111", "player one", true)
	writeUser(t, root, "222222", "", true)
	writeUser(t, root, "333333", "no config here", false)

	scanner := NewScannerWithRoots([]string{root}, logger.Nop())

	// Act
	users := scanner.Scan()

	// Assert
	require.Len(t, users, 2)

	assert.Equal(t, "111111", users[0].ID)
	assert.Equal(t, "player one", users[0].PersonaName)
	assert.FileExists(t, users[0].ConfigPath)

	assert.Equal(t, "222222", users[1].ID)
	assert.Empty(t, users[1].PersonaName)
}

func TestScanner_MissingRootIsNotAnError(t *testing.T) {
	scanner := NewScannerWithRoots([]string{filepath.Join(t.TempDir(), "nope")}, logger.Nop())
	assert.Empty(t, scanner.Scan())
}

func TestScanner_DuplicateRootsDeduplicated(t *testing.T) {
	root := t.TempDir()
	writeUser(t, root, "444444", "dup", true)

	scanner := NewScannerWithRoots([]string{root, root}, logger.Nop())

	assert.Len(t, scanner.Scan(), 1)
}

func TestSteamUser_Title(t *testing.T) {
	root := t.TempDir()
	writeUser(t, root, "555555", "ace", true)

	users := NewScannerWithRoots([]string{root}, logger.Nop()).Scan()
	require.Len(t, users, 1)
	assert.Equal(t, "ace (555555)", users[0].Title())
}
