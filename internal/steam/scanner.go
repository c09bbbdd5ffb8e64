// Package steam locates CS2 video configs inside local Steam installs so
// the picker can offer them without a manual path hunt.
package steam

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/cs2-video-editor/internal/keyvalues"
	"github.com/MKhiriev/cs2-video-editor/internal/logger"
	"github.com/MKhiriev/cs2-video-editor/models"
)

// cs2AppID is the Steam application id CS2 stores its per-user config under.
const cs2AppID = "730"

// Scanner probes Steam library roots for per-user CS2 video configs.
type Scanner struct {
	roots []string
	log   *logger.Logger
}

// NewScanner constructs a [Scanner] over the default Steam install
// locations for this machine.
func NewScanner(log *logger.Logger) *Scanner {
	return NewScannerWithRoots(defaultRoots(), log)
}

// NewScannerWithRoots constructs a [Scanner] over explicit roots. Used by
// tests and by configs pointing at non-standard Steam installs.
func NewScannerWithRoots(roots []string, log *logger.Logger) *Scanner {
	return &Scanner{roots: roots, log: log}
}

// NewScannerWithExtraRoot constructs a [Scanner] over the default locations
// plus one additional install directory (a secondary Steam library, say).
func NewScannerWithExtraRoot(extra string, log *logger.Logger) *Scanner {
	return NewScannerWithRoots(append(defaultRoots(), extra), log)
}

// defaultRoots lists the usual Steam install directories: the Windows
// env-var locations plus the common Linux ones.
func defaultRoots() []string {
	var roots []string
	for _, env := range []string{"ProgramFiles(x86)", "ProgramFiles", "LocalAppData", "USERPROFILE"} {
		if base := os.Getenv(env); base != "" {
			roots = append(roots, filepath.Join(base, "Steam"))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
		)
	}
	return roots
}

// Scan walks every root's userdata tree and returns the accounts that have
// a CS2 video config on disk, sorted by account id. Unreadable roots are
// skipped silently: an absent Steam install is the normal case, not an
// error.
func (s *Scanner) Scan() []models.SteamUser {
	var found []models.SteamUser
	seen := make(map[string]bool)

	for _, root := range s.roots {
		userdata := filepath.Join(root, "userdata")
		entries, err := os.ReadDir(userdata)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			uid := entry.Name()
			cfgPath := filepath.Join(userdata, uid, cs2AppID, "local", "cfg", "cs2_video.txt")
			if fi, err := os.Stat(cfgPath); err != nil || fi.IsDir() {
				continue
			}
			if seen[cfgPath] {
				continue
			}
			seen[cfgPath] = true

			found = append(found, models.SteamUser{
				ID:          uid,
				PersonaName: s.personaName(filepath.Join(userdata, uid, "config", "localconfig.vdf")),
				ConfigPath:  cfgPath,
			})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	s.log.Debug().Int("count", len(found)).Msg("steam scan finished")
	return found
}

// personaName reads the account display name from localconfig.vdf. The file
// is large and never rewritten by the editor, so a scan for the one key is
// enough.
func (s *Scanner) personaName(vdfPath string) string {
	data, err := os.ReadFile(vdfPath)
	if err != nil {
		return ""
	}
	name, _ := keyvalues.FindValue(string(data), "PersonaName")
	return name
}
