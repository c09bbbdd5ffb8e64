package models

// SteamUser describes one Steam account discovered on the local machine
// that has a CS2 video config on disk.
type SteamUser struct {
	// ID is the numeric userdata directory name (account id).
	ID string
	// PersonaName is the display name read from localconfig.vdf.
	// Empty when the name could not be determined.
	PersonaName string
	// ConfigPath is the absolute path to the user's cs2_video.txt.
	ConfigPath string
}

// Title returns a human-readable label for pickers: persona name when
// known, otherwise the account id.
func (u SteamUser) Title() string {
	if u.PersonaName != "" {
		return u.PersonaName + " (" + u.ID + ")"
	}
	return u.ID
}
