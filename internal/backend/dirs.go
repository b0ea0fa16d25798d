package backend

import (
	"os"
	"path/filepath"
)

const appDirName = "Leaxer"

// UserDir returns the Leaxer user data directory: under Documents on
// Windows and macOS, under the XDG data directory on Linux. The second
// return is false when the platform cannot name a home directory, which
// happens in unusual sandboxed environments; callers degrade gracefully.
func (p Platform) UserDir() (string, bool) {
	if p == Linux {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), true
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return filepath.Join(home, ".local", "share", appDirName), true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, "Documents", appDirName), true
}
