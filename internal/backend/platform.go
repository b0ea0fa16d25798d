package backend

import (
	"path/filepath"
	"runtime"
)

// Platform captures the three-way platform split in one value selected at
// startup, so spawn and lookup behavior stays single-sourced and every
// variant can be exercised in tests regardless of the host OS.
type Platform int

const (
	Linux Platform = iota
	Darwin
	Windows
)

// Current returns the Platform for the running OS. Anything that is not
// Windows or macOS gets the Linux layout.
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Linux
	}
}

// backendRelPath is the backend executable's path relative to each
// candidate root. Windows ships a batch launcher instead of a binary.
func (p Platform) backendRelPath() string {
	name := "leaxer_core"
	if p == Windows {
		name = "leaxer_core.bat"
	}
	return filepath.Join("leaxer_core", "bin", name)
}

// shellWrapped reports whether the backend must be launched through the
// native shell rather than invoked directly.
func (p Platform) shellWrapped() bool { return p == Windows }

// resourceDir returns the bundled resource directory used by installer
// builds, or "" when it cannot be derived.
func (p Platform) resourceDir(exeDir string) string {
	switch p {
	case Linux:
		return "/usr/lib/leaxer"
	case Darwin:
		if exeDir == "" {
			return ""
		}
		return filepath.Join(exeDir, "..", "Resources")
	default:
		return exeDir
	}
}
