package backend

import (
	"os"
	"path/filepath"
)

// Locate probes the candidate locations for the backend executable in fixed
// priority order: the bundled resource directory (installer builds), then a
// resources folder next to the shell executable, then the executable's own
// directory (portable builds). Empty roots are skipped. Returns the first
// candidate that exists on disk; diagnostics are the caller's job.
func Locate(resourceDir, exeDir, rel string) (string, bool) {
	roots := []string{resourceDir}
	if exeDir != "" {
		roots = append(roots, filepath.Join(exeDir, "resources"), exeDir)
	}
	for _, root := range roots {
		if root == "" {
			continue
		}
		candidate := filepath.Join(root, rel)
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
