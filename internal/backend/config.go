package backend

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

const (
	configFile         = "config.json"
	networkExposureKey = "network_exposure_enabled"
)

// NetworkExposureEnabled reports whether config.json in the user directory
// asks the backend to bind all network interfaces. Every failure mode
// (unresolved directory, missing or unreadable file, malformed JSON, absent
// or non-boolean flag) collapses to false here, so a broken config can
// never block startup.
func NetworkExposureEnabled(userDir string) bool {
	if userDir == "" {
		return false
	}
	data, err := os.ReadFile(filepath.Join(userDir, configFile))
	if err != nil {
		return false
	}
	if !gjson.ValidBytes(data) {
		return false
	}
	return gjson.GetBytes(data, networkExposureKey).Type == gjson.True
}
