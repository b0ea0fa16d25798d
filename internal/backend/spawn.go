package backend

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Environment contract read by the backend's Phoenix server. Names and
// values must stay byte-identical across releases. SECRET_KEY_BASE and
// SIGNING_SALT are the same on every installation, a known weakness kept
// because deployed backends validate against these exact values.
const (
	envServer      = "PHX_SERVER"
	envHost        = "PHX_HOST"
	envSecretKey   = "SECRET_KEY_BASE"
	envSigningSalt = "SIGNING_SALT"
	envCORSOrigins = "CORS_ORIGINS"
	envBindAll     = "LEAXER_BIND_ALL_INTERFACES"

	secretKeyBase = "leaxer_desktop_secret_key_base_that_is_at_least_64_bytes_long_for_security"
	signingSalt   = "leaxer_desktop_signing_salt"
	corsOrigins   = "http://localhost:4000,http://127.0.0.1:4000,https://tauri.localhost,tauri://localhost"
)

// SpawnSpec describes one launch attempt for the backend. Built fresh per
// attempt and not modified after construction.
type SpawnSpec struct {
	Path        string // program to invoke (the shell on Windows)
	Args        []string
	Dir         string            // release root; empty when not determinable
	Env         map[string]string // contract variables, added to the inherited env
	HideConsole bool
}

// NewSpawnSpec builds the launch description for the backend at exe.
// Windows wraps execution through cmd /C with the console window
// suppressed; other platforms invoke the executable directly. The single
// fixed argument "start" is always passed, and the working directory is
// the release root two levels above the executable (the parent of bin/).
func NewSpawnSpec(p Platform, exe string, bindAll bool) SpawnSpec {
	spec := SpawnSpec{
		Path: exe,
		Args: []string{"start"},
		Dir:  releaseRoot(exe),
		Env: map[string]string{
			envServer:      "true",
			envHost:        "localhost",
			envSecretKey:   secretKeyBase,
			envSigningSalt: signingSalt,
			envCORSOrigins: corsOrigins,
		},
	}
	if p.shellWrapped() {
		spec.Path = "cmd"
		spec.Args = []string{"/C", exe, "start"}
		spec.HideConsole = true
	}
	if bindAll {
		spec.Env[envBindAll] = "true"
	}
	return spec
}

// releaseRoot is the grandparent of the backend executable, or "" when the
// path is too shallow to have one.
func releaseRoot(exe string) string {
	if strings.Count(filepath.ToSlash(exe), "/") < 2 {
		return ""
	}
	return filepath.Dir(filepath.Dir(exe))
}

// Command materializes the spec as an exec.Cmd, appending the contract
// variables to the inherited environment.
func (s SpawnSpec) Command() *exec.Cmd {
	cmd := exec.Command(s.Path, s.Args...)
	cmd.Dir = s.Dir
	env := os.Environ()
	for k, v := range s.Env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env
	if s.HideConsole {
		hideConsole(cmd)
	}
	return cmd
}
