package backend

import (
	"os"
	"path/filepath"
	"sync"
)

// Supervisor owns the single backend process for the lifetime of the shell.
// It locates the packaged backend, launches it once during startup, and
// kills it when the window closes. A missing or unlaunchable backend is
// never fatal: the shell keeps running so it can talk to an externally
// managed server instead.
type Supervisor struct {
	platform Platform
	userDir  string
	log      *Log

	// candidate roots for the locator, resolved once at construction
	resourceDir string
	exeDir      string

	kill func(*os.Process) error

	mu   sync.Mutex
	proc *os.Process
}

// NewSupervisor builds a supervisor for the given platform. userDir may be
// empty when the user directory could not be resolved; the network policy
// then defaults to localhost-only.
func NewSupervisor(p Platform, userDir string, log *Log) *Supervisor {
	s := &Supervisor{
		platform: p,
		userDir:  userDir,
		log:      log,
		kill:     (*os.Process).Kill,
	}
	if exe, err := os.Executable(); err == nil {
		s.exeDir = filepath.Dir(exe)
	}
	s.resourceDir = p.resourceDir(s.exeDir)
	return s
}

// Start runs the locate, configure, spawn sequence. It is called exactly
// once, synchronously, during initialization. Every failure degrades to a
// startup.log diagnostic: a missing backend leaves the shell in dev mode,
// a failed spawn leaves no handle, and neither aborts the application.
func (s *Supervisor) Start() {
	s.log.Printf("[Leaxer] Looking for backend...")

	exe, ok := Locate(s.resourceDir, s.exeDir, s.platform.backendRelPath())
	if !ok {
		s.log.Printf("[Leaxer] Backend not found, running in dev mode (connect to localhost:4000)")
		return
	}
	s.log.Printf("[Leaxer] Found backend at: %s", exe)

	bindAll := NetworkExposureEnabled(s.userDir)
	if bindAll {
		s.log.Printf("[Leaxer] Network exposure enabled, binding to all interfaces")
	}

	spec := NewSpawnSpec(s.platform, exe, bindAll)
	s.log.Printf("[Leaxer] Spawning command...")

	cmd := spec.Command()
	if err := cmd.Start(); err != nil {
		s.log.Printf("[Leaxer] Failed to start backend: %v", err)
		return
	}
	s.log.Printf("[Leaxer] Backend started with PID: %d", cmd.Process.Pid)

	s.mu.Lock()
	s.proc = cmd.Process
	s.mu.Unlock()
}

// Shutdown kills the backend if one is running and clears the handle. The
// kill is a single best-effort signal: errors are swallowed, the handle is
// cleared regardless, and a second call is a no-op. No wait-for-exit, no
// escalation.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	proc := s.proc
	s.proc = nil
	s.mu.Unlock()

	if proc == nil {
		return
	}
	s.log.Printf("[Leaxer] Stopping backend...")
	_ = s.kill(proc)
}

// PID returns the backend's process ID while one is being supervised.
func (s *Supervisor) PID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.proc == nil {
		return 0, false
	}
	return s.proc.Pid, true
}
