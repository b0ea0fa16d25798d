package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const logFile = "startup.log"

// Log appends timestamped lines to startup.log in the user directory. The
// console is hidden in release builds, so this file is the only diagnostic
// trail the supervisor leaves. A Log with no directory discards everything.
type Log struct {
	dir string

	mu     sync.Mutex
	onLine func(string)
}

// OpenLog returns a logger writing to dir/startup.log. dir may be empty.
func OpenLog(dir string) *Log {
	return &Log{dir: dir}
}

// Mirror registers a callback invoked with each formatted line, so the
// window can show the log live. Pass nil to detach.
func (l *Log) Mirror(fn func(string)) {
	l.mu.Lock()
	l.onLine = fn
	l.mu.Unlock()
}

// Printf appends one line, prefixed with the current Unix timestamp in
// brackets. Write failures are swallowed: logging must never interfere
// with startup or shutdown.
func (l *Log) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	fn := l.onLine
	l.mu.Unlock()
	if fn != nil {
		fn(msg)
	}

	if l.dir == "" {
		return
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(l.dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "[%d] %s\n", time.Now().Unix(), msg)
}
