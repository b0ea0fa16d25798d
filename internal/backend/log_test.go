package backend

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var logLinePattern = regexp.MustCompile(`^\[\d+\] `)

func TestLogFormatAndAppend(t *testing.T) {
	dir := t.TempDir()
	l := OpenLog(dir)
	l.Printf("backend pid %d", 42)
	l.Printf("second line")

	data, err := os.ReadFile(filepath.Join(dir, "startup.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !logLinePattern.MatchString(lines[0]) || !strings.HasSuffix(lines[0], "backend pid 42") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "second line") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestLogCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Leaxer")
	OpenLog(dir).Printf("hello")
	if _, err := os.Stat(filepath.Join(dir, "startup.log")); err != nil {
		t.Fatalf("expected startup.log to exist: %v", err)
	}
}

func TestLogWithoutDirIsSilent(t *testing.T) {
	// Must neither panic nor write anywhere.
	OpenLog("").Printf("dropped %s", "line")
}

func TestLogMirror(t *testing.T) {
	var got []string
	l := OpenLog("")
	l.Mirror(func(line string) { got = append(got, line) })
	l.Printf("hello %d", 7)

	if len(got) != 1 || got[0] != "hello 7" {
		t.Fatalf("unexpected mirrored lines: %q", got)
	}

	l.Mirror(nil)
	l.Printf("after detach")
	if len(got) != 1 {
		t.Fatalf("expected no lines after detach, got %q", got)
	}
}
