package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

// Startup log lines are appended before ShowAndRun starts the event loop,
// so their refreshes sit in the queue until it drains. Every line must
// survive that deferral.
func TestLogViewKeepsLinesQueuedBeforeEventLoop(t *testing.T) {
	test.NewApp()
	v := newLogView()

	var queued []func()
	v.do = func(fn func()) { queued = append(queued, fn) }

	v.append("first")
	v.append("second")
	v.append("third")

	for _, fn := range queued {
		fn()
	}
	if v.entry.Text != "first\nsecond\nthird\n" {
		t.Fatalf("unexpected log text: %q", v.entry.Text)
	}
}

func TestLogViewRevertsUserEdits(t *testing.T) {
	test.NewApp()
	v := newLogView()
	v.do = func(fn func()) { fn() }

	v.append("a line")
	v.entry.SetText("tampered")

	if v.entry.Text != "a line\n" {
		t.Fatalf("expected user edit reverted, got %q", v.entry.Text)
	}
}
