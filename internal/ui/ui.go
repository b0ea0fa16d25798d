package ui

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/leaxer-ai/leaxer-desktop/internal/backend"
)

const serverURL = "http://localhost:4000"

// logView is a read-only multiline entry fed exclusively through append.
// The buffered text is the source of truth and the entry is derived from
// it on the UI thread, so lines appended before the event loop starts
// (all of startup happens before ShowAndRun) are never lost. Fyne v2.7
// has no read-only mode for Entry; user edits are reverted to the buffer.
type logView struct {
	entry *widget.Entry
	do    func(func()) // fyne.Do, injectable in tests

	mu   sync.Mutex
	text string
}

func newLogView() *logView {
	v := &logView{
		entry: widget.NewMultiLineEntry(),
		do:    fyne.Do,
	}
	v.entry.SetPlaceHolder("Startup log will appear here…")
	v.entry.Wrapping = fyne.TextWrapWord
	v.entry.TextStyle = fyne.TextStyle{Monospace: true}
	v.entry.OnChanged = func(s string) {
		v.mu.Lock()
		want := v.text
		v.mu.Unlock()
		if s != want {
			v.apply()
		}
	}
	return v
}

// append adds one line to the buffer and schedules a refresh.
func (v *logView) append(line string) {
	v.mu.Lock()
	v.text += line + "\n"
	v.mu.Unlock()
	v.apply()
}

// apply sets the entry from the buffer on the UI thread. Reading the
// buffer inside the closure keeps queued refreshes from clobbering each
// other: whichever one runs last still sees the full text.
func (v *logView) apply() {
	v.do(func() {
		v.mu.Lock()
		text := v.text
		v.mu.Unlock()
		onchg := v.entry.OnChanged
		v.entry.OnChanged = nil
		v.entry.SetText(text)
		v.entry.CursorColumn = 0
		v.entry.CursorRow = strings.Count(text, "\n")
		v.entry.OnChanged = onchg
	})
}

// Build mounts the status panel and returns a callback that refreshes the
// backend status line. The panel is deliberately small: the application UI
// is served by the backend itself; this window exists to own the backend's
// lifetime and to show the startup log when things go wrong.
func Build(w fyne.Window, sup *backend.Supervisor, log *backend.Log) func() {
	status := widget.NewLabel("Starting…")

	u, _ := url.Parse(serverURL)
	link := widget.NewHyperlink(serverURL, u)

	view := newLogView()
	log.Mirror(view.append)

	top := container.NewVBox(
		widget.NewLabelWithStyle("Leaxer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		status,
		container.NewHBox(widget.NewLabel("Server:"), link),
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, view.entry))

	return func() {
		text := "No bundled backend, connect to a running dev server"
		if pid, ok := sup.PID(); ok {
			text = fmt.Sprintf("Backend running (PID %d)", pid)
		}
		fyne.Do(func() { status.SetText(text) })
	}
}
