package app

import (
	"fyne.io/fyne/v2"
	fynex "fyne.io/fyne/v2/app"

	"github.com/leaxer-ai/leaxer-desktop/internal/backend"
	"github.com/leaxer-ai/leaxer-desktop/internal/ui"
)

// Run is the entry point used by main. It builds the window, starts the
// supervised backend once, and wires the close request to shutdown.
func Run() {
	a := fynex.NewWithID("com.leaxer.desktop")
	w := a.NewWindow("Leaxer")
	w.Resize(fyne.NewSize(1100, 720))

	platform := backend.Current()
	userDir, _ := platform.UserDir()
	log := backend.OpenLog(userDir)
	sup := backend.NewSupervisor(platform, userDir, log)

	refresh := ui.Build(w, sup, log)
	sup.Start()
	refresh()

	// The backend must not outlive the window: shutdown completes before
	// the close is allowed to finalize. The Erlang port mapper is reaped
	// separately on Windows because it is not a child of the backend.
	w.SetCloseIntercept(func() {
		sup.Shutdown()
		backend.KillPortMapper()
		w.Close()
	})

	w.ShowAndRun()
}
