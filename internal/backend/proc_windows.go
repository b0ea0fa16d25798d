//go:build windows

package backend

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// hideConsole keeps the spawned process from opening a console window; the
// shell itself is built with -H=windowsgui and must stay silent.
func hideConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

// KillPortMapper force-terminates epmd.exe. The Erlang runtime inside the
// backend starts the port mapper daemon outside our process tree, and
// Windows has no process-group cleanup to catch it when the window closes.
// Fire-and-forget: the result is ignored.
func KillPortMapper() {
	cmd := exec.Command("taskkill", "/F", "/IM", "epmd.exe")
	hideConsole(cmd)
	_ = cmd.Start()
}
