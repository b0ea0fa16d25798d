//go:build !windows

package backend

import "os/exec"

func hideConsole(*exec.Cmd) {}

// KillPortMapper is a no-op off Windows, where the port mapper daemon dies
// with the backend's process group.
func KillPortMapper() {}
