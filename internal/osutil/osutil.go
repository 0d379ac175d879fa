package osutil

import "os"

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
	DBPermission   = 0o600
)

// Exit terminates the process with code.
func Exit(code exitCode) {
	os.Exit(int(code))
}
