// Package report prints user-facing errors and warnings
package report

import (
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tomate/internal/osutil"
)

// ExitFunc is replaced in tests.
var ExitFunc = osutil.Exit

func Error(err error) {
	pterm.Error.Println(err)
}

func Warn(msg string, err error) {
	slog.Warn(msg, slog.Any("error", err))

	if err == nil {
		pterm.Warning.Println(msg)
		return
	}

	pterm.Warning.Printfln("%s: %v", msg, err)
}

// Quit prints err and exits with an error code. A nil err exits cleanly.
func Quit(err error) {
	if err == nil {
		ExitFunc(osutil.ExitOK)
		return
	}

	slog.Error("exiting", slog.Any("error", err))

	pterm.Error.Println(err)
	ExitFunc(osutil.ExitError)
}
