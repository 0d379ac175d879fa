package timer

import (
	"log/slog"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// CommandRunner starts a user-supplied session command.
type CommandRunner func(sessionCmd string) error

// runSessionCmd starts the specified command without waiting for it. Its exit
// status is only logged.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	err = cmd.Start()
	if err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Warn("session command failed",
				slog.String("cmd", sessionCmd),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}
