package timer

import "github.com/ayoisaiah/tomate/internal/apperr"

var (
	// ErrNotifyFailed is returned by Run when a desktop notification cannot be
	// delivered and notification failures are configured to be fatal.
	ErrNotifyFailed = &apperr.Error{
		Message: "unable to display notification",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errStatusFile = &apperr.Error{
		Message: "unable to read status file",
	}
)
