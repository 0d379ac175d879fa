package apperr

import (
	"errors"
	"io/fs"
	"testing"
)

var errSample = &Error{
	Message: "%s duration must be positive",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt("work")

	if got, want := err.Error(), "work duration must be positive"; got != want {
		t.Errorf("expected message %q, but got %q", want, got)
	}

	if !errors.Is(err, errSample) {
		t.Error("expected formatted error to match its sentinel")
	}
}

func TestWrap(t *testing.T) {
	errRead := &Error{Message: "reading config file failed"}

	err := errRead.Wrap(fs.ErrPermission)

	if !errors.Is(err, errRead) {
		t.Error("expected wrapped error to match its sentinel")
	}

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected wrapped error to match its cause")
	}

	if got, want := err.Error(), "reading config file failed: permission denied"; got != want {
		t.Errorf("expected message %q, but got %q", want, got)
	}

	other := &Error{Message: "reading config file failed"}
	if errors.Is(err, other) {
		t.Error("distinct sentinels with the same message must not match")
	}
}
