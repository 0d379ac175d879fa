package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/tomate/internal/osutil"
	"github.com/ayoisaiah/tomate/internal/timeutil"
)

// Status is the snapshot of a running timer that other processes can read.
type Status struct {
	EndTime time.Time `json:"end_time"`
	Phase   string    `json:"phase"`
	Block   int       `json:"block"`
	Blocks  int       `json:"blocks"`
	Running bool      `json:"running"`
}

func newStatus(s State, now time.Time) Status {
	return Status{
		EndTime: s.EndTime(now),
		Phase:   s.Phase.Kind.String(),
		Block:   s.Block,
		Blocks:  s.Config.Settings.Blocks,
		Running: s.Running,
	}
}

func writeStatusFile(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.FilePermission)
}

// ReportStatus prints the status stored at statusPath to out. Nothing is
// printed if the file does not exist or the phase it describes is over.
func ReportStatus(statusPath string, out io.Writer, now time.Time) error {
	b, err := os.ReadFile(statusPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errStatusFile.Wrap(err)
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return errStatusFile.Wrap(err)
	}

	text := "[" + s.Phase + "]"
	if s.Phase == Work.String() {
		text = fmt.Sprintf("[%s %d/%d]", s.Phase, s.Block+1, s.Blocks)
	}

	if !s.Running {
		fmt.Fprintf(out, "%s: paused\n", text)
		return nil
	}

	remaining := s.EndTime.Sub(now)
	if remaining < 0 {
		return nil
	}

	hrs, mins, secs := timeutil.SplitDuration(remaining)
	if hrs > 0 {
		fmt.Fprintf(out, "%s: %02d:%02d:%02d\n", text, hrs, mins, secs)
		return nil
	}

	fmt.Fprintf(out, "%s: %02d:%02d\n", text, mins, secs)

	return nil
}
