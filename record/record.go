// Package record reads and writes the accumulated usage statistics that
// survive between runs.
package record

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/tomate/internal/apperr"
	"github.com/ayoisaiah/tomate/internal/osutil"
)

const (
	recordLines = 3
	maxCount    = math.MaxUint32
	maxMillis   = math.MaxInt64 / uint64(time.Millisecond)
)

var (
	// ErrFormat is returned by Parse for malformed record contents.
	ErrFormat = &apperr.Error{
		Message: "malformed record",
	}

	errTooFewLines = &apperr.Error{
		Message: "expected %d lines, found %d",
	}

	errInvalidLine = &apperr.Error{
		Message: "line %d: %q is not a non-negative integer",
	}
)

// Record holds lifetime statistics.
type Record struct {
	// Blocks counts completed long cycles.
	Blocks uint32
	// Sessions counts completed work sessions.
	Sessions uint32
	// TotalSessionTime is the cumulative time spent in work sessions. It is
	// stored with millisecond precision.
	TotalSessionTime time.Duration
}

// Parse decodes a record from its three-line text form. Lines beyond the
// third are ignored.
func Parse(raw string) (Record, error) {
	var lines []string

	if trimmed := strings.TrimRight(raw, "\r\n"); trimmed != "" {
		lines = strings.Split(trimmed, "\n")
	}

	if len(lines) < recordLines {
		return Record{}, ErrFormat.Wrap(errTooFewLines.Fmt(recordLines, len(lines)))
	}

	limits := [recordLines]uint64{maxCount, maxCount, maxMillis}

	var values [recordLines]uint64

	for i := range values {
		line := strings.TrimSpace(lines[i])

		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil || v > limits[i] {
			return Record{}, ErrFormat.Wrap(errInvalidLine.Fmt(i+1, line))
		}

		values[i] = v
	}

	return Record{
		Blocks:           uint32(values[0]),
		Sessions:         uint32(values[1]),
		TotalSessionTime: time.Duration(values[2]) * time.Millisecond,
	}, nil
}

// String encodes the record as blocks, sessions and total session time in
// milliseconds, one per line.
func (r Record) String() string {
	return fmt.Sprintf(
		"%d\n%d\n%d\n",
		r.Blocks,
		r.Sessions,
		r.TotalSessionTime.Milliseconds(),
	)
}

// Serialize is the inverse of Parse.
func Serialize(r Record) string {
	return r.String()
}

// CompleteSession accounts for one finished work session of length d.
func (r *Record) CompleteSession(d time.Duration) {
	r.Sessions++
	r.TotalSessionTime += d.Truncate(time.Millisecond)
}

// CompleteBlock accounts for one finished long cycle.
func (r *Record) CompleteBlock() {
	r.Blocks++
}

// Read loads the record stored at path. Callers treat any error as the
// absence of a previous record.
func Read(path string) (Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}

	return Parse(string(b))
}

// Write stores r at path, creating parent directories as needed.
func Write(path string, r Record) error {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating record directory: %w", err)
	}

	err = os.WriteFile(path, []byte(r.String()), osutil.FilePermission)
	if err != nil {
		return fmt.Errorf("writing record: %w", err)
	}

	return nil
}

// Remove deletes the record at path. A missing record is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
