// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// SplitDuration breaks d into whole hours, minutes and seconds. Each unit is
// taken from what remains after subtracting the coarser ones, so every
// component carries the sign of d.
func SplitDuration(d time.Duration) (hrs, mins, secs int64) {
	hrs = int64(d / time.Hour)
	d -= time.Duration(hrs) * time.Hour

	mins = int64(d / time.Minute)
	d -= time.Duration(mins) * time.Minute

	secs = int64(d / time.Second)

	return
}

// FormatClock renders d as HH:MM:SS. Negative values are prefixed with a
// minus sign.
func FormatClock(d time.Duration) string {
	hrs, mins, secs := SplitDuration(d)

	var sign string
	if hrs < 0 || mins < 0 || secs < 0 {
		sign = "-"
	}

	return fmt.Sprintf(
		"%s%02d:%02d:%02d",
		sign,
		abs(hrs),
		abs(mins),
		abs(secs),
	)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

// FromStr parses absolute or relative dates such as "2025-01-02 10:00" or
// "3 days ago". Relative dates are resolved against now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// keyLayout is a fixed-width RFC3339 layout so that keys sort in
// chronological order byte by byte.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
