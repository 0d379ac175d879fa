package timeutil

import (
	"testing"
	"time"
)

func TestSplitDuration(t *testing.T) {
	cases := []struct {
		in              time.Duration
		hrs, mins, secs int64
	}{
		{0, 0, 0, 0},
		{25 * time.Minute, 0, 25, 0},
		{4*time.Minute + 59*time.Second + 999*time.Millisecond, 0, 4, 59},
		{time.Hour + 2*time.Minute + 3*time.Second, 1, 2, 3},
		{-time.Second, 0, 0, -1},
		{-(time.Hour + time.Second), -1, 0, -1},
	}

	for _, tc := range cases {
		h, m, s := SplitDuration(tc.in)
		if h != tc.hrs || m != tc.mins || s != tc.secs {
			t.Errorf(
				"SplitDuration(%v): expected %d/%d/%d, but got %d/%d/%d",
				tc.in,
				tc.hrs,
				tc.mins,
				tc.secs,
				h,
				m,
				s,
			)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{5 * time.Minute, "00:05:00"},
		{4*time.Minute + 59*time.Second, "00:04:59"},
		{12*time.Hour + 34*time.Minute + 56*time.Second, "12:34:56"},
		{-time.Second, "-00:00:01"},
		{-500 * time.Millisecond, "00:00:00"},
	}

	for _, tc := range cases {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%v): expected %q, but got %q", tc.in, tc.want, got)
		}
	}
}

func TestFromStr(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	got, err := FromStr("2025-03-01", now)
	if err != nil {
		t.Fatal(err)
	}

	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("expected March 1 2025, but got %v", got)
	}

	if _, err := FromStr("xyzzy qwrtp", now); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}

func TestRoundToStart(t *testing.T) {
	in := time.Date(2025, time.March, 10, 18, 45, 12, 5, time.UTC)

	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := RoundToStart(in); !got.Equal(want) {
		t.Errorf("expected %v, but got %v", want, got)
	}
}

func TestToKeyOrdering(t *testing.T) {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	earlier := ToKey(base)
	later := ToKey(base.Add(500 * time.Millisecond))

	if string(earlier) >= string(later) {
		t.Errorf("expected %s to sort before %s", earlier, later)
	}

	local := time.FixedZone("UTC+2", 2*60*60)
	if string(ToKey(base.In(local))) != string(earlier) {
		t.Error("expected keys to be independent of the time zone")
	}
}
