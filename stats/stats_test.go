package stats

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/tomate/internal/models"
	"github.com/ayoisaiah/tomate/record"
)

var monday = time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)

func session(phase string, start time.Time, d time.Duration, completed bool) *models.Session {
	return &models.Session{
		StartTime: start,
		EndTime:   start.Add(d),
		Phase:     phase,
		Duration:  d,
		Completed: completed,
	}
}

func fixtureSessions() []*models.Session {
	return []*models.Session{
		session(models.PhaseWork, monday, 25*time.Minute, true),
		session(models.PhaseShortBreak, monday.Add(25*time.Minute), 5*time.Minute, true),
		session(models.PhaseWork, monday.Add(30*time.Minute), 10*time.Minute, false),
		session(models.PhaseLongBreak, monday.Add(40*time.Minute), 15*time.Minute, true),
		session(models.PhaseWork, monday.AddDate(0, 0, 1).Add(5*time.Hour), 25*time.Minute, true),
		// outside the reporting period
		session(models.PhaseWork, monday.AddDate(0, 0, -10), 25*time.Minute, true),
		// invalid end time
		{StartTime: monday, Phase: models.PhaseWork, Duration: time.Hour},
	}
}

func TestCompute(t *testing.T) {
	rec := record.Record{Blocks: 2, Sessions: 9, TotalSessionTime: 225 * time.Minute}

	start := monday.AddDate(0, 0, -1)
	end := monday.AddDate(0, 0, 5)

	got := Compute(rec, fixtureSessions(), start, end)

	var hourly [hoursInADay]time.Duration
	hourly[9] = 35 * time.Minute
	hourly[14] = 25 * time.Minute

	var weekly [daysInAWeek]time.Duration
	weekly[time.Monday] = 35 * time.Minute
	weekly[time.Tuesday] = 25 * time.Minute

	want := Summary{
		StartTime:    start,
		EndTime:      end,
		WorkSessions: 3,
		Completed:    2,
		Skipped:      1,
		WorkTime:     60 * time.Minute,
		BreakTime:    20 * time.Minute,
		ShortBreaks:  1,
		LongBreaks:   1,
		Hourly:       hourly,
		Weekly:       weekly,
		Lifetime: Lifetime{
			Blocks:   2,
			Sessions: 9,
			WorkTime: 225 * time.Minute,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(record.Record{}, nil, monday, monday.Add(time.Hour))

	if got.WorkSessions != 0 || got.WorkTime != 0 {
		t.Errorf("expected an empty summary, got %+v", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0m"},
		{d: 45 * time.Minute, want: "45m"},
		{d: 2*time.Hour + 5*time.Minute + 30*time.Second, want: "2h 05m"},
	}

	for _, tc := range cases {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%s) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	s := Compute(record.Record{Sessions: 1}, fixtureSessions(), monday, monday.Add(time.Hour))

	var buf bytes.Buffer

	if err := s.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	var got Summary

	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("decoded summary mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNoSessions(t *testing.T) {
	s := Compute(record.Record{}, nil, monday, monday.Add(time.Hour))

	var buf bytes.Buffer

	s.Render(&buf)

	if !strings.Contains(buf.String(), noSessionsMsg) {
		t.Errorf("expected %q in output:\n%s", noSessionsMsg, buf.String())
	}
}

type fakeDB struct {
	sessions []*models.Session
	deleted  bool
}

func (db *fakeDB) GetSessions(_, _ time.Time) ([]*models.Session, error) {
	return db.sessions, nil
}

func (db *fakeDB) UpdateSession(sess *models.Session) error {
	db.sessions = append(db.sessions, sess)
	return nil
}

func (db *fakeDB) DeleteSessions(_, _ time.Time) error {
	db.deleted = true
	db.sessions = nil

	return nil
}

func (db *fakeDB) Close() error {
	return nil
}

func TestDelete(t *testing.T) {
	db := &fakeDB{sessions: fixtureSessions()[:2]}

	var out bytes.Buffer

	err := Delete(db, monday, monday.Add(time.Hour), strings.NewReader("\n"), &out)
	if err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	if !db.deleted {
		t.Error("sessions were not deleted")
	}

	if !strings.Contains(out.String(), models.PhaseShortBreak) {
		t.Errorf("sessions were not listed before deletion:\n%s", out.String())
	}
}
