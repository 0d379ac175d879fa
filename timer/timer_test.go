package timer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/tomate/internal/config"
	"github.com/ayoisaiah/tomate/internal/models"
	"github.com/ayoisaiah/tomate/record"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (n *fakeNotifier) Notify(message string) error {
	n.messages = append(n.messages, message)
	return n.err
}

type fakeHistory struct {
	sessions []*models.Session
}

func (h *fakeHistory) UpdateSession(sess *models.Session) error {
	h.sessions = append(h.sessions, sess)
	return nil
}

type fixture struct {
	timer    *Timer
	clock    *fakeClock
	notifier *fakeNotifier
	history  *fakeHistory
	commands []string
	errOut   *bytes.Buffer
	dir      string
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()

	f := &fixture{
		clock:    &fakeClock{now: t0},
		notifier: &fakeNotifier{},
		history:  &fakeHistory{},
		errOut:   &bytes.Buffer{},
		dir:      t.TempDir(),
	}

	f.timer = New(cfg,
		WithClock(f.clock),
		WithNotifier(f.notifier),
		WithChime(&fakeNotifier{}),
		WithHistory(f.history),
		WithRecord(record.Record{}, filepath.Join(f.dir, "record")),
		WithStatusFile(filepath.Join(f.dir, "status.json")),
		WithOutput(io.Discard, f.errOut),
		WithInput(strings.NewReader("")),
		WithCommandRunner(func(cmd string) error {
			f.commands = append(f.commands, cmd)
			return nil
		}),
	)

	return f
}

func (f *fixture) tick(t *testing.T, d time.Duration) State {
	t.Helper()

	f.clock.now = f.clock.now.Add(d)

	s, err := f.timer.Tick(f.clock.now)
	if err != nil {
		t.Fatalf("Tick: unexpected error: %v", err)
	}

	return s
}

func TestTickCompletesWorkSession(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.SessionCmd = "echo done"

	f := newFixture(t, cfg)

	for range 3 {
		f.tick(t, 10*time.Minute)
	}

	s := f.timer.State()
	if s.Phase.Kind != ShortBreak {
		t.Fatalf("phase = %s, want %s", s.Phase.Kind, ShortBreak)
	}

	// further ticks inside the break must not notify again
	f.tick(t, time.Minute)
	f.tick(t, time.Minute)

	if diff := cmp.Diff([]string{cfg.Notifications.Message}, f.notifier.messages); diff != "" {
		t.Errorf("notifications (-want +got):\n%s", diff)
	}

	wantRecord := record.Record{Sessions: 1, TotalSessionTime: cfg.Work}
	if diff := cmp.Diff(wantRecord, f.timer.Record()); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}

	saved, err := record.Read(filepath.Join(f.dir, "record"))
	if err != nil {
		t.Fatalf("record.Read: %v", err)
	}

	if diff := cmp.Diff(wantRecord, saved); diff != "" {
		t.Errorf("saved record (-want +got):\n%s", diff)
	}

	wantSessions := []*models.Session{
		{
			StartTime: t0,
			EndTime:   t0.Add(30 * time.Minute),
			Phase:     models.PhaseWork,
			Duration:  30 * time.Minute,
			Block:     0,
			Completed: true,
		},
	}

	if diff := cmp.Diff(wantSessions, f.history.sessions); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"echo done"}, f.commands); diff != "" {
		t.Errorf("session commands (-want +got):\n%s", diff)
	}
}

func TestTickLongBreakCompletesBlock(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.Blocks = 2

	f := newFixture(t, cfg)

	f.tick(t, cfg.Work+time.Second)
	f.tick(t, cfg.ShortBreak+time.Second)
	s := f.tick(t, cfg.Work+time.Second)

	if s.Phase.Kind != LongBreak || s.Block != 1 {
		t.Fatalf("got %s block %d, want %s block 1", s.Phase.Kind, s.Block, LongBreak)
	}

	want := record.Record{Blocks: 1, Sessions: 2, TotalSessionTime: 2 * cfg.Work}
	if diff := cmp.Diff(want, f.timer.Record()); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}

	if len(f.notifier.messages) != 2 {
		t.Errorf("got %d notifications, want 2", len(f.notifier.messages))
	}

	s = f.tick(t, cfg.LongBreak+time.Second)
	if s.Phase.Kind != Work || s.Block != 0 {
		t.Errorf("got %s block %d after long break", s.Phase.Kind, s.Block)
	}

	if len(f.history.sessions) != 4 {
		t.Errorf("got %d history entries, want 4", len(f.history.sessions))
	}
}

func TestNotificationFailure(t *testing.T) {
	t.Run("non fatal by default", func(t *testing.T) {
		f := newFixture(t, testConfig())
		f.notifier.err = errors.New("no notification daemon")

		f.clock.now = t0.Add(26 * time.Minute)

		s, err := f.timer.Tick(f.clock.now)
		if err != nil {
			t.Fatalf("Tick: unexpected error: %v", err)
		}

		if s.Phase.Kind != ShortBreak {
			t.Errorf("phase = %s, want %s", s.Phase.Kind, ShortBreak)
		}

		if !strings.Contains(f.errOut.String(), "no notification daemon") {
			t.Errorf("expected a warning, got %q", f.errOut.String())
		}
	})

	t.Run("fatal when configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Notifications.Fatal = true

		f := newFixture(t, cfg)
		f.notifier.err = errors.New("no notification daemon")

		f.clock.now = t0.Add(26 * time.Minute)

		_, err := f.timer.Tick(f.clock.now)
		if !errors.Is(err, ErrNotifyFailed) {
			t.Fatalf("Tick: got error %v, want %v", err, ErrNotifyFailed)
		}
	})
}

func TestNotificationsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Notifications.Enabled = false

	f := newFixture(t, cfg)
	f.tick(t, cfg.Work+time.Second)

	if len(f.notifier.messages) != 0 {
		t.Errorf("notifier called %d times with notifications disabled",
			len(f.notifier.messages))
	}

	if f.timer.Record().Sessions != 1 {
		t.Errorf("record not updated with notifications disabled")
	}
}

func TestTimerSkip(t *testing.T) {
	f := newFixture(t, testConfig())

	f.clock.now = t0.Add(5 * time.Minute)

	s, err := f.timer.Skip(f.clock.now)
	if err != nil {
		t.Fatalf("Skip: unexpected error: %v", err)
	}

	if s.Phase.Kind != ShortBreak {
		t.Errorf("phase = %s, want %s", s.Phase.Kind, ShortBreak)
	}

	if len(f.notifier.messages) != 0 {
		t.Error("skipping a work session must not notify")
	}

	if f.timer.Record().Sessions != 0 {
		t.Error("skipping a work session must not count it as completed")
	}

	if len(f.history.sessions) != 1 || f.history.sessions[0].Completed {
		t.Errorf("expected one incomplete history entry, got %+v", f.history.sessions)
	}
}

func TestTimerToggle(t *testing.T) {
	f := newFixture(t, testConfig())

	f.clock.now = t0.Add(time.Minute)

	s := f.timer.Toggle(f.clock.now)
	if s.Running {
		t.Fatal("expected paused state")
	}

	got := f.timer.Describe(f.clock.now)
	want := "Phase: Work - Time remaining: 00:25:00 - paused"

	if got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestRunShutdown(t *testing.T) {
	f := newFixture(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.timer.Run(ctx)
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}

	_, err = os.Stat(filepath.Join(f.dir, "status.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("status file not removed: %v", err)
	}

	_, err = record.Read(filepath.Join(f.dir, "record"))
	if err != nil {
		t.Errorf("record not persisted on exit: %v", err)
	}
}

func TestReadInput(t *testing.T) {
	f := newFixture(t, testConfig())
	f.timer.in = strings.NewReader("\n\n")

	toggle := make(chan struct{})

	go f.timer.readInput(context.Background(), toggle)

	for i := range 2 {
		select {
		case <-toggle:
		case <-time.After(time.Second):
			t.Fatalf("toggle %d not received", i+1)
		}
	}
}

func TestReportStatus(t *testing.T) {
	now := t0

	cases := []struct {
		name   string
		status *Status
		want   string
	}{
		{
			name: "work",
			status: &Status{
				EndTime: now.Add(12*time.Minute + 34*time.Second),
				Phase:   models.PhaseWork,
				Block:   1,
				Blocks:  4,
				Running: true,
			},
			want: "[Work 2/4]: 12:34\n",
		},
		{
			name: "short break",
			status: &Status{
				EndTime: now.Add(4 * time.Minute),
				Phase:   models.PhaseShortBreak,
				Running: true,
			},
			want: "[Short break]: 04:00\n",
		},
		{
			name: "paused",
			status: &Status{
				EndTime: now.Add(time.Hour),
				Phase:   models.PhaseLongBreak,
				Running: false,
			},
			want: "[Long break]: paused\n",
		},
		{
			name: "over",
			status: &Status{
				EndTime: now.Add(-time.Second),
				Phase:   models.PhaseWork,
				Running: true,
			},
		},
		{
			name: "missing file",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "status.json")

			if tc.status != nil {
				if err := writeStatusFile(path, *tc.status); err != nil {
					t.Fatal(err)
				}
			}

			var out bytes.Buffer

			err := ReportStatus(path, &out, now)
			if err != nil {
				t.Fatalf("ReportStatus: unexpected error: %v", err)
			}

			if out.String() != tc.want {
				t.Errorf("got %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestStatusFileWrittenOnTick(t *testing.T) {
	f := newFixture(t, testConfig())
	f.tick(t, time.Minute)

	var out bytes.Buffer

	err := ReportStatus(filepath.Join(f.dir, "status.json"), &out, f.clock.now)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := out.String(), "[Work 1/4]: 24:00\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
