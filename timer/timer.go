// Package timer runs the Pomodoro cycle: the phase state machine, the
// console and terminal UI front ends, and the side effects of each phase
// change.
package timer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tomate/internal/config"
	"github.com/ayoisaiah/tomate/internal/models"
	"github.com/ayoisaiah/tomate/internal/timeutil"
	"github.com/ayoisaiah/tomate/record"
)

const pollInterval = time.Second

// History stores completed phases.
type History interface {
	UpdateSession(sess *models.Session) error
}

// Option configures a Timer.
type Option func(*Timer)

// Timer owns the current State and applies the side effects of every phase
// change. It must only be driven from one goroutine.
type Timer struct {
	cfg   *config.Config
	state State
	clock timeutil.Clock

	notifier Notifier
	chime    Notifier
	history  History
	runCmd   CommandRunner

	rec        record.Record
	recordPath string
	statusPath string

	in  io.Reader
	out io.Writer
	err io.Writer
}

func WithClock(c timeutil.Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// WithChime replaces the sound played alongside the notification.
func WithChime(n Notifier) Option {
	return func(t *Timer) {
		t.chime = n
	}
}

func WithHistory(h History) Option {
	return func(t *Timer) {
		t.history = h
	}
}

// WithRecord seeds the lifetime record and sets where it is persisted. An
// empty path disables persistence.
func WithRecord(r record.Record, path string) Option {
	return func(t *Timer) {
		t.rec = r
		t.recordPath = path
	}
}

func WithOutput(out, errOut io.Writer) Option {
	return func(t *Timer) {
		t.out = out
		t.err = errOut
	}
}

func WithInput(in io.Reader) Option {
	return func(t *Timer) {
		t.in = in
	}
}

// WithStatusFile sets where the status snapshot is written on every tick.
func WithStatusFile(path string) Option {
	return func(t *Timer) {
		t.statusPath = path
	}
}

func WithCommandRunner(r CommandRunner) Option {
	return func(t *Timer) {
		t.runCmd = r
	}
}

// New creates a Timer for cfg. The initial state is taken from the clock.
func New(cfg *config.Config, opts ...Option) *Timer {
	t := &Timer{
		cfg:      cfg,
		clock:    timeutil.SystemClock{},
		notifier: DesktopNotifier{},
		chime:    DefaultChime,
		runCmd:   runSessionCmd,
		in:       config.Stdin,
		out:      config.Stdout,
		err:      config.Stderr,
	}

	for _, opt := range opts {
		opt(t)
	}

	if !cfg.Notifications.Enabled {
		t.notifier = noopNotifier{}
	}

	if !cfg.Notifications.Sound {
		t.chime = noopNotifier{}
	}

	t.state = NewState(cfg, t.clock.Now())

	return t
}

// State returns the current timer state.
func (t *Timer) State() State {
	return t.state
}

// Record returns the lifetime record including this run's progress.
func (t *Timer) Record() record.Record {
	return t.rec
}

// Tick advances the timer to now and applies the side effects of any phase
// change. The returned error is non-nil only for a failed notification when
// notification failures are fatal.
func (t *Timer) Tick(now time.Time) (State, error) {
	next, tr := Advance(t.state, now)
	t.state = next

	err := t.apply(tr)

	t.saveStatus(now)

	return t.state, err
}

// Toggle pauses or resumes the current phase.
func (t *Timer) Toggle(now time.Time) State {
	t.state = t.state.Toggle(now)

	t.saveStatus(now)

	return t.state
}

// Skip ends the current phase immediately.
func (t *Timer) Skip(now time.Time) (State, error) {
	next, tr := Skip(t.state, now)
	t.state = next

	err := t.apply(tr)

	t.saveStatus(now)

	return t.state, err
}

func (t *Timer) apply(tr Transition) error {
	if !tr.Completed {
		return nil
	}

	slog.Info("phase completed",
		slog.String("from", tr.From.String()),
		slog.String("to", tr.To.String()),
		slog.Int("block", tr.Block),
		slog.Bool("skipped", tr.Skipped),
	)

	if tr.From == Work && !tr.Skipped {
		t.rec.CompleteSession(t.cfg.Work)

		if tr.To == LongBreak {
			t.rec.CompleteBlock()
		}

		t.saveRecord()
	}

	t.saveHistory(tr)

	var err error

	if tr.Notify() {
		err = t.notify()
	}

	if cmdErr := t.runCmd(t.cfg.Settings.SessionCmd); cmdErr != nil {
		t.warn("unable to run session command", cmdErr)
	}

	return err
}

func (t *Timer) notify() error {
	go func() {
		if err := t.chime.Notify(""); err != nil {
			slog.Warn("unable to play chime", slog.Any("error", err))
		}
	}()

	err := t.notifier.Notify(t.cfg.Notifications.Message)
	if err == nil {
		return nil
	}

	if t.cfg.Notifications.Fatal {
		slog.Error("notification failed", slog.Any("error", err))

		return ErrNotifyFailed.Wrap(err)
	}

	t.warn(ErrNotifyFailed.Error(), err)

	return nil
}

func (t *Timer) saveRecord() {
	if t.recordPath == "" {
		return
	}

	err := record.Write(t.recordPath, t.rec)
	if err != nil {
		t.warn("unable to save record", err)
	}
}

func (t *Timer) saveHistory(tr Transition) {
	if t.history == nil {
		return
	}

	sess := &models.Session{
		StartTime: tr.Started,
		EndTime:   tr.At,
		Phase:     tr.From.String(),
		Duration:  tr.At.Sub(tr.Started),
		Block:     tr.Block,
		Completed: !tr.Skipped,
	}

	err := t.history.UpdateSession(sess)
	if err != nil {
		t.warn("unable to save session", err)
	}
}

func (t *Timer) saveStatus(now time.Time) {
	if t.statusPath == "" {
		return
	}

	err := writeStatusFile(t.statusPath, newStatus(t.state, now))
	if err != nil {
		slog.Debug("unable to write status file", slog.Any("error", err))
	}
}

func (t *Timer) removeStatus() {
	if t.statusPath == "" {
		return
	}

	err := os.Remove(t.statusPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Debug("unable to remove status file", slog.Any("error", err))
	}
}

// warn reports a problem that does not stop the timer.
func (t *Timer) warn(msg string, err error) {
	slog.Warn(msg, slog.Any("error", err))

	pterm.Warning.WithWriter(t.err).Printfln("%s: %v", msg, err)
}

// Describe returns the one-line console description of the timer at now.
func (t *Timer) Describe(now time.Time) string {
	return describe(t.state, now)
}

func (t *Timer) render(now time.Time) {
	fmt.Fprintf(t.out, "\r\033[K%s", t.Describe(now))
}

// readInput sends on toggle for every line read until the input is
// exhausted. Cancelling ctx only takes effect once the next line arrives
// since the read itself blocks.
func (t *Timer) readInput(ctx context.Context, toggle chan<- struct{}) {
	scanner := bufio.NewScanner(t.in)

	for scanner.Scan() {
		select {
		case toggle <- struct{}{}:
		case <-ctx.Done():
			return
		}
	}
}

// shutdown persists the record and removes the status file.
func (t *Timer) shutdown() {
	t.saveRecord()
	t.removeStatus()
}

// Run polls the timer once per pollInterval, rewriting the console line in
// place, until ctx is cancelled. A newline on the input toggles pause.
func (t *Timer) Run(ctx context.Context) error {
	defer t.shutdown()

	toggle := make(chan struct{})

	go t.readInput(ctx, toggle)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	t.saveStatus(t.clock.Now())
	t.render(t.clock.Now())

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(t.out)

			return nil
		case <-toggle:
			now := t.clock.Now()

			t.Toggle(now)
			t.render(now)
		case <-ticker.C:
			now := t.clock.Now()

			_, err := t.Tick(now)
			if err != nil {
				fmt.Fprintln(t.out)

				return err
			}

			t.render(now)
		}
	}
}
