package timer

import (
	"time"

	"github.com/ayoisaiah/tomate/internal/config"
)

// State is the complete timer state at one instant. It is replaced, never
// mutated, on every tick.
type State struct {
	Config *config.Config
	Phase  Phase

	// Block is the zero-based index of the current work session within its
	// long cycle, in [0, Config.Settings.Blocks).
	Block int

	// Running is false while paused. A paused phase does not advance.
	Running bool
}

// Transition describes the phase change produced by a tick, if any.
type Transition struct {
	// Started is when the completed phase began.
	Started time.Time

	// At is when the completed phase was observed to end and the next began.
	At time.Time

	From Kind
	To   Kind

	// Block is the block index of the completed phase.
	Block int

	Completed bool

	// Skipped is set when the phase was ended early by the user.
	Skipped bool
}

// Notify reports whether the transition ends a work session that ran its
// full length, which is when the user is told to take a break.
func (t Transition) Notify() bool {
	return t.Completed && !t.Skipped && t.From == Work
}

// NewState returns the initial state: block zero of a work phase starting at
// now, running only if both auto-start settings are enabled.
func NewState(cfg *config.Config, now time.Time) State {
	return State{
		Config:  cfg,
		Phase:   Phase{Kind: Work, Start: now},
		Block:   0,
		Running: cfg.Settings.AutoStart && cfg.Settings.AutoStartSession,
	}
}

// Elapsed returns the time spent in the current phase.
func (s State) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.Phase.Start)
}

// Remaining returns the time left in the current phase. It is negative once
// the phase has overrun and before the next tick completes it.
func (s State) Remaining(now time.Time) time.Duration {
	return s.Phase.Duration(s.Config) - s.Elapsed(now)
}

// Advance computes the state that follows s at now.
//
// A paused state keeps its phase, block and running flag and only moves the
// phase start to now, so paused time never counts as elapsed. A running
// phase completes once its remaining time is strictly negative.
func Advance(s State, now time.Time) (State, Transition) {
	if !s.Running {
		s.Phase = s.Phase.at(now)
		return s, Transition{}
	}

	if s.Remaining(now) >= 0 {
		return s, Transition{}
	}

	return complete(s, now)
}

// Skip ends the current phase at now regardless of the time remaining.
func Skip(s State, now time.Time) (State, Transition) {
	next, tr := complete(s, now)
	tr.Skipped = true

	return next, tr
}

// complete moves s to the phase that follows its current one.
func complete(s State, now time.Time) (State, Transition) {
	cfg := s.Config

	next := s

	switch s.Phase.Kind {
	case Work:
		next.Phase = Phase{Kind: ShortBreak, Start: now}
		if s.Block >= cfg.Settings.Blocks-1 {
			next.Phase.Kind = LongBreak
		}

		next.Running = cfg.Settings.AutoStartBreak
	case ShortBreak:
		next.Phase = Phase{Kind: Work, Start: now}
		next.Block = s.Block + 1
		next.Running = cfg.Settings.AutoStartSession
	case LongBreak:
		next.Phase = Phase{Kind: Work, Start: now}
		next.Block = 0
		next.Running = cfg.Settings.AutoStart && cfg.Settings.AutoStartSession
	}

	return next, Transition{
		Started:   s.Phase.Start,
		At:        now,
		From:      s.Phase.Kind,
		To:        next.Phase.Kind,
		Block:     s.Block,
		Completed: true,
	}
}

// Toggle pauses a running state or resumes a paused one. The phase start is
// moved to now either way.
func (s State) Toggle(now time.Time) State {
	s.Running = !s.Running
	s.Phase = s.Phase.at(now)

	return s
}

// EndTime returns when the current phase is due to end if it keeps running
// from now.
func (s State) EndTime(now time.Time) time.Time {
	return now.Add(s.Remaining(now))
}
