package timer

import (
	"time"

	"github.com/ayoisaiah/tomate/internal/config"
	"github.com/ayoisaiah/tomate/internal/models"
)

// Kind identifies one of the three phases of a Pomodoro cycle.
type Kind int

const (
	Work Kind = iota
	ShortBreak
	LongBreak
)

func (k Kind) String() string {
	switch k {
	case Work:
		return models.PhaseWork
	case ShortBreak:
		return models.PhaseShortBreak
	case LongBreak:
		return models.PhaseLongBreak
	}

	return "Unknown"
}

// IsBreak reports whether k is a short or long break.
func (k Kind) IsBreak() bool {
	return k == ShortBreak || k == LongBreak
}

// Phase is a phase kind together with the instant it began.
type Phase struct {
	Start time.Time
	Kind  Kind
}

// Duration returns the configured length of the phase.
func (p Phase) Duration(cfg *config.Config) time.Duration {
	switch p.Kind {
	case ShortBreak:
		return cfg.ShortBreak
	case LongBreak:
		return cfg.LongBreak
	default:
		return cfg.Work
	}
}

// at returns the same phase kind started at t.
func (p Phase) at(t time.Time) Phase {
	return Phase{Kind: p.Kind, Start: t}
}
