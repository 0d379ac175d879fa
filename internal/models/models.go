package models

import "time"

const (
	PhaseWork       = "Work"
	PhaseShortBreak = "Short break"
	PhaseLongBreak  = "Long break"
)

// Session is a completed phase as kept in the history store.
type Session struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Phase     string        `json:"phase"`
	Duration  time.Duration `json:"duration"`
	Block     int           `json:"block"`
	Completed bool          `json:"completed"`
}

// IsWork reports whether the session was a work session.
func (s *Session) IsWork() bool {
	return s.Phase == PhaseWork
}
