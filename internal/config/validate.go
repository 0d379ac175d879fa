package config

import (
	"strings"
	"time"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	minBlocks = 1
	maxBlocks = 24
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"work", c.Work},
		{"short break", c.ShortBreak},
		{"long break", c.LongBreak},
	}

	for _, v := range durations {
		if err := validateDuration(v.name, v.d); err != nil {
			return err
		}
	}

	if c.Settings.Blocks < minBlocks || c.Settings.Blocks > maxBlocks {
		return errInvalidBlocks.Fmt(minBlocks, maxBlocks, c.Settings.Blocks)
	}

	if c.Notifications.Enabled &&
		strings.TrimSpace(c.Notifications.Message) == "" {
		return errEmptyMsg
	}

	return nil
}

func validateDuration(name string, d time.Duration) error {
	if d < minSessionDuration || d > maxSessionDuration {
		return errInvalidDuration.Fmt(
			name,
			minSessionDuration,
			maxSessionDuration,
			d,
		)
	}

	return nil
}
