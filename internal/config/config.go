// Package config builds the timer configuration from defaults, the YAML config
// file, command-line flags and the interactive setup prompt.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/tomate/internal/pathutil"
)

type (
	// Config holds all configuration settings. It is built once per run and
	// must not be modified after Validate succeeds.
	Config struct {
		Work          time.Duration
		ShortBreak    time.Duration
		LongBreak     time.Duration
		Notifications NotificationConfig
		Settings      SettingsConfig
		System        SystemConfig
	}

	// SettingsConfig holds cycle and auto-start settings.
	SettingsConfig struct {
		// Blocks is the number of work sessions that make up one long cycle.
		Blocks           int
		AutoStart        bool
		AutoStartSession bool
		AutoStartBreak   bool
		SessionCmd       string
		TUI              bool
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool
		// Fatal makes a failed desktop notification stop the timer.
		Fatal   bool
		Sound   bool
		Message string
	}

	// SystemConfig holds file locations.
	SystemConfig struct {
		ConfigPath string
		RecordPath string
		DBPath     string
		StatusPath string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	defaultWork             = 25 * time.Minute
	defaultShortBreak       = 5 * time.Minute
	defaultLongBreak        = 15 * time.Minute
	defaultBlocks           = 4
	defaultAutoStart        = true
	defaultAutoStartSession = true
	defaultAutoStartBreak   = true
	defaultNotify           = true
	defaultMessage          = "Time to take a break!"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns a Config populated with the default settings.
func Default() *Config {
	return &Config{
		Work:       defaultWork,
		ShortBreak: defaultShortBreak,
		LongBreak:  defaultLongBreak,
		Settings: SettingsConfig{
			Blocks:           defaultBlocks,
			AutoStart:        defaultAutoStart,
			AutoStartSession: defaultAutoStartSession,
			AutoStartBreak:   defaultAutoStartBreak,
		},
		Notifications: NotificationConfig{
			Enabled: defaultNotify,
			Message: defaultMessage,
		},
	}
}

// WithPaths returns an Option that fills in the file locations resolved by
// pathutil. It must run before options that read or write those files.
func WithPaths() Option {
	return func(c *Config) error {
		err := pathutil.Initialize()
		if err != nil {
			return err
		}

		c.System = SystemConfig{
			ConfigPath: pathutil.ConfigFilePath(),
			RecordPath: pathutil.RecordFilePath(),
			DBPath:     pathutil.DBFilePath(),
			StatusPath: pathutil.StatusFilePath(),
		}

		return nil
	}
}

// New creates a new Config with default values, applies options in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// String summarises the phase durations and the block count.
func (c *Config) String() string {
	return fmt.Sprintf(
		"work=%s short_break=%s long_break=%s blocks=%d",
		c.Work,
		c.ShortBreak,
		c.LongBreak,
		c.Settings.Blocks,
	)
}
