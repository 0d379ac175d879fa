package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work             string
	ShortBreak       string
	LongBreak        string
	RecordPath       string
	Message          string
	SessionCmd       string
	Blocks           *uint
	AutoStart        *bool
	AutoStartSession *bool
	AutoStartBreak   *bool
	DisableNotify    bool
	StrictNotify     bool
	Sound            bool
	TUI              bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Blocks and the boolean settings that default to true are only overridden
// when their flag is explicitly set.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:          ctx.String("work"),
			ShortBreak:    ctx.String("short-break"),
			LongBreak:     ctx.String("long-break"),
			RecordPath:    ctx.String("record"),
			Message:       ctx.String("message"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			StrictNotify:  ctx.Bool("strict-notify"),
			Sound:         ctx.Bool("sound"),
			TUI:           ctx.Bool("tui"),
		}

		if ctx.IsSet("blocks") {
			n := ctx.Uint("blocks")
			opts.Blocks = &n
		}

		opts.AutoStart = boolIfSet(ctx, "auto-start")
		opts.AutoStartSession = boolIfSet(ctx, "auto-start-session")
		opts.AutoStartBreak = boolIfSet(ctx, "auto-start-break")

		return applyCLIOptions(c, &opts)
	}
}

func boolIfSet(ctx *cli.Context, name string) *bool {
	if !ctx.IsSet(name) {
		return nil
	}

	b := ctx.Bool(name)

	return &b
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts *CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	// an explicit zero is kept so that Validate rejects it
	if opts.Blocks != nil {
		c.Settings.Blocks = int(*opts.Blocks)
	}

	if opts.AutoStart != nil {
		c.Settings.AutoStart = *opts.AutoStart
	}

	if opts.AutoStartSession != nil {
		c.Settings.AutoStartSession = *opts.AutoStartSession
	}

	if opts.AutoStartBreak != nil {
		c.Settings.AutoStartBreak = *opts.AutoStartBreak
	}

	if opts.RecordPath != "" {
		c.System.RecordPath = opts.RecordPath
	}

	if opts.Message != "" {
		c.Notifications.Message = opts.Message
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.StrictNotify {
		c.Notifications.Fatal = true
	}

	if opts.Sound {
		c.Notifications.Sound = true
	}

	if opts.TUI {
		c.Settings.TUI = true
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts *CLIOptions) error {
	durations := []struct {
		name  string
		value string
		dest  *time.Duration
	}{
		{"work", opts.Work, &c.Work},
		{"short break", opts.ShortBreak, &c.ShortBreak},
		{"long break", opts.LongBreak, &c.LongBreak},
	}

	for _, d := range durations {
		if d.value == "" {
			continue
		}

		dur, err := parseDuration(d.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.name, d.value)
		}

		*d.dest = dur
	}

	return nil
}
