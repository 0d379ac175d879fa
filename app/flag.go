package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration, e.g. 25m or 25 (minutes) (default: 25m)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration (default: 5m)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration (default: 15m)",
	}

	blocksFlag = &cli.UintFlag{
		Name:    "blocks",
		Aliases: []string{"b"},
		Usage:   "The number of work sessions before a long break (default: 4)",
	}

	autoStartFlag = &cli.BoolFlag{
		Name:  "auto-start",
		Usage: "Start a new cycle automatically after a long break",
	}

	autoStartSessionFlag = &cli.BoolFlag{
		Name:  "auto-start-session",
		Usage: "Start work sessions automatically",
	}

	autoStartBreakFlag = &cli.BoolFlag{
		Name:  "auto-start-break",
		Usage: "Start breaks automatically",
	}

	recordFlag = &cli.StringFlag{
		Name:  "record",
		Usage: "Path to the file that keeps lifetime totals",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a work session",
	}

	strictNotifyFlag = &cli.BoolFlag{
		Name:  "strict-notify",
		Usage: "Exit with an error if a notification cannot be displayed",
	}

	messageFlag = &cli.StringFlag{
		Name:  "message",
		Usage: "The notification message shown after a work session",
	}

	soundFlag = &cli.BoolFlag{
		Name:  "sound",
		Usage: "Play a chime alongside the notification",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	tuiFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Use the full screen terminal interface",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start of the reporting period (e.g. '7 days ago'). Defaults to 7 days ago",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "End of the reporting period. Defaults to now",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	listFlag = &cli.BoolFlag{
		Name:  "list",
		Usage: "List the sessions in the reporting period",
	}

	historyFlag = &cli.BoolFlag{
		Name:  "history",
		Usage: "Also delete the session history in the given period",
	}
)
