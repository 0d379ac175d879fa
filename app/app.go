// Package app defines the tomate command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tomate/internal/config"
	"github.com/ayoisaiah/tomate/internal/ui"
)

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	ui.DisableColor()
	pterm.DisableColor()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tomate app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "tomate",
		Usage: `
		tomate is a Pomodoro timer for the command-line. It alternates work
		sessions with short breaks and takes a long break after a set number
		of work sessions.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "setup",
				Usage:  "Configure tomate interactively",
				Action: setupAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults to a
				reporting period of 7 days`,
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					jsonFlag,
					listFlag,
				},
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:  "reset",
				Usage: "Delete the lifetime record",
				Flags: []cli.Flag{
					historyFlag,
					sinceFlag,
					untilFlag,
				},
				Action: resetAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			blocksFlag,
			autoStartFlag,
			autoStartSessionFlag,
			autoStartBreakFlag,
			recordFlag,
			disableNotificationFlag,
			strictNotifyFlag,
			messageFlag,
			soundFlag,
			sessionCmdFlag,
			tuiFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
