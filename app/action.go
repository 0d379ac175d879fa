package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/tomate/internal/config"
	"github.com/ayoisaiah/tomate/internal/osutil"
	"github.com/ayoisaiah/tomate/internal/pathutil"
	"github.com/ayoisaiah/tomate/internal/static"
	"github.com/ayoisaiah/tomate/record"
	"github.com/ayoisaiah/tomate/report"
	"github.com/ayoisaiah/tomate/stats"
	"github.com/ayoisaiah/tomate/store"
	"github.com/ayoisaiah/tomate/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envTomateNoColor = "TOMATE_NO_COLOR"
	envDebug         = "TOMATE_DEBUG"
)

const (
	logMaxSizeMB  = 1
	logMaxBackups = 3
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the timer configuration from the config file and the
// command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithPaths(),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded", slog.String("config", spew.Sdump(cfg)))

	return cfg, nil
}

// defaultAction runs the timer until it is interrupted.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	err = static.Install(pathutil.Dir())
	if err != nil {
		slog.Debug("unable to install static files", slog.Any("error", err))
	}

	rec, err := record.Read(cfg.System.RecordPath)
	if err != nil {
		slog.Debug("no usable record", slog.Any("error", err))

		rec = record.Record{}
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	runCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	t := timer.New(cfg,
		timer.WithHistory(db),
		timer.WithRecord(rec, cfg.System.RecordPath),
		timer.WithStatusFile(cfg.System.StatusPath),
	)

	slog.Info("timer started", slog.String("config", cfg.String()))

	if cfg.Settings.TUI {
		return t.RunTUI(runCtx)
	}

	return t.Run(runCtx)
}

// statusAction prints the status of a timer running in another process.
func statusAction(ctx *cli.Context) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	running, err := store.InUse(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	if !running {
		return nil
	}

	return timer.ReportStatus(
		pathutil.StatusFilePath(),
		ctx.App.Writer,
		time.Now(),
	)
}

// statsAction reports statistics for the requested period.
func statsAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithPaths(),
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	filter, err := config.Filter(ctx, time.Now())
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := db.GetSessions(filter.StartTime, filter.EndTime)
	if err != nil {
		return err
	}

	if ctx.Bool("list") {
		stats.PrintSessions(ctx.App.Writer, sessions)
		return nil
	}

	// a missing record means there is nothing to report yet
	rec, _ := record.Read(cfg.System.RecordPath)

	summary := stats.Compute(rec, sessions, filter.StartTime, filter.EndTime)

	if ctx.Bool("json") {
		return summary.WriteJSON(ctx.App.Writer)
	}

	summary.Render(ctx.App.Writer)

	return nil
}

// resetAction deletes the lifetime record and, with --history, the stored
// sessions.
func resetAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithPaths(),
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	err = record.Remove(cfg.System.RecordPath)
	if err != nil {
		return err
	}

	pterm.Success.Println("lifetime record deleted")

	if !ctx.Bool("history") {
		return nil
	}

	start, end := time.Time{}, time.Now()

	if ctx.IsSet("since") || ctx.IsSet("until") {
		filter, err := config.Filter(ctx, end)
		if err != nil {
			return err
		}

		start, end = filter.StartTime, filter.EndTime
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.Delete(db, start, end, config.Stdin, ctx.App.Writer)
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := config.New(
		config.WithPaths(),
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// setupAction prompts for the main settings and saves them to the config
// file.
func setupAction(_ *cli.Context) error {
	cfg, err := config.New(
		config.WithPaths(),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithPromptConfig(),
	)
	if err != nil {
		return err
	}

	err = config.WriteFile(cfg.System.ConfigPath, cfg)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("settings saved to %s", cfg.System.ConfigPath)

	return nil
}

// setupLogger sends structured logs to a rotating file in the data
// directory.
func setupLogger() error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if _, exists := os.LookupEnv(envDebug); exists {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			c.App.Writer,
			"https://github.com/ayoisaiah/tomate/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TOMATE_NO_COLOR is set
	if _, exists := os.LookupEnv(envTomateNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := setupLogger()
	if err != nil {
		report.Warn("unable to set up logging", err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tomate")

	return nil
}
