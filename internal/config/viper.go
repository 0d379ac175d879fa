package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyShortBreakDuration   = "short_break.duration"
	keyLongBreakDuration    = "long_break.duration"
	keyBlocks               = "settings.blocks"
	keyAutoStart            = "settings.auto_start"
	keyAutoStartSession     = "settings.auto_start_session"
	keyAutoStartBreak       = "settings.auto_start_break"
	keySessionCmd           = "settings.cmd"
	keyTUI                  = "settings.tui"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsFatal   = "notifications.fatal"
	keyNotificationsSound   = "notifications.sound"
	keyNotificationsMessage = "notifications.message"
	keyRecordPath           = "record.path"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with the default settings if it
// does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with the default settings.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, defaultWork.String())
	v.SetDefault(keyShortBreakDuration, defaultShortBreak.String())
	v.SetDefault(keyLongBreakDuration, defaultLongBreak.String())
	v.SetDefault(keyBlocks, defaultBlocks)
	v.SetDefault(keyAutoStart, defaultAutoStart)
	v.SetDefault(keyAutoStartSession, defaultAutoStartSession)
	v.SetDefault(keyAutoStartBreak, defaultAutoStartBreak)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTUI, false)
	v.SetDefault(keyNotificationsEnabled, defaultNotify)
	v.SetDefault(keyNotificationsFatal, false)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keyNotificationsMessage, defaultMessage)
	v.SetDefault(keyRecordPath, "")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := loadDurations(v, c); err != nil {
		return fmt.Errorf("loading durations failed: %w", err)
	}

	c.Settings.Blocks = v.GetInt(keyBlocks)
	c.Settings.AutoStart = v.GetBool(keyAutoStart)
	c.Settings.AutoStartSession = v.GetBool(keyAutoStartSession)
	c.Settings.AutoStartBreak = v.GetBool(keyAutoStartBreak)
	c.Settings.SessionCmd = v.GetString(keySessionCmd)
	c.Settings.TUI = v.GetBool(keyTUI)

	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Notifications.Fatal = v.GetBool(keyNotificationsFatal)
	c.Notifications.Sound = v.GetBool(keyNotificationsSound)
	c.Notifications.Message = v.GetString(keyNotificationsMessage)

	if p := v.GetString(keyRecordPath); p != "" {
		c.System.RecordPath = p
	}

	c.System.ConfigPath = v.ConfigFileUsed()

	return nil
}

// loadDurations handles parsing duration strings from Viper.
func loadDurations(v *viper.Viper, c *Config) error {
	durations := []struct {
		key  string
		dest *time.Duration
	}{
		{keyWorkDuration, &c.Work},
		{keyShortBreakDuration, &c.ShortBreak},
		{keyLongBreakDuration, &c.LongBreak},
	}

	for _, d := range durations {
		dur, err := parseDuration(v.GetString(d.key))
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", d.key, err)
		}

		*d.dest = dur
	}

	return nil
}

// WriteFile saves the timer settings in c to the YAML file at configPath,
// replacing its contents.
func WriteFile(configPath string, c *Config) error {
	v := viper.New()

	v.SetConfigType("yaml")

	setupViper(v)

	v.Set(keyWorkDuration, c.Work.String())
	v.Set(keyShortBreakDuration, c.ShortBreak.String())
	v.Set(keyLongBreakDuration, c.LongBreak.String())
	v.Set(keyBlocks, c.Settings.Blocks)
	v.Set(keyAutoStart, c.Settings.AutoStart)
	v.Set(keyAutoStartSession, c.Settings.AutoStartSession)
	v.Set(keyAutoStartBreak, c.Settings.AutoStartBreak)
	v.Set(keySessionCmd, c.Settings.SessionCmd)
	v.Set(keyTUI, c.Settings.TUI)
	v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
	v.Set(keyNotificationsFatal, c.Notifications.Fatal)
	v.Set(keyNotificationsSound, c.Notifications.Sound)
	v.Set(keyNotificationsMessage, c.Notifications.Message)

	if err := v.WriteConfigAs(configPath); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// parseDuration accepts Go duration strings as well as bare numbers, which
// are interpreted as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
