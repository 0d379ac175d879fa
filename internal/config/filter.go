package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tomate/internal/timeutil"
)

const defaultFilterDays = 7

// FilterConfig represents a configuration to filter stored sessions by their
// start time.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// Filter builds a FilterConfig from the --since and --until flags. Without
// --since, the filter covers the last seven days including today.
func Filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{
		StartTime: timeutil.RoundToStart(now.AddDate(0, 0, -(defaultFilterDays - 1))),
		EndTime:   now,
	}

	if since := ctx.String("since"); since != "" {
		t, err := timeutil.FromStr(since, now)
		if err != nil {
			return nil, errInvalidDate.Fmt("since").Wrap(err)
		}

		f.StartTime = t
	}

	if until := ctx.String("until"); until != "" {
		t, err := timeutil.FromStr(until, now)
		if err != nil {
			return nil, errInvalidDate.Fmt("until").Wrap(err)
		}

		f.EndTime = t
	}

	if !f.StartTime.Before(f.EndTime) {
		return nil, errInvalidDateRange.Fmt(
			f.StartTime.Format(time.DateTime),
			f.EndTime.Format(time.DateTime),
		)
	}

	return f, nil
}
