// Package stats reports tomate session statistics
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tomate/internal/models"
	"github.com/ayoisaiah/tomate/internal/timeutil"
	"github.com/ayoisaiah/tomate/internal/ui"
	"github.com/ayoisaiah/tomate/record"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
	hoursInADay   = 24
	daysInAWeek   = 7
)

// Lifetime mirrors the record file in a form suitable for output.
type Lifetime struct {
	Blocks   uint32        `json:"blocks"`
	Sessions uint32        `json:"sessions"`
	WorkTime time.Duration `json:"work_time"`
}

// Summary aggregates the history of one reporting period together with the
// lifetime record.
type Summary struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	WorkSessions int           `json:"work_sessions"`
	Completed    int           `json:"completed"`
	Skipped      int           `json:"skipped"`
	WorkTime     time.Duration `json:"work_time"`
	BreakTime    time.Duration `json:"break_time"`
	ShortBreaks  int           `json:"short_breaks"`
	LongBreaks   int           `json:"long_breaks"`

	// Hourly and Weekly hold work time by the hour and weekday in which each
	// work session started.
	Hourly [hoursInADay]time.Duration `json:"hourly"`
	Weekly [daysInAWeek]time.Duration `json:"weekly"`

	Lifetime Lifetime `json:"lifetime"`
}

// Compute aggregates sessions that started within [start, end] and attaches
// the lifetime totals from rec. Sessions with an invalid end time are
// ignored.
func Compute(
	rec record.Record,
	sessions []*models.Session,
	start, end time.Time,
) Summary {
	s := Summary{
		StartTime: start,
		EndTime:   end,
		Lifetime: Lifetime{
			Blocks:   rec.Blocks,
			Sessions: rec.Sessions,
			WorkTime: rec.TotalSessionTime,
		},
	}

	for _, sess := range sessions {
		if sess.EndTime.IsZero() || sess.EndTime.Before(sess.StartTime) {
			continue
		}

		if sess.StartTime.Before(start) || sess.StartTime.After(end) {
			continue
		}

		switch sess.Phase {
		case models.PhaseWork:
			s.WorkSessions++
			s.WorkTime += sess.Duration

			if sess.Completed {
				s.Completed++
			} else {
				s.Skipped++
			}

			s.Hourly[sess.StartTime.Hour()] += sess.Duration
			s.Weekly[sess.StartTime.Weekday()] += sess.Duration
		case models.PhaseShortBreak:
			s.ShortBreaks++
			s.BreakTime += sess.Duration
		case models.PhaseLongBreak:
			s.LongBreaks++
			s.BreakTime += sess.Duration
		}
	}

	return s
}

// formatDuration renders d as hours and minutes, e.g. "2h 05m".
func formatDuration(d time.Duration) string {
	hrs, mins, _ := timeutil.SplitDuration(d)

	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

func (s *Summary) tableData() [][]string {
	return [][]string{
		{"", "PERIOD", "LIFETIME"},
		{"Work sessions", fmt.Sprintf("%d", s.WorkSessions), fmt.Sprintf("%d", s.Lifetime.Sessions)},
		{"Completed", ui.Green(s.Completed), ""},
		{"Skipped", ui.Red(s.Skipped), ""},
		{"Work time", formatDuration(s.WorkTime), formatDuration(s.Lifetime.WorkTime)},
		{"Break time", formatDuration(s.BreakTime), ""},
		{"Short breaks", fmt.Sprintf("%d", s.ShortBreaks), ""},
		{"Long breaks", fmt.Sprintf("%d", s.LongBreaks), fmt.Sprintf("%d", s.Lifetime.Blocks)},
	}
}

func barChart(header string, labels []string, values []time.Duration) string {
	bars := make(pterm.Bars, 0, len(values))

	var total time.Duration

	for i, v := range values {
		total += v

		bars = append(bars, pterm.Bar{
			Label: labels[i],
			Value: int(v.Round(time.Minute).Minutes()),
		})
	}

	if total == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)\n", header)) + chart
}

func (s *Summary) hourlyChart() string {
	labels := make([]string, hoursInADay)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:00", i)
	}

	return barChart("Hourly", labels, s.Hourly[:])
}

func (s *Summary) weeklyChart() string {
	labels := make([]string, daysInAWeek)
	for i := range labels {
		labels[i] = time.Weekday(i).String()
	}

	return barChart("Weekly", labels, s.Weekly[:])
}

// Render writes the summary as a table followed by the breakdown charts.
func (s *Summary) Render(w io.Writer) {
	period := fmt.Sprintf(
		"Reporting period: %s - %s",
		s.StartTime.Format("January 02, 2006"),
		s.EndTime.Format("January 02, 2006"),
	)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", period)

	fmt.Fprint(w, header)

	ui.PrintTable(s.tableData(), w)

	if s.WorkSessions == 0 {
		pterm.Info.WithWriter(w).Println(noSessionsMsg)
		return
	}

	charts := s.weeklyChart() + s.hourlyChart()

	fmt.Fprintln(w, strings.TrimSpace(charts))
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
