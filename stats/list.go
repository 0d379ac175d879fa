package stats

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/tomate/internal/models"
	"github.com/ayoisaiah/tomate/internal/timeutil"
	"github.com/ayoisaiah/tomate/internal/ui"
)

const dateFormat = "January 02, 2006 03:04 PM"

// PrintSessions writes a table of sessions to w.
func PrintSessions(w io.Writer, sessions []*models.Session) {
	tableBody := [][]string{
		{"#", "PHASE", "BLOCK", "START DATE", "END DATE", "LENGTH", "STATUS"},
	}

	for i, sess := range sessions {
		statusText := ui.Green("completed")
		if !sess.Completed {
			statusText = ui.Red("skipped")
		}

		endDate := sess.EndTime.Format(dateFormat)
		if sess.EndTime.IsZero() {
			endDate = ""
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.Phase,
			fmt.Sprintf("%d", sess.Block+1),
			sess.StartTime.Format(dateFormat),
			endDate,
			timeutil.FormatClock(sess.Duration),
			statusText,
		}

		tableBody = append(tableBody, row)
	}

	ui.PrintTable(tableBody, w)
}
