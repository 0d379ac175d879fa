package stats

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tomate/store"
)

// Delete removes the sessions that started within [start, end] after
// listing them and waiting for the user to press ENTER.
func Delete(
	db store.DB,
	start, end time.Time,
	in io.Reader,
	out io.Writer,
) error {
	sessions, err := db.GetSessions(start, end)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.WithWriter(out).Println(noSessionsMsg)
		return nil
	}

	PrintSessions(out, sessions)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(out, warning)

	reader := bufio.NewReader(in)

	_, _ = reader.ReadString('\n')

	return db.DeleteSessions(start, end)
}
