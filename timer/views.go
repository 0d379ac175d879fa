package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/tomate/internal/timeutil"
)

// describe renders s at now as
// "Phase: <name> - Time remaining: HH:MM:SS", with " - paused" appended
// while paused.
func describe(s State, now time.Time) string {
	text := fmt.Sprintf(
		"Phase: %s - Time remaining: %s",
		s.Phase.Kind,
		timeutil.FormatClock(s.Remaining(now)),
	)

	if !s.Running {
		text += " - paused"
	}

	return text
}

func (m *Model) styleFor(k Kind) phaseStyle {
	switch k {
	case ShortBreak:
		return m.styles.shortBreak
	case LongBreak:
		return m.styles.longBreak
	default:
		return m.styles.work
	}
}

func (m *Model) timerView() string {
	var s strings.Builder

	state := m.timer.State()
	style := m.styleFor(state.Phase.Kind)

	s.WriteString(style.label.Render(state.Phase.Kind.String()))

	if state.Phase.Kind == Work {
		s.WriteString(m.styles.hint.Render(fmt.Sprintf(
			" (%d/%d)",
			state.Block+1,
			state.Config.Settings.Blocks,
		)))
	}

	if !state.Running {
		s.WriteString(m.styles.hint.Render(" [Paused]"))
	} else {
		s.WriteString(m.styles.hint.Render(
			" until " + state.EndTime(m.now).Format("15:04:05"),
		))
	}

	total := state.Phase.Duration(state.Config)
	remaining := state.Remaining(m.now)

	percent := 1 - float64(remaining)/float64(total)
	percent = min(max(percent, 0), 1)

	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(timeutil.FormatClock(max(remaining, 0))))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	return m.styles.base.Render(m.timerView())
}
