package timer

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	padding  = 2
	maxWidth = 60
)

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p/space", "pause/resume"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip phase"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type phaseStyle struct {
	label lipgloss.Style
}

type styles struct {
	base       lipgloss.Style
	main       lipgloss.Style
	hint       lipgloss.Style
	work       phaseStyle
	shortBreak phaseStyle
	longBreak  phaseStyle
}

func newStyles() styles {
	label := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return styles{
		base: lipgloss.NewStyle().Padding(1, padding),
		main: lipgloss.NewStyle().Bold(true),
		hint: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		work: phaseStyle{
			label: label.Background(lipgloss.Color("#e64553")).
				Foreground(lipgloss.Color("#ffffff")),
		},
		shortBreak: phaseStyle{
			label: label.Background(lipgloss.Color("#1e66f5")).
				Foreground(lipgloss.Color("#ffffff")),
		},
		longBreak: phaseStyle{
			label: label.Background(lipgloss.Color("#8839ef")).
				Foreground(lipgloss.Color("#ffffff")),
		},
	}
}

type tickMsg time.Time

// Model is the terminal UI for a Timer. All state changes go through the
// Timer so the console and terminal front ends behave the same.
type Model struct {
	timer    *Timer
	now      time.Time
	progress progress.Model
	help     help.Model
	styles   styles
	err      error
	quitting bool
}

// NewModel returns a terminal UI model driving t.
func NewModel(t *Timer) *Model {
	return &Model{
		timer:    t,
		now:      t.clock.Now(),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		styles:   newStyles(),
	}
}

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) stop(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.quitting = true

	return m, tea.Quit
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.timer.clock.Now()

		_, err := m.timer.Tick(m.now)
		if err != nil {
			return m.stop(err)
		}

		return m, m.tick()

	case tea.KeyMsg:
		m.now = m.timer.clock.Now()

		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			m.timer.Toggle(m.now)
		case key.Matches(msg, defaultKeymap.skip):
			_, err := m.timer.Skip(m.now)
			if err != nil {
				return m.stop(err)
			}
		case key.Matches(msg, defaultKeymap.quit):
			return m.stop(nil)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	return m, nil
}

// RunTUI runs the terminal UI until the user quits or ctx is cancelled.
func (t *Timer) RunTUI(ctx context.Context) error {
	defer t.shutdown()

	m := NewModel(t)

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return m.Err()
}
