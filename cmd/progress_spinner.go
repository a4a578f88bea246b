package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	sessionrender "github.com/shloksachdev/PaperLens/internal/adapters/render/session"
	"github.com/shloksachdev/PaperLens/internal/application"
)

type snapshotter interface {
	Snapshot() (application.Snapshot, error)
}

type progressMsg struct {
	pending string
}

type progressDoneMsg struct {
	err error
}

// progressModel spins until the session settles and shows which calls are
// still outstanding each time the session reports a change.
type progressModel struct {
	spinner spinner.Model
	label   string
	pending string
	session snapshotter
	changed <-chan struct{}
	settled <-chan struct{}
	err     error
	done    bool
}

func newProgressModel(label string, session snapshotter, changed, settled <-chan struct{}) progressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return progressModel{
		spinner: s,
		label:   label,
		session: session,
		changed: changed,
		settled: settled,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.watch)
}

// watch waits for the next session change or for every call to settle.
func (m progressModel) watch() tea.Msg {
	select {
	case <-m.settled:
		return progressDoneMsg{}
	case <-m.changed:
		snapshot, err := m.session.Snapshot()
		if err != nil {
			return progressDoneMsg{err: err}
		}
		return progressMsg{pending: sessionrender.PendingLabel(snapshot)}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		m.pending = msg.pending
		return m, m.watch
	case progressDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	if m.pending == "" {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s (%s)", m.spinner.View(), m.label, m.pending)
}

func runProgress(ctx context.Context, output io.Writer, model progressModel) error {
	p := tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
