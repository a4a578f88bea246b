package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	sessionrender "github.com/shloksachdev/PaperLens/internal/adapters/render/session"
	"github.com/shloksachdev/PaperLens/internal/application"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6
)

// Controller is the part of the session controller the shell drives.
type Controller interface {
	SelectFile(doc domain.Document) error
	SubmitUpload() error
	GenerateAnalysis() error
	Ask(question string) error
	Snapshot() (application.Snapshot, error)
	Subscribe(listener application.Listener) (func(), error)
}

type DocumentLoader interface {
	Load(path string) (domain.Document, error)
}

type snapshotMsg struct {
	snapshot application.Snapshot
	err      error
}

type eventMsg struct {
	event domain.Event
}

type intentDoneMsg struct {
	notice string
	err    error
}

type model struct {
	ctrl   Controller
	loader DocumentLoader
	writer ports.TranscriptWriter

	initialPath string

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	styles   styles

	snapshot  application.Snapshot
	notice    string
	noticeErr bool
	width     int
	quitting  bool
}

type styles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	notice  lipgloss.Style
	warning lipgloss.Style
	help    lipgloss.Style
}

func newModel(ctrl Controller, opts Options) model {
	input := textinput.New()
	input.Placeholder = "Ask a question about the document"
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		ctrl:        ctrl,
		loader:      opts.Loader,
		writer:      opts.Writer,
		initialPath: opts.InitialPath,
		input:       input,
		spinner:     s,
		viewport:    viewport.New(defaultWidth, defaultHeight-chromeHeight),
		styles: styles{
			title:   lipgloss.NewStyle().Bold(true),
			status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
			warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			help:    lipgloss.NewStyle().Faint(true),
		},
		width: defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick, m.refresh()}
	if m.initialPath != "" {
		cmds = append(cmds, m.upload(m.initialPath))
	}

	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case snapshotMsg:
		if msg.err != nil {
			m.setNotice(msg.err.Error(), true)
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.syncViewport()
		return m, nil

	case eventMsg:
		m.applyEvent(msg.event)
		return m, m.refresh()

	case intentDoneMsg:
		if msg.err != nil {
			m.setNotice(msg.err.Error(), true)
		} else if msg.notice != "" {
			m.setNotice(msg.notice, false)
		}
		return m, m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	header := m.styles.title.Render("PaperLens") + "  " + m.styles.status.Render(m.statusLine())

	var notice string
	if m.notice != "" {
		style := m.styles.notice
		if m.noticeErr {
			style = m.styles.warning
		}
		notice = style.Render(m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		notice,
		m.input.View(),
		m.styles.help.Render(helpText),
	)
}

func (m *model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	cmd := parseCommand(line)
	switch cmd.kind {
	case commandQuit:
		m.quitting = true
		return *m, tea.Quit
	case commandHelp:
		m.setNotice(helpText, false)
		return *m, nil
	case commandUnknown:
		m.setNotice(fmt.Sprintf("unknown command %s", cmd.name), true)
		return *m, nil
	case commandUpload:
		if cmd.arg == "" {
			m.setNotice("usage: /upload <path>", true)
			return *m, nil
		}
		return *m, m.upload(cmd.arg)
	case commandAnalyze:
		return *m, m.analyze()
	case commandSave:
		if cmd.arg == "" {
			m.setNotice("usage: /save <path>", true)
			return *m, nil
		}
		return *m, m.save(cmd.arg)
	default:
		if strings.TrimSpace(cmd.arg) == "" {
			return *m, nil
		}
		return *m, m.ask(cmd.arg)
	}
}

func (m *model) applyEvent(event domain.Event) {
	switch event.Kind {
	case domain.EventUploadSucceeded, domain.EventUploadFailed, domain.EventAnalysisFailed:
		m.setNotice(event.Notice, event.Err != nil)
	case domain.EventAnalysisReady:
		m.setNotice("Analysis ready.", false)
	}
}

func (m *model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *model) syncViewport() {
	m.viewport.SetContent(sessionrender.View(m.snapshot, sessionrender.RenderOptions{
		Width:      m.width,
		HideHeader: true,
	}))
	m.viewport.GotoBottom()
}

func (m model) statusLine() string {
	document := "no document"
	if m.snapshot.HasDocument() {
		document = m.snapshot.DocumentName
		if document == "" {
			document = string(m.snapshot.Handle)
		}
	}

	parts := []string{document, m.snapshot.UploadState.Label()}
	if m.snapshot.Uploading || m.snapshot.Analyzing || m.snapshot.PendingQuestions > 0 {
		parts = append(parts, m.spinner.View()+" working")
	}

	return strings.Join(parts, " · ")
}

func (m model) refresh() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		snapshot, err := ctrl.Snapshot()
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func (m model) upload(path string) tea.Cmd {
	ctrl, loader := m.ctrl, m.loader
	return func() tea.Msg {
		if loader == nil {
			return intentDoneMsg{err: errors.New("uploads are not available")}
		}

		doc, err := loader.Load(path)
		if err != nil {
			return intentDoneMsg{err: err}
		}
		if err := ctrl.SelectFile(doc); err != nil {
			return intentDoneMsg{err: err}
		}
		if err := ctrl.SubmitUpload(); err != nil {
			return intentDoneMsg{err: err}
		}

		return intentDoneMsg{notice: "Uploading " + doc.Name + "..."}
	}
}

func (m model) analyze() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if err := ctrl.GenerateAnalysis(); err != nil {
			return intentDoneMsg{err: err}
		}
		return intentDoneMsg{notice: "Generating notes..."}
	}
}

func (m model) ask(question string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		err := ctrl.Ask(question)
		if errors.Is(err, domain.ErrEmptyQuestion) {
			return intentDoneMsg{}
		}
		return intentDoneMsg{err: err}
	}
}

func (m model) save(path string) tea.Cmd {
	ctrl, writer := m.ctrl, m.writer
	return func() tea.Msg {
		if writer == nil {
			return intentDoneMsg{err: errors.New("export is not available")}
		}

		snapshot, err := ctrl.Snapshot()
		if err != nil {
			return intentDoneMsg{err: err}
		}
		if err := writer.Write(context.Background(), path, snapshot.Transcript()); err != nil {
			return intentDoneMsg{err: fmt.Errorf("save transcript: %w", err)}
		}

		return intentDoneMsg{notice: "Transcript saved to " + path}
	}
}
