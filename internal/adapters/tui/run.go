package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
)

type Options struct {
	// InitialPath is uploaded as soon as the shell starts.
	InitialPath string
	Loader      DocumentLoader
	Writer      ports.TranscriptWriter
	Input       io.Reader
	Output      io.Writer
}

// Run drives an interactive chat session until the user quits. Session
// events are forwarded to the program; intents never run inside Update so
// the session loop and the program cannot wait on each other.
func Run(ctx context.Context, ctrl Controller, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newModel(ctrl, opts), programOpts...)

	unsubscribe, err := ctrl.Subscribe(func(event domain.Event) {
		p.Send(eventMsg{event: event})
	})
	if err != nil {
		return fmt.Errorf("subscribe to session events: %w", err)
	}
	defer unsubscribe()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(model); !ok {
		return fmt.Errorf("unexpected final chat model type %T", finalModel)
	}

	return nil
}
