package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/shloksachdev/PaperLens/internal/application"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/spf13/cobra"
)

// oneShot is a session driven by a single command invocation. It remembers
// the failures reported through session events so the command can exit
// non-zero.
type oneShot struct {
	ctrl   *application.Controller
	stop   func()
	asJSON bool

	mu       sync.Mutex
	failures map[domain.EventKind]error

	// changed holds at most one unread signal that session state moved.
	changed chan struct{}
}

func startOneShot(cmd *cobra.Command, app *app, asJSON bool) (*oneShot, error) {
	ctrl, stop, err := app.startSession(cmd.Context())
	if err != nil {
		return nil, err
	}

	s := &oneShot{
		ctrl:     ctrl,
		stop:     stop,
		asJSON:   asJSON,
		failures: map[domain.EventKind]error{},
		changed:  make(chan struct{}, 1),
	}
	if _, err := ctrl.Subscribe(s.record); err != nil {
		stop()
		return nil, err
	}

	return s, nil
}

func (s *oneShot) record(event domain.Event) {
	select {
	case s.changed <- struct{}{}:
	default:
	}

	if event.Err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[event.Kind] = event.Err
}

func (s *oneShot) failure(kind domain.EventKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[kind]
}

// wait blocks until every dispatched call settled. Unless the output is JSON
// a spinner shows label and the calls still outstanding.
func (s *oneShot) wait(cmd *cobra.Command, label string) error {
	settled := make(chan struct{})
	go func() {
		defer close(settled)
		s.ctrl.Wait()
	}()

	if s.asJSON {
		<-settled
		return nil
	}

	return runProgress(cmd.Context(), cmd.ErrOrStderr(), newProgressModel(label, s.ctrl, s.changed, settled))
}

// upload stages path and submits it, returning once the service answered.
func (s *oneShot) upload(cmd *cobra.Command, app *app, path string) (application.Snapshot, error) {
	doc, err := app.loader.Load(path)
	if err != nil {
		return application.Snapshot{}, err
	}
	if err := s.ctrl.SelectFile(doc); err != nil {
		return application.Snapshot{}, err
	}
	if err := s.ctrl.SubmitUpload(); err != nil {
		return application.Snapshot{}, err
	}
	if err := s.wait(cmd, "Uploading "+doc.Name+"..."); err != nil {
		return application.Snapshot{}, err
	}

	snapshot, err := s.ctrl.Snapshot()
	if err != nil {
		return application.Snapshot{}, err
	}
	if snapshot.UploadState == domain.UploadFailed {
		return snapshot, fmt.Errorf("%s: %w", domain.NoticeUploadFailed, s.failure(domain.EventUploadFailed))
	}

	return snapshot, nil
}

func (s *oneShot) close() {
	s.stop()
}

// terminalWidth reports the width of w when it is a terminal and zero
// otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return width
}

func writeJSON(cmd *cobra.Command, payload any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

var errAnswerFailed = errors.New(domain.AnswerErrorMessage)
