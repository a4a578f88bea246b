package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
	"github.com/shloksachdev/PaperLens/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func newTestController(t *testing.T, remote ports.RemoteService, opts Options) *Controller {
	t.Helper()

	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})

	ctrl, err := NewController(loop, remote, opts)
	require.NoError(t, err)
	return ctrl
}

func testDocument(name string) domain.Document {
	return domain.Document{Name: name, Data: []byte("%PDF-1.7 " + name), MimeType: "application/pdf"}
}

func documentNamed(name string) interface{} {
	return mock.MatchedBy(func(doc domain.Document) bool {
		return doc.Name == name
	})
}

// uploadDocument drives a successful upload of name returning handle.
func uploadDocument(t *testing.T, ctrl *Controller, remote *mocks.MockRemoteService, name string, handle domain.DocumentHandle) {
	t.Helper()

	remote.EXPECT().SubmitDocument(mock.Anything, documentNamed(name)).Return(handle, nil).Once()
	require.NoError(t, ctrl.SelectFile(testDocument(name)))
	require.NoError(t, ctrl.SubmitUpload())
	ctrl.Wait()
}

func snapshot(t *testing.T, ctrl *Controller) Snapshot {
	t.Helper()

	snap, err := ctrl.Snapshot()
	require.NoError(t, err)
	return snap
}

type eventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func recordEvents(t *testing.T, ctrl *Controller) *eventRecorder {
	t.Helper()

	recorder := &eventRecorder{}
	unsubscribe, err := ctrl.Subscribe(func(event domain.Event) {
		recorder.mu.Lock()
		defer recorder.mu.Unlock()
		recorder.events = append(recorder.events, event)
	})
	require.NoError(t, err)
	t.Cleanup(unsubscribe)

	return recorder
}

func (r *eventRecorder) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]domain.EventKind, 0, len(r.events))
	for _, event := range r.events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func (r *eventRecorder) last(kind domain.EventKind) (domain.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return domain.Event{}, false
}
