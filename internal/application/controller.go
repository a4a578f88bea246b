package application

import (
	"context"
	"errors"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
	"go.uber.org/zap"
)

var (
	errNilLoop          = errors.New("session loop is nil")
	errNilRemoteService = errors.New("remote service is nil")
)

type Options struct {
	Logger *zap.Logger
	// DiscardStaleAnalysis drops an analysis that settles after its document
	// was replaced instead of showing it against the new document.
	DiscardStaleAnalysis bool
}

type core struct {
	ctx     context.Context
	loop    *Loop
	session *Session
	remote  ports.RemoteService
	events  *broadcaster
	logger  *zap.Logger
}

func (c *core) publish(event domain.Event) {
	c.events.publish(event)
}

// Controller owns one session and the orchestrators that act on it. Every
// method is safe to call from any goroutine except a Listener.
type Controller struct {
	*core

	Upload       *UploadOrchestrator
	Analysis     *AnalysisOrchestrator
	Conversation *ConversationOrchestrator
}

// NewController binds a session to loop. The caller runs the loop; until it
// does, every Controller method blocks.
func NewController(loop *Loop, remote ports.RemoteService, opts Options) (*Controller, error) {
	if loop == nil {
		return nil, errNilLoop
	}
	if remote == nil {
		return nil, errNilRemoteService
	}

	session := newSession()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &core{
		ctx:     context.Background(),
		loop:    loop,
		session: session,
		remote:  remote,
		events:  &broadcaster{},
		logger:  logger.With(zap.String("session_id", session.id)),
	}

	return &Controller{
		core:         c,
		Upload:       &UploadOrchestrator{core: c},
		Analysis:     &AnalysisOrchestrator{core: c, discardStale: opts.DiscardStaleAnalysis},
		Conversation: &ConversationOrchestrator{core: c},
	}, nil
}

func (c *Controller) SessionID() string {
	return c.session.id
}

func (c *Controller) SelectFile(doc domain.Document) error {
	return c.Upload.SelectFile(doc)
}

func (c *Controller) SubmitUpload() error {
	return c.Upload.Submit()
}

func (c *Controller) GenerateAnalysis() error {
	return c.Analysis.Generate()
}

func (c *Controller) SetQuestion(text string) error {
	return c.Conversation.SetQuestion(text)
}

func (c *Controller) SendQuestion() error {
	return c.Conversation.Send()
}

func (c *Controller) Ask(question string) error {
	return c.Conversation.Ask(question)
}

// Subscribe registers listener for session events and returns a function
// that removes it.
func (c *Controller) Subscribe(listener Listener) (func(), error) {
	var id int
	if err := c.loop.Do(func() { id = c.events.add(listener) }); err != nil {
		return nil, err
	}

	return func() {
		_ = c.loop.Do(func() { c.events.remove(id) })
	}, nil
}

func (c *Controller) Snapshot() (Snapshot, error) {
	var snapshot Snapshot
	if err := c.loop.Do(func() { snapshot = c.session.snapshot() }); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// Wait blocks until every in-flight remote call has settled.
func (c *Controller) Wait() {
	c.loop.Wait()
}
