package application

import (
	"context"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"go.uber.org/zap"
)

// ConversationOrchestrator runs question/answer exchanges about the active
// document. Questions are not serialized: several may be in flight and their
// answers are appended in the order they arrive.
type ConversationOrchestrator struct {
	*core
}

// SetQuestion replaces the input buffer.
func (o *ConversationOrchestrator) SetQuestion(text string) error {
	return o.loop.Do(func() {
		o.session.question = text
	})
}

// Send asks the buffered question. The question is in the log when Send
// returns; the answer follows once the remote call settles.
func (o *ConversationOrchestrator) Send() error {
	return o.loop.Call(o.send)
}

// Ask buffers question and sends it in one step.
func (o *ConversationOrchestrator) Ask(question string) error {
	return o.loop.Call(func() error {
		o.session.question = question
		return o.send()
	})
}

func (o *ConversationOrchestrator) send() error {
	if o.session.handle.IsZero() {
		return domain.ErrNoDocument
	}
	if o.session.question == "" {
		return domain.ErrEmptyQuestion
	}

	question := o.session.question
	o.session.question = ""
	handle := o.session.handle

	asked := o.session.appendMessage(domain.UserMessage(question))
	o.publish(domain.Event{Kind: domain.EventMessageAppended, Handle: handle, Message: &asked})

	o.session.pendingQuestions++
	o.logger.Debug("question dispatched", zap.String("doc_id", string(handle)), zap.Int("pending", o.session.pendingQuestions))

	dispatch(o.loop, o.ctx,
		func(ctx context.Context) (string, error) {
			return o.remote.AskQuestion(ctx, handle, question)
		},
		func(answer string, err error) {
			o.settle(handle, answer, err)
		},
	)

	return nil
}

func (o *ConversationOrchestrator) settle(handle domain.DocumentHandle, answer string, err error) {
	o.session.pendingQuestions--

	content := answer
	if err != nil {
		o.logger.Warn("question failed", zap.String("doc_id", string(handle)), zap.Error(err))
		content = domain.AnswerErrorMessage
	}
	if handle != o.session.handle {
		o.logger.Warn("answer belongs to replaced document",
			zap.String("doc_id", string(handle)),
			zap.String("active_doc_id", string(o.session.handle)),
		)
	}

	reply := o.session.appendMessage(domain.SystemMessage(content))
	o.publish(domain.Event{Kind: domain.EventMessageAppended, Handle: handle, Message: &reply, Err: err})
}
