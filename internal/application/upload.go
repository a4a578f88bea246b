package application

import (
	"context"
	"errors"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"go.uber.org/zap"
)

var errEmptyHandle = errors.New("empty document handle")

// UploadOrchestrator stages a document and submits it to the remote service.
type UploadOrchestrator struct {
	*core
}

// SelectFile replaces the staged document. The active document is untouched.
func (o *UploadOrchestrator) SelectFile(doc domain.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	return o.loop.Call(func() error {
		if !o.session.uploadState.CanSelect() {
			return domain.ErrUploadPending
		}

		staged := doc
		o.session.staged = &staged
		o.session.uploadState = domain.UploadFileSelected
		o.logger.Debug("file staged", zap.String("file", doc.Name), zap.Int("bytes", doc.Size()))
		return nil
	})
}

// Submit uploads the staged document. It returns once the request has been
// dispatched; the outcome is reported through events.
func (o *UploadOrchestrator) Submit() error {
	return o.loop.Call(o.submit)
}

func (o *UploadOrchestrator) submit() error {
	if o.session.uploading {
		return domain.ErrUploadPending
	}
	if o.session.staged == nil || !o.session.uploadState.CanSubmit() {
		return domain.ErrNoStagedFile
	}

	doc := *o.session.staged
	o.session.uploadState = domain.UploadUploading
	o.session.uploading = true
	o.publish(domain.Event{Kind: domain.EventPendingChanged})
	o.logger.Debug("upload dispatched", zap.String("file", doc.Name))

	dispatch(o.loop, o.ctx,
		func(ctx context.Context) (domain.DocumentHandle, error) {
			return o.remote.SubmitDocument(ctx, doc)
		},
		func(handle domain.DocumentHandle, err error) {
			o.settle(doc, handle, err)
		},
	)

	return nil
}

func (o *UploadOrchestrator) settle(doc domain.Document, handle domain.DocumentHandle, err error) {
	o.session.uploading = false
	o.publish(domain.Event{Kind: domain.EventPendingChanged})

	if err == nil && handle.IsZero() {
		err = domain.TransportError("submit document", errEmptyHandle)
	}
	if err != nil {
		o.session.uploadState = domain.UploadFailed
		o.logger.Warn("upload failed", zap.String("file", doc.Name), zap.Error(err))
		o.publish(domain.Event{
			Kind:   domain.EventUploadFailed,
			Handle: o.session.handle,
			Notice: domain.NoticeUploadFailed,
			Err:    err,
		})
		return
	}

	previous := o.session.handle
	o.session.handle = handle
	o.session.documentName = doc.Name
	o.session.staged = nil
	o.session.uploadState = domain.UploadUploaded
	o.logger.Info("upload succeeded",
		zap.String("file", doc.Name),
		zap.String("doc_id", string(handle)),
		zap.String("previous_doc_id", string(previous)),
	)
	o.publish(domain.Event{
		Kind:   domain.EventUploadSucceeded,
		Handle: handle,
		Notice: domain.NoticeUploadSucceeded,
	})
}
