package application

import (
	"context"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"go.uber.org/zap"
)

// AnalysisOrchestrator requests structured analyses of the active document.
type AnalysisOrchestrator struct {
	*core
	discardStale bool
}

// Generate dispatches an analysis request for the active document.
func (o *AnalysisOrchestrator) Generate() error {
	return o.loop.Call(o.generate)
}

func (o *AnalysisOrchestrator) generate() error {
	if o.session.handle.IsZero() {
		return domain.ErrNoDocument
	}
	if o.session.analyzing {
		return domain.ErrAnalysisPending
	}

	handle := o.session.handle
	o.session.analyzing = true
	o.publish(domain.Event{Kind: domain.EventPendingChanged})
	o.logger.Debug("analysis dispatched", zap.String("doc_id", string(handle)))

	dispatch(o.loop, o.ctx,
		func(ctx context.Context) (domain.AnalysisResult, error) {
			return o.remote.RequestAnalysis(ctx, handle)
		},
		func(result domain.AnalysisResult, err error) {
			o.settle(handle, result, err)
		},
	)

	return nil
}

func (o *AnalysisOrchestrator) settle(handle domain.DocumentHandle, result domain.AnalysisResult, err error) {
	o.session.analyzing = false
	o.publish(domain.Event{Kind: domain.EventPendingChanged})

	if err != nil {
		o.logger.Warn("analysis failed", zap.String("doc_id", string(handle)), zap.Error(err))
		o.publish(domain.Event{
			Kind:   domain.EventAnalysisFailed,
			Handle: handle,
			Notice: domain.NoticeAnalysisFailed,
			Err:    err,
		})
		return
	}

	if handle != o.session.handle {
		if o.discardStale {
			o.logger.Warn("discarding analysis for replaced document",
				zap.String("doc_id", string(handle)),
				zap.String("active_doc_id", string(o.session.handle)),
			)
			return
		}
		o.logger.Warn("applying analysis for replaced document",
			zap.String("doc_id", string(handle)),
			zap.String("active_doc_id", string(o.session.handle)),
		)
	}

	o.session.analysis = &result
	o.logger.Info("analysis ready", zap.String("doc_id", string(handle)), zap.Int("sections", result.Len()))
	o.publish(domain.Event{
		Kind:     domain.EventAnalysisReady,
		Handle:   handle,
		Analysis: &result,
	})
}
