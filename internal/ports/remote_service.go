package ports

import (
	"context"

	"github.com/shloksachdev/PaperLens/internal/domain"
)

// RemoteService is the document-understanding backend. Every failure is
// reported as an error matching domain.ErrTransport. Implementations do not
// retry.
type RemoteService interface {
	SubmitDocument(ctx context.Context, doc domain.Document) (domain.DocumentHandle, error)
	RequestAnalysis(ctx context.Context, handle domain.DocumentHandle) (domain.AnalysisResult, error)
	AskQuestion(ctx context.Context, handle domain.DocumentHandle, question string) (string, error)
}
