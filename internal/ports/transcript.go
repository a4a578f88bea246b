package ports

import (
	"context"

	"github.com/shloksachdev/PaperLens/internal/domain"
)

// Transcript is a point-in-time copy of a session, suitable for export.
type Transcript struct {
	SessionID    string
	DocumentName string
	Handle       domain.DocumentHandle
	Analysis     *domain.AnalysisResult
	Messages     []domain.Message
}

type TranscriptWriter interface {
	Write(ctx context.Context, path string, transcript Transcript) error
}
