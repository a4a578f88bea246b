package application

import (
	"github.com/google/uuid"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
)

// Session holds the state of one user session. It is only read and written
// on the owning Loop.
type Session struct {
	id string

	uploadState  domain.UploadState
	staged       *domain.Document
	handle       domain.DocumentHandle
	documentName string

	analysis *domain.AnalysisResult
	messages []domain.Message
	question string

	uploading        bool
	analyzing        bool
	pendingQuestions int
}

func newSession() *Session {
	return &Session{
		id:          uuid.NewString(),
		uploadState: domain.UploadIdle,
	}
}

func (s *Session) appendMessage(message domain.Message) domain.Message {
	s.messages = append(s.messages, message)
	return message
}

func (s *Session) snapshot() Snapshot {
	messages := make([]domain.Message, len(s.messages))
	copy(messages, s.messages)

	var staged string
	if s.staged != nil {
		staged = s.staged.Name
	}

	return Snapshot{
		SessionID:        s.id,
		UploadState:      s.uploadState,
		StagedFile:       staged,
		Handle:           s.handle,
		DocumentName:     s.documentName,
		Analysis:         s.analysis,
		Messages:         messages,
		Question:         s.question,
		Uploading:        s.uploading,
		Analyzing:        s.analyzing,
		PendingQuestions: s.pendingQuestions,
	}
}

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	SessionID        string                 `json:"session_id"`
	UploadState      domain.UploadState     `json:"upload_state"`
	StagedFile       string                 `json:"staged_file,omitempty"`
	Handle           domain.DocumentHandle  `json:"doc_id,omitempty"`
	DocumentName     string                 `json:"document_name,omitempty"`
	Analysis         *domain.AnalysisResult `json:"analysis,omitempty"`
	Messages         []domain.Message       `json:"messages"`
	Question         string                 `json:"-"`
	Uploading        bool                   `json:"uploading"`
	Analyzing        bool                   `json:"analyzing"`
	PendingQuestions int                    `json:"pending_questions"`
}

func (s Snapshot) HasDocument() bool {
	return !s.Handle.IsZero()
}

func (s Snapshot) Transcript() ports.Transcript {
	return ports.Transcript{
		SessionID:    s.SessionID,
		DocumentName: s.DocumentName,
		Handle:       s.Handle,
		Analysis:     s.Analysis,
		Messages:     s.Messages,
	}
}
