package toml

import (
	"time"

	"github.com/samber/lo"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version      int             `toml:"version"`
	SessionID    string          `toml:"session_id"`
	ExportedAt   string          `toml:"exported_at"`
	DocumentName string          `toml:"document_name,omitempty"`
	DocID        string          `toml:"doc_id,omitempty"`
	Analysis     []sectionSchema `toml:"analysis,omitempty"`
	Messages     []messageSchema `toml:"messages,omitempty"`
}

type sectionSchema struct {
	Name string `toml:"name"`
	Body string `toml:"body,multiline"`
}

type messageSchema struct {
	Role    string `toml:"role"`
	Content string `toml:"content,multiline"`
}

func toSchema(transcript ports.Transcript, exportedAt time.Time) fileSchema {
	file := fileSchema{
		Version:      currentSchemaVersion,
		SessionID:    transcript.SessionID,
		ExportedAt:   exportedAt.UTC().Format(time.RFC3339),
		DocumentName: transcript.DocumentName,
		DocID:        string(transcript.Handle),
		Messages: lo.Map(transcript.Messages, func(message domain.Message, _ int) messageSchema {
			return messageSchema{Role: string(message.Role), Content: message.Content}
		}),
	}

	if transcript.Analysis != nil {
		file.Analysis = lo.Map(transcript.Analysis.Sections(), func(section domain.Section, _ int) sectionSchema {
			return sectionSchema{Name: section.Name, Body: section.Body}
		})
	}

	return file
}
