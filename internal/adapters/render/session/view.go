package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/shloksachdev/PaperLens/internal/application"
	"github.com/shloksachdev/PaperLens/internal/domain"
)

type RenderOptions struct {
	// Width wraps bodies and messages; zero leaves lines as they are.
	Width            int
	HideHeader       bool
	HideAnalysis     bool
	HideConversation bool
}

// View renders snapshot without running a program. Interactive shells call it
// on every redraw.
func View(snapshot application.Snapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	var blocks []string

	if !opts.HideHeader {
		blocks = append(blocks, renderHeader(snapshot, s))
	}
	if !opts.HideAnalysis {
		blocks = append(blocks, s.section.Render(renderAnalysis(snapshot, opts, s)))
	}
	if !opts.HideConversation {
		blocks = append(blocks, s.section.Render(renderConversation(snapshot.Messages, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderHeader(snapshot application.Snapshot, s styles) string {
	lines := []string{
		s.title.Render("PaperLens"),
		s.header.Render("document: " + documentLabel(snapshot)),
		s.header.Render("upload: " + uploadLabel(snapshot)),
	}

	if pending := PendingLabel(snapshot); pending != "" {
		lines = append(lines, s.pending.Render(pending))
	}
	if snapshot.UploadState == domain.UploadFailed {
		lines = append(lines, s.warning.Render(domain.NoticeUploadFailed))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAnalysis(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{s.heading.Render("Analysis")}

	if snapshot.Analysis == nil || snapshot.Analysis.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No analysis yet."))...)
	}

	lines = append(lines, lo.Map(snapshot.Analysis.Sections(), func(section domain.Section, _ int) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.sectionName.Render(section.Name),
			wrap(s.body, opts.Width).Render(section.Body),
		)
	})...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConversation(messages []domain.Message, opts RenderOptions, s styles) string {
	lines := []string{s.heading.Render("Conversation")}

	if len(messages) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No questions asked yet."))...)
	}

	lines = append(lines, lo.Map(messages, func(message domain.Message, _ int) string {
		return renderMessage(message, opts, s)
	})...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(message domain.Message, opts RenderOptions, s styles) string {
	label := s.systemLabel
	content := s.body
	if message.Role == domain.RoleUser {
		label = s.userLabel
	}
	if message.Role == domain.RoleSystem && message.Content == domain.AnswerErrorMessage {
		content = s.errorReply
	}

	prefix := label.Render(message.Role.Label() + ": ")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		prefix,
		wrap(content, opts.Width-lipgloss.Width(prefix)).Render(message.Content),
	)
}

func documentLabel(snapshot application.Snapshot) string {
	if !snapshot.HasDocument() {
		return "none"
	}
	if snapshot.DocumentName == "" {
		return string(snapshot.Handle)
	}

	return fmt.Sprintf("%s (%s)", snapshot.DocumentName, snapshot.Handle)
}

func uploadLabel(snapshot application.Snapshot) string {
	label := snapshot.UploadState.Label()
	if snapshot.StagedFile != "" && snapshot.UploadState != domain.UploadUploaded {
		label += ": " + snapshot.StagedFile
	}

	return label
}

// PendingLabel lists the calls still outstanding, or returns "" when none are.
func PendingLabel(snapshot application.Snapshot) string {
	var parts []string
	if snapshot.Uploading {
		parts = append(parts, "uploading")
	}
	if snapshot.Analyzing {
		parts = append(parts, "analyzing")
	}
	if snapshot.PendingQuestions == 1 {
		parts = append(parts, "waiting for 1 answer")
	}
	if snapshot.PendingQuestions > 1 {
		parts = append(parts, fmt.Sprintf("waiting for %d answers", snapshot.PendingQuestions))
	}
	if len(parts) == 0 {
		return ""
	}

	return "pending: " + strings.Join(parts, ", ")
}

func wrap(style lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return style
	}

	return style.Width(width)
}
