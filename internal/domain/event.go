package domain

type EventKind string

const (
	EventUploadSucceeded EventKind = "upload_succeeded"
	EventUploadFailed    EventKind = "upload_failed"
	EventAnalysisReady   EventKind = "analysis_ready"
	EventAnalysisFailed  EventKind = "analysis_failed"
	EventMessageAppended EventKind = "message_appended"
	EventPendingChanged  EventKind = "pending_changed"
)

// Notification texts surfaced to the user.
const (
	NoticeUploadSucceeded = "File uploaded successfully."
	NoticeUploadFailed    = "Error uploading file"
	NoticeAnalysisFailed  = "Error generating notes"
)

// Event is emitted whenever session state changes in a way the presentation
// layer should reflect. Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Handle   DocumentHandle
	Analysis *AnalysisResult
	Message  *Message
	Notice   string
	Err      error
}

// Blocking reports whether the event should interrupt the user, as opposed
// to being shown inline.
func (e Event) Blocking() bool {
	switch e.Kind {
	case EventUploadSucceeded, EventUploadFailed, EventAnalysisFailed:
		return true
	default:
		return false
	}
}
