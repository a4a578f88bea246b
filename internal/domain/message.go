package domain

type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Label is the speaker name shown next to a message.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// AnswerErrorMessage replaces the answer when a question could not be
// answered.
const AnswerErrorMessage = "Error getting answer."

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}
