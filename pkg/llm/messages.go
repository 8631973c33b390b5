package llm

import "time"

// Conversation roles understood by every provider client.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single conversation turn. The facade only ever
// exchanges plain text, so content is a string rather than block list.
type Message struct {
	Role      string `json:"role"` // "system", "user" or "assistant"
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// NewSystemMessage builds a system-role message carrying an agent persona.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content, Timestamp: time.Now().Unix()}
}

// NewUserMessage builds a user-role message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Timestamp: time.Now().Unix()}
}

// NewAssistantMessage builds an assistant-role message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, Timestamp: time.Now().Unix()}
}
