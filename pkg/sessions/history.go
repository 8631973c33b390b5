package sessions

import (
	"sync"

	"neuronest/pkg/llm"
)

// ChatHistory keeps one session's conversation with a sliding window:
// once maxTurns messages are stored, the oldest is dropped for each new one.
type ChatHistory struct {
	messages []llm.Message
	maxTurns int
	mu       sync.RWMutex
}

// NewChatHistory builds a history limited to maxTurns messages.
// A non-positive limit disables the window.
func NewChatHistory(maxTurns int) *ChatHistory {
	return &ChatHistory{
		messages: make([]llm.Message, 0),
		maxTurns: maxTurns,
	}
}

// Add appends a message, evicting the oldest when the window is full.
func (h *ChatHistory) Add(msg llm.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, msg)
	if h.maxTurns > 0 && len(h.messages) > h.maxTurns {
		h.messages = h.messages[len(h.messages)-h.maxTurns:]
	}
}

// Messages returns a copy of the current window.
func (h *ChatHistory) Messages() []llm.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cp := make([]llm.Message, len(h.messages))
	copy(cp, h.messages)
	return cp
}

// Len reports the number of stored messages.
func (h *ChatHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}
