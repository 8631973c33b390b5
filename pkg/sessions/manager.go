package sessions

import "sync"

// Manager holds per-session chat histories, isolated by session ID.
// Histories are in-process only and disappear on restart. Entries live
// until Remove is called; REST sessions whose clients vanish are never
// reclaimed, so long-running deployments should recycle the process or
// call Remove from a sweep of their own.
type Manager struct {
	histories map[string]*ChatHistory
	maxTurns  int
	mu        sync.RWMutex
}

// NewManager builds a session manager whose histories keep maxTurns messages.
func NewManager(maxTurns int) *Manager {
	return &Manager{
		histories: make(map[string]*ChatHistory),
		maxTurns:  maxTurns,
	}
}

// History retrieves an existing ChatHistory for a session or creates one.
func (m *Manager) History(sessionID string) *ChatHistory {
	m.mu.RLock()
	h, ok := m.histories[sessionID]
	m.mu.RUnlock()

	if ok {
		return h
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check under lock
	if h, ok = m.histories[sessionID]; ok {
		return h
	}

	h = NewChatHistory(m.maxTurns)
	m.histories[sessionID] = h
	return h
}

// Remove drops a session's history. Used when the owning connection
// closes, so churn does not accumulate dead histories.
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.histories, sessionID)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.histories)
}
