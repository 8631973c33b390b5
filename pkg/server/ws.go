package server

import (
	"log/slog"
	"net/http"
	"sync"

	"neuronest/pkg/agents"
	"neuronest/pkg/llm"
	"neuronest/pkg/monitor"
	"neuronest/pkg/utils"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for decoupled UI
	},
}

// safeConn serializes writes; gorilla allows only one concurrent writer.
type safeConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (sc *safeConn) WriteJSON(v any) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.Conn.WriteJSON(v)
}

// wsIncoming is one frame from the browser. Agent is optional and defaults
// to the Welcome Agent; the session is pinned to the connection.
type wsIncoming struct {
	Message string `json:"message"`
	Agent   string `json:"agent,omitempty"`
}

// wsOutgoing is one reply frame pushed back to the browser.
type wsOutgoing struct {
	Type     string `json:"type"` // "text" or "error"
	Text     string `json:"text,omitempty"`
	Agent    string `json:"agent,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Session  string `json:"session_id,omitempty"`
}

// handleWebSocket serves the live-chat endpoint. Each connection gets its
// own session history, so the browser keeps short-term context without
// resending the transcript.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WS upgrade failed", "error", err)
		return
	}
	conn := &safeConn{Conn: rawConn}
	defer conn.Close()

	// The session is pinned to the connection; drop its history on close
	// so churning clients do not accumulate dead sessions.
	sessionID := utils.GenerateID()
	history := s.sessions.History(sessionID)
	defer s.sessions.Remove(sessionID)

	conn.WriteJSON(wsOutgoing{Type: "text", Session: sessionID})

	for {
		var incoming wsIncoming
		if err := conn.ReadJSON(&incoming); err != nil {
			break
		}
		if incoming.Message == "" {
			conn.WriteJSON(wsOutgoing{Type: "error", Detail: "Empty message"})
			continue
		}

		agentName := incoming.Agent
		if agentName == "" {
			agentName = agents.WelcomeAgent
		}

		history.Add(llm.NewUserMessage(incoming.Message))
		s.observe(monitor.TypeUser, agentName, sessionID, incoming.Message)

		reply, err := s.router.AskWithHistory(r.Context(), agentName, history.Messages())
		if err != nil {
			slog.Error("WS agent call failed", "agent", agentName, "session", sessionID, "error", err)
			conn.WriteJSON(wsOutgoing{Type: "error", Detail: err.Error()})
			continue
		}

		history.Add(llm.NewAssistantMessage(reply))
		s.observe(monitor.TypeAssistant, agentName, sessionID, reply)

		if err := conn.WriteJSON(wsOutgoing{Type: "text", Text: reply, Agent: agentName, Session: sessionID}); err != nil {
			break
		}
	}
}
