package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"neuronest/pkg/agents"
	"neuronest/pkg/api"
	"neuronest/pkg/llm"
	"neuronest/pkg/monitor"
	"neuronest/pkg/utils"
)

// agentAction is the structured payload an agent may emit instead of a
// plain reply when it wants the facade to perform a side effect.
type agentAction struct {
	Action       string `json:"action"`
	Phone        string `json:"phone"`
	MedicineName string `json:"medicine_name"`
	ReminderTime string `json:"reminder_time"`
	PatientName  string `json:"patient_name"`
	Condition    string `json:"condition"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req api.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Message == "" {
		writeDetail(w, http.StatusBadRequest, missingDetail([]string{"message"}))
		return
	}

	agentName := req.Agent
	if agentName == "" {
		agentName = agents.WelcomeAgent
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = utils.GenerateID()
	}

	history := s.sessions.History(sessionID)
	history.Add(llm.NewUserMessage(req.Message))

	s.observe(monitor.TypeUser, agentName, sessionID, req.Message)

	reply, err := s.router.AskWithHistory(r.Context(), agentName, history.Messages())
	if err != nil {
		if errors.Is(err, agents.ErrAgentNotFound) {
			writeDetail(w, http.StatusNotFound, "Agent not found")
			return
		}
		slog.Error("Chat agent call failed", "agent", agentName, "session", sessionID, "error", err)
		writeDetail(w, http.StatusBadGateway, fmt.Sprintf("Error processing request: %v", err))
		return
	}

	history.Add(llm.NewAssistantMessage(reply))
	s.observe(monitor.TypeAssistant, agentName, sessionID, reply)

	// Agents can answer with a structured action instead of prose
	if resp, handled := s.performAction(r, reply); handled {
		writeJSON(w, http.StatusOK, api.ChatResponse{Response: resp, SessionID: sessionID})
		return
	}

	writeJSON(w, http.StatusOK, api.ChatResponse{Response: reply, SessionID: sessionID})
}

// performAction inspects an agent reply for a JSON action payload and
// executes it. The bool result reports whether an action was performed.
func (s *Server) performAction(r *http.Request, reply string) (string, bool) {
	var action agentAction
	if err := json.UnmarshalFromString(reply, &action); err != nil || action.Action == "" {
		return "", false
	}

	switch action.Action {
	case "schedule_reminder":
		if err := s.scheduler.Schedule(action.Phone, action.MedicineName, action.ReminderTime); err != nil {
			slog.Error("Agent-requested reminder failed", "error", err)
			return fmt.Sprintf("Could not schedule the reminder: %v", err), true
		}
		return fmt.Sprintf("✅ Reminder set for %s at %s via WhatsApp to %s.",
			action.MedicineName, action.ReminderTime, action.Phone), true

	case "emergency_alert":
		name := action.PatientName
		if name == "" {
			name = "Unknown"
		}
		condition := action.Condition
		if condition == "" {
			condition = "unspecified"
		}
		if _, err := s.dispatchEmergency(r, name, condition); err != nil {
			slog.Error("Agent-requested emergency alert failed", "error", err)
			return fmt.Sprintf("Could not dispatch the emergency alert: %v", err), true
		}
		return fmt.Sprintf("🚨 Emergency alert sent to the emergency department via WhatsApp for %s with condition: %s.",
			name, condition), true
	}

	return "", false
}
