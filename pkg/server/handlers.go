package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"neuronest/pkg/agents"
	"neuronest/pkg/api"
	"neuronest/pkg/monitor"
	"neuronest/pkg/reminder"
)

// emergencyText formats the alert body pushed to the hospital line.
func emergencyText(patientName, condition string) string {
	return fmt.Sprintf("🚨 Emergency Alert!\nPatient: %s\nCondition: %s\nPlease respond urgently!",
		patientName, condition)
}

// registrationText is the canned hand-off message routed to the agent
// selected for the requested service.
func registrationText(req api.RegisterRequest) string {
	return fmt.Sprintf("A new patient has just registered.\nName: %s\nAge: %d\nRequested service: %s\nGreet them by name and explain how you can help.",
		req.Name, req.Age, req.Service)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Age <= 0 {
		missing = append(missing, "age")
	}
	if req.Service == "" {
		missing = append(missing, "service")
	}
	if len(missing) > 0 {
		writeDetail(w, http.StatusBadRequest, missingDetail(missing))
		return
	}

	nextAgent, ok := agents.ServiceAgent(req.Service)
	if !ok {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Unrecognized service %q", req.Service))
		return
	}

	s.observe(monitor.TypeUser, agents.RegistrationAgent, req.Phone, fmt.Sprintf("register: %s -> %s", req.Name, req.Service))

	reply, err := s.router.Ask(r.Context(), nextAgent, registrationText(req))
	if err != nil {
		slog.Error("Registration agent call failed", "agent", nextAgent, "error", err)
		writeDetail(w, http.StatusBadGateway, fmt.Sprintf("Error processing request: %v", err))
		return
	}

	s.observe(monitor.TypeAssistant, nextAgent, req.Phone, reply)

	writeJSON(w, http.StatusOK, api.RegisterResponse{
		Response:  reply,
		NextAgent: nextAgent,
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req api.QueryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var missing []string
	if req.AgentName == "" {
		missing = append(missing, "agent_name")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		writeDetail(w, http.StatusBadRequest, missingDetail(missing))
		return
	}

	s.observe(monitor.TypeUser, req.AgentName, "", req.Message)

	reply, err := s.router.Ask(r.Context(), req.AgentName, req.Message)
	if err != nil {
		if errors.Is(err, agents.ErrAgentNotFound) {
			writeDetail(w, http.StatusNotFound, "Agent not found")
			return
		}
		slog.Error("Agent query failed", "agent", req.AgentName, "error", err)
		writeDetail(w, http.StatusBadGateway, fmt.Sprintf("Error processing request: %v", err))
		return
	}

	s.observe(monitor.TypeAssistant, req.AgentName, "", reply)

	writeJSON(w, http.StatusOK, api.QueryResponse{Response: reply})
}

func (s *Server) handleEmergency(w http.ResponseWriter, r *http.Request) {
	var req api.EmergencyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var missing []string
	if req.PatientName == "" {
		missing = append(missing, "patient_name")
	}
	if req.Condition == "" {
		missing = append(missing, "condition")
	}
	if len(missing) > 0 {
		writeDetail(w, http.StatusBadRequest, missingDetail(missing))
		return
	}

	status, err := s.dispatchEmergency(r, req.PatientName, req.Condition)
	if err != nil {
		writeDetail(w, http.StatusBadGateway, fmt.Sprintf("Failed to dispatch emergency alert: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, api.EmergencyResponse{Status: status})
}

// emergencyRecipient resolves where one notifier's alert goes. Destinations
// are provider-specific, so the hospital WhatsApp line only applies to the
// WhatsApp provider; an explicit emergency_recipients entry wins, and any
// other provider is left to its own configured default (e.g. the Telegram
// staff chat).
func (s *Server) emergencyRecipient(name string) string {
	if to, ok := s.cfg.EmergencyRecipients[name]; ok {
		return to
	}
	if name == "ultramsg" {
		return s.cfg.HospitalNumber
	}
	return ""
}

// dispatchEmergency delivers the alert through the configured path:
// "deeplink" (default) opens a pre-filled WhatsApp Web compose window,
// "provider" pushes directly via every configured notifier.
func (s *Server) dispatchEmergency(r *http.Request, patientName, condition string) (string, error) {
	body := emergencyText(patientName, condition)

	if s.cfg.EmergencyMode == "provider" {
		if len(s.notifiers) == 0 {
			return "", fmt.Errorf("no notifiers configured")
		}
		var lastErr error
		delivered := 0
		for name, n := range s.notifiers {
			to := s.emergencyRecipient(name)
			if err := n.Send(r.Context(), to, body); err != nil {
				slog.Error("Emergency send failed", "notifier", name, "error", err)
				lastErr = err
				continue
			}
			delivered++
			s.observe(monitor.TypeAlert, name, to, body)
		}
		if delivered == 0 {
			return "", lastErr
		}
		return "Emergency alert sent to the emergency department", nil
	}

	if err := s.launcher.OpenChat(s.cfg.HospitalNumber, body); err != nil {
		return "", err
	}
	s.observe(monitor.TypeAlert, "deeplink", s.cfg.HospitalNumber, body)
	return "Emergency message opened in WhatsApp Web", nil
}

func (s *Server) handleReminder(w http.ResponseWriter, r *http.Request) {
	var req api.ReminderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var missing []string
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.MedicineName == "" {
		missing = append(missing, "medicine_name")
	}
	if req.ReminderTime == "" {
		missing = append(missing, "reminder_time")
	}
	if len(missing) > 0 {
		writeDetail(w, http.StatusBadRequest, missingDetail(missing))
		return
	}

	if err := s.scheduler.Schedule(req.Phone, req.MedicineName, req.ReminderTime); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.observe(monitor.TypeAlert, "scheduler", req.Phone, reminder.MessageFor(req.MedicineName))

	writeJSON(w, http.StatusOK, api.ReminderResponse{
		Status:   "Reminder scheduled daily via WhatsApp",
		Phone:    req.Phone,
		Medicine: req.MedicineName,
		Time:     req.ReminderTime,
	})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.ServicesResponse{Services: agents.ServiceCatalog()})
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.AgentsResponse{Agents: s.registry.Names()})
}
