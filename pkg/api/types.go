// Package api holds the transport DTOs exchanged with the frontend.
package api

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Age     int    `json:"age"`
	Service string `json:"service"`
}

// RegisterResponse carries the greeting reply and the agent that takes
// over the conversation.
type RegisterResponse struct {
	Response  string `json:"response"`
	NextAgent string `json:"next_agent"`
}

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	AgentName string `json:"agent_name"`
	Message   string `json:"message"`
}

// QueryResponse carries a single agent reply.
type QueryResponse struct {
	Response string `json:"response"`
}

// ChatRequest is the body of POST /api/chat. Agent and SessionID are
// optional; missing values default to the Welcome Agent and a fresh session.
type ChatRequest struct {
	Message   string `json:"message"`
	Agent     string `json:"agent,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse carries the reply plus the session the caller should reuse.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// EmergencyRequest is the body of POST /api/emergency.
type EmergencyRequest struct {
	PatientName string `json:"patient_name"`
	Condition   string `json:"condition"`
}

// EmergencyResponse reports how the alert was dispatched.
type EmergencyResponse struct {
	Status string `json:"status"`
}

// ReminderRequest is the body of POST /api/medicine-reminder.
type ReminderRequest struct {
	Phone        string `json:"phone"`
	MedicineName string `json:"medicine_name"`
	ReminderTime string `json:"reminder_time"`
}

// ReminderResponse echoes the registered reminder.
type ReminderResponse struct {
	Status   string `json:"status"`
	Phone    string `json:"phone"`
	Medicine string `json:"medicine"`
	Time     string `json:"time"`
}

// ServicesResponse lists the fixed service catalog.
type ServicesResponse struct {
	Services []string `json:"services"`
}

// AgentsResponse lists the registered agent names.
type AgentsResponse struct {
	Agents []string `json:"agents"`
}

// ErrorResponse is the uniform error body; Detail is human-readable.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
