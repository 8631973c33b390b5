package monitor

import "time"

// Traffic classes surfaced by the monitor.
const (
	TypeUser      = "USER"      // Inbound patient message or API request
	TypeAssistant = "ASSISTANT" // Agent reply returned to the caller
	TypeAlert     = "ALERT"     // Outbound notification (emergency, reminder)
)

// MonitorMessage represents one unit of traffic flowing through the facade.
type MonitorMessage struct {
	Timestamp   time.Time
	MessageType string // TypeUser, TypeAssistant or TypeAlert
	Agent       string // Agent name or notification provider
	Session     string // Session ID or destination number
	Content     string
}

// Monitor defines the behavior of a traffic monitor.
type Monitor interface {
	// Start activates the monitor.
	Start() error

	// Stop deactivates the monitor.
	Stop() error

	// OnMessage receives and displays one monitoring message.
	OnMessage(msg MonitorMessage)
}
