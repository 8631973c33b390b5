package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"neuronest/pkg/agents"
	"neuronest/pkg/config"
	"neuronest/pkg/llm"
	"neuronest/pkg/monitor"
	"neuronest/pkg/notify"
	"neuronest/pkg/sessions"
)

// AgentRouter is the slice of agents.Router the server depends on.
type AgentRouter interface {
	Ask(ctx context.Context, agentName, message string) (string, error)
	AskWithHistory(ctx context.Context, agentName string, history []llm.Message) (string, error)
}

// ChatLauncher opens a pre-filled WhatsApp Web compose window.
type ChatLauncher interface {
	OpenChat(number, text string) error
}

// ReminderScheduler registers daily medicine reminders.
type ReminderScheduler interface {
	Schedule(phone, medicine, timeStr string) error
}

// Params bundles every dependency of the REST facade.
type Params struct {
	Config    *config.Config
	System    *config.SystemConfig
	Router    AgentRouter
	Registry  *agents.Registry
	Sessions  *sessions.Manager
	Notifiers map[string]notify.Notifier
	Launcher  ChatLauncher
	Scheduler ReminderScheduler
	Monitor   monitor.Monitor
}

// Server is the REST facade between the frontend and the agent stack.
type Server struct {
	cfg       *config.Config
	sys       *config.SystemConfig
	router    AgentRouter
	registry  *agents.Registry
	sessions  *sessions.Manager
	notifiers map[string]notify.Notifier
	launcher  ChatLauncher
	scheduler ReminderScheduler
	monitor   monitor.Monitor
	httpSrv   *http.Server
}

// New assembles the server; Start actually binds the port.
func New(p Params) *Server {
	return &Server{
		cfg:       p.Config,
		sys:       p.System,
		router:    p.Router,
		registry:  p.Registry,
		sessions:  p.Sessions,
		notifiers: p.Notifiers,
		launcher:  p.Launcher,
		scheduler: p.Scheduler,
		monitor:   p.Monitor,
	}
}

// Handler builds the route table. Exposed separately so tests can drive
// the mux through httptest without opening a socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/query", s.handleQuery)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/emergency", s.handleEmergency)
	mux.HandleFunc("POST /api/medicine-reminder", s.handleReminder)
	mux.HandleFunc("GET /api/services", s.handleServices)
	mux.HandleFunc("GET /api/agents", s.handleAgents)
	mux.HandleFunc("/ws", s.handleWebSocket)

	return mux
}

// Start launches the HTTP listener in a background goroutine.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.sys.HTTPPort)
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	slog.Info("REST API listening", "port", s.sys.HTTPPort)

	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	return nil
}

// Stop shuts the listener down, letting in-flight requests finish briefly.
func (s *Server) Stop() error {
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// observe forwards one traffic event to the monitor when one is attached.
func (s *Server) observe(msgType, agent, session, content string) {
	if s.monitor == nil {
		return
	}
	s.monitor.OnMessage(monitor.MonitorMessage{
		Timestamp:   time.Now(),
		MessageType: msgType,
		Agent:       agent,
		Session:     session,
		Content:     content,
	})
}
