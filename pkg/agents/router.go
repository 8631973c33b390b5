package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"neuronest/pkg/llm"
)

// ErrAgentNotFound is returned when a request names an unknown agent.
var ErrAgentNotFound = errors.New("agent not found")

// Router forwards user messages to the agent's LLM completion. It owns
// the per-request timeout; retry and provider fallback live inside the
// llm.FallbackClient.
type Router struct {
	registry *Registry
	client   llm.LLMClient
	timeout  time.Duration
}

// NewRouter wires an agent registry to an LLM client.
func NewRouter(registry *Registry, client llm.LLMClient, timeout time.Duration) *Router {
	return &Router{
		registry: registry,
		client:   client,
		timeout:  timeout,
	}
}

// Ask resolves the agent's persona, submits it with the user message and
// returns the raw text reply.
func (r *Router) Ask(ctx context.Context, agentName, message string) (string, error) {
	return r.AskWithHistory(ctx, agentName, []llm.Message{llm.NewUserMessage(message)})
}

// AskWithHistory behaves like Ask but carries prior conversation turns so
// session-aware endpoints can keep short-term context.
func (r *Router) AskWithHistory(ctx context.Context, agentName string, history []llm.Message) (string, error) {
	prompt, ok := r.registry.Prompt(agentName)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAgentNotFound, agentName)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.NewSystemMessage(prompt))
	messages = append(messages, history...)

	start := time.Now()
	reply, err := r.client.Complete(ctx, messages)
	if err != nil {
		return "", err
	}

	slog.Debug("Agent completion finished", "agent", agentName, "duration", time.Since(start).String())
	return reply, nil
}
