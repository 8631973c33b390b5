package agents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"neuronest/pkg/llm"
)

type mockLLM struct {
	CompleteFunc func(ctx context.Context, messages []llm.Message) (string, error)
}

func (m *mockLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	return m.CompleteFunc(ctx, messages)
}

func (m *mockLLM) IsTransientError(err error) bool { return false }

func TestRouter_AskPrependsPersona(t *testing.T) {
	var captured []llm.Message
	client := &mockLLM{
		CompleteFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			captured = messages
			return "Drink plenty of water.", nil
		},
	}

	router := NewRouter(NewRegistry(), client, time.Second)
	reply, err := router.Ask(context.Background(), DietAgent, "What should I eat?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if reply != "Drink plenty of water." {
		t.Errorf("unexpected reply %q", reply)
	}

	if len(captured) != 2 {
		t.Fatalf("expected system prompt + user message, got %d messages", len(captured))
	}
	if captured[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want system", captured[0].Role)
	}
	if !strings.Contains(captured[0].Content, "dietary advice") && !strings.Contains(captured[0].Content, "Dietary") {
		t.Errorf("persona prompt not forwarded: %q", captured[0].Content)
	}
	if captured[1].Role != llm.RoleUser || captured[1].Content != "What should I eat?" {
		t.Errorf("user message mangled: %+v", captured[1])
	}
}

func TestRouter_AskUnknownAgent(t *testing.T) {
	client := &mockLLM{
		CompleteFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			t.Fatal("LLM must not be called for an unknown agent")
			return "", nil
		},
	}

	router := NewRouter(NewRegistry(), client, time.Second)
	_, err := router.Ask(context.Background(), "Surgery Agent", "hello")
	if !errors.Is(err, ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Surgery Agent") {
		t.Errorf("error should name the agent, got %q", err.Error())
	}
}

func TestRouter_AskWithHistoryKeepsOrder(t *testing.T) {
	var captured []llm.Message
	client := &mockLLM{
		CompleteFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			captured = messages
			return "ok", nil
		},
	}

	history := []llm.Message{
		llm.NewUserMessage("I have a headache"),
		llm.NewAssistantMessage("How long has it lasted?"),
		llm.NewUserMessage("Two days"),
	}

	router := NewRouter(NewRegistry(), client, time.Second)
	if _, err := router.AskWithHistory(context.Background(), HealthCheckAgent, history); err != nil {
		t.Fatalf("AskWithHistory failed: %v", err)
	}

	if len(captured) != len(history)+1 {
		t.Fatalf("expected %d messages, got %d", len(history)+1, len(captured))
	}
	for i, m := range history {
		if captured[i+1].Content != m.Content {
			t.Errorf("history message %d reordered: got %q want %q", i, captured[i+1].Content, m.Content)
		}
	}
}

func TestRouter_UpstreamErrorPropagates(t *testing.T) {
	upstream := errors.New("connection reset by peer")
	client := &mockLLM{
		CompleteFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			return "", upstream
		},
	}

	router := NewRouter(NewRegistry(), client, time.Second)
	_, err := router.Ask(context.Background(), CovidAgent, "symptoms?")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
