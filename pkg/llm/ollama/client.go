package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"neuronest/pkg/llm"

	"github.com/ollama/ollama/api"
)

// OllamaClient Ollama API client for locally hosted models
type OllamaClient struct {
	client  *api.Client
	model   string
	options map[string]any
}

// NewOllamaClient creates an Ollama client
func NewOllamaClient(model string, baseURL string, options map[string]any) (*OllamaClient, error) {
	var client *api.Client
	var err error

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		// Local generation can take minutes; the request context carries the deadline
		Timeout: 0,
	}

	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		client = api.NewClient(u, httpClient)
	} else {
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, err
		}
	}

	slog.Info("Ollama client initialized", "model", model, "base_url", baseURL)

	return &OllamaClient{
		client:  client,
		model:   model,
		options: options,
	}, nil
}

func (o *OllamaClient) Provider() string {
	return "ollama"
}

func (o *OllamaClient) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "server busy")
}

// Complete implements llm.LLMClient
func (o *OllamaClient) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    o.model,
		Messages: o.convertMessages(messages),
		Stream:   &stream,
		Options:  o.options,
	}

	var sb strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama completion failed: %w", err)
	}

	return strings.TrimSpace(sb.String()), nil
}

func (o *OllamaClient) convertMessages(messages []llm.Message) []api.Message {
	converted := make([]api.Message, 0, len(messages))
	for _, m := range messages {
		converted = append(converted, api.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return converted
}
