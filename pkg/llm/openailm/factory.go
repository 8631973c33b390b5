package openailm

import (
	"log/slog"
	"os"

	"neuronest/pkg/config"
	"neuronest/pkg/llm"
)

// OpenAIFactory handles creation of OpenAI-compatible clients
type OpenAIFactory struct{}

// Create implements ProviderFactory
func (f *OpenAIFactory) Create(cfg llm.ProviderGroupConfig, sys *config.SystemConfig) ([]llm.LLMClient, error) {
	var clients []llm.LLMClient

	apiKey := ""
	if len(cfg.APIKeys) > 0 {
		apiKey = cfg.APIKeys[0]
	}
	if apiKey == "" {
		// The original deployment fronts Gemini through the OpenAI endpoint
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	for _, model := range cfg.Models {
		client, err := NewClient("openai", apiKey, model, cfg.BaseURL, cfg.Options)
		if err != nil {
			slog.Error("Failed to create OpenAI client", "model", model, "error", err)
			continue
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func init() {
	llm.RegisterProvider("openai", &OpenAIFactory{})
}
