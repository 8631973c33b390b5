package llm

import (
	"neuronest/pkg/config"
)

// ProviderGroupConfig defines the configuration for one group of models.
type ProviderGroupConfig struct {
	Type    string         `json:"type"`
	APIKeys []string       `json:"api_keys,omitempty"`
	Models  []string       `json:"models"`
	BaseURL string         `json:"base_url,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// ProviderFactory defines the factory interface for building LLM clients.
type ProviderFactory interface {
	// Create builds a set of atomic clients from a group configuration.
	Create(groupConfig ProviderGroupConfig, systemConfig *config.SystemConfig) ([]LLMClient, error)
}

// Global provider registry
var providerRegistry = make(map[string]ProviderFactory)

// RegisterProvider registers a ProviderFactory under a type name.
func RegisterProvider(name string, factory ProviderFactory) {
	providerRegistry[name] = factory
}

// GetProviderFactory retrieves a registered ProviderFactory by type name.
func GetProviderFactory(name string) (ProviderFactory, bool) {
	f, ok := providerRegistry[name]
	return f, ok
}
