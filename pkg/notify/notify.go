package notify

import (
	"context"

	"neuronest/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

// Notifier delivers an outbound message (emergency alert, medicine
// reminder) to a destination on some messaging platform. Implementations
// perform exactly one delivery attempt; there is no retry layer.
type Notifier interface {
	// ID returns the unique provider identifier (e.g. "ultramsg").
	ID() string
	// Send pushes a text body to the destination. The destination format
	// is provider-specific: a phone number for WhatsApp providers, a chat
	// ID for Telegram.
	Send(ctx context.Context, to string, body string) error
}

// NotifierFactory defines the abstract interface for provider-specific
// notifier creators. New platforms plug in without touching the loader.
type NotifierFactory interface {
	// Create instantiates a concrete Notifier from its raw configuration.
	Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (Notifier, error)
}

// notifierRegistry maps provider names to their factory implementations.
var notifierRegistry = make(map[string]NotifierFactory)

// RegisterNotifier adds a NotifierFactory to the global registry.
// Typically called during the provider package's init() phase.
func RegisterNotifier(name string, factory NotifierFactory) {
	notifierRegistry[name] = factory
}

// GetNotifierFactory retrieves a registered NotifierFactory by name.
func GetNotifierFactory(name string) (NotifierFactory, bool) {
	f, ok := notifierRegistry[name]
	return f, ok
}
