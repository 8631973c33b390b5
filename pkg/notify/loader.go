package notify

import (
	"log/slog"

	"neuronest/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

// LoadFromConfig resolves a factory for every configured notifier and
// returns the built providers keyed by name. A provider that fails to
// initialize is skipped with a log entry rather than aborting startup.
func LoadFromConfig(configs map[string]jsoniter.RawMessage, system *config.SystemConfig) map[string]Notifier {
	notifiers := make(map[string]Notifier, len(configs))

	for name, rawConfig := range configs {
		factory, ok := GetNotifierFactory(name)
		if !ok {
			slog.Warn("Unknown notifier type", "name", name)
			continue
		}

		notifier, err := factory.Create(rawConfig, system)
		if err != nil {
			slog.Error("Failed to create notifier", "name", name, "error", err)
			continue
		}
		if notifier == nil {
			continue
		}

		notifiers[name] = notifier
		slog.Info("Notifier registered", "name", name)
	}

	return notifiers
}
