package ultramsg

import (
	"fmt"
	"os"
	"time"

	"neuronest/pkg/config"
	"neuronest/pkg/notify"

	jsoniter "github.com/json-iterator/go"
)

// UltraMsgConfig carries UltraMsg credentials. Both fields fall back to
// the ULTRAMSG_INSTANCE_ID / ULTRAMSG_TOKEN environment variables.
type UltraMsgConfig struct {
	InstanceID string `json:"instance_id"`
	Token      string `json:"token"`
	BaseURL    string `json:"base_url,omitempty"`
}

// UltraMsgFactory builds UltraMsg notifiers
type UltraMsgFactory struct{}

// Create implements NotifierFactory
func (f *UltraMsgFactory) Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (notify.Notifier, error) {
	var cfg UltraMsgConfig
	if len(rawConfig) > 0 {
		if err := json.Unmarshal(rawConfig, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse ultramsg config: %w", err)
		}
	}

	if cfg.InstanceID == "" {
		cfg.InstanceID = os.Getenv("ULTRAMSG_INSTANCE_ID")
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("ULTRAMSG_TOKEN")
	}
	if cfg.InstanceID == "" || cfg.Token == "" {
		return nil, fmt.Errorf("missing ULTRAMSG_TOKEN or ULTRAMSG_INSTANCE_ID")
	}

	timeout := time.Duration(system.NotifyTimeoutMs) * time.Millisecond
	return NewClient(cfg.InstanceID, cfg.Token, cfg.BaseURL, timeout), nil
}

func init() {
	notify.RegisterNotifier("ultramsg", &UltraMsgFactory{})
}
