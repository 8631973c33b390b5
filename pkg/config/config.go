package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// Config defines the business-level application configuration.
// It maps directly to config.json: LLM provider groups, outbound
// notification providers, and clinic-specific settings.
type Config struct {
	// LLM holds the provider group list in raw JSON form; it is parsed
	// by the llm package against its own registry.
	LLM jsoniter.RawMessage `json:"llm"`
	// Notifiers maps provider identifiers (e.g. "ultramsg", "telegram")
	// to their specific configuration payloads in raw JSON format.
	Notifiers map[string]jsoniter.RawMessage `json:"notifiers"`
	// AgentsFile is an optional path to a JSON file overriding the
	// built-in agent personas. Watched for hot reload when set.
	AgentsFile string `json:"agents_file,omitempty"`
	// HospitalNumber is the WhatsApp destination for emergency alerts,
	// in international format without the leading plus (e.g. "923412583056").
	HospitalNumber string `json:"hospital_number"`
	// EmergencyMode selects the alert delivery path: "deeplink" opens a
	// pre-filled WhatsApp Web compose page in the local browser,
	// "provider" sends directly through the configured notifier.
	EmergencyMode string `json:"emergency_mode"`
	// EmergencyRecipients optionally overrides the alert destination per
	// notifier name. Destinations are provider-specific: a phone number
	// for WhatsApp providers, a chat ID for Telegram. Providers without an
	// entry fall back to their own configured default destination, except
	// the WhatsApp line which receives HospitalNumber.
	EmergencyRecipients map[string]string `json:"emergency_recipients,omitempty"`
	// ReminderNotifier names the notifier used for medicine reminders.
	// Defaults to "ultramsg".
	ReminderNotifier string `json:"reminder_notifier,omitempty"`
}

// Validate ensures the configuration contains all mandatory fields.
// It acts as a primary guard before the system proceeds to initialization.
func (c *Config) Validate() error {
	if len(c.LLM) == 0 {
		return fmt.Errorf("mandatory 'llm' configuration is missing or empty")
	}
	if c.HospitalNumber == "" {
		return fmt.Errorf("mandatory 'hospital_number' is missing")
	}
	switch c.EmergencyMode {
	case "", "deeplink", "provider":
	default:
		return fmt.Errorf("invalid 'emergency_mode' %q (want \"deeplink\" or \"provider\")", c.EmergencyMode)
	}
	return nil
}

// SystemConfig defines engine-level technical parameters.
// These settings live in system.json and control performance and
// reliability behavior rather than business configuration.
type SystemConfig struct {
	// HTTPPort is the listen port for the REST facade.
	HTTPPort int `json:"http_port"`
	// MaxRetries is the number of times a transient LLM error is retried
	// before falling through to the next provider.
	MaxRetries int `json:"max_retries"`
	// RetryDelayMs is the duration to wait (in milliseconds) between
	// consecutive retry attempts.
	RetryDelayMs int `json:"retry_delay_ms"`
	// LLMTimeoutMs is the hard cutoff time (in milliseconds) for a single
	// LLM request. The context is cancelled when exceeded.
	LLMTimeoutMs int `json:"llm_timeout_ms"`
	// NotifyTimeoutMs is the HTTP timeout (in milliseconds) applied to
	// outbound notification provider calls.
	NotifyTimeoutMs int `json:"notify_timeout_ms"`
	// SessionMemoryTurns is the sliding-window size, in messages, kept
	// per chat session.
	SessionMemoryTurns int `json:"session_memory_turns"`
	// LogLevel sets the minimum severity for log output.
	// Accepted values: "debug", "info", "warn", "error". Default: "info".
	LogLevel string `json:"log_level"`
}

// DefaultSystemConfig returns a SystemConfig initialized with hardcoded
// safe defaults. Used as a fallback when system.json is missing or corrupt,
// ensuring the service can always start.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		HTTPPort:           8000,
		MaxRetries:         3,
		RetryDelayMs:       500,
		LLMTimeoutMs:       120000,
		NotifyTimeoutMs:    10000,
		SessionMemoryTurns: 10,
		LogLevel:           "info",
	}
}

// Load reads and parses the JSON configuration files from the current
// working directory. config.json is mandatory; system.json falls back to
// defaults when absent.
func Load() (*Config, *SystemConfig, error) {
	appPath := "config.json"
	if _, err := os.Stat(appPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("config file '%s' not found. please create one", appPath)
	}

	appFile, err := os.ReadFile(appPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(appFile, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	sysCfg := LoadSystemConfig("system.json")

	return &cfg, sysCfg, nil
}

// LoadSystemConfig attempts to load system settings, returns defaults if it fails.
func LoadSystemConfig(path string) *SystemConfig {
	cfg := DefaultSystemConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg // File not found, use defaults
	}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(file, cfg); err != nil {
		return cfg // Parse failed, use defaults
	}

	return cfg
}
