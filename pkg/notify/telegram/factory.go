package telegram

import (
	"fmt"
	"os"

	"neuronest/pkg/config"
	"neuronest/pkg/notify"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TelegramConfig carries the bot credentials and the default staff chat.
type TelegramConfig struct {
	Token  string `json:"token"`
	ChatID int64  `json:"chat_id"`
}

// TelegramFactory builds Telegram notifiers
type TelegramFactory struct{}

// Create implements NotifierFactory
func (f *TelegramFactory) Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (notify.Notifier, error) {
	var cfg TelegramConfig
	if len(rawConfig) > 0 {
		if err := json.Unmarshal(rawConfig, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse telegram config: %w", err)
		}
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("TELEGRAM_TOKEN")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("missing telegram token")
	}

	return NewNotifier(cfg.Token, cfg.ChatID)
}

func init() {
	notify.RegisterNotifier("telegram", &TelegramFactory{})
}
