package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pushes alert messages to a Telegram chat. Used for fanning
// emergency alerts out to a staff group in addition to WhatsApp.
type Notifier struct {
	bot           *tgbotapi.BotAPI
	defaultChatID int64
}

// NewNotifier authenticates against the Bot API. defaultChatID is used
// when Send receives an empty destination.
func NewNotifier(token string, defaultChatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram bot authorized", "username", bot.Self.UserName)

	return &Notifier{
		bot:           bot,
		defaultChatID: defaultChatID,
	}, nil
}

// ID returns the provider identifier "telegram".
func (n *Notifier) ID() string {
	return "telegram"
}

// chatID resolves the destination chat. An empty to means the configured
// default chat; callers that do not hold a Telegram chat ID (the emergency
// fan-out addresses WhatsApp phones) must pass empty rather than reuse a
// destination meant for another provider.
func (n *Notifier) chatID(to string) (int64, error) {
	if to != "" {
		if parsed, err := strconv.ParseInt(to, 10, 64); err == nil {
			return parsed, nil
		}
	}
	if n.defaultChatID == 0 {
		return 0, fmt.Errorf("no telegram chat id configured")
	}
	return n.defaultChatID, nil
}

// Send delivers the body to the chat identified by to (a numeric chat ID),
// falling back to the configured default chat.
func (n *Notifier) Send(ctx context.Context, to string, body string) error {
	chatID, err := n.chatID(to)
	if err != nil {
		return err
	}

	// tgbotapi has no context-aware Send; honor cancellation up front
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, body)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
