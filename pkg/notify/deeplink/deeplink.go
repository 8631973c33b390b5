// Package deeplink implements the WhatsApp Web delivery path: it builds a
// pre-filled wa.me compose link and opens it in the local default browser.
// Delivery is best-effort: the operator still has to press send, and
// there is no receipt of any kind.
package deeplink

import (
	"fmt"
	"log/slog"
	"net/url"
)

// browserWorker abstracts the per-OS "open a URL" shell-out so the
// launcher can be exercised in tests without spawning a browser.
type browserWorker interface {
	OpenURL(rawURL string) error
}

// BuildWhatsAppLink constructs a wa.me deep link that opens a WhatsApp
// compose window for the given number with the text pre-filled. The number
// is expected in international format without the leading plus.
func BuildWhatsAppLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// Launcher opens WhatsApp deep links through the host's default browser.
type Launcher struct {
	worker browserWorker
}

// NewLauncher returns a launcher backed by the current platform's worker.
func NewLauncher() *Launcher {
	return &Launcher{worker: newBrowserWorker()}
}

// OpenChat builds the deep link for number/text and opens it.
func (l *Launcher) OpenChat(number, text string) error {
	link := BuildWhatsAppLink(number, text)
	slog.Info("Opening WhatsApp Web compose window", "to", number)
	if err := l.worker.OpenURL(link); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
