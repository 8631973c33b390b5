//go:build windows

package deeplink

import "os/exec"

// windowsWorker opens URLs through the shell URL handler.
type windowsWorker struct{}

func newBrowserWorker() browserWorker {
	return &windowsWorker{}
}

func (w *windowsWorker) OpenURL(rawURL string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
}
