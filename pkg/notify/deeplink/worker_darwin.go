//go:build darwin

package deeplink

import "os/exec"

// darwinWorker opens URLs with the macOS open command.
type darwinWorker struct{}

func newBrowserWorker() browserWorker {
	return &darwinWorker{}
}

func (w *darwinWorker) OpenURL(rawURL string) error {
	return exec.Command("open", rawURL).Start()
}
