//go:build linux

package deeplink

import "os/exec"

// linuxWorker opens URLs with xdg-open.
type linuxWorker struct{}

func newBrowserWorker() browserWorker {
	return &linuxWorker{}
}

func (w *linuxWorker) OpenURL(rawURL string) error {
	return exec.Command("xdg-open", rawURL).Start()
}
