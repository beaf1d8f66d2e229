package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserOpener abstracts browser opening for testability.
type BrowserOpener interface {
	Open(url string) error
}

// browser opens URLs with the operating system's default handler.
type browser struct {
	goos    string
	command func(name string, args ...string) *exec.Cmd
}

// NewBrowser returns a BrowserOpener for the running operating system.
func NewBrowser() BrowserOpener {
	return &browser{goos: runtime.GOOS, command: exec.Command}
}

// Open starts the default browser on url without waiting for it to exit.
func (b *browser) Open(url string) error {
	name, args := openCommand(b.goos, url)
	cmd := b.command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// openCommand returns the launcher invocation for goos.
func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
