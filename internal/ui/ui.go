// Package ui provides the terminal building blocks shared by the CLI
// commands: color theme, TTY detection, spinners and progress bars,
// markdown rendering and opening URLs in a browser.
package ui

import "errors"

// ErrHeadless indicates an interactive prompt was required without a TTY.
var ErrHeadless = errors.New("ui: interactive input required but no terminal is attached")

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Progress creates spinners and progress bars suited to the terminal.
type Progress interface {
	Start(title string, total int) ProgressBar
	Spinner(title string) Spinner
}
