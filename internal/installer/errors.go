// Package installer registers the i18n-agent provider in the settings
// documents of supported AI development environments.
package installer

import "errors"

// Sentinel errors for installer operations.
var (
	// ErrFilesystem wraps any filesystem failure during install or uninstall.
	ErrFilesystem = errors.New("installer: filesystem failure")

	// ErrIncompleteConfig indicates an InstallConfig without an API key or
	// server URL.
	ErrIncompleteConfig = errors.New("installer: api key and server url are required")

	// ErrUnknownTarget indicates a target name that is not registered.
	ErrUnknownTarget = errors.New("installer: unknown target")
)
