// Package settings reads, edits and writes the JSON settings documents that
// AI development environments keep in their user configuration directories.
// Documents preserve the key order of the file they were loaded from so
// that rewriting a user's settings only changes the entries we own.
package settings

import "errors"

// Sentinel errors for settings document operations.
var (
	// ErrMalformedDocument indicates the file content is not a JSON object.
	ErrMalformedDocument = errors.New("settings: malformed document")

	// ErrUnreadable indicates the file exists but could not be read.
	ErrUnreadable = errors.New("settings: unreadable document")

	// ErrEmptyKeyPath indicates an entry was addressed without any key.
	ErrEmptyKeyPath = errors.New("settings: empty key path")
)
