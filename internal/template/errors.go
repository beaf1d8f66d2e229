package template

import "errors"

// Sentinel errors returned by the renderer.
var (
	// ErrTemplateNotFound indicates the named template is not in the filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the data lacks a key the template references.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template directives survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")
)
