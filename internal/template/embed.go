package template

import (
	"embed"
	"io/fs"
)

// Names of the embedded asset templates.
const (
	MCPLauncher     = "mcp-launcher.js.tmpl"
	CursorExtension = "cursor-extension.js.tmpl"
	CursorManifest  = "cursor-package.json.tmpl"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// EmbeddedTemplates returns the asset templates rooted at their directory.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
