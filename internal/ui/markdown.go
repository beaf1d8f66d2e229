package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Without colors it uses the
// plain notty style. On renderer failure the source text is returned.
func (t *Theme) RenderMarkdown(md string) string {
	style := glamour.WithAutoStyle()
	if t.NoColor {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWidth))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
