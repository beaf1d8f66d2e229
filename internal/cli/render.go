package cli

import (
	"strings"

	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

const (
	checkMark = "✓"
	crossMark = "✗"
	warnMark  = "!"
)

func successCard(t *ui.Theme, title string, details ...string) string {
	var body strings.Builder
	body.WriteString(t.Success().Render(checkMark) + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.Card().Render(body.String())
}

func infoCard(t *ui.Theme, title, content string) string {
	body := t.Primary().Bold(true).Render(title) + "\n\n" + content
	return t.Card().Render(body)
}

func warningLine(t *ui.Theme, msg string) string {
	return t.Warning().Render(warnMark) + " " + msg
}

func heading(t *ui.Theme, title string) string {
	return t.Primary().Bold(true).Render(title)
}

// maskKey keeps the first and last four characters of key visible.
func maskKey(key string) string {
	r := []rune(key)
	if len(r) <= 8 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:4]) + strings.Repeat("*", len(r)-8) + string(r[len(r)-4:])
}
