package installer

import "github.com/i18n-agent/i18n-agent-mcp/internal/template"

// Targets returns every supported environment in presentation order.
func Targets(r template.Renderer) []Target {
	return []Target{
		NewClaudeCode(r),
		NewGemini(),
		NewCursor(r),
	}
}
