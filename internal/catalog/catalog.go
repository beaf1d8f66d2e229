// Package catalog defines the translation tools the i18n-agent MCP provider
// exposes to AI development environments.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names registered with every environment.
const (
	TranslateText          = "translate_text"
	TranslateFile          = "translate_file"
	ListSupportedLanguages = "list_supported_languages"
)

// Tools returns the provider's tool definitions in presentation order.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(TranslateText,
			mcp.WithDescription("Translate text with cultural context and industry-specific terminology"),
			mcp.WithArray("texts",
				mcp.Description("Array of texts to translate"),
				mcp.Items(map[string]any{"type": "string"}),
				mcp.Required(),
			),
			mcp.WithString("targetLanguage",
				mcp.Description(`Target language code (e.g., "es", "fr", "de")`),
				mcp.Required(),
			),
			mcp.WithString("sourceLanguage",
				mcp.Description("Source language code (optional, auto-detected if not provided)"),
			),
			mcp.WithString("industry",
				mcp.Description(`Industry context (e.g., "technology", "healthcare", "finance")`),
			),
			mcp.WithString("region",
				mcp.Description(`Specific region for localization (e.g., "Spain", "Mexico")`),
			),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(true),
		),
		mcp.NewTool(TranslateFile,
			mcp.WithDescription("Translate entire files while preserving structure (JSON, YAML, CSV, XML, Markdown, etc.)"),
			mcp.WithString("fileContent",
				mcp.Description("Content of the file to translate"),
				mcp.Required(),
			),
			mcp.WithString("targetLanguage",
				mcp.Description("Target language code"),
				mcp.Required(),
			),
			mcp.WithString("fileType",
				mcp.Description("File type: json, yaml, xml, csv, txt, md, html, properties, or auto"),
			),
			mcp.WithBoolean("preserveKeys",
				mcp.Description("Whether to preserve keys/structure (for structured files)"),
			),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(true),
		),
		mcp.NewTool(ListSupportedLanguages,
			mcp.WithDescription("View available language pairs with quality ratings"),
			mcp.WithBoolean("includeQuality",
				mcp.Description("Include quality ratings for each language"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
		),
	}
}

// Names returns the tool names in presentation order.
func Names() []string {
	tools := Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

// Summary is a one-line description of a tool for terminal output.
type Summary struct {
	Name        string
	Description string
}

// Summaries returns a name and description for every tool.
func Summaries() []Summary {
	tools := Tools()
	out := make([]Summary, len(tools))
	for i, t := range tools {
		out[i] = Summary{Name: t.Name, Description: t.Description}
	}
	return out
}

// JSON encodes the tool definitions as the JSON array a tools/list
// response carries.
func JSON() (string, error) {
	data, err := json.MarshalIndent(Tools(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tool catalog: %w", err)
	}
	return string(data), nil
}
