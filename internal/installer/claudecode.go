package installer

import (
	"encoding/json"
	"fmt"

	"github.com/i18n-agent/i18n-agent-mcp/internal/catalog"
	"github.com/i18n-agent/i18n-agent-mcp/internal/defs"
	"github.com/i18n-agent/i18n-agent-mcp/internal/settings"
	"github.com/i18n-agent/i18n-agent-mcp/internal/template"
)

// ClaudeCode registers the provider as an MCP server in Claude Code.
type ClaudeCode struct {
	renderer template.Renderer
}

var _ Target = (*ClaudeCode)(nil)

// NewClaudeCode returns the Claude Code target.
func NewClaudeCode(r template.Renderer) *ClaudeCode {
	return &ClaudeCode{renderer: r}
}

// claudeServer is the mcpServers entry shape.
type claudeServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

func (c *ClaudeCode) Name() string        { return "claude-code" }
func (c *ClaudeCode) DisplayName() string { return "Claude Code" }

func (c *ClaudeCode) SettingsPath(p Platform) string {
	return p.Path("claude-code", defs.MCPServersJSON)
}

func (c *ClaudeCode) AssetDir(Platform) string { return "" }

func (c *ClaudeCode) EntryPaths() []settings.KeyPath {
	return []settings.KeyPath{{defs.MCPServersKey, defs.ProviderKey}}
}

func (c *ClaudeCode) Entries(cfg InstallConfig) ([]Entry, error) {
	script, err := renderLauncher(c.renderer, cfg)
	if err != nil {
		return nil, err
	}
	return []Entry{{
		Path: c.EntryPaths()[0],
		Value: claudeServer{
			Command: "node",
			Args:    []string{"-e", script},
			Env:     map[string]string{},
		},
	}}, nil
}

func (c *ClaudeCode) Assets(InstallConfig) ([]Asset, error) { return nil, nil }

func (c *ClaudeCode) Inspect(obs Observation) StatusReport {
	if !obs.Exists {
		return StatusReport{Detail: "Claude Code MCP configuration file not found"}
	}
	raw, ok := obs.Doc.Lookup(c.EntryPaths()[0])
	if !ok || !isObject(raw) {
		return StatusReport{Detail: "MCP config exists but i18n-agent not configured"}
	}
	return StatusReport{Installed: true, Detail: "i18n-agent MCP server configured in Claude Code"}
}

// renderLauncher renders the stdio MCP launcher script for cfg.
func renderLauncher(r template.Renderer, cfg InstallConfig) (string, error) {
	tools, err := catalog.JSON()
	if err != nil {
		return "", err
	}
	ctx := template.NewContext(
		template.WithCredentials(cfg.APIKey, cfg.ServerURL),
		template.WithVersion(ProviderVersion),
		template.WithToolsJSON(tools),
	)
	out, err := r.Render(template.MCPLauncher, ctx)
	if err != nil {
		return "", fmt.Errorf("render launcher: %w", err)
	}
	return string(out), nil
}

// isObject reports whether raw holds a JSON object.
func isObject(raw json.RawMessage) bool {
	var m map[string]json.RawMessage
	return json.Unmarshal(raw, &m) == nil && m != nil
}
