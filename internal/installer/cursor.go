package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/i18n-agent/i18n-agent-mcp/internal/catalog"
	"github.com/i18n-agent/i18n-agent-mcp/internal/defs"
	"github.com/i18n-agent/i18n-agent-mcp/internal/settings"
	"github.com/i18n-agent/i18n-agent-mcp/internal/template"
)

// Cursor installs a small editor extension and stores its configuration
// as flat keys in the Cursor user settings.
type Cursor struct {
	renderer template.Renderer
}

var _ Target = (*Cursor)(nil)

// NewCursor returns the Cursor target.
func NewCursor(r template.Renderer) *Cursor {
	return &Cursor{renderer: r}
}

var (
	cursorAPIKey    = settings.KeyPath{defs.ProviderKey + ".apiKey"}
	cursorServerURL = settings.KeyPath{defs.ProviderKey + ".serverUrl"}
)

func (c *Cursor) Name() string        { return "cursor" }
func (c *Cursor) DisplayName() string { return "Cursor" }

func (c *Cursor) SettingsPath(p Platform) string {
	return p.Path("Cursor", "User", defs.SettingsJSON)
}

func (c *Cursor) AssetDir(p Platform) string {
	return p.Path("Cursor", "extensions", defs.ProviderKey)
}

func (c *Cursor) EntryPaths() []settings.KeyPath {
	return []settings.KeyPath{cursorAPIKey, cursorServerURL}
}

func (c *Cursor) Entries(cfg InstallConfig) ([]Entry, error) {
	return []Entry{
		{Path: cursorAPIKey, Value: cfg.APIKey},
		{Path: cursorServerURL, Value: cfg.ServerURL},
	}, nil
}

func (c *Cursor) Assets(cfg InstallConfig) ([]Asset, error) {
	tools, err := catalog.JSON()
	if err != nil {
		return nil, err
	}
	ctx := template.NewContext(
		template.WithCredentials(cfg.APIKey, cfg.ServerURL),
		template.WithVersion(ProviderVersion),
		template.WithToolsJSON(tools),
	)

	files := []struct{ name, tmpl string }{
		{defs.PackageJSON, template.CursorManifest},
		{defs.ExtensionJS, template.CursorExtension},
	}
	assets := make([]Asset, 0, len(files))
	for _, f := range files {
		data, err := c.renderer.Render(f.tmpl, ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.name, err)
		}
		assets = append(assets, Asset{Name: f.name, Data: data})
	}
	return assets, nil
}

func (c *Cursor) Inspect(obs Observation) StatusReport {
	if !obs.Exists {
		return StatusReport{Detail: "Cursor settings not found"}
	}
	if !manifestPresent(obs.AssetDir) {
		return StatusReport{Detail: "i18n-agent extension not installed"}
	}
	raw, ok := obs.Doc.Lookup(cursorAPIKey)
	var key string
	if ok && json.Unmarshal(raw, &key) == nil && key != "" {
		return StatusReport{Installed: true, Detail: "i18n-agent extension configured in Cursor"}
	}
	return StatusReport{Detail: "Extension installed but not configured"}
}

// manifestPresent reports whether the extension manifest exists in dir.
func manifestPresent(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, defs.PackageJSON))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
