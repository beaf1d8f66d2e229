package installer

import (
	"encoding/json"

	"github.com/i18n-agent/i18n-agent-mcp/internal/catalog"
	"github.com/i18n-agent/i18n-agent-mcp/internal/defs"
	"github.com/i18n-agent/i18n-agent-mcp/internal/settings"
)

// Gemini registers the provider as an extension in Gemini IDE.
type Gemini struct{}

var _ Target = (*Gemini)(nil)

// NewGemini returns the Gemini IDE target.
func NewGemini() *Gemini {
	return &Gemini{}
}

type geminiConfig struct {
	APIKey    string `json:"apiKey"`
	ServerURL string `json:"serverUrl"`
}

// geminiExtension is the extensions.json entry shape.
type geminiExtension struct {
	Name        string       `json:"name"`
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Enabled     bool         `json:"enabled"`
	Config      geminiConfig `json:"config"`
	Commands    []string     `json:"commands"`
}

func (g *Gemini) Name() string        { return "gemini" }
func (g *Gemini) DisplayName() string { return "Gemini IDE" }

func (g *Gemini) SettingsPath(p Platform) string {
	return p.Path("gemini-ide", defs.ExtensionsJSON)
}

func (g *Gemini) AssetDir(Platform) string { return "" }

func (g *Gemini) EntryPaths() []settings.KeyPath {
	return []settings.KeyPath{{defs.ProviderKey}}
}

func (g *Gemini) Entries(cfg InstallConfig) ([]Entry, error) {
	return []Entry{{
		Path: g.EntryPaths()[0],
		Value: geminiExtension{
			Name:        "i18n Agent Translation",
			Version:     ProviderVersion,
			Description: "AI-powered translation service with context awareness",
			Enabled:     true,
			Config:      geminiConfig{APIKey: cfg.APIKey, ServerURL: cfg.ServerURL},
			Commands:    catalog.Names(),
		},
	}}, nil
}

func (g *Gemini) Assets(InstallConfig) ([]Asset, error) { return nil, nil }

func (g *Gemini) Inspect(obs Observation) StatusReport {
	if !obs.Exists {
		return StatusReport{Detail: "Gemini IDE extensions configuration not found"}
	}
	raw, ok := obs.Doc.Lookup(g.EntryPaths()[0])
	if ok {
		var ext struct {
			Enabled bool `json:"enabled"`
		}
		if json.Unmarshal(raw, &ext) == nil && ext.Enabled {
			return StatusReport{Installed: true, Detail: "i18n-agent extension configured in Gemini IDE"}
		}
	}
	return StatusReport{Detail: "Extension config exists but i18n-agent not enabled"}
}
