package installer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/i18n-agent/i18n-agent-mcp/internal/settings"
)

// ProviderVersion is the version advertised in generated entries and assets.
const ProviderVersion = "1.0.0"

// InstallConfig holds the values written into provider entries.
// The CLI validates them; the installer only checks they are present.
type InstallConfig struct {
	APIKey    string
	ServerURL string
}

// validate reports whether both values are present.
func (c InstallConfig) validate() error {
	if strings.TrimSpace(c.APIKey) == "" || strings.TrimSpace(c.ServerURL) == "" {
		return ErrIncompleteConfig
	}
	return nil
}

// Entry is one value a target upserts into its settings document.
type Entry struct {
	Path  settings.KeyPath
	Value any
}

// Asset is a fixed-content file written into a target's asset directory.
type Asset struct {
	Name string
	Data []byte
}

// Observation is what status inspection sees of a target on disk.
type Observation struct {
	// Exists reports whether the settings document is present.
	Exists bool
	// Doc is the loaded document; empty when Exists is false.
	Doc *settings.Document
	// AssetDir is the resolved asset directory, or "" if the target has none.
	AssetDir string
}

// StatusReport describes whether a target has the provider installed.
// Installed implies the entry was found, well-formed and enabled.
type StatusReport struct {
	Installed  bool
	ConfigPath string
	Detail     string
}

// Target describes one AI development environment.
type Target interface {
	// Name is the stable identifier used on the command line.
	Name() string
	// DisplayName is the human-readable environment name.
	DisplayName() string
	// SettingsPath returns the settings document location on p.
	SettingsPath(p Platform) string
	// AssetDir returns the asset directory on p, or "" if none is needed.
	AssetDir(p Platform) string
	// EntryPaths lists every key path the target owns in its document.
	EntryPaths() []settings.KeyPath
	// Entries builds the values to upsert for cfg.
	Entries(cfg InstallConfig) ([]Entry, error)
	// Assets builds the files to write into AssetDir for cfg.
	Assets(cfg InstallConfig) ([]Asset, error)
	// Inspect derives a status from what is on disk. ConfigPath is filled
	// in by the caller.
	Inspect(obs Observation) StatusReport
}

// Find returns the target registered under name.
func Find(targets []Target, name string) (Target, error) {
	idx := slices.IndexFunc(targets, func(t Target) bool { return t.Name() == name })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return targets[idx], nil
}

// Names returns the identifiers of targets in order.
func Names(targets []Target) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name()
	}
	return names
}
