package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/i18n-agent/i18n-agent-mcp/internal/defs"
)

// Manager resolves the configuration directory, loads the file, applies
// environment overrides and validates the result.
type Manager struct {
	loader *Loader
	dir    string
	config *Config
}

// NewManager creates a Manager that logs through logger.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{loader: NewLoader(logger)}
}

// ResolveDir returns the configuration directory for home, honoring the
// I18N_AGENT_CONFIG_DIR override.
func ResolveDir(home string) string {
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		return filepath.Clean(envDir)
	}
	return filepath.Join(filepath.Clean(home), defs.ConfigDirName)
}

// Load reads configuration for the user whose home directory is home.
// Environment variables take priority over file values.
func (m *Manager) Load(home string) (*Config, error) {
	m.dir = ResolveDir(home)
	cfg := m.loader.Load(m.dir)

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(m.dir, defs.ConfigYAML), err)
	}
	m.config = cfg
	return cfg, nil
}

// Get returns the configuration from the last successful Load, or nil.
func (m *Manager) Get() *Config {
	return m.config
}

// Dir returns the directory resolved by the last Load.
func (m *Manager) Dir() string {
	return m.dir
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv(defs.EnvAPIKey); key != "" {
		cfg.Installer.APIKey = NormalizeAPIKey(key)
	}
	if u := os.Getenv(defs.EnvServerURL); u != "" {
		cfg.Installer.ServerURL = u
	}
}
