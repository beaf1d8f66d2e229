package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/i18n-agent/i18n-agent-mcp/internal/defs"
)

// Loader reads config.yaml from a configuration directory.
type Loader struct {
	logger *slog.Logger
	loaded bool
}

// NewLoader creates a Loader that reports skipped files to logger.
// A nil logger uses slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads config.yaml from dir and returns it merged over the defaults.
// A missing file yields defaults. An unreadable or invalid file is skipped
// with a warning and also yields defaults.
func (l *Loader) Load(dir string) *Config {
	l.loaded = false
	cfg := NewDefaultConfig()

	wrapper := &installerFileWrapper{Installer: cfg.Installer}
	loaded, err := loadYAMLFile(filepath.Clean(dir), defs.ConfigYAML, wrapper)
	if err != nil {
		l.logger.Warn("failed to load installer config, using defaults", "error", err)
		return cfg
	}
	if loaded {
		cfg.Installer = wrapper.Installer
		applyDefaults(cfg)
		l.loaded = true
	}
	return cfg
}

// Loaded reports whether the last Load read a config file.
func (l *Loader) Loaded() bool {
	return l.loaded
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
