package config

// Config is the root installer configuration.
type Config struct {
	Installer InstallerConfig `yaml:"installer"`
}

// InstallerConfig holds the values the install workflow needs.
type InstallerConfig struct {
	ServerURL    string `yaml:"server_url"`
	APIKey       string `yaml:"api_key,omitempty"`
	DemoKey      string `yaml:"demo_key"`
	DashboardURL string `yaml:"dashboard_url"`
	DocsURL      string `yaml:"docs_url"`
}

// installerFileWrapper matches the top-level "installer:" key of config.yaml.
type installerFileWrapper struct {
	Installer InstallerConfig `yaml:"installer"`
}
