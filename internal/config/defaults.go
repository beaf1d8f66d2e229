package config

// Default values used when config.yaml is absent or leaves a field empty.
const (
	DefaultServerURL    = "http://i18n-agent-shared-alb-1223748939.eu-central-1.elb.amazonaws.com"
	DefaultDemoKey      = "demo-key-2025"
	DefaultDashboardURL = "https://app.i18nagent.ai"
	DefaultDocsURL      = "https://i18nagent.ai/docs/mcp-integration"

	// MinAPIKeyLength is the shortest API key accepted, the demo key aside.
	MinAPIKeyLength = 10
)

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{Installer: InstallerConfig{
		ServerURL:    DefaultServerURL,
		DemoKey:      DefaultDemoKey,
		DashboardURL: DefaultDashboardURL,
		DocsURL:      DefaultDocsURL,
	}}
}

// applyDefaults fills empty fields from the compiled defaults.
func applyDefaults(cfg *Config) {
	d := NewDefaultConfig().Installer
	in := &cfg.Installer
	if in.ServerURL == "" {
		in.ServerURL = d.ServerURL
	}
	if in.DemoKey == "" {
		in.DemoKey = d.DemoKey
	}
	if in.DashboardURL == "" {
		in.DashboardURL = d.DashboardURL
	}
	if in.DocsURL == "" {
		in.DocsURL = d.DocsURL
	}
}
