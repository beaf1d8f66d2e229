package defs

// ProviderKey is the reserved identifier the installer registers under in
// every target settings document.
const ProviderKey = "i18n-agent"

// MCPServersKey is the Claude Code mapping that holds MCP server entries.
const MCPServersKey = "mcpServers"

// Settings file names written by each target.
const (
	// MCPServersJSON is the Claude Code MCP server registry file.
	MCPServersJSON = "mcp_servers.json"

	// ExtensionsJSON is the Gemini IDE extension registry file.
	ExtensionsJSON = "extensions.json"

	// SettingsJSON is the Cursor user settings file.
	SettingsJSON = "settings.json"

	// PackageJSON is the Cursor extension manifest file.
	PackageJSON = "package.json"

	// ExtensionJS is the Cursor extension entry point.
	ExtensionJS = "extension.js"
)

// Installer configuration layout under the user's home directory.
const (
	// ConfigDirName is the installer's own configuration directory.
	ConfigDirName = ".i18n-agent"

	// ConfigYAML is the installer configuration file inside ConfigDirName.
	ConfigYAML = "config.yaml"
)

// Environment variables read by the installer.
const (
	EnvAPIKey    = "I18N_AGENT_API_KEY"
	EnvServerURL = "I18N_AGENT_SERVER_URL"
	EnvConfigDir = "I18N_AGENT_CONFIG_DIR"
)
