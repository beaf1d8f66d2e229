package template

import "github.com/i18n-agent/i18n-agent-mcp/internal/defs"

// Context carries the values every asset template may reference.
type Context struct {
	Name      string
	Version   string
	APIKey    string
	ServerURL string

	// ToolsJSON is a JSON array literal inserted verbatim into the launcher.
	ToolsJSON string
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// NewContext returns a Context for the i18n-agent provider with the given
// options applied.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		Name:      defs.ProviderKey,
		Version:   "1.0.0",
		ToolsJSON: "[]",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCredentials sets the API key and server URL.
func WithCredentials(apiKey, serverURL string) ContextOption {
	return func(c *Context) {
		c.APIKey = apiKey
		c.ServerURL = serverURL
	}
}

// WithVersion sets the provider version reported to clients.
func WithVersion(version string) ContextOption {
	return func(c *Context) {
		if version != "" {
			c.Version = version
		}
	}
}

// WithToolsJSON sets the tool catalog literal.
func WithToolsJSON(tools string) ContextOption {
	return func(c *Context) {
		if tools != "" {
			c.ToolsJSON = tools
		}
	}
}
