package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i18n-agent/i18n-agent-mcp/internal/catalog"
	"github.com/i18n-agent/i18n-agent-mcp/internal/cli/wizard"
	"github.com/i18n-agent/i18n-agent-mcp/internal/config"
	"github.com/i18n-agent/i18n-agent-mcp/internal/installer"
	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

const installerTitle = "🌐 i18n Agent MCP Client Installer"

const quickStart = `## Quick Start

Ask your AI assistant:

- "Translate this text to Spanish: Hello World"
- "Translate my en.json file to French"
`

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the i18n-agent translation tools with an AI environment",
	Long: `Register the i18n-agent MCP provider with Claude Code, Gemini IDE or
Cursor. Without a target flag an interactive selection is shown.

The API key is taken from --api-key, then from I18N_AGENT_API_KEY or the
api_key field of ~/.i18n-agent/config.yaml. When none is set, the installer
asks for one interactively.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	addTargetFlags(installCmd, "Install for")
	installCmd.Flags().String("api-key", "", "i18n-agent API key")
	installCmd.Flags().String("server-url", "", "Translation service URL")
}

func runInstall(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errNoDeps
	}
	cfg, err := d.EnsureConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, heading(d.Theme, installerTitle))
	_, _ = fmt.Fprintln(out)

	targets, err := selectTargets(cmd, d, "Which AI development environment do you want to configure?", false)
	if err != nil {
		return err
	}

	apiKey, proceed, err := resolveAPIKey(cmd, d, cfg, targets)
	if err != nil || !proceed {
		return err
	}

	serverURL := cfg.Installer.ServerURL
	if flagURL, _ := cmd.Flags().GetString("server-url"); flagURL != "" {
		if err := config.ValidateServerURL(flagURL); err != nil {
			return err
		}
		serverURL = flagURL
	}

	ic := installer.InstallConfig{APIKey: apiKey, ServerURL: serverURL}
	results := make([]installer.Result, 0, len(targets))
	err = each(cmd, d, "Setting up MCP configuration...", targets, func(t installer.Target) error {
		res, err := d.Reconciler.Install(t, ic)
		if err != nil {
			return fmt.Errorf("install %s: %w", t.DisplayName(), err)
		}
		results = append(results, res)
		return nil
	})
	if err != nil {
		return err
	}

	for i, res := range results {
		printInstallResult(out, d.Theme, targets[i], res, ic)
	}
	printToolGuide(out, d.Theme, cfg.Installer.DocsURL)
	return nil
}

// resolveAPIKey returns the key to install with. proceed is false when the
// user chose to fetch a key in the browser first.
func resolveAPIKey(cmd *cobra.Command, d *Dependencies, cfg *config.Config, targets []installer.Target) (key string, proceed bool, err error) {
	demoKey := cfg.Installer.DemoKey
	if flagKey, _ := cmd.Flags().GetString("api-key"); flagKey != "" {
		key = config.NormalizeAPIKey(flagKey)
	} else {
		key = cfg.Installer.APIKey
	}
	if key != "" {
		if err := config.ValidateAPIKey(key, demoKey); err != nil {
			return "", false, err
		}
		return key, true, nil
	}

	if d.Headless.IsHeadless() {
		return "", false, fmt.Errorf("%w: pass --api-key or set I18N_AGENT_API_KEY", ui.ErrHeadless)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "You need an API key to use the i18n-agent translation service.")
	_, _ = fmt.Fprintln(out, "Get your API key at: "+cfg.Installer.DashboardURL)
	_, _ = fmt.Fprintln(out, d.Theme.Muted().Render("Pay-per-use pricing, you only pay for the translations you request."))
	_, _ = fmt.Fprintln(out)

	res, err := d.Prompt(wizard.APIKeyQuestions(func(s string) error {
		return config.ValidateAPIKey(config.NormalizeAPIKey(s), demoKey)
	}))
	if err != nil {
		return "", false, err
	}

	switch res.KeyChoice {
	case wizard.KeyChoiceDemo:
		_, _ = fmt.Fprintln(out, warningLine(d.Theme, "Using demo key - some features may be limited"))
		return demoKey, true, nil
	case wizard.KeyChoiceBrowser:
		openDashboard(out, d, cfg.Installer.DashboardURL, targets)
		return "", false, nil
	case wizard.KeyChoicePaste:
		key = config.NormalizeAPIKey(res.APIKey)
		if err := config.ValidateAPIKey(key, demoKey); err != nil {
			return "", false, err
		}
		return key, true, nil
	default:
		return "", false, errors.New("no API key provided")
	}
}

// openDashboard opens the key dashboard and prints how to re-run the
// installer once a key is available.
func openDashboard(out io.Writer, d *Dependencies, url string, targets []installer.Target) {
	if err := d.Browser.Open(url); err != nil {
		d.Logger.Debug("browser open failed", "url", url, "error", err)
		_, _ = fmt.Fprintln(out, "Open this page in your browser: "+url)
	} else {
		_, _ = fmt.Fprintln(out, "Opening "+url+" in your browser...")
	}

	flags := make([]string, len(targets))
	for i, t := range targets {
		flags[i] = "--" + t.Name()
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "After getting your API key, run the installer again with:")
	_, _ = fmt.Fprintf(out, "  i18n-agent-mcp install %s --api-key YOUR_API_KEY\n", strings.Join(flags, " "))
}

func printInstallResult(out io.Writer, th *ui.Theme, t installer.Target, res installer.Result, ic installer.InstallConfig) {
	if res.Discarded != nil {
		_, _ = fmt.Fprintln(out, warningLine(th, fmt.Sprintf("Replaced unreadable %s: %v", res.ConfigPath, res.Discarded)))
	}
	details := []string{
		fmt.Sprintf("Environment: %s", t.DisplayName()),
		fmt.Sprintf("Config:      %s", res.ConfigPath),
	}
	if res.AssetDir != "" {
		details = append(details, fmt.Sprintf("Extension:   %s", res.AssetDir))
	}
	details = append(details,
		fmt.Sprintf("Server:      %s", ic.ServerURL),
		fmt.Sprintf("API key:     %s", maskKey(ic.APIKey)),
	)
	_, _ = fmt.Fprintln(out, successCard(th, "Installation completed successfully!", details...))
}

func printToolGuide(out io.Writer, th *ui.Theme, docsURL string) {
	var tools strings.Builder
	for i, s := range catalog.Summaries() {
		if i > 0 {
			tools.WriteString("\n")
		}
		tools.WriteString(fmt.Sprintf("• %s - %s", th.Primary().Render(s.Name), s.Description))
	}
	_, _ = fmt.Fprintln(out, infoCard(th, "Setup Complete! Available tools", tools.String()))
	_, _ = fmt.Fprint(out, th.RenderMarkdown(quickStart))
	_, _ = fmt.Fprintln(out, "Documentation: "+docsURL)
}
