package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/i18n-agent/i18n-agent-mcp/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "i18n-agent-mcp",
	Short: "Install i18n-agent MCP client for AI development environments",
	Long: `i18n-agent-mcp registers the i18n-agent translation tools with the
AI development environments installed for the current user.

Supported environments are Claude Code, Gemini IDE and Cursor. The installer
edits each environment's settings file in place and leaves every entry it
does not own untouched.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("i18n-agent-mcp %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().Bool("verbose", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and animations")
}

// applyGlobalFlags reconfigures dependencies from persistent flags before
// any subcommand runs.
func applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return nil
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		deps.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		deps.DisableColor()
	}
	return nil
}
