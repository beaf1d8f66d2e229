package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i18n-agent/i18n-agent-mcp/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "i18n-agent-mcp %s\n", version.GetFullVersion())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
