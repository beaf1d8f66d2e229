package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i18n-agent/i18n-agent-mcp/internal/installer"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the i18n-agent tools from an AI environment",
	Long: `Remove the i18n-agent MCP provider from Claude Code, Gemini IDE or
Cursor. Only the entries the installer owns are removed; the rest of each
settings file is kept. Without a target flag an interactive selection is
shown.

A settings file that is not valid JSON is left unchanged and reported with
a warning; fix or delete it by hand, then run uninstall again.`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)

	addTargetFlags(uninstallCmd, "Uninstall from")
	uninstallCmd.Flags().Bool("all", false, "Uninstall from every supported environment")
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errNoDeps
	}
	if err := d.EnsureReconciler(); err != nil {
		return err
	}

	targets, err := selectTargets(cmd, d, "Which environment should i18n-agent be removed from?", true)
	if err != nil {
		return err
	}

	results := make([]installer.Result, 0, len(targets))
	err = each(cmd, d, "Removing MCP configuration...", targets, func(t installer.Target) error {
		res, err := d.Reconciler.Uninstall(t)
		if err != nil {
			return fmt.Errorf("uninstall %s: %w", t.DisplayName(), err)
		}
		results = append(results, res)
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		name := targets[i].DisplayName()
		if res.Skipped != nil {
			_, _ = fmt.Fprintln(out, warningLine(d.Theme,
				fmt.Sprintf("Left %s unchanged, it could not be read: %v", res.ConfigPath, res.Skipped)))
		}
		if !res.Changed {
			_, _ = fmt.Fprintln(out, d.Theme.Muted().Render(fmt.Sprintf("%s: nothing to remove", name)))
			continue
		}
		details := []string{fmt.Sprintf("Config:    %s", res.ConfigPath)}
		if res.AssetDir != "" {
			details = append(details, fmt.Sprintf("Extension: %s", res.AssetDir))
		}
		_, _ = fmt.Fprintln(out, successCard(d.Theme, "Uninstalled from "+name, details...))
	}
	return nil
}
