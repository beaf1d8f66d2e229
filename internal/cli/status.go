package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the i18n-agent tools are installed",
	Long: `Report, for every supported environment, whether the i18n-agent MCP
provider is registered and which settings file was inspected. Nothing is
written to disk.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("json", false, "Print the report as JSON")
}

// statusEntry is the JSON form of one target's status.
type statusEntry struct {
	Target     string `json:"target"`
	Name       string `json:"name"`
	Installed  bool   `json:"installed"`
	ConfigPath string `json:"configPath"`
	Detail     string `json:"detail"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errNoDeps
	}
	if err := d.EnsureReconciler(); err != nil {
		return err
	}

	entries := make([]statusEntry, len(d.Targets))
	for i, t := range d.Targets {
		rep := d.Reconciler.Status(t)
		entries[i] = statusEntry{
			Target:     t.Name(),
			Name:       t.DisplayName(),
			Installed:  rep.Installed,
			ConfigPath: rep.ConfigPath,
			Detail:     rep.Detail,
		}
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	_, _ = fmt.Fprintln(out, heading(d.Theme, "i18n-agent MCP status"))
	for _, e := range entries {
		mark, state := d.Theme.Error().Render(crossMark), "Not installed"
		if e.Installed {
			mark, state = d.Theme.Success().Render(checkMark), "Installed"
		}
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "%s %s: %s\n", mark, e.Name, state)
		_, _ = fmt.Fprintf(out, "  Config:  %s\n", e.ConfigPath)
		_, _ = fmt.Fprintf(out, "  Details: %s\n", d.Theme.Muted().Render(e.Detail))
	}
	return nil
}
