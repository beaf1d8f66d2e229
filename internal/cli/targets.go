package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i18n-agent/i18n-agent-mcp/internal/cli/wizard"
	"github.com/i18n-agent/i18n-agent-mcp/internal/installer"
	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

// errNoDeps is returned when a command runs before InitDependencies.
var errNoDeps = errors.New("dependencies not initialized")

// targetFlags are the per-environment selector flags shared by install and
// uninstall. Flag names equal target names.
var targetFlags = []struct {
	name    string
	display string
}{
	{"claude-code", "Claude Code"},
	{"gemini", "Gemini IDE"},
	{"cursor", "Cursor"},
}

func addTargetFlags(cmd *cobra.Command, verb string) {
	for _, f := range targetFlags {
		cmd.Flags().Bool(f.name, false, fmt.Sprintf("%s %s", verb, f.display))
	}
}

// flaggedTargets returns the targets whose selector flag is set, in
// registry order.
func flaggedTargets(cmd *cobra.Command, targets []installer.Target) []installer.Target {
	var out []installer.Target
	for _, t := range targets {
		if on, err := cmd.Flags().GetBool(t.Name()); err == nil && on {
			out = append(out, t)
		}
	}
	return out
}

// selectTargets resolves the targets a command acts on: flags first, then
// an interactive select. Headless sessions without flags are an error.
func selectTargets(cmd *cobra.Command, d *Dependencies, title string, includeAll bool) ([]installer.Target, error) {
	if picked := flaggedTargets(cmd, d.Targets); len(picked) > 0 {
		return picked, nil
	}
	if includeAll {
		if all, _ := cmd.Flags().GetBool("all"); all {
			return d.Targets, nil
		}
	}

	if d.Headless.IsHeadless() {
		return nil, fmt.Errorf("%w: pass --claude-code, --gemini or --cursor", ui.ErrHeadless)
	}

	res, err := d.Prompt([]wizard.Question{wizard.TargetQuestion(title, d.targetOptions(), includeAll)})
	if err != nil {
		return nil, err
	}
	if includeAll && res.Target == wizard.AllTargets {
		return d.Targets, nil
	}
	t, err := installer.Find(d.Targets, res.Target)
	if err != nil {
		return nil, err
	}
	return []installer.Target{t}, nil
}

// each runs fn for every target, showing a spinner for one target and a
// progress bar for several. The command context is checked between targets.
func each(cmd *cobra.Command, d *Dependencies, title string, targets []installer.Target, fn func(installer.Target) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(targets) == 1 {
		sp := d.Progress.Spinner(title)
		err := fn(targets[0])
		sp.Stop()
		return err
	}

	bar := d.Progress.Start(title, len(targets))
	defer bar.Done()
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		bar.SetTitle(t.DisplayName())
		if err := fn(t); err != nil {
			return err
		}
		bar.Increment(1)
	}
	return nil
}
