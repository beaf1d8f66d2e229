// Package cli provides the Cobra command tree and dependency injection
// wiring for the i18n-agent-mcp installer. This file defines the
// Dependencies struct (Composition Root) that wires all domain modules
// together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/i18n-agent/i18n-agent-mcp/internal/cli/wizard"
	"github.com/i18n-agent/i18n-agent-mcp/internal/config"
	"github.com/i18n-agent/i18n-agent-mcp/internal/installer"
	"github.com/i18n-agent/i18n-agent-mcp/internal/template"
	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

// PromptFunc asks the given questions and returns the answers.
type PromptFunc func([]wizard.Question) (*wizard.Result, error)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config     *config.Manager
	Reconciler *installer.Reconciler
	Targets    []installer.Target
	Theme      *ui.Theme
	Headless   *ui.HeadlessManager
	Progress   ui.Progress
	Browser    ui.BrowserOpener
	Prompt     PromptFunc
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// The reconciler and configuration need the user's home directory and are
// created on first use.
func InitDependencies() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	theme := ui.NewTheme(ui.ThemeConfig{NoColor: os.Getenv("NO_COLOR") != ""})
	headless := ui.NewHeadlessManager()

	deps = &Dependencies{
		Targets:  installer.Targets(template.NewRenderer(template.EmbeddedTemplates())),
		Theme:    theme,
		Headless: headless,
		Progress: ui.NewProgress(theme, headless, nil),
		Browser:  ui.NewBrowser(),
		Prompt:   wizard.Run,
		Logger:   logger,
	}
}

// GetDeps returns the current dependencies.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the current dependencies. Used by tests.
func SetDeps(d *Dependencies) {
	deps = d
}

// SetLogger replaces the logger. Services created afterwards use it.
func (d *Dependencies) SetLogger(logger *slog.Logger) {
	d.Logger = logger
}

// DisableColor switches output to the plain theme.
func (d *Dependencies) DisableColor() {
	d.Theme = ui.NewTheme(ui.ThemeConfig{NoColor: true})
	d.Progress = ui.NewProgress(d.Theme, d.Headless, nil)
}

// EnsureReconciler creates the reconciler for the running platform if it
// has not been set.
func (d *Dependencies) EnsureReconciler() error {
	if d.Reconciler != nil {
		return nil
	}
	p, err := installer.CurrentPlatform()
	if err != nil {
		return fmt.Errorf("resolve platform: %w", err)
	}
	d.Reconciler = installer.NewReconciler(p, d.Logger)
	d.Logger.Debug("platform resolved", "goos", p.GOOS, "home", p.Home)
	return nil
}

// EnsureConfig loads the installer configuration for the reconciler's home
// directory. The reconciler is created first when needed.
func (d *Dependencies) EnsureConfig() (*config.Config, error) {
	if d.Config == nil {
		d.Config = config.NewManager(d.Logger)
	}
	if cfg := d.Config.Get(); cfg != nil {
		return cfg, nil
	}
	if err := d.EnsureReconciler(); err != nil {
		return nil, err
	}
	cfg, err := d.Config.Load(d.Reconciler.Platform().Home)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// targetOptions returns one select option per target.
func (d *Dependencies) targetOptions() []wizard.Option {
	opts := make([]wizard.Option, len(d.Targets))
	for i, t := range d.Targets {
		opts[i] = wizard.Option{Label: t.DisplayName(), Value: t.Name()}
	}
	return opts
}
