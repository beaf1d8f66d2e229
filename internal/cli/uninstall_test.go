package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/i18n-agent/i18n-agent-mcp/internal/cli/wizard"
	"github.com/i18n-agent/i18n-agent-mcp/internal/installer"
	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

func runUninstallCmd(t *testing.T) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	uninstallCmd.SetOut(buf)
	t.Cleanup(func() { uninstallCmd.SetOut(nil) })
	err := uninstallCmd.RunE(uninstallCmd, []string{})
	return buf.String(), err
}

func installAll(t *testing.T, d *Dependencies) {
	t.Helper()
	cfg := installer.InstallConfig{APIKey: testAPIKey, ServerURL: "https://translate.example.com"}
	for _, target := range d.Targets {
		if _, err := d.Reconciler.Install(target, cfg); err != nil {
			t.Fatalf("install %s: %v", target.Name(), err)
		}
	}
}

func TestUninstallCmd_Flags(t *testing.T) {
	for _, name := range []string{"claude-code", "gemini", "cursor", "all"} {
		if uninstallCmd.Flags().Lookup(name) == nil {
			t.Errorf("uninstall should define --%s", name)
		}
	}
}

func TestUninstallCmd_SingleTarget(t *testing.T) {
	d := newTestDeps(t, true)
	installAll(t, d)
	setFlags(t, uninstallCmd, map[string]string{"cursor": "true"})

	out, err := runUninstallCmd(t)
	if err != nil {
		t.Fatalf("uninstall error: %v", err)
	}
	if !strings.Contains(out, "Uninstalled from Cursor") {
		t.Errorf("output missing confirmation:\n%s", out)
	}

	cursor := mustFind(t, d, "cursor")
	if d.Reconciler.Status(cursor).Installed {
		t.Error("cursor should be uninstalled")
	}
	if _, assetDir := d.Reconciler.ResolvePath(cursor); assetDir != "" {
		if _, err := os.Stat(assetDir); !os.IsNotExist(err) {
			t.Error("cursor extension directory should be removed")
		}
	}
	for _, name := range []string{"claude-code", "gemini"} {
		if !d.Reconciler.Status(mustFind(t, d, name)).Installed {
			t.Errorf("%s should stay installed", name)
		}
	}
}

func TestUninstallCmd_All(t *testing.T) {
	d := newTestDeps(t, true)
	installAll(t, d)
	setFlags(t, uninstallCmd, map[string]string{"all": "true"})

	if _, err := runUninstallCmd(t); err != nil {
		t.Fatalf("uninstall error: %v", err)
	}
	for _, target := range d.Targets {
		if d.Reconciler.Status(target).Installed {
			t.Errorf("%s should be uninstalled", target.Name())
		}
	}
}

func TestUninstallCmd_NothingToRemove(t *testing.T) {
	newTestDeps(t, true)
	setFlags(t, uninstallCmd, map[string]string{"gemini": "true"})

	out, err := runUninstallCmd(t)
	if err != nil {
		t.Fatalf("uninstall error: %v", err)
	}
	if !strings.Contains(out, "Gemini IDE: nothing to remove") {
		t.Errorf("output should say nothing was removed:\n%s", out)
	}
}

func TestUninstallCmd_HeadlessWithoutTarget(t *testing.T) {
	newTestDeps(t, true)

	if _, err := runUninstallCmd(t); !errors.Is(err, ui.ErrHeadless) {
		t.Errorf("error = %v, want ui.ErrHeadless", err)
	}
}

func TestUninstallCmd_InteractiveAll(t *testing.T) {
	d := newTestDeps(t, false)
	installAll(t, d)

	var asked []wizard.Question
	d.Prompt = func(qs []wizard.Question) (*wizard.Result, error) {
		asked = qs
		return &wizard.Result{Target: wizard.AllTargets}, nil
	}

	if _, err := runUninstallCmd(t); err != nil {
		t.Fatalf("uninstall error: %v", err)
	}
	if len(asked) != 1 || len(asked[0].Options) != len(d.Targets)+1 {
		t.Errorf("target question should list every target plus All, got %+v", asked)
	}
	for _, target := range d.Targets {
		if d.Reconciler.Status(target).Installed {
			t.Errorf("%s should be uninstalled", target.Name())
		}
	}
}

func TestUninstallCmd_MalformedSettingsWarns(t *testing.T) {
	d := newTestDeps(t, true)
	path, _ := d.Reconciler.ResolvePath(mustFind(t, d, "gemini"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	const garbage = "{broken"
	if err := os.WriteFile(path, []byte(garbage), 0o644); err != nil {
		t.Fatal(err)
	}
	setFlags(t, uninstallCmd, map[string]string{"gemini": "true"})

	out, err := runUninstallCmd(t)
	if err != nil {
		t.Fatalf("uninstall error: %v", err)
	}
	if !strings.Contains(out, "Left "+path+" unchanged") {
		t.Errorf("output should warn about the unreadable file:\n%s", out)
	}
	data, _ := os.ReadFile(path)
	if string(data) != garbage {
		t.Errorf("unreadable settings rewritten: %q", data)
	}
}

func TestUninstallCmd_LongMentionsUnreadableFiles(t *testing.T) {
	if !strings.Contains(uninstallCmd.Long, "not valid JSON is left unchanged") {
		t.Error("uninstall help should explain that unreadable settings are kept")
	}
}
