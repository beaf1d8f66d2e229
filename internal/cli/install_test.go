package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/i18n-agent/i18n-agent-mcp/internal/cli/wizard"
	"github.com/i18n-agent/i18n-agent-mcp/internal/config"
	"github.com/i18n-agent/i18n-agent-mcp/internal/settings"
	"github.com/i18n-agent/i18n-agent-mcp/internal/ui"
)

const testAPIKey = "sk-test-0123456789"

// scriptedPrompt answers successive prompts in order.
func scriptedPrompt(t *testing.T, answers ...*wizard.Result) PromptFunc {
	t.Helper()
	calls := 0
	t.Cleanup(func() {
		if calls != len(answers) {
			t.Errorf("prompted %d times, want %d", calls, len(answers))
		}
	})
	return func([]wizard.Question) (*wizard.Result, error) {
		if calls >= len(answers) {
			return nil, errors.New("unexpected prompt")
		}
		calls++
		return answers[calls-1], nil
	}
}

func runInstallCmd(t *testing.T) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	installCmd.SetOut(buf)
	installCmd.SetErr(buf)
	t.Cleanup(func() {
		installCmd.SetOut(nil)
		installCmd.SetErr(nil)
	})
	err := installCmd.RunE(installCmd, []string{})
	return buf.String(), err
}

func TestInstallCmd_Exists(t *testing.T) {
	if installCmd == nil {
		t.Fatal("installCmd should not be nil")
	}
	if installCmd.Use != "install" {
		t.Errorf("installCmd.Use = %q, want %q", installCmd.Use, "install")
	}
	if installCmd.Short == "" {
		t.Error("installCmd.Short should not be empty")
	}
}

func TestInstallCmd_Flags(t *testing.T) {
	for _, name := range []string{"claude-code", "gemini", "cursor", "api-key", "server-url"} {
		if installCmd.Flags().Lookup(name) == nil {
			t.Errorf("install should define --%s", name)
		}
	}
}

func TestInstallCmd_NoDeps(t *testing.T) {
	orig := deps
	defer func() { deps = orig }()
	deps = nil

	if _, err := runInstallCmd(t); !errors.Is(err, errNoDeps) {
		t.Errorf("error = %v, want errNoDeps", err)
	}
}

func TestInstallCmd_GeminiWithFlags(t *testing.T) {
	d := newTestDeps(t, true)
	setFlags(t, installCmd, map[string]string{"gemini": "true", "api-key": testAPIKey})

	out, err := runInstallCmd(t)
	if err != nil {
		t.Fatalf("install error: %v", err)
	}

	path := filepath.Join(d.Reconciler.Platform().Home, ".config", "gemini-ide", "extensions.json")
	doc := settings.Load(path)
	if doc.Recovered() != nil {
		t.Fatalf("written document is not valid: %v", doc.Recovered())
	}
	raw, ok := doc.Lookup(settings.KeyPath{"i18n-agent"})
	if !ok {
		t.Fatal("i18n-agent entry missing")
	}
	if !strings.Contains(string(raw), testAPIKey) {
		t.Errorf("entry does not carry the API key: %s", raw)
	}
	if !strings.Contains(string(raw), config.DefaultServerURL) {
		t.Errorf("entry does not carry the default server URL: %s", raw)
	}

	for _, want := range []string{"Installation completed successfully!", "Gemini IDE", "translate_text", path} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, testAPIKey) {
		t.Error("output should mask the API key")
	}
}

func TestInstallCmd_MultipleTargets(t *testing.T) {
	d := newTestDeps(t, true)
	setFlags(t, installCmd, map[string]string{
		"claude-code": "true",
		"cursor":      "true",
		"api-key":     testAPIKey,
		"server-url":  "https://translate.example.com",
	})

	out, err := runInstallCmd(t)
	if err != nil {
		t.Fatalf("install error: %v", err)
	}
	for _, name := range []string{"claude-code", "cursor"} {
		rep := d.Reconciler.Status(mustFind(t, d, name))
		if !rep.Installed {
			t.Errorf("%s not installed: %s", name, rep.Detail)
		}
	}
	if rep := d.Reconciler.Status(mustFind(t, d, "gemini")); rep.Installed {
		t.Error("gemini should not be installed")
	}
	if got := strings.Count(out, "Installation completed successfully!"); got != 2 {
		t.Errorf("success cards = %d, want 2", got)
	}
}

func TestInstallCmd_HeadlessWithoutTarget(t *testing.T) {
	newTestDeps(t, true)
	setFlags(t, installCmd, map[string]string{"api-key": testAPIKey})

	if _, err := runInstallCmd(t); !errors.Is(err, ui.ErrHeadless) {
		t.Errorf("error = %v, want ui.ErrHeadless", err)
	}
}

func TestInstallCmd_HeadlessWithoutKey(t *testing.T) {
	d := newTestDeps(t, true)
	setFlags(t, installCmd, map[string]string{"cursor": "true"})

	if _, err := runInstallCmd(t); !errors.Is(err, ui.ErrHeadless) {
		t.Errorf("error = %v, want ui.ErrHeadless", err)
	}
	if _, err := os.Stat(filepath.Join(d.Reconciler.Platform().Home, ".config")); !os.IsNotExist(err) {
		t.Error("nothing should be written without a key")
	}
}

func TestInstallCmd_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
		want  error
	}{
		{"short key", map[string]string{"gemini": "true", "api-key": "abc"}, config.ErrAPIKeyTooShort},
		{"bad url", map[string]string{"gemini": "true", "api-key": testAPIKey, "server-url": "ftp://x"}, config.ErrInvalidServerURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newTestDeps(t, true)
			setFlags(t, installCmd, tt.flags)

			if _, err := runInstallCmd(t); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInstallCmd_KeyFromConfigFile(t *testing.T) {
	d := newTestDeps(t, true)
	dir := filepath.Join(d.Reconciler.Platform().Home, ".i18n-agent")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "installer:\n  api_key: " + testAPIKey + "\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	setFlags(t, installCmd, map[string]string{"claude-code": "true"})

	if _, err := runInstallCmd(t); err != nil {
		t.Fatalf("install error: %v", err)
	}
	if rep := d.Reconciler.Status(mustFind(t, d, "claude-code")); !rep.Installed {
		t.Errorf("claude-code not installed: %s", rep.Detail)
	}
}

func TestInstallCmd_InteractiveDemoKey(t *testing.T) {
	d := newTestDeps(t, false)
	d.Prompt = scriptedPrompt(t,
		&wizard.Result{Target: "gemini"},
		&wizard.Result{KeyChoice: wizard.KeyChoiceDemo},
	)

	out, err := runInstallCmd(t)
	if err != nil {
		t.Fatalf("install error: %v", err)
	}
	if !strings.Contains(out, "Using demo key") {
		t.Errorf("output should warn about the demo key:\n%s", out)
	}

	path := filepath.Join(d.Reconciler.Platform().Home, ".config", "gemini-ide", "extensions.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if !strings.Contains(string(data), config.DefaultDemoKey) {
		t.Errorf("settings should carry the demo key:\n%s", data)
	}
}

func TestInstallCmd_InteractivePastedKey(t *testing.T) {
	d := newTestDeps(t, false)
	setFlags(t, installCmd, map[string]string{"claude-code": "true"})
	d.Prompt = scriptedPrompt(t, &wizard.Result{KeyChoice: wizard.KeyChoicePaste, APIKey: "  " + testAPIKey + "\u00a0"})

	if _, err := runInstallCmd(t); err != nil {
		t.Fatalf("install error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(d.Reconciler.Platform().Home, ".config", "claude-code", "mcp_servers.json"))
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if !strings.Contains(string(data), testAPIKey) {
		t.Error("settings should carry the normalized pasted key")
	}
}

func TestInstallCmd_BrowserChoice(t *testing.T) {
	d := newTestDeps(t, false)
	setFlags(t, installCmd, map[string]string{"cursor": "true"})
	d.Prompt = scriptedPrompt(t, &wizard.Result{KeyChoice: wizard.KeyChoiceBrowser})
	b := &fakeBrowser{}
	d.Browser = b

	out, err := runInstallCmd(t)
	if err != nil {
		t.Fatalf("browser choice should exit cleanly, got: %v", err)
	}
	if len(b.opened) != 1 || b.opened[0] != config.DefaultDashboardURL {
		t.Errorf("opened = %v, want [%s]", b.opened, config.DefaultDashboardURL)
	}
	if !strings.Contains(out, "install --cursor --api-key YOUR_API_KEY") {
		t.Errorf("output should include the re-run hint:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(d.Reconciler.Platform().Home, ".config")); !os.IsNotExist(err) {
		t.Error("browser choice should not write anything")
	}
}

func TestInstallCmd_BrowserFailurePrintsURL(t *testing.T) {
	d := newTestDeps(t, false)
	setFlags(t, installCmd, map[string]string{"gemini": "true"})
	d.Prompt = scriptedPrompt(t, &wizard.Result{KeyChoice: wizard.KeyChoiceBrowser})
	d.Browser = &fakeBrowser{err: errors.New("no display")}

	out, err := runInstallCmd(t)
	if err != nil {
		t.Fatalf("install error: %v", err)
	}
	if !strings.Contains(out, "Open this page in your browser: "+config.DefaultDashboardURL) {
		t.Errorf("output should print the dashboard URL:\n%s", out)
	}
}

func TestInstallCmd_PromptCancelled(t *testing.T) {
	d := newTestDeps(t, false)
	d.Prompt = func([]wizard.Question) (*wizard.Result, error) {
		return nil, wizard.ErrCancelled
	}

	if _, err := runInstallCmd(t); !errors.Is(err, wizard.ErrCancelled) {
		t.Errorf("error = %v, want wizard.ErrCancelled", err)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "*****"},
		{"abcdefgh", "********"},
		{"abcd1234wxyz", "abcd****wxyz"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.in); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
