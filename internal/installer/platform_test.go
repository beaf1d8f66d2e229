package installer

import (
	"testing"

	"github.com/i18n-agent/i18n-agent-mcp/internal/template"
)

func TestResolvePath(t *testing.T) {
	t.Parallel()

	r := template.NewRenderer(template.EmbeddedTemplates())
	claude, gemini, cursor := NewClaudeCode(r), NewGemini(), NewCursor(r)

	tests := []struct {
		name      string
		platform  Platform
		target    Target
		wantPath  string
		wantAsset string
	}{
		{
			name:     "linux_claude",
			platform: Platform{GOOS: "linux", Home: "/home/dev"},
			target:   claude,
			wantPath: "/home/dev/.config/claude-code/mcp_servers.json",
		},
		{
			name:     "darwin_gemini",
			platform: Platform{GOOS: "darwin", Home: "/Users/dev"},
			target:   gemini,
			wantPath: "/Users/dev/Library/Application Support/gemini-ide/extensions.json",
		},
		{
			name:      "darwin_cursor",
			platform:  Platform{GOOS: "darwin", Home: "/Users/dev"},
			target:    cursor,
			wantPath:  "/Users/dev/Library/Application Support/Cursor/User/settings.json",
			wantAsset: "/Users/dev/Library/Application Support/Cursor/extensions/i18n-agent",
		},
		{
			name:     "windows_appdata",
			platform: Platform{GOOS: "windows", Home: `C:\Users\dev`, AppData: `D:\Roaming\`},
			target:   claude,
			wantPath: `D:\Roaming\claude-code\mcp_servers.json`,
		},
		{
			name:      "windows_home_fallback",
			platform:  Platform{GOOS: "windows", Home: `C:\Users\dev`},
			target:    cursor,
			wantPath:  `C:\Users\dev\AppData\Roaming\Cursor\User\settings.json`,
			wantAsset: `C:\Users\dev\AppData\Roaming\Cursor\extensions\i18n-agent`,
		},
		{
			name:     "unknown_os_uses_posix_branch",
			platform: Platform{GOOS: "plan9", Home: "/usr/dev"},
			target:   gemini,
			wantPath: "/usr/dev/.config/gemini-ide/extensions.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := NewReconciler(tt.platform, nil)
			gotPath, gotAsset := rec.ResolvePath(tt.target)
			if gotPath != tt.wantPath {
				t.Errorf("settings path = %q, want %q", gotPath, tt.wantPath)
			}
			if gotAsset != tt.wantAsset {
				t.Errorf("asset dir = %q, want %q", gotAsset, tt.wantAsset)
			}
		})
	}
}

func TestPlatformJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		elem []string
		want string
	}{
		{"linux", []string{"/home/dev/", "a", "b.json"}, "/home/dev/a/b.json"},
		{"windows", []string{`C:\Users\dev\`, `\a`, "b/c.json"}, `C:\Users\dev\a\b\c.json`},
		{"windows", []string{`C:\`, "x"}, `C:\x`},
	}
	for _, tt := range tests {
		if got := (Platform{GOOS: tt.goos}).Join(tt.elem...); got != tt.want {
			t.Errorf("%s Join(%q) = %q, want %q", tt.goos, tt.elem, got, tt.want)
		}
	}
}

func TestCurrentPlatform(t *testing.T) {
	t.Setenv("HOME", "/tmp/i18n-home")
	t.Setenv("APPDATA", "")

	p, err := CurrentPlatform()
	if err != nil {
		t.Fatalf("CurrentPlatform() error: %v", err)
	}
	if p.GOOS == "" {
		t.Error("GOOS is empty")
	}
	if p.Home == "" {
		t.Error("Home is empty")
	}
}
