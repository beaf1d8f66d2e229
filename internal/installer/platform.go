package installer

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
)

// Platform captures the parts of the process environment that decide where
// settings documents live. Path resolution is a pure function of it.
type Platform struct {
	GOOS    string
	Home    string
	AppData string
}

// CurrentPlatform reads the running operating system and home directory.
func CurrentPlatform() (Platform, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Platform{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return Platform{
		GOOS:    runtime.GOOS,
		Home:    home,
		AppData: os.Getenv("APPDATA"),
	}, nil
}

// ConfigBase returns the per-user application configuration directory:
// %AppData% on Windows, ~/Library/Application Support on macOS and
// ~/.config everywhere else.
func (p Platform) ConfigBase() string {
	switch p.GOOS {
	case "windows":
		if p.AppData != "" {
			return strings.TrimRight(p.AppData, `\/`)
		}
		return p.Join(p.Home, "AppData", "Roaming")
	case "darwin":
		return p.Join(p.Home, "Library", "Application Support")
	default:
		return p.Join(p.Home, ".config")
	}
}

// Path joins elem onto the configuration base directory.
func (p Platform) Path(elem ...string) string {
	return p.Join(append([]string{p.ConfigBase()}, elem...)...)
}

// Join joins path elements with the separator of the platform's operating
// system rather than the one the process runs on.
func (p Platform) Join(elem ...string) string {
	if p.GOOS != "windows" {
		return path.Join(elem...)
	}
	parts := make([]string, 0, len(elem))
	for i, e := range elem {
		e = strings.ReplaceAll(e, "/", `\`)
		if i > 0 {
			e = strings.TrimLeft(e, `\`)
		}
		e = strings.TrimRight(e, `\`)
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, `\`)
}
