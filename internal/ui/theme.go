package ui

import "github.com/charmbracelet/lipgloss"

// Brand colors in dark-terminal form.
const (
	ColorPrimary   = "#4F8EF7"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Palette lists the theme colors as hex strings.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Border    string
}

// Theme holds the colors and styles used by terminal output.
type Theme struct {
	Colors  Palette
	NoColor bool
}

// ThemeConfig selects how the theme renders.
type ThemeConfig struct {
	NoColor bool
	// Mode is "dark", "light" or "" for automatic detection.
	Mode string
}

// NewTheme returns the brand theme configured by cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	switch cfg.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
	return &Theme{
		Colors: Palette{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
		NoColor: cfg.NoColor,
	}
}

func (t *Theme) style(light, dark string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: light, Dark: dark})
}

// Primary styles headings and highlights.
func (t *Theme) Primary() lipgloss.Style { return t.style("#1D4ED8", t.Colors.Primary) }

// Success styles confirmations.
func (t *Theme) Success() lipgloss.Style { return t.style("#059669", t.Colors.Success) }

// Warning styles cautions.
func (t *Theme) Warning() lipgloss.Style { return t.style("#B45309", t.Colors.Warning) }

// Error styles failures.
func (t *Theme) Error() lipgloss.Style { return t.style("#DC2626", t.Colors.Error) }

// Muted styles secondary text.
func (t *Theme) Muted() lipgloss.Style { return t.style("#6B7280", t.Colors.Muted) }

// Card returns the rounded bordered box used for result cards.
func (t *Theme) Card() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: t.Colors.Border})
	}
	return s
}
