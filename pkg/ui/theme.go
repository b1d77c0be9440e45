package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/weavetour/pkg/config"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals use the
// terminal's own background instead of a down-converted approximation.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Feedback
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles, created once instead of per frame
	Base      lipgloss.Style
	Title     lipgloss.Style
	Key       lipgloss.Style
	KeyOff    lipgloss.Style // disabled key hint
	Desc      lipgloss.Style
	Sep       lipgloss.Style
	Panel     lipgloss.Style // snippet box
	RunOutput lipgloss.Style
	StatusOK  lipgloss.Style
	StatusErr lipgloss.Style
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive)
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Subtext:   ColorSubtext,

		Success: ColorSuccess,
		Warning: ColorWarning,
		Danger:  ColorDanger,
		Info:    ColorInfo,

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: ColorBgHighlight,
		Muted:     ColorMuted,
	}

	t.Base = r.NewStyle().Foreground(ColorText)
	t.Title = r.NewStyle().Bold(true).Foreground(t.Primary)
	t.Key = r.NewStyle().Bold(true).Foreground(t.Primary)
	t.KeyOff = r.NewStyle().Foreground(t.Muted).Strikethrough(true)
	t.Desc = r.NewStyle().Foreground(t.Subtext)
	t.Sep = r.NewStyle().Foreground(t.Muted)

	t.Panel = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Info).
		Padding(0, 1)

	t.RunOutput = r.NewStyle().Foreground(t.Success).Italic(true)
	t.StatusOK = r.NewStyle().Foreground(t.Success)
	t.StatusErr = r.NewStyle().Foreground(t.Danger).Bold(true)

	return t
}

// ThemeFor builds a theme for the configured mode. "dark" and "light" pin the
// adaptive colors; "auto" (or empty) lets lipgloss query the terminal.
func ThemeFor(mode config.Theme) Theme {
	r := lipgloss.NewRenderer(os.Stdout)
	switch mode {
	case config.ThemeDark:
		r.SetHasDarkBackground(true)
	case config.ThemeLight:
		r.SetHasDarkBackground(false)
	}
	return DefaultTheme(r)
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
