package ui

import (
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/weavetour/pkg/config"
)

func TestDefaultTheme(t *testing.T) {
	renderer := lipgloss.NewRenderer(nil)
	theme := DefaultTheme(renderer)

	if theme.Renderer != renderer {
		t.Error("DefaultTheme renderer mismatch")
	}
	if isColorEmpty(theme.Primary) {
		t.Error("DefaultTheme Primary color is empty")
	}
	if isColorEmpty(theme.Success) {
		t.Error("DefaultTheme Success color is empty")
	}
}

func isColorEmpty(c lipgloss.AdaptiveColor) bool {
	return c.Light == "" && c.Dark == ""
}

func TestThemeFor(t *testing.T) {
	if !ThemeFor(config.ThemeDark).Renderer.HasDarkBackground() {
		t.Error("dark theme should report a dark background")
	}
	if ThemeFor(config.ThemeLight).Renderer.HasDarkBackground() {
		t.Error("light theme should report a light background")
	}
}

func TestThemeFgBg(t *testing.T) {
	orig := TermProfile
	defer func() { TermProfile = orig }()

	TermProfile = colorprofile.ANSI
	if _, ok := ThemeBg("#282A36").(lipgloss.NoColor); !ok {
		t.Error("ThemeBg should drop background below TrueColor")
	}
	if ThemeFg("#BD93F9") != lipgloss.ANSIColor(7) {
		t.Error("ThemeFg should fall back to ANSI white on 16-color terminals")
	}

	TermProfile = colorprofile.TrueColor
	if ThemeBg("#282A36") != lipgloss.Color("#282A36") {
		t.Error("ThemeBg should keep hex on TrueColor")
	}
	if ThemeFg("#BD93F9") != lipgloss.Color("#BD93F9") {
		t.Error("ThemeFg should keep hex on TrueColor")
	}
}
