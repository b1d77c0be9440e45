package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorText        = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorSubtext     = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}

	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

// progressBarWidth is the number of cells in the header progress bar.
const progressBarWidth = 10

// progressCells returns how many of width cells are filled at position
// (0-based) of total. Any valid position fills at least one cell.
func progressCells(position, total, width int) int {
	if total <= 0 || width <= 0 {
		return 0
	}
	filled := (position + 1) * width / total
	if filled < 1 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return filled
}

// RenderProgressBar renders a block bar like ███░░░░░░░.
func RenderProgressBar(position, total int, t Theme) string {
	filled := progressCells(position, total, progressBarWidth)
	r := t.Renderer
	return r.NewStyle().Foreground(t.Success).Render(strings.Repeat("█", filled)) +
		r.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", progressBarWidth-filled))
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
}
