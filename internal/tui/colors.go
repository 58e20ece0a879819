package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the wcagpairs studio theme
const (
	ColorBorder       = "#3A3F55" // Grey-blue
	ColorBorderActive = "#7C3AED" // Focused pane

	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorHelpText      = "240" // Dark grey for help text

	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"

	ColorPass     = "#22C55E"
	ColorFail     = "#EF4444"
	ColorWarning  = "#F59E0B"
	ColorFavorite = "#FACC15"
)

// SwatchStyle renders text in fg over bg, both canonical hex strings
func SwatchStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(true)
}

// RenderSample renders the " Aa " preview used for every pair
func RenderSample(fg, bg string) string {
	return SwatchStyle(fg, bg).Render(" Aa ")
}

// RenderBadge renders the PASS / FAIL marker
func RenderBadge(pass bool) string {
	if pass {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPass)).Bold(true).Render("✓ PASS")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFail)).Render("✗ FAIL")
}

// RenderChip renders a palette swatch with its hex code
func RenderChip(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ") + " " + hex
}
