package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the mastery TUI theme
const (
	// Base Colors
	ColorCardBackground = "#10232A" // Deep teal
	ColorBorder         = "#3A4F55" // Grey-teal

	// Text Colors
	ColorPrimaryText   = "#E6EEF2"
	ColorSecondaryText = "#A9BCC4"
	ColorDisabledText  = "#6D7F83"
	ColorPlaceholder   = "#A9BCC4"
	ColorHelpText      = "240"

	// Accent Colors
	ColorAccentMain   = "#329BA4" // Default vision color
	ColorAccentBright = "#7FD3DA"

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
	ColorFlame   = "#F97316" // Streaks
)

// heatmapPalette is indexed by heatmap level
var heatmapPalette = [...]string{
	"#22272E",
	"#0E4429",
	"#006D32",
	"#26A641",
	"#39D353",
	"#7EE787",
}

// heatmapGlyphs keeps levels distinguishable without color
var heatmapGlyphs = [...]string{"··", "░░", "▒▒", "▓▓", "██", "██"}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// visionColor falls back to the accent color for empty or orphan entries
func visionColor(color string) string {
	if color == "" {
		return ColorAccentMain
	}
	return color
}
