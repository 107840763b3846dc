package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorGood    = lipgloss.Color("#6BCF7F") // Green for firing surf
	colorFair    = lipgloss.Color("#FFD93D") // Yellow for rideable surf
	colorPoor    = lipgloss.Color("#FF6B6B") // Red for poor surf
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Score tier styles
	scoreGoodStyle = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	scoreFairStyle = lipgloss.NewStyle().
			Foreground(colorFair).
			Bold(true)

	scorePoorStyle = lipgloss.NewStyle().
			Foreground(colorPoor).
			Bold(true)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(colorPoor).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)

	// Boxes
	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Width(64)

	metricBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginRight(1)

	explanationStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Width(72)
)

// scoreStyle picks the style for a score tier
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 7:
		return scoreGoodStyle
	case score >= 4:
		return scoreFairStyle
	default:
		return scorePoorStyle
	}
}

// scoreEmoji mirrors the tier styling for the headline
func scoreEmoji(score float64) string {
	switch {
	case score >= 7:
		return "🔥"
	case score >= 4:
		return "🙂"
	default:
		return "👎"
	}
}
