package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/surfscout/surfscout/internal/models"
	"github.com/surfscout/surfscout/internal/surf"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateBeachList:
		return m.viewBeachList()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("🏄 SurfScout")
	subtitle := mutedStyle.Render("Is it worth going for a surf?")

	searchBox := searchBoxStyle.Render(m.searchInput.View())

	var sections []string
	sections = append(sections, title, subtitle, "", searchBox)

	if m.err != nil {
		sections = append(sections, "", errorStyle.Padding(0, 2).Render("✗ "+surf.UserMessage(m.err)))
	}

	if len(m.favorites) > 0 {
		sections = append(sections, "", labelStyle.Render("Saved beaches:"))
		for i, b := range m.favorites {
			if i >= 9 {
				break
			}
			line := fmt.Sprintf("  %d. %s", i+1, b.Name)
			if b.State != "" {
				line += mutedStyle.Render(fmt.Sprintf(" (%s)", b.State))
			}
			sections = append(sections, line)
		}
		sections = append(sections, mutedStyle.Render("  Press a number to check a saved beach"))
	}

	examples := mutedStyle.Render("Examples: Bondi Beach | Bells Beach | Snapper Rocks")
	help := helpStyle.Render("Enter: Search • Ctrl+C: Quit")

	sections = append(sections, "", examples, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewBeachList renders the beach selection list
func (m Model) viewBeachList() string {
	title := titleStyle.Render("🏄 Matching Beaches")
	subtitle := mutedStyle.Render(fmt.Sprintf("Found %d matches for %q", len(m.locations), m.searchQuery))

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • S/Esc: Back to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		m.beachList.View(),
		"",
		help,
	)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	note := m.loadingNote
	if note == "" {
		note = "Working..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render(note)),
		"",
		helpStyle.Render("Ctrl+C: Quit"),
	)
}

// viewError renders the error view with a user-facing message
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Something went wrong")

	var msg string
	if m.err != nil {
		msg = surf.UserMessage(m.err)
	} else {
		msg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		msg,
		"",
		help,
	)
}

// viewDisplay renders the assessment for the selected beach
func (m Model) viewDisplay() string {
	if m.selected == nil || m.evaluation == nil {
		return "No beach selected"
	}

	var sections []string

	header := titleStyle.Padding(0, 1).Render(fmt.Sprintf("🏄 %s", m.selected.Name))
	sections = append(sections, header)

	if m.selected.Region != "" {
		sections = append(sections, mutedStyle.Padding(0, 1).Render(
			fmt.Sprintf("%s, %s", m.selected.Region, m.selected.State)))
	}

	assessment := m.evaluation.Assessment
	headline := fmt.Sprintf("Score: %.1f/10 %s", assessment.Score, scoreEmoji(assessment.Score))
	sections = append(sections,
		sectionHeaderStyle.Render("SURF QUALITY"),
		scoreStyle(assessment.Score).Padding(0, 1).Render(headline),
	)

	if assessment.Explanation != "" {
		sections = append(sections, explanationStyle.Render(assessment.Explanation))
	}

	sections = append(sections,
		sectionHeaderStyle.Render("CURRENT CONDITIONS"),
		m.renderConditions(),
	)

	saveHint := "F: Save beach"
	if m.saved {
		saveHint = "✓ Saved"
	}
	help := helpStyle.Render(fmt.Sprintf("S: New search • %s • Q: Quit", saveHint))
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderConditions renders the tide/wind/swell metrics side by side
func (m Model) renderConditions() string {
	snap := m.evaluation.Snapshot

	tide := renderMetric("Tide",
		fmt.Sprintf("%.1f m", snap.Tide.Height),
		titleCase(snap.Tide.State))

	wind := renderMetric("Wind",
		fmt.Sprintf("%.0f km/h", snap.Wind.SpeedKPH),
		models.CompassPoint(snap.Wind.DirectionDeg))

	swell := renderMetric("Swell",
		fmt.Sprintf("%.1f m @ %.0f s", snap.Swell.HeightM, snap.Swell.PeriodSec),
		models.CompassPoint(snap.Swell.DirectionDeg))

	return lipgloss.JoinHorizontal(lipgloss.Top, tide, wind, swell)
}

// titleCase uppercases the first letter of a tide state for display
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderMetric renders a single labeled metric box
func renderMetric(label, value, detail string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label),
		valueStyle.Render(value),
		mutedStyle.Render(detail),
	)
	return metricBoxStyle.Render(content)
}
