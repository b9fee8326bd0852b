package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██╗     ███████╗██╗  ██╗██╗███████╗
 ██║     ██╔════╝╚██╗██╔╝██║╚══███╔╝
 ██║     █████╗   ╚███╔╝ ██║  ███╔╝ 
 ██║     ██╔══╝   ██╔██╗ ██║ ███╔╝  
 ███████╗███████╗██╔╝ ██╗██║███████╗
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚══════╝`

const arcadeTitleCompact = "L · E · X · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the trophy tally in a bordered box matching content width.
func renderStatsBar(p achievements.Progress, xp, cw int, compact bool) string {
	trophyStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	leftStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			trophyStyle.Render(fmt.Sprintf("★%d/%d", p.Earned, p.Total)),
			xpStyle.Render(fmt.Sprintf("◆%d", xp)),
			leftStyle.Render(fmt.Sprintf("⚑%d", p.Remaining)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			trophyStyle.Render(fmt.Sprintf("★ %d/%d TROPHIES", p.Earned, p.Total)),
			xpStyle.Render(fmt.Sprintf("◆ %d XP", xp)),
			leftStyle.Render(fmt.Sprintf("⚑ %d TO GO", p.Remaining)),
		)
	}

	bar := components.ProgressBar{
		Percent: float64(p.Percentage) / 100,
		Caption: fmt.Sprintf("%d%%", p.Percentage),
		Width:   cw - 4,
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats + "\n" + bar.View())
}

// renderNextUp renders a one-line teaser for the closest unearned milestone.
func renderNextUp(m *achievements.Milestone, cw int) string {
	if m == nil {
		return ""
	}
	text := fmt.Sprintf("Next: %s %s · %d to go", m.Definition.Icon, m.Definition.Title, m.Remaining())
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Gold).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// closest picks the milestone with the largest completed fraction.
func closest(ms []achievements.Milestone) *achievements.Milestone {
	var best *achievements.Milestone
	for i := range ms {
		if best == nil || ms[i].Fraction() > best.Fraction() {
			best = &ms[i]
		}
	}
	return best
}
