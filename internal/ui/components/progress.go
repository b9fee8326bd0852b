package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label string
	// Percent is a fraction in [0, 1]. Values outside are clamped.
	Percent float64
	// Caption replaces the default "NN%" suffix when set.
	Caption     string
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  ")
	}
	labelWidth := lipgloss.Width(b.String())

	suffix := p.suffix()
	barWidth := p.Width - labelWidth - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * clamp01(p.Percent))
	empty := barWidth - filled

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", empty)))
	b.WriteString(suffix)

	return b.String()
}

func (p ProgressBar) suffix() string {
	text := p.Caption
	if text == "" && p.ShowPercent {
		text = fmt.Sprintf("%d%%", int(clamp01(p.Percent)*100))
	}
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + text)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
