package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Toast renders an "achievement unlocked" banner for a drained record.
type Toast struct {
	Record achievements.Record
}

// View renders the toast centered within width.
func (t Toast) View(width int) string {
	d := t.Record.Definition

	heading := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true).
		Render(d.Icon + "  ACHIEVEMENT UNLOCKED")
	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(d.Title)
	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(d.Description)
	xp := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("+%d XP", d.XP))

	body := lipgloss.JoinVertical(lipgloss.Center, heading, title, desc, xp)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Toast.Render(body))
}
