package trophies

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// DetailScreen shows one achievement on its own card.
type DetailScreen struct {
	def    achievements.Definition
	earned bool
}

var _ screen.Screen = (*DetailScreen)(nil)

// NewDetail creates a DetailScreen for def.
func NewDetail(def achievements.Definition, earned bool) *DetailScreen {
	return &DetailScreen{def: def, earned: earned}
}

func (s *DetailScreen) Init() tea.Cmd { return nil }

func (s *DetailScreen) Title() string { return s.def.Title }

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "enter" || k.String() == "q") {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	icon := s.def.Icon
	status := theme.Earned.Render("★ EARNED")
	if !s.earned {
		icon = "🔒"
		status = theme.Locked.Render("LOCKED")
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(icon + "  " + s.def.Title),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.def.Description),
		"",
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d XP", s.def.XP)),
		status,
	}
	card := components.ArcadeCard(strings.Join(lines, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
