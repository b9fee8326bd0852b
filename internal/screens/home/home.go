package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/nextup"
	"github.com/abhisek/lexiz/internal/screens/trophies"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

var menuLabels = []string{"TROPHY CASE", "NEXT UP", "EXIT"}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	ledger *achievements.Ledger
	source metrics.Source

	menu     components.Menu
	progress achievements.Progress
	xp       int
	next     *achievements.Milestone
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. source may be nil.
func New(ledger *achievements.Ledger, source metrics.Source) *HomeScreen {
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trophies.New(ledger)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: nextup.New(ledger, source)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ledger:   ledger,
		source:   source,
		menu:     components.NewMenu(items),
		progress: achievements.Progress{Total: len(achievements.Catalog()), Remaining: len(achievements.Catalog())},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	ledger, source := h.ledger, h.source
	return func() tea.Msg {
		return screen.LoadStats(context.Background(), ledger, source)
	}
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if stats, ok := msg.(screen.StatsMsg); ok {
		h.progress = stats.Progress
		h.xp = stats.EarnedXP
		h.next = nil
		if stats.Metrics != nil {
			h.next = closest(h.ledger.NextMilestones(context.Background(), *stats.Metrics))
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	compact := layout.IsCompactHeight(height+8) || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.progress, h.xp, cw, compact))
	if next := renderNextUp(h.next, cw); next != "" {
		sections = append(sections, next)
	}
	if height < 20 {
		sections = append(sections, renderArcadeMenuCompact(menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(menuLabels, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
