// Package trophies renders the achievement catalog with earned state.
package trophies

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Filter selects which part of the catalog is listed.
type Filter int

const (
	FilterAll Filter = iota
	FilterEarned
	FilterLocked
)

func (f Filter) String() string {
	switch f {
	case FilterEarned:
		return "Earned"
	case FilterLocked:
		return "Locked"
	default:
		return "All"
	}
}

var filters = []Filter{FilterAll, FilterEarned, FilterLocked}

type earnedLoadedMsg struct {
	Earned []achievements.Definition
}

// TrophyScreen lists every achievement, earned ones first in the tally.
type TrophyScreen struct {
	ledger  *achievements.Ledger
	earned  map[string]bool
	count   int
	filter  Filter
	cursor  int
	scroll  int
	loaded  bool
	catalog []achievements.Definition
}

var _ screen.Screen = (*TrophyScreen)(nil)
var _ screen.KeyHintProvider = (*TrophyScreen)(nil)

// New creates a new TrophyScreen.
func New(ledger *achievements.Ledger) *TrophyScreen {
	return &TrophyScreen{
		ledger:  ledger,
		earned:  map[string]bool{},
		catalog: achievements.Catalog(),
	}
}

func (s *TrophyScreen) Init() tea.Cmd {
	return s.load()
}

func (s *TrophyScreen) load() tea.Cmd {
	ledger := s.ledger
	return func() tea.Msg {
		return earnedLoadedMsg{Earned: ledger.AllEarned(context.Background())}
	}
}

func (s *TrophyScreen) Title() string {
	return "Trophy Case"
}

func (s *TrophyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Details"},
	}
}

func (s *TrophyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case earnedLoadedMsg:
		s.earned = make(map[string]bool, len(msg.Earned))
		for _, d := range msg.Earned {
			s.earned[d.ID] = true
		}
		s.count = len(msg.Earned)
		s.loaded = true
		s.clampCursor()
		return s, nil

	case screen.StatsMsg:
		if msg.Progress.Earned != s.count {
			return s, s.load()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.setFilter(filters[(int(s.filter)+1)%len(filters)])
			return s, nil
		case "shift+tab":
			s.setFilter(filters[(int(s.filter)-1+len(filters))%len(filters)])
			return s, nil
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down", "j":
			if s.cursor < len(s.visible())-1 {
				s.cursor++
			}
			return s, nil
		case "enter":
			vis := s.visible()
			if s.cursor < len(vis) {
				d := vis[s.cursor]
				earned := s.earned[d.ID]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewDetail(d, earned)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *TrophyScreen) setFilter(f Filter) {
	s.filter = f
	s.cursor = 0
	s.scroll = 0
}

func (s *TrophyScreen) clampCursor() {
	if n := len(s.visible()); s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}

// visible returns catalog entries matching the active filter, in catalog order.
func (s *TrophyScreen) visible() []achievements.Definition {
	if s.filter == FilterAll {
		return s.catalog
	}
	var out []achievements.Definition
	for _, d := range s.catalog {
		if s.earned[d.ID] == (s.filter == FilterEarned) {
			out = append(out, d)
		}
	}
	return out
}

func (s *TrophyScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading trophies...")
	}

	var b strings.Builder
	cw := min(width-8, 64)

	total := len(s.catalog)
	pct := 0.0
	if total > 0 {
		pct = float64(s.count) / float64(total)
	}
	bar := components.ProgressBar{
		Label:   "Collected",
		Percent: pct,
		Caption: fmt.Sprintf("%d/%d", s.count, total),
		Width:   cw,
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	var tabs []string
	for _, f := range filters {
		label := f.String()
		if f == s.filter {
			tabs = append(tabs, theme.Selected.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw, 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	vis := s.visible()
	if len(vis) == 0 {
		msg := "Nothing earned yet. Keep learning!"
		if s.filter == FilterLocked {
			msg = "Every trophy collected!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(msg))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	}
	if s.cursor >= s.scroll+maxVisible {
		s.scroll = s.cursor - maxVisible + 1
	}
	end := min(s.scroll+maxVisible, len(vis))

	for i := s.scroll; i < end; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRow(vis[i], i == s.cursor, cw)))
		b.WriteString("\n")
	}

	if end < len(vis) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(vis)-end)))
	}

	return b.String()
}

func (s *TrophyScreen) renderRow(d achievements.Definition, selected bool, cw int) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}

	icon := "🔒"
	style := theme.Locked
	if s.earned[d.ID] {
		icon = d.Icon
		style = theme.Earned
	}
	if selected {
		style = style.Underline(true)
	}

	xp := fmt.Sprintf("%d XP", d.XP)
	name := fmt.Sprintf("%s %s %s", marker, icon, d.Title)
	gap := max(cw-lipgloss.Width(name)-lipgloss.Width(xp), 1)
	return style.Render(name + strings.Repeat(" ", gap) + xp)
}
