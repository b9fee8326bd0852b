// Package nextup shows how close the learner is to each family's next trophy.
package nextup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

type milestonesMsg struct {
	Milestones []achievements.Milestone
	Err        error
}

// NextUpScreen lists the next unearned milestone per metric family.
type NextUpScreen struct {
	ledger     *achievements.Ledger
	source     metrics.Source
	milestones []achievements.Milestone
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*NextUpScreen)(nil)

// New creates a NextUpScreen. With a nil source the screen explains how to
// connect one.
func New(ledger *achievements.Ledger, source metrics.Source) *NextUpScreen {
	return &NextUpScreen{ledger: ledger, source: source}
}

func (s *NextUpScreen) Init() tea.Cmd {
	if s.source == nil {
		return nil
	}
	ledger, source := s.ledger, s.source
	return func() tea.Msg {
		ctx := context.Background()
		m, err := source.Snapshot(ctx)
		if err != nil {
			return milestonesMsg{Err: err}
		}
		return milestonesMsg{Milestones: ledger.NextMilestones(ctx, m)}
	}
}

func (s *NextUpScreen) Title() string {
	return "Next Up"
}

func (s *NextUpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case milestonesMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.milestones = msg.Milestones
	case screen.StatsMsg:
		if msg.Metrics != nil {
			s.loaded = true
			s.errMsg = ""
			s.milestones = s.ledger.NextMilestones(context.Background(), *msg.Metrics)
		}
	}
	return s, nil
}

func (s *NextUpScreen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(text))
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center)

	switch {
	case s.source == nil:
		return center(dim, "No metrics source connected.\n\nRun with --metrics-file or set LEXIZ_METRICS_FILE\nto track progress toward the next trophy.")
	case s.errMsg != "":
		return center(lipgloss.NewStyle().Foreground(theme.Error), "Error: "+s.errMsg)
	case !s.loaded:
		return center(dim, "Loading progress...")
	case len(s.milestones) == 0:
		return center(theme.Earned, "★ Every milestone reached! ★")
	}

	cw := components.ContentWidth(width)
	var rows []string
	for _, m := range s.milestones {
		head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("%s %s", m.Definition.Icon, m.Definition.Title))
		sub := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %d to go", m.Metric.DisplayName(), m.Remaining()))
		bar := components.ProgressBar{
			Percent: m.Fraction(),
			Caption: fmt.Sprintf("%d/%d", m.Current, m.Target),
			Width:   cw,
		}
		rows = append(rows, head+"\n"+sub+"\n"+bar.View())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n\n"))
}
