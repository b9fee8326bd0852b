// Package welcome is the first-run onboarding carousel.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

type slide struct {
	icon  string
	title string
	body  string
}

var slides = []slide{
	{
		icon:  "📖",
		title: "Learn a word a day",
		body:  "Every word you learn, article you read and\npractice round you finish is counted.",
	},
	{
		icon:  "🔥",
		title: "Keep your streak alive",
		body:  "Study on consecutive days to build a streak.\nMiss a day and it starts over.",
	},
	{
		icon:  "🏆",
		title: "Collect trophies",
		body:  "Hit milestones to unlock achievements and XP.\nEach one is yours for good.",
	},
}

// WelcomeScreen walks a new learner through a few onboarding slides before
// replacing itself with the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	page         int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Page"},
		{Key: "Enter", Description: "Next"},
		{Key: "s", Description: "Skip"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "right", "l", "enter", "space":
		if w.page < len(slides)-1 {
			w.page++
			return w, nil
		}
		return w, w.transition()
	case "left", "h":
		if w.page > 0 {
			w.page--
		}
		return w, nil
	case "s":
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if !layout.IsCompactHeight(height + 8) {
		sections = append(sections, RenderBanner(width), "")
	}

	s := slides[w.page]
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Gold).Render(s.icon),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.title),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(s.body),
		"",
		renderDots(w.page, len(slides)),
	)

	hint := "press enter to continue"
	if w.page == len(slides)-1 {
		hint = "press enter to start"
	}
	sections = append(sections, "", theme.Hint.Render(hint))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderDots(page, total int) string {
	dots := make([]string, total)
	for i := range dots {
		if i == page {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(dots, " ")
}
