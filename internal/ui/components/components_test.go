package components

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/achievements"
)

func TestProgressBarWidth(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.3, 1, 1.7} {
		bar := NewProgressBar("", pct, false, 40).View()
		if got := lipgloss.Width(bar); got != 40 {
			t.Errorf("percent %v: expected width 40, got %d", pct, got)
		}
	}
}

func TestProgressBarCaption(t *testing.T) {
	bar := NewProgressBar("Words", 0.5, true, 40)
	if !strings.Contains(bar.View(), "50%") {
		t.Errorf("expected percent suffix, got %q", bar.View())
	}

	bar.Caption = "5/10"
	v := bar.View()
	if !strings.Contains(v, "5/10") || strings.Contains(v, "50%") {
		t.Errorf("expected caption to replace percent, got %q", v)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var chosen string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b", Action: pick("b")},
		{Label: "c", Disabled: true},
		{Label: "d", Action: pick("d")},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "d" {
		t.Errorf("expected action d, got %q", chosen)
	}
}

func TestToastView(t *testing.T) {
	def, _ := achievements.Lookup("streak_7")
	v := Toast{Record: achievements.Record{Definition: def}}.View(80)
	for _, want := range []string{"ACHIEVEMENT UNLOCKED", def.Title, fmt.Sprintf("+%d XP", def.XP)} {
		if !strings.Contains(v, want) {
			t.Errorf("toast missing %q:\n%s", want, v)
		}
	}
}
