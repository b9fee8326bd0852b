package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
	"github.com/abhisek/lexiz/internal/screens/home"
	"github.com/abhisek/lexiz/internal/screens/welcome"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("expected AppModel, got %T", next)
	}
	return am, cmd
}

func runPoll(t *testing.T, m AppModel) polledMsg {
	t.Helper()
	_, cmd := update(t, m, pollMsg{})
	if cmd == nil {
		t.Fatal("expected poll command")
	}
	msg, ok := cmd().(polledMsg)
	if !ok {
		t.Fatalf("expected polledMsg, got %T", msg)
	}
	return msg
}

func TestFirstRunStartsOnboarding(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected onboarding for a fresh ledger, got %T", m.router.Active())
	}

	ledger := achievements.NewLedger(nil)
	ledger.TryAward(context.Background(), "first_word")
	m = newAppModel(Options{Ledger: ledger})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home once something is earned, got %T", m.router.Active())
	}
}

func TestPollShowsToastAndHoldsQueue(t *testing.T) {
	ctx := context.Background()
	ledger := achievements.NewLedger(nil)
	m := newAppModel(Options{Ledger: ledger, Source: metrics.StaticSource{WordsLearned: 10}})

	polled := runPoll(t, m)
	if polled.record == nil || polled.record.ID != "first_word" {
		t.Fatalf("expected first_word to be drained, got %+v", polled.record)
	}
	if polled.stats.Progress.Earned != 2 {
		t.Errorf("expected 2 earned after check, got %d", polled.stats.Progress.Earned)
	}

	m, _ = update(t, m, polled)
	if m.toast == nil || m.toast.ID != "first_word" {
		t.Fatalf("expected first_word toast, got %+v", m.toast)
	}

	// While a toast is visible the next poll must not drain.
	polled = runPoll(t, m)
	if polled.record != nil {
		t.Errorf("expected no drain while toast visible, got %s", polled.record.ID)
	}
	if got := ledger.PendingCount(ctx); got != 1 {
		t.Errorf("expected words_10 still queued, got %d pending", got)
	}
}

func TestToastExpiry(t *testing.T) {
	ledger := achievements.NewLedger(nil)
	ledger.TryAward(context.Background(), "first_word")
	ledger.TryAward(context.Background(), "streak_3")
	m := newAppModel(Options{Ledger: ledger})

	m, _ = update(t, m, runPoll(t, m))
	first := m.toastSeq

	// Stale timers are ignored.
	m, _ = update(t, m, toastExpiredMsg{seq: first - 1})
	if m.toast == nil {
		t.Fatal("stale expiry should not clear the toast")
	}

	m, _ = update(t, m, toastExpiredMsg{seq: first})
	if m.toast != nil {
		t.Fatal("expected toast to expire")
	}

	m, _ = update(t, m, runPoll(t, m))
	if m.toast == nil || m.toast.ID != "streak_3" {
		t.Fatalf("expected streak_3 next, got %+v", m.toast)
	}
	if m.toastSeq != first+1 {
		t.Errorf("expected sequence to advance, got %d", m.toastSeq)
	}
}

func TestDismissKey(t *testing.T) {
	ledger := achievements.NewLedger(nil)
	ledger.TryAward(context.Background(), "first_article")
	m := newAppModel(Options{Ledger: ledger})
	m, _ = update(t, m, runPoll(t, m))

	m, _ = update(t, m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if m.toast != nil {
		t.Error("expected x to dismiss the toast")
	}
}

func TestRenderIncludesToastAndTally(t *testing.T) {
	ledger := achievements.NewLedger(nil)
	ledger.TryAward(context.Background(), "first_practice")
	m := newAppModel(Options{Ledger: ledger})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, runPoll(t, m))

	out := m.render()
	def, _ := achievements.Lookup("first_practice")
	for _, want := range []string{"ACHIEVEMENT UNLOCKED", def.Title, "1/17"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(t, m, tea.KeyPressMsg{Code: '?', Text: "?"})
	if !m.help.ShowAll {
		t.Error("expected ? to expand help")
	}
	m, _ = update(t, m, tea.KeyPressMsg{Code: '?', Text: "?"})
	if m.help.ShowAll {
		t.Error("expected ? to collapse help")
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}
