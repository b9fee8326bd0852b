package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/home"
	"github.com/abhisek/lexiz/internal/screens/welcome"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

const (
	defaultPollInterval  = time.Second
	defaultToastDuration = 4 * time.Second
)

// Options wires the TUI to its data.
type Options struct {
	Ledger *achievements.Ledger
	// Source, when set, is re-checked against the thresholds on every poll.
	Source        metrics.Source
	PollInterval  time.Duration
	ToastDuration time.Duration
	Log           zerolog.Logger
}

type pollMsg struct{}

type polledMsg struct {
	stats  screen.StatsMsg
	record *achievements.Record
}

type toastExpiredMsg struct {
	seq int
}

// AppModel is the root Bubble Tea model. It owns the screen stack, the
// header tally and the achievement toast.
type AppModel struct {
	router *router.Router
	opts   Options

	stats screen.StatsMsg

	// toast is the record on display; at most one at a time.
	toast    *achievements.Record
	toastSeq int

	keys keyMap
	help help.Model

	width  int
	height int
}

// newAppModel creates the root model. First-time learners with nothing
// earned or queued start on the onboarding carousel.
func newAppModel(opts Options) AppModel {
	if opts.Ledger == nil {
		opts.Ledger = achievements.NewLedger(nil)
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = defaultToastDuration
	}

	ctx := context.Background()
	ledger, source := opts.Ledger, opts.Source
	homeFactory := func() screen.Screen { return home.New(ledger, source) }

	var initial screen.Screen
	if ledger.Progress(ctx).Earned == 0 && ledger.PendingCount(ctx) == 0 {
		initial = welcome.New(homeFactory)
	} else {
		initial = homeFactory()
	}

	return AppModel{
		router: router.New(initial),
		opts:   opts,
		stats:  screen.StatsFor(ctx, ledger, nil),
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.poll(true))
}

// tick schedules the next poll.
func (m AppModel) tick() tea.Cmd {
	return tea.Tick(m.opts.PollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// poll checks metrics, optionally drains one record and reloads the tally.
// Only one poll is in flight at a time: the next tick is scheduled when
// its polledMsg arrives.
func (m AppModel) poll(drain bool) tea.Cmd {
	ledger, source, log := m.opts.Ledger, m.opts.Source, m.opts.Log
	return func() tea.Msg {
		ctx := context.Background()

		var snap *achievements.Metrics
		if source != nil {
			s, err := source.Snapshot(ctx)
			if err != nil {
				log.Debug().Err(err).Msg("metrics snapshot failed")
			} else {
				snap = &s
				for _, d := range ledger.CheckMetrics(ctx, s) {
					log.Info().Str("achievement", d.ID).Msg("new achievement")
				}
			}
		}

		var rec *achievements.Record
		if drain {
			rec = ledger.DrainNext(ctx)
		}
		return polledMsg{stats: screen.StatsFor(ctx, ledger, snap), record: rec}
	}
}

func (m AppModel) expireToast() tea.Cmd {
	seq := m.toastSeq
	return tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width - 6)
		return m, nil

	case pollMsg:
		return m, m.poll(m.toast == nil)

	case polledMsg:
		m.stats = msg.stats
		cmds := []tea.Cmd{m.router.Broadcast(msg.stats), m.tick()}
		if msg.record != nil {
			m.toast = msg.record
			m.toastSeq++
			cmds = append(cmds, m.expireToast())
		}
		return m, tea.Batch(cmds...)

	case toastExpiredMsg:
		// A newer toast may have replaced the one this timer was for.
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Dismiss) && m.toast != nil:
			m.toast = nil
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.stats.Progress
	header := layout.RenderHeader(title, m.stats.EarnedXP, p.Earned, p.Total, m.width)
	footer := layout.RenderFooter(m.help.View(m.currentKeys()), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	var content string
	if m.toast != nil {
		toast := components.Toast{Record: *m.toast}.View(m.width)
		rest := max(contentHeight-lipgloss.Height(toast), 0)
		content = toast + "\n" + m.router.View(m.width, rest)
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) currentKeys() keyMap {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	k := m.keys.withHints(hints)
	k.Back.SetEnabled(m.router.Depth() > 1)
	k.Dismiss.SetEnabled(m.toast != nil)
	return k
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
