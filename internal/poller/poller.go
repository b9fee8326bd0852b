// Package poller re-evaluates achievement thresholds on a schedule.
package poller

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
)

// DefaultSchedule is used when Config.Schedule is empty.
const DefaultSchedule = "@every 30s"

// Config configures a Poller.
type Config struct {
	// Schedule is a cron spec (seconds optional) or descriptor such as "@every 30s".
	Schedule string
	// OnAward, if set, receives every non-empty batch of new awards.
	OnAward func(awarded []achievements.Definition)
}

// Poller periodically pulls a metrics snapshot and feeds it to the ledger.
type Poller struct {
	ledger *achievements.Ledger
	source metrics.Source
	cfg    Config
	log    zerolog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// New creates a Poller. It does not start scheduling until Start.
func New(ledger *achievements.Ledger, source metrics.Source, cfg Config, log zerolog.Logger) *Poller {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	return &Poller{
		ledger: ledger,
		source: source,
		cfg:    cfg,
		log:    log,
	}
}

// RunOnce evaluates the current snapshot and returns the newly awarded achievements.
func (p *Poller) RunOnce(ctx context.Context) ([]achievements.Definition, error) {
	log := p.log.With().Str("run_id", uuid.NewString()).Logger()

	m, err := p.source.Snapshot(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("metrics snapshot failed")
		return nil, fmt.Errorf("snapshot metrics: %w", err)
	}

	awarded := p.ledger.CheckMetrics(ctx, m)
	for _, d := range awarded {
		log.Info().Str("achievement", d.ID).Str("title", d.Title).Int("xp", d.XP).Msg("new achievement")
	}
	log.Debug().
		Int("words", m.WordsLearned).
		Int("streak", m.Streak).
		Int("xp", m.XP).
		Int("articles", m.ArticlesRead).
		Int("practice", m.PracticeCompleted).
		Int("awarded", len(awarded)).
		Msg("metrics checked")

	if len(awarded) > 0 && p.cfg.OnAward != nil {
		p.cfg.OnAward(awarded)
	}
	return awarded, nil
}

// Start schedules RunOnce on the configured cron spec. Runs never overlap.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cron != nil {
		return fmt.Errorf("poller already started")
	}

	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(
		cron.WithParser(parser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(p.cfg.Schedule, func() {
		_, _ = p.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("parse schedule %q: %w", p.cfg.Schedule, err)
	}
	c.Start()
	p.cron = c
	p.log.Info().Str("schedule", p.cfg.Schedule).Msg("poller started")
	return nil
}

// Stop halts scheduling and waits for a running check to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	p.log.Info().Msg("poller stopped")
}
