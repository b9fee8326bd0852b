package screen

import (
	"context"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
)

// LoadStats reads the ledger tally and, if source is non-nil, a metrics
// snapshot. A failed snapshot leaves Metrics nil.
func LoadStats(ctx context.Context, ledger *achievements.Ledger, source metrics.Source) StatsMsg {
	var snap *achievements.Metrics
	if source != nil {
		if m, err := source.Snapshot(ctx); err == nil {
			snap = &m
		}
	}
	return StatsFor(ctx, ledger, snap)
}

// StatsFor builds a StatsMsg around an already taken snapshot.
func StatsFor(ctx context.Context, ledger *achievements.Ledger, snap *achievements.Metrics) StatsMsg {
	return StatsMsg{
		Progress: ledger.Progress(ctx),
		EarnedXP: achievements.TotalXP(ledger.AllEarned(ctx)),
		Metrics:  snap,
	}
}
