package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/achievements"
	"github.com/abhisek/lexiz/internal/metrics"
)

type failingSource struct{}

func (failingSource) Snapshot(context.Context) (achievements.Metrics, error) {
	return achievements.Metrics{}, errors.New("metrics backend down")
}

func TestRunOnce_AwardsThenIdempotent(t *testing.T) {
	ledger := achievements.NewLedger(nil)
	var batches [][]achievements.Definition
	p := New(ledger, metrics.StaticSource{WordsLearned: 10}, Config{
		OnAward: func(d []achievements.Definition) { batches = append(batches, d) },
	}, zerolog.Nop())
	ctx := context.Background()

	awarded, err := p.RunOnce(ctx)
	require.NoError(t, err)
	require.Len(t, awarded, 2)
	assert.Equal(t, "first_word", awarded[0].ID)
	assert.Equal(t, "words_10", awarded[1].ID)

	awarded, err = p.RunOnce(ctx)
	require.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Len(t, batches, 1, "OnAward should only see non-empty batches")
}

func TestRunOnce_SourceError(t *testing.T) {
	ledger := achievements.NewLedger(nil)
	p := New(ledger, failingSource{}, Config{}, zerolog.Nop())

	_, err := p.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Zero(t, ledger.PendingCount(context.Background()))
}

func TestStart_RunsOnSchedule(t *testing.T) {
	ledger := achievements.NewLedger(nil)
	var once sync.Once
	fired := make(chan struct{})
	p := New(ledger, metrics.StaticSource{Streak: 3}, Config{
		Schedule: "@every 1s",
		OnAward:  func([]achievements.Definition) { once.Do(func() { close(fired) }) },
	}, zerolog.Nop())

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()
	assert.Error(t, p.Start(context.Background()), "second Start should fail")

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled check did not run")
	}
	assert.True(t, ledger.IsEarned(context.Background(), "streak_3"))
}

func TestStart_BadSchedule(t *testing.T) {
	p := New(achievements.NewLedger(nil), metrics.StaticSource{}, Config{Schedule: "every now and then"}, zerolog.Nop())
	assert.Error(t, p.Start(context.Background()))
	p.Stop()
}
