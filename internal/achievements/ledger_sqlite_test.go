package achievements

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/store"
)

func openSQLiteLedger(t *testing.T, path string) *Ledger {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewLedger(st.RecordRepo())
}

func TestSQLiteLedger_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexiz.db")
	ctx := context.Background()

	st, err := store.Open(path)
	require.NoError(t, err)
	l := NewLedger(st.RecordRepo())
	awarded := l.CheckMetrics(ctx, Metrics{WordsLearned: 10, Streak: 3})
	require.Len(t, awarded, 3)
	require.NotNil(t, l.DrainNext(ctx))
	require.NoError(t, st.Close())

	l = openSQLiteLedger(t, path)
	assert.Equal(t, []string{"first_word", "words_10", "streak_3"}, ids(l.AllEarned(ctx)))
	assert.Equal(t, 2, l.PendingCount(ctx))
	assert.Empty(t, l.CheckMetrics(ctx, Metrics{WordsLearned: 10, Streak: 3}))

	rec := l.DrainNext(ctx)
	require.NotNil(t, rec)
	assert.Equal(t, "words_10", rec.ID)
}

// Two ledgers on one database file stand in for two processes sharing storage.
func TestSQLiteLedger_AtMostOnceAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexiz.db")
	ctx := context.Background()

	ledgers := []*Ledger{
		openSQLiteLedger(t, path),
		openSQLiteLedger(t, path),
	}

	var awards atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		l := ledgers[i%len(ledgers)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryAward(ctx, "words_100") != nil {
				awards.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), awards.Load())
	assert.Equal(t, 1, ledgers[0].PendingCount(ctx))
	assert.Equal(t, 1, ledgers[1].PendingCount(ctx))
}
